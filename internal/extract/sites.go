package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Per-site structural adapters. Dispatch is by hostname substring; unknown
// hosts fall to the generic adapter, which only yields description text.
//
// Selector lists are ordered most-specific first and are a maintenance
// liability, not a correctness contract: job boards redesign their markup and
// these lists have to be revisited when they do. Every adapter degrades to
// the generic body extraction when its description selectors all miss.

type siteAdapter struct {
	name    string
	host    string // hostname substring, e.g. "indeed."
	extract func(doc *goquery.Document) (description string, fields Partial)
}

var siteAdapters = []siteAdapter{
	{name: "indeed", host: "indeed.", extract: extractIndeed},
	{name: "linkedin", host: "linkedin.", extract: extractLinkedIn},
	{name: "greenhouse", host: "greenhouse.", extract: extractGreenhouse},
	{name: "lever", host: "lever.", extract: extractLever},
}

func adapterFor(host string) siteAdapter {
	for _, a := range siteAdapters {
		if strings.Contains(host, a.host) {
			return a
		}
	}
	return siteAdapter{name: "generic", extract: extractGeneric}
}

// extractSite runs the adapter for host and backstops an empty description
// with the generic body extraction, so a redesigned board still produces
// text for the insight layer instead of silently going dark.
func extractSite(doc *goquery.Document, host string) (string, Partial) {
	a := adapterFor(host)
	desc, fields := a.extract(doc)
	if desc == "" {
		desc, _ = extractGeneric(doc)
	}
	return desc, fields
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// firstText tries selectors in order and returns the first non-empty match.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if t := cleanText(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// stripLocationNoise removes a "Location" label accidentally captured in the
// same node as its value.
func stripLocationNoise(loc string) string {
	for _, prefix := range []string{"Location:", "Location", "LOCATIONS:", "LOCATION:"} {
		loc = strings.TrimPrefix(loc, prefix)
	}
	return strings.TrimSpace(loc)
}

// structural wraps a selector result as a Partial field: a hit is a known
// value, a miss defers to the weaker layers rather than blocking them.
func structural(v string) Field {
	if v == "" {
		return Unknown()
	}
	return Known(v)
}

func extractIndeed(doc *goquery.Document) (string, Partial) {
	title := firstText(doc,
		"h1.jobsearch-JobInfoHeader-title",
		"h1[data-testid='jobsearch-JobInfoHeader-title']",
		"h1",
	)
	company := firstText(doc,
		"div.jobsearch-InlineCompanyRating div:nth-child(1)",
		"[data-testid='inlineHeader-companyName']",
		"div[data-company-name='true']",
	)
	location := stripLocationNoise(firstText(doc,
		"div.jobsearch-InlineCompanyRating div:nth-child(3)",
		"[data-testid='inlineHeader-companyLocation']",
		"div.jobsearch-JobInfoHeader-subtitle > div:nth-child(2)",
	))
	body := firstText(doc, "div#jobDescriptionText")

	return body, Partial{
		Company:  structural(company),
		Position: structural(title),
		Location: structural(location),
	}
}

func extractLinkedIn(doc *goquery.Document) (string, Partial) {
	title := firstText(doc,
		"h1.top-card-layout__title",
		"h1.topcard__title",
		"h1",
	)
	company := firstText(doc,
		"a.topcard__org-name-link",
		"span.topcard__flavor a",
	)
	location := stripLocationNoise(firstText(doc,
		"span.topcard__flavor--bullet",
		".topcard__flavor-row .topcard__flavor--bullet",
	))
	body := firstText(doc,
		"div.description__text",
		"div.show-more-less-html__markup",
	)

	return body, Partial{
		Company:  structural(company),
		Position: structural(title),
		Location: structural(location),
	}
}

func extractGreenhouse(doc *goquery.Document) (string, Partial) {
	title := firstText(doc,
		"h1.app-title",
		"h1.section-header",
		"h1",
	)
	company := firstText(doc, "span.company-name")
	// Greenhouse renders "at <Company>" inside span.company-name.
	company = strings.TrimSpace(strings.TrimPrefix(company, "at "))
	location := stripLocationNoise(firstText(doc,
		"div.location",
		".location",
	))
	body := firstText(doc,
		"div#content",
		"div.job__description",
	)

	return body, Partial{
		Company:  structural(company),
		Position: structural(title),
		Location: structural(location),
	}
}

func extractLever(doc *goquery.Document) (string, Partial) {
	title := firstText(doc,
		".posting-headline h2",
		"h2",
	)
	location := stripLocationNoise(firstText(doc,
		"[itemprop='jobLocation']",
		"[data-qa='location']",
		".posting-categories .location",
		".location",
	))
	body := firstText(doc,
		"div[data-qa='job-description']",
		".posting-page .section-wrapper",
	)

	// Lever postings don't name the company in the page text (it only
	// appears in the logo image), so it stays unknown here.
	return body, Partial{
		Position: structural(title),
		Location: structural(location),
	}
}

// mainContentSelectors is the generic adapter's ordered list of common
// "main content" shapes.
var mainContentSelectors = []string{
	"article",
	"main",
	"[role='main']",
	"#jobDescriptionText",
	"div.job-description",
	"div.description",
	"div#content",
}

func extractGeneric(doc *goquery.Document) (string, Partial) {
	if t := firstText(doc, mainContentSelectors...); t != "" {
		return t, Partial{}
	}
	return wholeText(doc), Partial{}
}

// wholeText renders the full document body as cleaned text, one line per
// source line. Line structure is kept because the label regexes in the field
// extractor anchor on it.
func wholeText(doc *goquery.Document) string {
	raw := doc.Find("body").First().Text()
	if strings.TrimSpace(raw) == "" {
		raw = doc.Text()
	}
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if l := cleanText(line); l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}
