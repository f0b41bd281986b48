package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Lightweight entity and noun-phrase heuristics over raw posting text. These
// back the Field Extractor's fallback paths when no "Label: value" line is
// present. They trade recall for determinism: a company is only reported when
// a capitalized run carries a recognizable organization marker, and places are
// limited to "City, Region" composites plus a small gazetteer.

// orgMarkers are lowercase tokens that mark a capitalized run as an
// organization name.
var orgMarkers = map[string]bool{
	"inc": true, "llc": true, "ltd": true, "co": true, "gmbh": true,
	"corp": true, "corporation": true, "company": true, "holdings": true,
	"labs": true, "lab": true, "technologies": true, "tech": true,
	"systems": true, "solutions": true, "software": true, "studios": true,
	"studio": true, "group": true, "media": true, "partners": true,
	"ventures": true, "consulting": true, "industries": true, "ai": true,
}

// roleKeywords gate position candidates; matched as lowercase substrings so
// "internship" and "engineering" count.
var roleKeywords = []string{
	"intern", "analyst", "engineer", "developer", "manager",
	"specialist", "coordinator",
}

// stopwords delimit approximate noun-phrase spans.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "of": true,
	"to": true, "for": true, "in": true, "at": true, "on": true, "with": true,
	"as": true, "by": true, "from": true, "is": true, "are": true, "be": true,
	"we": true, "our": true, "you": true, "your": true, "this": true,
	"that": true, "will": true, "who": true, "what": true, "their": true,
	"its": true, "it": true, "about": true, "into": true, "per": true,
	"join": true, "seeking": true, "looking": true, "hiring": true,
	"apply": true, "now": true,
}

// cityRegionRe captures "City, ST" and "City, Country" composites.
var cityRegionRe = regexp.MustCompile(
	`\b([A-Z][a-z]+(?:[ -][A-Z][a-z]+){0,2}),\s*([A-Z]{2}\b|[A-Z][a-z]+(?:\s[A-Z][a-z]+)?)`)

// gpeNames is a small gazetteer of standalone place names, all lowercase.
// Multi-word names are checked as bigrams.
var gpeNames = map[string]bool{
	"remote": true, "london": true, "toronto": true, "vancouver": true,
	"berlin": true, "munich": true, "paris": true, "amsterdam": true,
	"dublin": true, "singapore": true, "sydney": true, "tokyo": true,
	"boston": true, "seattle": true, "chicago": true, "austin": true,
	"denver": true, "atlanta": true, "philadelphia": true, "houston": true,
	"bangalore": true, "bengaluru": true, "mumbai": true, "hyderabad": true,
	"canada": true, "germany": true, "france": true, "india": true,
	"australia": true, "ireland": true, "netherlands": true, "japan": true,
	"usa": true, "uk": true, "new york": true, "san francisco": true,
	"los angeles": true, "united states": true, "united kingdom": true,
}

// locNames are generic (non-geopolitical) place phrases; they only apply when
// no geopolitical entity was found.
var locNames = map[string]bool{
	"bay area": true, "east coast": true, "west coast": true,
	"midwest": true, "pacific northwest": true, "silicon valley": true,
}

type token struct {
	text string
	brk  bool // hard break after this token (sentence or clause punctuation)
}

func tokenize(text string) []token {
	fields := strings.Fields(text)
	out := make([]token, 0, len(fields))
	for _, f := range fields {
		brk := false
		if r := rune(f[len(f)-1]); strings.ContainsRune(".,:;!?|", r) {
			brk = true
		}
		w := strings.Trim(f, "\"'`()[]{}<>.,:;!?|*_")
		if w == "" {
			if len(out) > 0 {
				out[len(out)-1].brk = true
			}
			continue
		}
		out = append(out, token{text: w, brk: brk})
	}
	return out
}

func isCapitalized(w string) bool {
	r := []rune(w)
	return len(r) > 0 && unicode.IsUpper(r[0])
}

// firstOrganization returns the first capitalized token run that carries an
// organization marker, e.g. "Nimbus Labs" or "Acme Corp Inc".
func firstOrganization(text string) string {
	toks := tokenize(text)
	var run []string
	flush := func() string {
		if len(run) < 2 {
			return ""
		}
		for _, w := range run {
			if orgMarkers[strings.ToLower(strings.TrimSuffix(w, "."))] {
				return strings.Join(run, " ")
			}
		}
		return ""
	}
	for _, t := range toks {
		// Capitalized stopwords ("Join", "About", sentence-initial "The")
		// are not part of a name.
		if isCapitalized(t.text) && !stopwords[strings.ToLower(t.text)] {
			run = append(run, t.text)
			if t.brk {
				if org := flush(); org != "" {
					return org
				}
				run = run[:0]
			}
			continue
		}
		if org := flush(); org != "" {
			return org
		}
		run = run[:0]
	}
	return flush()
}

// placeName returns the best location guess: a "City, Region" composite
// first, then gazetteer hits joined with ", ", then a generic region phrase.
func placeName(text string) string {
	if m := cityRegionRe.FindStringSubmatch(text); m != nil {
		return m[1] + ", " + m[2]
	}

	toks := tokenize(text)
	var hits []string
	seen := map[string]bool{}
	add := func(name string) {
		key := strings.ToLower(name)
		if !seen[key] {
			seen[key] = true
			hits = append(hits, name)
		}
	}
	for i, t := range toks {
		if !isCapitalized(t.text) {
			continue
		}
		if i+1 < len(toks) && isCapitalized(toks[i+1].text) && !t.brk {
			bigram := t.text + " " + toks[i+1].text
			if gpeNames[strings.ToLower(bigram)] {
				add(bigram)
				continue
			}
		}
		if gpeNames[strings.ToLower(t.text)] {
			add(t.text)
		}
	}
	if len(hits) > 0 {
		return strings.Join(hits, ", ")
	}

	lower := strings.ToLower(text)
	for phrase := range locNames {
		if strings.Contains(lower, phrase) {
			return phrase
		}
	}
	return ""
}

// nounSpans approximates noun-phrase spans by splitting the first limit
// tokens on stopwords and clause punctuation.
func nounSpans(toks []token, limit int) [][]string {
	if limit > len(toks) {
		limit = len(toks)
	}
	var spans [][]string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			spans = append(spans, cur)
			cur = nil
		}
	}
	for _, t := range toks[:limit] {
		if stopwords[strings.ToLower(t.text)] {
			flush()
			continue
		}
		cur = append(cur, t.text)
		if t.brk {
			flush()
		}
	}
	flush()
	return spans
}

// guessPosition scans the opening of the posting for a tight role title:
// spans of at most five words containing a role keyword, preferring the
// shortest. With no keyword hit it falls back to the longest span in the
// first fifty tokens.
func guessPosition(text string) string {
	toks := tokenize(text)
	if len(toks) == 0 {
		return ""
	}

	var best []string
	for _, span := range nounSpans(toks, 100) {
		if len(span) > 5 {
			continue
		}
		joined := strings.ToLower(strings.Join(span, " "))
		for _, kw := range roleKeywords {
			if strings.Contains(joined, kw) {
				if best == nil || len(span) < len(best) {
					best = span
				}
				break
			}
		}
	}
	if best != nil {
		return strings.Join(best, " ")
	}

	var longest []string
	for _, span := range nounSpans(toks, 50) {
		if len(span) > len(longest) {
			longest = span
		}
	}
	return strings.Join(longest, " ")
}
