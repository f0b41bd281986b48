package extract

import (
	"regexp"
	"strings"
)

// Label regexes for explicit "Label: value" lines. A separator is required so
// prose like "our company grew" never matches.
var (
	companyLabelRe  = regexp.MustCompile(`(?i)(?:company|employer)\s*[:\-]\s*([^\n]+)`)
	positionLabelRe = regexp.MustCompile(`(?i)(?:job\s*title|title|position|role)\s*[:\-]\s*([^\n]+)`)
	locationLabelRe = regexp.MustCompile(`(?i)location\s*[:\-]\s*([^\n]+)`)
	deadlineLabelRe = regexp.MustCompile(`(?i)(?:apply\s*by|deadline)\s*[:\-]\s*([^\n]+)`)
)

func labelValue(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.Trim(strings.TrimSpace(m[1]), "*_ ")
}

// ExtractFields pulls the primary fields (company, position, location,
// deadline) out of raw posting text. Explicit labelled lines win; entity and
// noun-phrase heuristics fill in behind them. Absence is reported as known
// empty, not unknown: this is the foundation layer, and the merge engine
// needs an unambiguous default under everything else.
func ExtractFields(text string, dates *Normalizer) Partial {
	company := labelValue(companyLabelRe, text)
	if company == "" {
		company = firstOrganization(text)
	}

	position := labelValue(positionLabelRe, text)
	if position == "" {
		position = guessPosition(text)
	}

	location := labelValue(locationLabelRe, text)
	if location == "" {
		location = placeName(text)
	}

	deadline := ""
	if raw := labelValue(deadlineLabelRe, text); raw != "" {
		deadline = dates.Normalize(raw)
	}

	return Partial{
		Company:  Known(company),
		Position: Known(position),
		Location: Known(location),
		Deadline: Known(deadline),
	}
}
