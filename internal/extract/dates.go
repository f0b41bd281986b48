package extract

import (
	"strings"
	"time"

	dateparser "github.com/markusmobius/go-dateparser"
)

// Normalizer turns loose date phrases ("June 1 2025", "the 15th", "next
// Friday") into ISO dates. Ambiguous dates resolve toward the future, matching
// how deadlines read. When the phrase cannot be parsed it is returned
// verbatim; normalization never discards information.
type Normalizer struct {
	// Now overrides the reference time for relative dates. Nil means wall clock.
	Now func() time.Time
}

func (n *Normalizer) Normalize(phrase string) string {
	trimmed := strings.TrimSpace(phrase)
	if trimmed == "" {
		return ""
	}

	cfg := &dateparser.Configuration{
		PreferredDateSource: dateparser.Future,
	}
	if n != nil && n.Now != nil {
		cfg.CurrentTime = n.Now()
	}

	dt, err := dateparser.Parse(cfg, trimmed)
	if err != nil || dt.Time.IsZero() {
		return trimmed
	}
	return dt.Time.Format("2006-01-02")
}
