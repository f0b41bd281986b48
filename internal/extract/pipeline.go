package extract

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrUnavailable reports that the semantic inference capability was never
// initialized; callers should surface a service-unavailable outcome instead
// of a silently degraded record.
var ErrUnavailable = errors.New("text extractor is not available")

// Pipeline is the per-request extraction flow. It holds only read-only
// process-wide collaborators, so one instance serves all requests.
type Pipeline struct {
	inf     Inferencer
	fetcher *Fetcher
	dates   *Normalizer
}

type Option func(*Pipeline)

// WithFetcher replaces the default page fetcher, mainly for tests.
func WithFetcher(f *Fetcher) Option {
	return func(p *Pipeline) { p.fetcher = f }
}

// WithClock pins the reference time used to resolve relative dates.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.dates.Now = now }
}

// NewPipeline builds a pipeline around the given inference capability. A nil
// inferencer is allowed; both parse entry points then fail with
// ErrUnavailable rather than returning half-empty records.
func NewPipeline(inf Inferencer, opts ...Option) *Pipeline {
	p := &Pipeline{
		inf:     inf,
		fetcher: NewFetcher(),
		dates:   &Normalizer{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseText extracts a JobPosting from pasted posting text.
func (p *Pipeline) ParseText(ctx context.Context, text string) (JobPosting, error) {
	if p.inf == nil {
		return JobPosting{}, ErrUnavailable
	}

	fields := ExtractFields(text, p.dates)
	ins := ExtractInsights(ctx, p.inf, text, p.dates)
	return Merge(Partial{}, fields, ins, ""), nil
}

// ParseLink fetches a posting URL and extracts a JobPosting from the page.
// Fetch failures come back as *FetchError; everything past the fetch degrades
// to empty fields instead of failing.
func (p *Pipeline) ParseLink(ctx context.Context, rawURL string) (JobPosting, error) {
	if p.inf == nil {
		return JobPosting{}, ErrUnavailable
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return JobPosting{}, &FetchError{Kind: FetchFailed, URL: rawURL, Cause: "invalid URL"}
	}

	html, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return JobPosting{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return JobPosting{}, &FetchError{Kind: FetchFailed, URL: rawURL, Cause: "parse page: " + err.Error()}
	}

	host := strings.ToLower(u.Hostname())
	desc, siteFields := extractSite(doc, host)

	start := time.Now()
	fields := ExtractFields(wholeText(doc), p.dates)
	ins := ExtractInsights(ctx, p.inf, desc, p.dates)
	log.Printf("[pipeline] host=%s extracted in %s", host, time.Since(start).Round(time.Millisecond))

	return Merge(siteFields, fields, ins, rawURL), nil
}
