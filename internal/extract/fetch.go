package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	fetchTimeout = 15 * time.Second
	maxBodyBytes = 2 << 20

	// Some job boards serve a bot-wall to unknown agents, so we present a
	// plain desktop browser.
	browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0 Safari/537.36"
)

// FetchErrorKind classifies why a page could not be retrieved.
type FetchErrorKind string

const (
	FetchTimeout   FetchErrorKind = "timeout"
	FetchNetwork   FetchErrorKind = "network"
	FetchBadStatus FetchErrorKind = "bad_status"
	FetchFailed    FetchErrorKind = "failed"
)

// FetchError is the single reportable fetch failure. Callers may retry the
// whole request; the fetcher itself makes exactly one attempt.
type FetchError struct {
	Kind       FetchErrorKind
	URL        string
	StatusCode int // set when Kind is FetchBadStatus
	Cause      string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %s", e.URL, e.Cause)
}

type Fetcher struct {
	hc *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{hc: &http.Client{Timeout: fetchTimeout}}
}

// Fetch retrieves the raw HTML of url. Every failure comes back as a
// *FetchError carrying a human-readable cause.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{Kind: FetchFailed, URL: url, Cause: err.Error()}
	}
	req.Header.Set("User-Agent", browserUA)

	res, err := f.hc.Do(req)
	if err != nil {
		kind := FetchNetwork
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			kind = FetchTimeout
		} else if errors.Is(err, context.DeadlineExceeded) {
			kind = FetchTimeout
		}
		return "", &FetchError{Kind: kind, URL: url, Cause: err.Error()}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &FetchError{
			Kind:       FetchBadStatus,
			URL:        url,
			StatusCode: res.StatusCode,
			Cause:      fmt.Sprintf("status %d", res.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return "", &FetchError{Kind: FetchFailed, URL: url, Cause: err.Error()}
	}
	return string(body), nil
}
