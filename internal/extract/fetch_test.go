package extract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != browserUA {
			t.Errorf("unexpected User-Agent %q", ua)
		}
		w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	got, err := NewFetcher().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "<html><body>hello</body></html>" {
		t.Errorf("body = %q", got)
	}
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher().Fetch(context.Background(), srv.URL)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("want *FetchError, got %v", err)
	}
	if fe.Kind != FetchBadStatus || fe.StatusCode != http.StatusNotFound {
		t.Errorf("got kind=%s status=%d", fe.Kind, fe.StatusCode)
	}
}

func TestFetchNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewFetcher().Fetch(context.Background(), srv.URL)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("want *FetchError, got %v", err)
	}
	if fe.Kind != FetchNetwork {
		t.Errorf("kind = %s, want %s", fe.Kind, FetchNetwork)
	}
	if fe.Cause == "" {
		t.Error("cause should carry the underlying error text")
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewFetcher().Fetch(ctx, srv.URL)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("want *FetchError, got %v", err)
	}
	if fe.Kind != FetchTimeout {
		t.Errorf("kind = %s, want %s", fe.Kind, FetchTimeout)
	}
}

func TestFetchErrorMessage(t *testing.T) {
	fe := &FetchError{Kind: FetchBadStatus, URL: "https://example.com/j/1", StatusCode: 503, Cause: "status 503"}
	want := "failed to fetch https://example.com/j/1: status 503"
	if fe.Error() != want {
		t.Errorf("Error() = %q, want %q", fe.Error(), want)
	}
}
