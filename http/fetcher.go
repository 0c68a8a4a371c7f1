// Package http provides an HTTP-based implementation of ragingest.Fetcher
// for retrieving pages and raw repository files over plain GET requests.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/ragtools/ragingest"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent identifies the crawler to origin servers.
const DefaultUserAgent = "ragingest/1.0"

// Ensure Fetcher implements ragingest.Fetcher at compile time.
var _ ragingest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content from URLs using HTTP requests. It does not
// execute JavaScript; pages are taken as the server renders them.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the content at the given URL. Non-2xx responses are
// reported as unavailable so callers can skip the page and continue.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*ragingest.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ragingest.Errorf(ragingest.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, ragingest.Errorf(ragingest.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ragingest.Errorf(ragingest.EUNAVAILABLE, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ragingest.Errorf(ragingest.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return &ragingest.FetchResult{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
