package ragingest

import "context"

// FetchResult holds the raw response for a fetched URL.
type FetchResult struct {
	// Body is the raw response body. Decoding is the Normalizer's job;
	// the fetcher makes no assumptions about charset.
	Body []byte

	// ContentType is the value of the Content-Type response header,
	// possibly empty.
	ContentType string
}

// Fetcher retrieves raw content from URLs with a bounded timeout.
type Fetcher interface {
	// Fetch performs a GET request for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Decoder converts raw response bytes to valid UTF-8 text.
// Implementations never fail; undecodable input degrades to
// replacement-character substitution.
type Decoder interface {
	Decode(data []byte) string
}
