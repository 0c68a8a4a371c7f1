// Package mock provides function-field mock implementations of the
// ragingest service interfaces for use in tests.
package mock

import (
	"context"

	"github.com/ragtools/ragingest"
)

var _ ragingest.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of ragingest.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*ragingest.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*ragingest.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

var _ ragingest.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of ragingest.Decoder.
type Decoder struct {
	DecodeFn func(data []byte) string
}

func (d *Decoder) Decode(data []byte) string {
	return d.DecodeFn(data)
}

var _ ragingest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ragingest.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*ragingest.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*ragingest.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ ragingest.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of ragingest.LinkExtractor.
type LinkExtractor struct {
	LinksFn func(html, baseURL string) ([]string, error)
}

func (l *LinkExtractor) Links(html, baseURL string) ([]string, error) {
	return l.LinksFn(html, baseURL)
}

var _ ragingest.Converter = (*Converter)(nil)

// Converter is a mock implementation of ragingest.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ ragingest.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of ragingest.RobotsPolicy.
type RobotsPolicy struct {
	AllowedFn func(url string) bool
}

func (r *RobotsPolicy) Allowed(url string) bool {
	return r.AllowedFn(url)
}

var _ ragingest.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of ragingest.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}

var _ ragingest.RawWriter = (*RawWriter)(nil)

// RawWriter is a mock implementation of ragingest.RawWriter.
type RawWriter struct {
	WriteRawFn func(origin, text string) (string, error)
}

func (w *RawWriter) WriteRaw(origin, text string) (string, error) {
	return w.WriteRawFn(origin, text)
}

var _ ragingest.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of ragingest.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedFn(ctx, texts)
}

var _ ragingest.VectorStore = (*VectorStore)(nil)

// VectorStore is a mock implementation of ragingest.VectorStore.
type VectorStore struct {
	UpsertFn func(ctx context.Context, entries []*ragingest.Entry) error
}

func (v *VectorStore) Upsert(ctx context.Context, entries []*ragingest.Entry) error {
	return v.UpsertFn(ctx, entries)
}

var _ ragingest.RepoLister = (*RepoLister)(nil)

// RepoLister is a mock implementation of ragingest.RepoLister.
type RepoLister struct {
	ListFilesFn func(ctx context.Context, repoURL string) (*ragingest.RepoTree, error)
}

func (r *RepoLister) ListFiles(ctx context.Context, repoURL string) (*ragingest.RepoTree, error) {
	return r.ListFilesFn(ctx, repoURL)
}
