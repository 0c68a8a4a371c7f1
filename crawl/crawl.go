// Package crawl provides ingestion orchestration: the same-origin
// breadth-first site crawler and the repository file ingester. Both
// produce page records ready for chunking.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/ragtools/ragingest"
)

// DefaultMaxPages bounds a crawl when the caller sets no limit.
const DefaultMaxPages = 5000

// Crawler walks a documentation site breadth-first from a start URL,
// staying on the start URL's origin, and produces one page record per
// successfully fetched page. Pages are processed strictly in discovery
// order; a failed page is logged and skipped, never fatal.
type Crawler struct {
	Fetcher   ragingest.Fetcher
	Extractor ragingest.Extractor
	Converter ragingest.Converter
	Links     ragingest.LinkExtractor
	Decoder   ragingest.Decoder
	Robots    ragingest.RobotsPolicy
	Filter    *ragingest.URLFilter
	Limiter   ragingest.DomainLimiter
	Raw       ragingest.RawWriter
	MaxPages  int
	Logger    *slog.Logger
}

// Run crawls from startURL until the frontier is empty or MaxPages URLs
// have been visited. Every dequeued URL counts against the budget, even
// when robots, filters, or a failed fetch end up skipping it; the budget
// bounds crawl work, not output size. The returned records preserve
// fetch order.
func (c *Crawler) Run(ctx context.Context, startURL string) ([]*ragingest.PageRecord, error) {
	start, err := url.Parse(startURL)
	if err != nil || start.Scheme == "" || start.Host == "" {
		return nil, ragingest.Errorf(ragingest.EINVALID, "invalid start URL %q", startURL)
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	frontier := NewFrontier(uint(maxPages)*4, 0.001)
	frontier.Push(startURL)

	var records []*ragingest.PageRecord
	for visited := 0; visited < maxPages; visited++ {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}

		if !sameOrigin(start, pageURL) {
			continue
		}
		if c.Robots != nil && !c.Robots.Allowed(pageURL) {
			logger.Debug("robots disallow", "url", pageURL)
			continue
		}
		if !c.Filter.Admit(pageURL) {
			logger.Debug("filtered", "url", pageURL)
			continue
		}
		if ragingest.IsProbablyBinary(pageURL) {
			continue
		}

		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx, start.Host); err != nil {
				return records, err
			}
		}

		res, err := c.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			logger.Warn("fetch failed", "url", pageURL, "error", err)
			continue
		}

		isHTML := isHTMLContentType(res.ContentType)
		if !isHTML && !ragingest.HasDocExt(pageURL) {
			logger.Debug("skipping non-document response", "url", pageURL, "content_type", res.ContentType)
			continue
		}

		rec, err := c.process(pageURL, res, isHTML)
		if err != nil {
			logger.Warn("process failed", "url", pageURL, "error", err)
			continue
		}
		records = append(records, rec)
		logger.Info("page stored", "url", pageURL, "kind", rec.Kind, "chars", len(rec.Text))

		if isHTML {
			c.discover(frontier, start, pageURL, res.Body, logger)
		}
	}

	return records, nil
}

// process decodes, extracts, and persists one fetched page.
func (c *Crawler) process(pageURL string, res *ragingest.FetchResult, isHTML bool) (*ragingest.PageRecord, error) {
	var kind ragingest.Kind
	var text, title string

	// The URL extension outranks the response content-type: servers
	// routinely mislabel .md and .txt files as text/html.
	switch {
	case hasExt(pageURL, ".md", ".markdown"):
		kind, text = ragingest.KindMarkdown, c.Decoder.Decode(res.Body)
	case hasExt(pageURL, ".txt"):
		kind, text = ragingest.KindText, c.Decoder.Decode(res.Body)
	case isHTML:
		extracted, err := c.Extractor.Extract(c.Decoder.Decode(res.Body))
		if err != nil {
			return nil, err
		}
		md, err := c.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			return nil, err
		}
		kind, text, title = ragingest.KindHTML, md, extracted.Title
	default:
		kind, text = ragingest.KindText, c.Decoder.Decode(res.Body)
	}

	text = ragingest.NormalizeWhitespace(text)
	if text == "" {
		return nil, ragingest.Errorf(ragingest.EINVALID, "page yielded no text")
	}

	stored, err := c.Raw.WriteRaw(pageURL, text)
	if err != nil {
		return nil, err
	}

	return &ragingest.PageRecord{
		Origin:      pageURL,
		StoredPath:  stored,
		Kind:        kind,
		Text:        text,
		Title:       title,
		ContentHash: HashText(text),
	}, nil
}

// discover extracts links from a fetched HTML page and enqueues the
// same-origin ones. Filters re-apply at dequeue so that include and
// exclude patterns see the final, fragment-free URL.
func (c *Crawler) discover(frontier *Frontier, start *url.URL, pageURL string, body []byte, logger *slog.Logger) {
	links, err := c.Links.Links(c.Decoder.Decode(body), pageURL)
	if err != nil {
		logger.Warn("link extraction failed", "url", pageURL, "error", err)
		return
	}
	for _, link := range links {
		if !sameOrigin(start, link) {
			continue
		}
		if frontier.Seen(link) {
			continue
		}
		frontier.Push(link)
	}
}

// HashText returns the stable content hash recorded for a page's
// normalized text.
func HashText(s string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(s))
}

// sameOrigin reports whether the URL shares scheme and host with the
// start URL. Subdomains are different origins.
func sameOrigin(start *url.URL, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == start.Scheme && u.Host == start.Host
}

func isHTMLContentType(ct string) bool {
	ct = strings.ToLower(ct)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml")
}

func hasExt(rawURL string, exts ...string) bool {
	lower := strings.ToLower(rawURL)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
