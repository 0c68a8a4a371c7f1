// Package goquery implements HTML content and link extraction on top of
// CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ragtools/ragingest"
)

// chromeSelectors are page-chrome elements removed before the content
// region is serialized.
var chromeSelectors = []string{
	"script", "style", "noscript", "nav", "header", "footer", "aside",
}

// contentSelectors are candidate content regions tried in order; the
// first non-empty match wins.
var contentSelectors = []string{"main", "article"}

// Ensure Extractor implements ragingest.Extractor at compile time.
var _ ragingest.Extractor = (*Extractor)(nil)

// Extractor isolates the main content region of a documentation page and
// strips page chrome from it.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the page, removes chrome elements, and returns the HTML
// of the first matching content region along with the page title. Pages
// without a recognizable region fall back to the whole cleaned body.
func (e *Extractor) Extract(html string) (*ragingest.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ragingest.Errorf(ragingest.EINVALID, "parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(strings.Join(chromeSelectors, ", ")).Remove()

	for _, sel := range contentSelectors {
		region := doc.Find(sel).First()
		if region.Length() > 0 && strings.TrimSpace(region.Text()) != "" {
			content, err := goquery.OuterHtml(region)
			if err != nil {
				return nil, ragingest.Errorf(ragingest.EINTERNAL, "serialize content region: %v", err)
			}
			return &ragingest.ExtractResult{Title: title, ContentHTML: content}, nil
		}
	}

	body := doc.Find("body").First()
	if body.Length() > 0 {
		content, err := goquery.OuterHtml(body)
		if err != nil {
			return nil, ragingest.Errorf(ragingest.EINTERNAL, "serialize body: %v", err)
		}
		return &ragingest.ExtractResult{Title: title, ContentHTML: content}, nil
	}

	return &ragingest.ExtractResult{Title: title, ContentHTML: html}, nil
}
