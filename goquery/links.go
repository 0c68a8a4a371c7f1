package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ragtools/ragingest"
)

// Ensure LinkExtractor implements ragingest.LinkExtractor at compile time.
var _ ragingest.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor discovers anchor targets in a page for crawl frontier
// expansion.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// Links returns the absolute targets of every anchor in the page,
// resolved against baseURL, with fragments stripped and duplicates
// removed in document order. Non-HTTP schemes (javascript:, mailto:,
// tel:, data:) are skipped.
func (l *LinkExtractor) Links(html, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, ragingest.Errorf(ragingest.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ragingest.Errorf(ragingest.EINVALID, "parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || isNonHTTPLink(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		resolved.Fragment = ""
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}

		s := resolved.String()
		if !seen[s] {
			seen[s] = true
			links = append(links, s)
		}
	})

	return links, nil
}

func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(href)
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
