package ragingest

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Document is the final Markdown artifact assembled for one distinct
// source: front matter plus a cleaned body. It is written once per source
// at the end of a run and overwritten on re-run.
type Document struct {
	Source   string
	Title    string
	Category string
	Keywords []string
	Body     string

	// Passthrough marks a raw repository Markdown file: the body keeps
	// its own structure and no synthetic H1 is emitted.
	Passthrough bool
}

// Document assembles the final Markdown document for a page record.
func (f *Formatter) Document(rec *PageRecord, mode Mode) *Document {
	segs := slugSegments(rec.Origin)

	title := strings.TrimSpace(rec.Title)
	if title == "" && len(segs) > 0 {
		title = segs[len(segs)-1]
	}
	if title == "" {
		title = "index"
	}

	passthrough := mode == ModeGit && rec.Kind == KindDoc &&
		(strings.HasSuffix(strings.ToLower(rec.Origin), ".md") ||
			strings.HasSuffix(strings.ToLower(rec.Origin), ".markdown"))

	var body string
	if passthrough {
		body = BalanceFenceParity(rec.Text)
	} else {
		body = f.Clean(rec.Text)
	}

	return &Document{
		Source:      rec.Origin,
		Title:       title,
		Category:    Category(rec.Origin),
		Keywords:    Keywords(rec.Origin, title, body),
		Body:        body,
		Passthrough: passthrough,
	}
}

// Markdown renders the document with YAML-style front matter.
func (d *Document) Markdown() string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(d.Source)
	b.WriteString("\ntitle: ")
	b.WriteString(d.Title)
	b.WriteString("\ncategory: ")
	b.WriteString(d.Category)
	b.WriteString("\nkeywords: ")
	b.WriteString(strings.Join(d.Keywords, ", "))
	b.WriteString("\n---\n\n")
	if !d.Passthrough {
		b.WriteString("# ")
		b.WriteString(d.Title)
		b.WriteString("\n\n")
	}
	b.WriteString(strings.TrimSpace(d.Body))
	b.WriteString("\n")
	return b.String()
}

// slugSegments returns the path segments of a source URL, or of a bare
// path when the source does not parse as a URL.
func slugSegments(source string) []string {
	p := source
	if u, err := url.Parse(source); err == nil && u.Host != "" {
		p = u.Path
	}
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s = strings.TrimSpace(s); s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// Category derives a document category from the source slug: the path
// minus its last segment, or "root" when nothing remains.
func Category(source string) string {
	segs := slugSegments(source)
	if len(segs) < 2 {
		return "root"
	}
	return strings.Join(segs[:len(segs)-1], "/")
}

var (
	slugSplit = regexp.MustCompile(`[-_./]+`)
	wordSplit = regexp.MustCompile(`[^A-Za-z0-9]+`)
	callIdent = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]{2,})\(`)
)

// Keywords gathers lowercase tokens from the source slug, the title, and
// call identifiers detected in the body. The union is deduplicated and
// sorted. Tokens shorter than three characters are dropped.
func Keywords(source, title, body string) []string {
	set := make(map[string]bool)

	add := func(tok string) {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if len(tok) >= 3 {
			set[tok] = true
		}
	}

	for _, seg := range slugSegments(source) {
		for _, tok := range slugSplit.Split(seg, -1) {
			add(tok)
		}
	}
	for _, tok := range wordSplit.Split(title, -1) {
		add(tok)
	}
	for _, m := range callIdent.FindAllStringSubmatch(body, -1) {
		add(m[1])
	}

	keywords := make([]string, 0, len(set))
	for k := range set {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}
