package ragingest

import (
	"strings"

	"github.com/gobwas/glob"
)

// URLFilter admits or drops URLs by case-insensitive shell-glob matching
// against the full URL. Exclude patterns are checked first and always win;
// if include patterns exist, a URL must match at least one of them.
// A nil filter admits everything.
type URLFilter struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewURLFilter compiles include and exclude glob patterns.
// Patterns are matched case-insensitively; `*` matches any run of
// characters including `/`, as in shell fnmatch.
func NewURLFilter(include, exclude []string) (*URLFilter, error) {
	f := &URLFilter{}
	var err error
	if f.include, err = compileGlobs(include); err != nil {
		return nil, err
	}
	if f.exclude, err = compileGlobs(exclude); err != nil {
		return nil, err
	}
	return f, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	var out []glob.Glob
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, Errorf(EINVALID, "invalid glob pattern %q: %v", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// Admit returns true if the URL passes the filter.
func (f *URLFilter) Admit(url string) bool {
	if f == nil {
		return true
	}
	lower := strings.ToLower(url)
	for _, g := range f.exclude {
		if g.Match(lower) {
			return false
		}
	}
	if len(f.include) == 0 {
		return true
	}
	for _, g := range f.include {
		if g.Match(lower) {
			return true
		}
	}
	return false
}
