// Package github lists repository file trees through the GitHub API.
package github

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/go-github/v80/github"
	"github.com/ragtools/ragingest"
)

// DefaultRawBase is the host serving raw file contents for github.com
// repositories.
const DefaultRawBase = "https://raw.githubusercontent.com"

// Ensure Lister implements ragingest.RepoLister at compile time.
var _ ragingest.RepoLister = (*Lister)(nil)

// Lister resolves a repository URL to its default branch and full
// recursive file tree.
type Lister struct {
	client  *github.Client
	rawBase string
}

// Option configures a Lister.
type Option func(*Lister)

// WithClient sets the underlying GitHub API client; useful for
// authenticated clients or tests pointing at a stub server.
func WithClient(c *github.Client) Option {
	return func(l *Lister) {
		l.client = c
	}
}

// WithRawBase overrides the raw-content host.
func WithRawBase(base string) Option {
	return func(l *Lister) {
		l.rawBase = strings.TrimSuffix(base, "/")
	}
}

// NewLister creates a Lister using the unauthenticated public API unless
// configured otherwise.
func NewLister(opts ...Option) *Lister {
	l := &Lister{
		client:  github.NewClient(nil),
		rawBase: DefaultRawBase,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ListFiles returns the blob entries of the repository's default branch.
func (l *Lister) ListFiles(ctx context.Context, repoURL string) (*ragingest.RepoTree, error) {
	owner, repo, err := parseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	r, _, err := l.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, ragingest.Errorf(ragingest.ENOTFOUND, "repository %s/%s: %v", owner, repo, err)
	}
	branch := r.GetDefaultBranch()
	if branch == "" {
		branch = "main"
	}

	tree, _, err := l.client.Git.GetTree(ctx, owner, repo, branch, true)
	if err != nil {
		return nil, ragingest.Errorf(ragingest.EUNAVAILABLE, "tree %s/%s@%s: %v", owner, repo, branch, err)
	}

	result := &ragingest.RepoTree{
		Owner:   owner,
		Repo:    repo,
		Branch:  branch,
		RawBase: l.rawBase,
	}
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		result.Files = append(result.Files, ragingest.RepoFile{
			Path: entry.GetPath(),
			Size: int64(entry.GetSize()),
		})
	}

	return result, nil
}

// parseRepoURL extracts owner and repository name from a GitHub URL or a
// bare "owner/repo" string.
func parseRepoURL(repoURL string) (owner, repo string, err error) {
	p := repoURL
	if u, uerr := url.Parse(repoURL); uerr == nil && u.Host != "" {
		p = u.Path
	}
	p = strings.Trim(p, "/")
	p = strings.TrimSuffix(p, ".git")

	parts := strings.Split(p, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ragingest.Errorf(ragingest.EINVALID, "cannot parse repository from %q", repoURL)
	}
	return parts[0], parts[1], nil
}
