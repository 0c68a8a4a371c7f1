package ragingest

import (
	"context"
	"fmt"
)

// RepoFile is one blob entry in a repository tree.
type RepoFile struct {
	Path string
	Size int64
}

// RepoTree is a flat listing of a repository's default branch.
type RepoTree struct {
	Owner  string
	Repo   string
	Branch string
	Files  []RepoFile

	// RawBase is the host serving raw blob content,
	// e.g. "https://raw.githubusercontent.com".
	RawBase string
}

// RawURL returns the raw-content URL for a file path in the tree.
func (t *RepoTree) RawURL(path string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", t.RawBase, t.Owner, t.Repo, t.Branch, path)
}

// RepoLister fetches the file tree of a hosted repository's default branch.
type RepoLister interface {
	// ListFiles resolves the default branch for the repository URL and
	// returns its blob entries.
	ListFiles(ctx context.Context, repoURL string) (*RepoTree, error)
}
