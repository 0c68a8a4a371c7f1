package crawl

import (
	"context"
	"log/slog"

	"github.com/ragtools/ragingest"
)

// RepoIngester fetches the text files of a hosted git repository and
// produces one page record per kept file. Files are processed in tree
// order; fetch failures are logged and skipped.
type RepoIngester struct {
	Lister  ragingest.RepoLister
	Fetcher ragingest.Fetcher
	Decoder ragingest.Decoder
	Limiter ragingest.DomainLimiter
	Raw     ragingest.RawWriter
	Logger  *slog.Logger
}

// Run lists the repository at repoURL and ingests every document and
// source file it contains.
func (r *RepoIngester) Run(ctx context.Context, repoURL string) ([]*ragingest.PageRecord, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tree, err := r.Lister.ListFiles(ctx, repoURL)
	if err != nil {
		return nil, err
	}
	logger.Info("repository listed",
		"owner", tree.Owner, "repo", tree.Repo, "branch", tree.Branch, "files", len(tree.Files))

	var records []*ragingest.PageRecord
	for _, file := range tree.Files {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		kind, keep := ragingest.ClassifyRepoFile(file.Path)
		if !keep {
			continue
		}

		rawURL := tree.RawURL(file.Path)
		if r.Limiter != nil {
			if err := r.Limiter.Wait(ctx, "raw.githubusercontent.com"); err != nil {
				return records, err
			}
		}

		res, err := r.Fetcher.Fetch(ctx, rawURL)
		if err != nil {
			logger.Warn("fetch failed", "path", file.Path, "error", err)
			continue
		}

		text := ragingest.NormalizeWhitespace(r.Decoder.Decode(res.Body))
		if text == "" {
			continue
		}

		stored, err := r.Raw.WriteRaw(rawURL, text)
		if err != nil {
			return records, err
		}

		records = append(records, &ragingest.PageRecord{
			Origin:      rawURL,
			StoredPath:  stored,
			Kind:        kind,
			Text:        text,
			ContentHash: HashText(text),
		})
		logger.Info("file stored", "path", file.Path, "kind", kind, "chars", len(text))
	}

	return records, nil
}
