package main

import (
	"fmt"

	"github.com/ragtools/ragingest"
	"github.com/ragtools/ragingest/crawl"
	"github.com/ragtools/ragingest/fs"
)

// Run executes the git command.
func (c *GitCmd) Run(deps *Dependencies) error {
	layout := fs.NewLayout(c.Out)
	if err := layout.Ensure(); err != nil {
		return err
	}

	ingester := &crawl.RepoIngester{
		Lister:  deps.Lister,
		Fetcher: deps.Fetcher,
		Decoder: deps.Decoder,
		Limiter: deps.Limiter,
		Raw:     fs.NewRawStore(layout),
		Logger:  deps.Logger,
	}

	records, err := ingester.Run(deps.Ctx, c.Repo)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ragingest.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Ingested %d files from %s\n", len(records), c.Repo)

	p := &Pipeline{
		Formatter: deps.Formatter,
		Embedder:  deps.Embedder,
		Store:     deps.Store,
		BatchSize: c.BatchSize,
		Logger:    deps.Logger,
		Stdout:    deps.Stdout,
	}
	return p.Run(deps.Ctx, records, ragingest.ModeGit, layout)
}
