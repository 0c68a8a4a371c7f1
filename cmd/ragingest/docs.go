package main

import (
	"fmt"

	"github.com/ragtools/ragingest"
	"github.com/ragtools/ragingest/crawl"
	"github.com/ragtools/ragingest/fs"
	"github.com/ragtools/ragingest/robotstxt"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	filter, err := ragingest.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ragingest.ErrorMessage(err))
		return err
	}

	layout := fs.NewLayout(c.Out)
	if err := layout.Ensure(); err != nil {
		return err
	}

	robots := robotstxt.AllowAll()
	if !c.IgnoreRobots {
		robots = robotstxt.Load(deps.Ctx, deps.Fetcher, c.URL)
	}

	crawler := &crawl.Crawler{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Converter: deps.Converter,
		Links:     deps.Links,
		Decoder:   deps.Decoder,
		Robots:    robots,
		Filter:    filter,
		Limiter:   deps.Limiter,
		Raw:       fs.NewRawStore(layout),
		MaxPages:  c.MaxPages,
		Logger:    deps.Logger,
	}

	records, err := crawler.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ragingest.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Crawled %d pages from %s\n", len(records), c.URL)

	p := &Pipeline{
		Formatter: deps.Formatter,
		Embedder:  deps.Embedder,
		Store:     deps.Store,
		BatchSize: c.BatchSize,
		Logger:    deps.Logger,
		Stdout:    deps.Stdout,
	}
	return p.Run(deps.Ctx, records, ragingest.ModeDocs, layout)
}
