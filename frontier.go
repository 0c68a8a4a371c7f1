package ragingest

// Frontier manages the crawl queue with deduplication.
// URLs come out in strict FIFO order; a URL that has been pushed once is
// never admitted again, so every URL is dequeued and evaluated at most once
// per run.
type Frontier interface {
	// Push adds a URL to the frontier.
	// Returns false if the URL has already been seen.
	Push(url string) bool

	// Pop returns the oldest queued URL.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Seen returns true if the URL has been queued before.
	Seen(url string) bool
}
