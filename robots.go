package ragingest

import "context"

// RobotsPolicy decides whether a URL may be fetched.
// Implementations evaluate the origin's robots.txt for a wildcard agent;
// when enforcement is disabled every URL is allowed.
type RobotsPolicy interface {
	Allowed(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
