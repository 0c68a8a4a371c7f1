// Package robotstxt implements ragingest.RobotsPolicy on top of a parsed
// robots.txt file. Fetch or parse failures degrade to allowing everything,
// matching the common crawler convention for missing robots files.
package robotstxt

import (
	"context"
	"net/url"

	"github.com/ragtools/ragingest"
	"github.com/temoto/robotstxt"
)

// Agent is the user-agent group consulted when testing paths.
const Agent = "*"

// Ensure Policy implements ragingest.RobotsPolicy at compile time.
var _ ragingest.RobotsPolicy = (*Policy)(nil)

// Policy answers robots.txt queries for one origin. A Policy with no
// parsed data allows every URL.
type Policy struct {
	data *robotstxt.RobotsData
}

// AllowAll returns a policy that permits every URL.
func AllowAll() *Policy {
	return &Policy{}
}

// Parse builds a policy from robots.txt bytes.
func Parse(body []byte) (*Policy, error) {
	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil, ragingest.Errorf(ragingest.EINVALID, "parse robots.txt: %v", err)
	}
	return &Policy{data: data}, nil
}

// Load fetches and parses the robots.txt of startURL's origin. Any
// failure along the way yields an allow-all policy rather than an error;
// a site without a readable robots file is treated as unrestricted.
func Load(ctx context.Context, fetcher ragingest.Fetcher, startURL string) *Policy {
	u, err := url.Parse(startURL)
	if err != nil || u.Host == "" {
		return AllowAll()
	}

	res, err := fetcher.Fetch(ctx, u.Scheme+"://"+u.Host+"/robots.txt")
	if err != nil {
		return AllowAll()
	}

	p, err := Parse(res.Body)
	if err != nil {
		return AllowAll()
	}
	return p
}

// Allowed reports whether the wildcard agent may fetch the URL.
func (p *Policy) Allowed(rawURL string) bool {
	if p.data == nil {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	return p.data.TestAgent(path, Agent)
}
