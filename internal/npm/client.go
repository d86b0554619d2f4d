package npm

import (
	"net/http"
	"strings"
)

// Dist describes the downloadable artifact of a published package version.
type Dist struct {
	Tarball string `json:"tarball"`
	Shasum  string `json:"shasum"`
}

// Version is the registry metadata document for one published version.
type Version struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Dist    Dist   `json:"dist"`
}

// Client talks to an npm registry (or a mirror serving the same layout).
type Client struct {
	registry   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// New creates a Client for the given registry base URL and options.
func New(registry string, opts ...Option) *Client {
	cl := &Client{
		registry:   strings.TrimRight(registry, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// Registry returns the registry base URL this client was created with.
func (c *Client) Registry() string {
	return c.registry
}
