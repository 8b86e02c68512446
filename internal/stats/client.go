package stats

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/logger"
)

// maxBodySize caps the stats document; real fleets are well under a megabyte.
const maxBodySize = 32 << 20

// Fetcher retrieves one snapshot.
type Fetcher interface {
	Fetch(ctx context.Context) (*Snapshot, error)
}

// Client fetches the stats document over HTTP.
type Client struct {
	url       string
	http      *http.Client
	userAgent string
	log       logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each request. Zero leaves the client without a timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the client's logger.
func WithLogger(l logger.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// NewClient creates a Client for the full stats URL.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:       url,
		http:      &http.Client{},
		userAgent: "statboard",
		log:       logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the URL the client polls.
func (c *Client) URL() string {
	return c.url
}

// Fetch downloads and decodes one snapshot.
func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			"Cannot build request for "+c.url,
			"Check the endpoint URL in your config")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.WrapWithCode(err, errors.ErrFetch,
				"Status endpoint timed out",
				"Raise timeout in your config or check the network")
		}
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			"Cannot reach status endpoint",
			"Check the endpoint URL and that the server is running")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, errors.New(errors.ErrFetch,
			fmt.Sprintf("Status endpoint returned %d", resp.StatusCode),
			"Check that "+c.url+" serves the ServerStatus stats.json")
	}

	snap, err := Decode(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	c.log.Debug("fetched %d hosts in %s", len(snap.Servers), time.Since(start).Round(time.Millisecond))
	return snap, nil
}
