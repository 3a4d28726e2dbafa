// Package content is a client for the headless CMS REST API: collection
// listings, documents by id and media URLs.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:3000/api"
	// DefaultAPIPath is the suffix stripped from the base URL to build media URLs.
	DefaultAPIPath = "/api"

	mediaPath = "/media/"
)

// Client issues GET requests relative to a base URL. It holds no per-call
// state and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiPath    string
	httpClient *http.Client
	hook       ErrorHook
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the http.Client used for requests. Timeouts and
// transports are the caller's concern.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a timeout on a copy of the current http.Client, so it
// composes with WithHTTPClient in either order.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// WithErrorHook sets the hook invoked for every failure before it is returned.
func WithErrorHook(h ErrorHook) Option {
	return func(c *Client) {
		if h != nil {
			c.hook = h
		}
	}
}

// WithLogger sets the logger used for request/response debug lines.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAPIPath overrides the API suffix stripped by MediaURL.
func WithAPIPath(path string) Option {
	return func(c *Client) {
		c.apiPath = path
	}
}

// New creates a Client for baseURL. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		apiPath:    DefaultAPIPath,
		httpClient: http.DefaultClient,
		hook:       NopErrorHook,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CollectionURL returns {baseURL}/{collection} with the encoded query appended
// when q is non-empty.
func (c *Client) CollectionURL(collection string, q Query) string {
	u := c.baseURL + "/" + collection
	if qs := q.Encode(); qs != "" {
		u += "?" + qs
	}
	return u
}

// DocumentURL returns {baseURL}/{collection}/{id}.
func (c *Client) DocumentURL(collection, id string) string {
	return c.baseURL + "/" + collection + "/" + id
}

// List fetches one page of collection filtered by q.
func List[T any](ctx context.Context, c *Client, collection string, q Query) (*PagedResult[T], error) {
	var page PagedResult[T]
	if err := c.fetch(ctx, collection, c.CollectionURL(collection, q), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single document by id. A missing document is a RequestFailed
// error with StatusCode 404.
func Get[T any](ctx context.Context, c *Client, collection, id string) (T, error) {
	var doc T
	if err := c.fetch(ctx, collection, c.DocumentURL(collection, id), &doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// fetch performs one GET round trip and decodes the body into out. Every
// failure goes through the error hook and is then returned as is.
func (c *Client) fetch(ctx context.Context, collection, url string, out any) error {
	var err error
	if collection == "" {
		err = ErrEmptyCollection
	} else {
		err = c.do(ctx, collection, url, out)
	}
	if err != nil {
		c.hook.OnError(ctx, collection, err)
	}
	return err
}

func (c *Client) do(ctx context.Context, collection, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Error{Kind: KindTransport, Collection: collection, URL: url, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Making HTTP request",
		zap.String("method", http.MethodGet),
		zap.String("url", url),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Collection: collection, URL: url, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("HTTP response received",
		zap.String("url", url),
		zap.Int("status_code", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{
			Kind:       KindRequestFailed,
			Collection: collection,
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Collection: collection, URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	// json.Unmarshal accepts null as a no-op, which would pass for an empty result
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &Error{Kind: KindDecode, Collection: collection, URL: url, Err: ErrEmptyBody}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindDecode, Collection: collection, URL: url, Err: err}
	}
	return nil
}

// statusText returns the reason phrase of resp, e.g. "Not Found".
func statusText(resp *http.Response) string {
	if _, text, ok := strings.Cut(resp.Status, " "); ok && text != "" {
		return text
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}
