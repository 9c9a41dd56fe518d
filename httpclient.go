package restkit

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HTTPClient is a Client backed by net/http. A single instance shares
// its connection pool across executions and is safe for concurrent
// use. Retry policy, if desired, belongs in the underlying
// http.Client's transport or in a caller-level wrapper, never here.
type HTTPClient struct {
	base   string
	httpc  *http.Client
	header http.Header
	logger *slog.Logger
}

// NewHTTPClient creates a client for the given base address with a
// default http.Client.
func NewHTTPClient(base string) *HTTPClient {
	return &HTTPClient{
		base:   base,
		httpc:  &http.Client{},
		header: http.Header{},
	}
}

// WithHTTPClient replaces the backing http.Client. It returns the
// client for chaining.
func (c *HTTPClient) WithHTTPClient(h *http.Client) *HTTPClient {
	c.httpc = h
	return c
}

// WithTimeout sets the per-request timeout on the backing http.Client.
func (c *HTTPClient) WithTimeout(d time.Duration) *HTTPClient {
	c.httpc.Timeout = d
	return c
}

// WithHeader adds a header applied to every request this client sends.
// Endpoint middleware can still override it per execution.
func (c *HTTPClient) WithHeader(key, value string) *HTTPClient {
	c.header.Add(key, value)
	return c
}

// WithLogger sets a custom logger. If not set, slog.Default() is used.
func (c *HTTPClient) WithLogger(logger *slog.Logger) *HTTPClient {
	c.logger = logger
	return c
}

// Base returns the configured base address.
func (c *HTTPClient) Base() string {
	return c.base
}

// Send implements Client.
func (c *HTTPClient) Send(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := req.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}
	for k, vs := range c.header {
		if httpReq.Header.Get(k) == "" {
			for _, v := range vs {
				httpReq.Header.Add(k, v)
			}
		}
	}

	logger := c.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("http client sending request",
		slog.String("method", string(req.Method)),
		slog.String("url", req.URL.String()))

	httpResp, err := c.httpc.Do(httpReq)
	if err != nil {
		e := WrapError(KindTransport, "sending HTTP request", err)
		e.URL = req.URL.String()
		e.Method = req.Method
		return nil, e
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		e := WrapError(KindTransport, "reading HTTP response body", err)
		e.URL = req.URL.String()
		e.Method = req.Method
		return nil, e
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}, nil
}
