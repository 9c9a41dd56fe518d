package restkit

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"
)

// Status codes in this inclusive range classify a response as
// successful, independent of which transport produced it.
const (
	httpSuccessMin = 200
	httpSuccessMax = 208
)

// Client is the minimal capability a transport must provide to execute
// endpoints. Implementations consolidate backend failures into *Error
// values where possible; anything else is wrapped by Execute. A Client
// must be safe for concurrent use, since concurrent executions share
// nothing but the client itself.
type Client interface {
	// Send dispatches the request and returns the raw response.
	// This is the only point in the execution pipeline that may block.
	Send(ctx context.Context, req *Request) (*Response, error)

	// Base returns the base address used to qualify endpoint paths.
	Base() string
}

// Execute sends the request through c and classifies the outcome:
// status codes in [200, 208] succeed, anything else becomes a
// server_response error carrying the code and, when the body decodes
// as text, its content. The classification is identical for every
// transport; backends implement only Send.
func Execute(ctx context.Context, c Client, req *Request) (*Response, error) {
	slog.Debug("sending request",
		slog.String("method", string(req.Method)),
		slog.String("url", req.URL.String()),
		slog.Int("body_bytes", len(req.Body)))

	resp, err := c.Send(ctx, req)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, err
		}
		e = WrapError(KindTransport, "sending HTTP request", err)
		e.URL = req.URL.String()
		e.Method = req.Method
		return nil, e
	}

	slog.Debug("received response",
		slog.Int("status", resp.StatusCode),
		slog.Int("body_bytes", len(resp.Body)))

	if resp.StatusCode < httpSuccessMin || resp.StatusCode > httpSuccessMax {
		e := Errorf(KindServerResponse, "server returned error")
		e.URL = req.URL.String()
		e.Method = req.Method
		e.StatusCode = resp.StatusCode
		e.Content = textContent(resp.Body)
		return nil, e
	}
	return resp, nil
}

// textContent returns the body as a string when it is valid UTF-8,
// for error diagnostics only.
func textContent(body []byte) string {
	if utf8.Valid(body) {
		return string(body)
	}
	return ""
}
