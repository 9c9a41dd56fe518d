// Package middleware provides ready-made restkit middleware: request
// logging, request-ID injection, auth headers, and composition of
// several middlewares into the single instance an execution accepts.
package middleware

import (
	"log/slog"

	"github.com/restkit/restkit"
)

type logging struct {
	logger *slog.Logger
}

// Logging returns a middleware that logs each outgoing request and
// each raw response using slog. Pass nil to use slog.Default().
func Logging(logger *slog.Logger) restkit.Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &logging{logger: logger}
}

func (l *logging) Request(e restkit.Endpoint, req *restkit.Request) error {
	l.logger.Info("request prepared",
		slog.String("method", string(req.Method)),
		slog.String("url", req.URL.String()),
		slog.Int("body_bytes", len(req.Body)),
	)
	return nil
}

func (l *logging) Response(e restkit.Endpoint, resp *restkit.Response) error {
	l.logger.Info("response received",
		slog.Int("status", resp.StatusCode),
		slog.Int("body_bytes", len(resp.Body)),
	)
	return nil
}
