package middleware

import (
	"github.com/google/uuid"
	"github.com/restkit/restkit"
)

// RequestIDHeader is the header set by RequestID.
const RequestIDHeader = "X-Request-Id"

// RequestID returns a middleware that stamps each request with a fresh
// UUID, unless the header is already present.
func RequestID() restkit.Middleware {
	return restkit.RequestFunc(func(e restkit.Endpoint, req *restkit.Request) error {
		if req.Header.Get(RequestIDHeader) == "" {
			req.Header.Set(RequestIDHeader, uuid.NewString())
		}
		return nil
	})
}
