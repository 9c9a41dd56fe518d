package restkit

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
)

// Request is the fully resolved form of one endpoint execution, ready
// to hand to a transport. It is constructed fresh per execution and is
// owned exclusively by that execution; only the request-middleware pass
// mutates it before sending.
type Request struct {
	Method Method
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// HTTPRequest converts the descriptor into a *http.Request bound to
// ctx. Concrete transports built on net/http should prefer this over
// assembling requests by hand so header and body handling stay uniform.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, string(r.Method), r.URL.String(), bytes.NewReader(r.Body))
	if err != nil {
		e := WrapError(KindRequestBuild, "building HTTP request", err)
		e.URL = r.URL.String()
		e.Method = r.Method
		return nil, e
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

// Response is the raw outcome of sending a Request. It is produced by
// the transport, optionally mutated once by response middleware, then
// consumed by Result parsing.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
