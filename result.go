package restkit

import "encoding/json"

// Result holds the raw response of one execution together with the
// response encoding, deferring deserialization until the caller asks
// for it. The same raw bytes back both Parse and Wrap, so a response
// can be inspected, parsed plainly, or parsed into an envelope without
// re-fetching.
type Result[T any] struct {
	// Response is the raw response as returned by the transport, after
	// any response middleware ran.
	Response *Response

	ctype ResponseType
}

func newResult[T any](resp *Response, ctype ResponseType) *Result[T] {
	return &Result[T]{Response: resp, ctype: ctype}
}

// Raw returns the raw response body.
func (r *Result[T]) Raw() []byte {
	return r.Response.Body
}

// Parse deserializes the response body into T. A zero-length body is
// an explicit no-content outcome and returns (nil, nil), distinct from
// a present body that fails to deserialize, which returns a
// response_parse error carrying the content for diagnostics.
func (r *Result[T]) Parse() (*T, error) {
	if len(r.Response.Body) == 0 {
		return nil, nil
	}

	var out T
	switch r.ctype {
	case ResponseTypeJSON:
		if err := json.Unmarshal(r.Response.Body, &out); err != nil {
			e := WrapError(KindResponseParse, "parsing HTTP response", err)
			e.Content = textContent(r.Response.Body)
			return nil, e
		}
	default:
		return nil, Errorf(KindResponseParse, "unsupported response type %q", r.ctype)
	}
	return &out, nil
}

// Wrap deserializes the response body into the envelope type W instead
// of T. Some APIs nest the real payload of every endpoint inside a
// shared outer shape; W is that shape and must declare T as its inner
// value. Wrap parses the same raw bytes Parse would, it does not
// additionally extract T out of W; the caller destructures the
// envelope. A zero-length body returns (nil, nil) as in Parse.
func Wrap[W any, T any](r *Result[T]) (*W, error) {
	if len(r.Response.Body) == 0 {
		return nil, nil
	}

	var out W
	switch r.ctype {
	case ResponseTypeJSON:
		if err := json.Unmarshal(r.Response.Body, &out); err != nil {
			e := WrapError(KindResponseParse, "parsing HTTP response envelope", err)
			e.Content = textContent(r.Response.Body)
			return nil, e
		}
	default:
		return nil, Errorf(KindResponseParse, "unsupported response type %q", r.ctype)
	}
	return &out, nil
}
