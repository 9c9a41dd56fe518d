package restkit

// Middleware mutates a request before it is sent and/or a response
// before it is wrapped into a Result. Both hooks see the endpoint
// instance that produced the request. Hooks must not perform
// long-running I/O; only the transport's Send may block. A hook error
// aborts the remaining pipeline steps.
//
// Implementations that only need one hook should embed NopMiddleware
// or use the RequestFunc/ResponseFunc adapters, which default the
// other hook to a pass-through.
type Middleware interface {
	Request(e Endpoint, req *Request) error
	Response(e Endpoint, resp *Response) error
}

// NopMiddleware implements both hooks as pass-throughs. Embed it to
// implement only one side.
type NopMiddleware struct{}

func (NopMiddleware) Request(Endpoint, *Request) error   { return nil }
func (NopMiddleware) Response(Endpoint, *Response) error { return nil }

// RequestFunc adapts a function to a Middleware with a no-op response
// hook.
type RequestFunc func(e Endpoint, req *Request) error

func (f RequestFunc) Request(e Endpoint, req *Request) error { return f(e, req) }
func (f RequestFunc) Response(Endpoint, *Response) error     { return nil }

// ResponseFunc adapts a function to a Middleware with a no-op request
// hook.
type ResponseFunc func(e Endpoint, resp *Response) error

func (f ResponseFunc) Request(Endpoint, *Request) error          { return nil }
func (f ResponseFunc) Response(e Endpoint, resp *Response) error { return f(e, resp) }
