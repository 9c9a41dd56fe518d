package middleware

import (
	"github.com/restkit/restkit"
)

type chain struct {
	mws []restkit.Middleware
}

// Chain composes several middlewares into one, since an execution
// accepts at most a single middleware instance. Request hooks run in
// the order given; response hooks run in reverse order, so the first
// middleware wraps the others. The first hook error aborts the rest.
func Chain(mws ...restkit.Middleware) restkit.Middleware {
	if len(mws) == 1 {
		return mws[0]
	}
	return &chain{mws: mws}
}

func (c *chain) Request(e restkit.Endpoint, req *restkit.Request) error {
	for _, m := range c.mws {
		if err := m.Request(e, req); err != nil {
			return err
		}
	}
	return nil
}

func (c *chain) Response(e restkit.Endpoint, resp *restkit.Response) error {
	for i := len(c.mws) - 1; i >= 0; i-- {
		if err := c.mws[i].Response(e, resp); err != nil {
			return err
		}
	}
	return nil
}
