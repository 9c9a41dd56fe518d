package middleware

import (
	"github.com/restkit/restkit"
)

// BearerAuth returns a middleware that sets an Authorization bearer
// token on every request.
func BearerAuth(token string) restkit.Middleware {
	return Header("Authorization", "Bearer "+token)
}

// Header returns a middleware that sets a fixed header on every
// request, replacing any value the request already carries.
func Header(key, value string) restkit.Middleware {
	return restkit.RequestFunc(func(e restkit.Endpoint, req *restkit.Request) error {
		req.Header.Set(key, value)
		return nil
	})
}
