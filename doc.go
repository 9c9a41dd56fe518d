// Package restkit eases the burden of scaffolding typed HTTP API
// clients. An endpoint is an ordinary struct describing one remote
// operation: its Spec() gives the path template and method, and struct
// tags assign each field a wire role. Executing an endpoint against a
// Client builds the URL, query string and body, applies optional
// middleware, sends the request, and defers response parsing to the
// returned Result.
//
//	type GetUser struct {
//	    ID int `endpoint:"skip"`
//	}
//
//	func (g GetUser) Spec() restkit.Spec {
//	    return restkit.Spec{Path: "users/{ID}"}
//	}
//
//	type User struct {
//	    Name string `json:"name"`
//	    Age  int    `json:"age"`
//	}
//
//	client := restkit.NewHTTPClient("https://api.example.com")
//	res, err := restkit.Exec[User](ctx, client, GetUser{ID: 42})
//	if err != nil {
//	    // typed *restkit.Error describing the failed stage
//	}
//	user, err := res.Parse() // nil on an empty body
//
// Untagged fields serialize together as a JSON body; tagging any field
// `endpoint:"body"` restricts the body to the tagged fields, and a
// single `endpoint:"raw"` []byte field supplies the body verbatim.
// Fields tagged `endpoint:"query"` are encoded into the query string,
// and `endpoint:"skip"` keeps a field off the wire entirely (path
// templates can still reference it by name). Optional pointer fields
// that are nil are omitted from serialization.
//
// Transports implement the two-method Client interface; HTTPClient is
// the net/http-backed default. Responses with a status outside
// [200, 208] fail with a server_response error before parsing begins.
package restkit
