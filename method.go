package restkit

// Method represents the HTTP method used when executing an endpoint.
//
// LIST is included for APIs (notably Vault-style APIs) that use it as a
// custom method; net/http passes unrecognized methods through verbatim.
type Method string

const (
	MethodConnect Method = "CONNECT"
	MethodDelete  Method = "DELETE"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodList    Method = "LIST"
	MethodOptions Method = "OPTIONS"
	MethodPatch   Method = "PATCH"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodTrace   Method = "TRACE"
)

// RequestType is the encoding of a request body.
type RequestType string

// ResponseType is the encoding of a response body. It is carried on
// Result so additional encodings can be added without changing the
// execution pipeline.
type ResponseType string

const (
	RequestTypeJSON  RequestType  = "json"
	ResponseTypeJSON ResponseType = "json"
)

// ContentType returns the MIME type for serialized bodies of this type.
func (t RequestType) ContentType() string {
	switch t {
	case RequestTypeJSON:
		return "application/json"
	default:
		return ""
	}
}
