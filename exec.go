package restkit

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/restkit/restkit/internal/fieldset"
)

var validate = validator.New()

// Spec is the declarative description of an endpoint: a relative path
// template and an HTTP method. The path may contain {FieldName}
// placeholders which resolve against the endpoint struct's exported
// fields when a request is built.
type Spec struct {
	Path   string
	Method Method
}

// Endpoint is a struct representing one remote operation. Its fields
// carry the request data; `endpoint` tags assign each field a wire
// role (see package fieldset) and ordinary json/schema/validate tags
// control serialization and validation. The zero Method means GET.
//
//	type UpdateUser struct {
//	    ID   string  `endpoint:"skip"`
//	    Name string  `json:"name"`
//	    Bio  *string `json:"bio,omitempty"`
//	}
//
//	func (u UpdateUser) Spec() restkit.Spec {
//	    return restkit.Spec{Path: "users/{ID}", Method: restkit.MethodPut}
//	}
type Endpoint interface {
	Spec() Spec
}

// ExecOption configures a single execution.
type ExecOption func(*execOptions)

type execOptions struct {
	middleware Middleware
}

// WithMiddleware attaches a middleware to the execution. At most one
// middleware applies per execution; passing the option twice keeps the
// last one. Callers wanting several hooks compose them first, e.g.
// with middleware.Chain.
func WithMiddleware(m Middleware) ExecOption {
	return func(o *execOptions) {
		o.middleware = m
	}
}

// BuildRequest resolves an endpoint instance against a base address
// into a concrete Request. The instance is validated first (validate
// tags), then the path template is interpolated and the query and body
// are built from the field roles. Exported so endpoints can be
// inspected or dispatched by hand without executing them.
func BuildRequest(e Endpoint, base string) (*Request, error) {
	if err := validate.Struct(e); err != nil {
		return nil, buildError(err)
	}

	set, err := fieldset.Parse(reflect.TypeOf(e))
	if err != nil {
		return nil, buildError(err)
	}

	spec := e.Spec()
	method := spec.Method
	if method == "" {
		method = MethodGet
	}

	v := reflect.ValueOf(e)

	path, err := interpolatePath(spec.Path, v, set)
	if err != nil {
		return nil, err
	}
	query, err := buildQuery(v, set)
	if err != nil {
		return nil, err
	}
	body, err := buildBody(v, set)
	if err != nil {
		return nil, err
	}

	u, err := BuildURL(base, path, query)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if _, isRaw := set.RawField(); !isRaw && len(body) > 0 {
		header.Set("Content-Type", RequestTypeJSON.ContentType())
	}

	return &Request{
		Method: method,
		URL:    u,
		Header: header,
		Body:   body,
	}, nil
}

// Exec executes the endpoint against the client and returns an
// unparsed Result. The pipeline is: build the request, run the
// request-middleware hook, send through Execute, run the
// response-middleware hook, wrap the raw response. Every failure is
// terminal for this call; nothing is retried here. A send that fails
// or is cancelled never reaches the response hook.
func Exec[T any](ctx context.Context, c Client, e Endpoint, opts ...ExecOption) (*Result[T], error) {
	var o execOptions
	for _, opt := range opts {
		opt(&o)
	}

	req, err := BuildRequest(e, c.Base())
	if err != nil {
		return nil, err
	}

	if o.middleware != nil {
		if err := o.middleware.Request(e, req); err != nil {
			return nil, middlewareError(err)
		}
	}

	slog.Debug("executing endpoint",
		slog.String("method", string(req.Method)),
		slog.String("url", req.URL.String()))

	resp, err := Execute(ctx, c, req)
	if err != nil {
		return nil, err
	}

	if o.middleware != nil {
		if err := o.middleware.Response(e, resp); err != nil {
			return nil, middlewareError(err)
		}
	}

	return newResult[T](resp, ResponseTypeJSON), nil
}

// ExecBlock is the blocking entry point over the same pipeline as
// Exec, for callers with no context to thread through.
func ExecBlock[T any](c Client, e Endpoint, opts ...ExecOption) (*Result[T], error) {
	return Exec[T](context.Background(), c, e, opts...)
}

// middlewareError wraps hook failures. Errors already carrying a Kind
// pass through so middleware can raise domain-specific kinds.
func middlewareError(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return WrapError(KindMiddleware, "middleware hook failed", err)
}
