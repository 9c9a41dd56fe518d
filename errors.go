package restkit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind is a machine-readable classification of an execution failure.
type Kind string

const (
	KindPathInterpolation Kind = "path_interpolation"
	KindURLParse          Kind = "url_parse"
	KindURLBuild          Kind = "url_build"
	KindURLQuery          Kind = "url_query"
	KindDataParse         Kind = "data_parse"
	KindEndpointBuild     Kind = "endpoint_build"
	KindRequestBuild      Kind = "request_build"
	KindTransport         Kind = "transport"
	KindServerResponse    Kind = "server_response"
	KindResponseParse     Kind = "response_parse"
	KindMiddleware        Kind = "middleware"
)

// Error is the error type returned by every public operation in this
// package. The Kind identifies the pipeline stage that failed; the
// remaining fields carry stage-specific diagnostics and may be empty.
type Error struct {
	Kind    Kind
	Message string

	// URL and Method identify the attempted request for transport and
	// server failures.
	URL    string
	Method Method

	// StatusCode is set for server_response errors.
	StatusCode int

	// Content holds the response body (or a UTF-8 preview of it) for
	// server_response and response_parse errors.
	Content string

	err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.URL != "" {
		fmt.Fprintf(&b, " (%s %s)", e.Method, e.URL)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.err != nil {
		b.WriteString(": ")
		b.WriteString(e.err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// NewError creates a new error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf creates a new error with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates a new error of the given kind wrapping cause.
func WrapError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, err: cause}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// buildError maps an arbitrary error raised while constructing a
// request into an endpoint_build error. Existing *Error values pass
// through unchanged; validation failures from go-playground/validator
// are flattened into a field-by-field message.
func buildError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		msgs := make([]string, 0, len(valErrs))
		for _, ve := range valErrs {
			msgs = append(msgs, ve.Field()+": failed "+ve.Tag()+" validation")
		}
		return WrapError(KindEndpointBuild, strings.Join(msgs, "; "), err)
	}

	return WrapError(KindEndpointBuild, "building endpoint request", err)
}
