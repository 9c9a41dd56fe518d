package restkit

import (
	"context"
	"testing"
	"time"
)

func TestHTTPClient_DefaultHeaders(t *testing.T) {
	srv, rec := newTestServer(t, 200, "")
	client := NewHTTPClient(srv.URL).
		WithHeader("X-Api-Key", "key-123").
		WithTimeout(5 * time.Second)

	_, err := Exec[testPayload](context.Background(), client, getUser{ID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.header.Get("X-Api-Key"); got != "key-123" {
		t.Errorf("expected default header on request, got %q", got)
	}
}

func TestHTTPClient_RequestHeaderWinsOverDefault(t *testing.T) {
	srv, rec := newTestServer(t, 200, "")
	client := NewHTTPClient(srv.URL).WithHeader("X-Api-Key", "default")

	mw := RequestFunc(func(e Endpoint, req *Request) error {
		req.Header.Set("X-Api-Key", "per-request")
		return nil
	})

	_, err := Exec[testPayload](context.Background(), client, getUser{ID: 1}, WithMiddleware(mw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.header.Get("X-Api-Key"); got != "per-request" {
		t.Errorf("expected per-request header to win, got %q", got)
	}
}

func TestHTTPClient_TransportError(t *testing.T) {
	// Port 1 is almost never listening.
	client := NewHTTPClient("http://127.0.0.1:1")

	_, err := Exec[testPayload](context.Background(), client, getUser{ID: 1})
	if !IsKind(err, KindTransport) {
		t.Errorf("expected transport error, got %v", err)
	}
}

func TestHTTPClient_Base(t *testing.T) {
	c := NewHTTPClient("https://api.example.com")
	if c.Base() != "https://api.example.com" {
		t.Errorf("unexpected base %q", c.Base())
	}
}
