package helloao

import (
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestWithBaseURL(t *testing.T) {
	c := &Client{}
	if err := WithBaseURL("http://localhost:8080")(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.baseURL != "http://localhost:8080" {
		t.Fatalf("base URL not set")
	}
	if err := WithBaseURL("")(c); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{}
	c := &Client{}
	if err := WithHTTPClient(hc)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http != hc {
		t.Fatalf("http client not replaced")
	}
	if err := WithHTTPClient(nil)(c); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestWithLogger(t *testing.T) {
	c := &Client{}
	if err := WithLogger(zerolog.Nop())(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithDebugLogging(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithDebugLogging(true)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("debug transport not installed")
	}

	// disabled leaves the transport untouched
	c2 := &Client{http: &http.Client{}}
	if err := WithDebugLogging(false)(c2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c2.http.Transport != nil {
		t.Fatalf("transport unexpectedly wrapped")
	}
}
