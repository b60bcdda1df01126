package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/awesomebible/helloao-go/internal/types"
)

// brokenClient fails every request at the transport level.
type brokenClient struct{}

func (brokenClient) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial tcp: connection refused")
}

// countingClient fails the test if any request reaches the network.
type countingClient struct {
	t     *testing.T
	calls int
}

func (c *countingClient) Do(*http.Request) (*http.Response, error) {
	c.calls++
	c.t.Errorf("unexpected network access")
	return nil, errors.New("unexpected network access")
}

func wantFetchError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var ferr *types.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *types.FetchError, got %T: %v", err, err)
	}
	if err.Error() != msg {
		t.Fatalf("unexpected message %q, want %q", err.Error(), msg)
	}
}

func wantValidationError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *types.ValidationError, got %T: %v", err, err)
	}
	if verr.Field != field {
		t.Fatalf("unexpected field %q, want %q", verr.Field, field)
	}
}
