package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/awesomebible/helloao-go/internal/types"
)

// HTTPClient interface for dependency injection. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// firstNonEmpty resolves a logical field from an ordered list of candidate
// values. Upstream key names are not fully stable, so several fields are
// read from more than one key with a fixed preference order.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// loadFailure logs the underlying cause with the operation's identifiers,
// bumps the failure counter and mints the generic error the caller sees.
// The cause stays in the log sink only; it is not wrapped into the result.
func loadFailure(logger zerolog.Logger, op, msg string, cause error, kv ...string) error {
	evt := logger.Error().Err(cause).Str("op", op)
	for i := 0; i+1 < len(kv); i += 2 {
		evt = evt.Str(kv[i], kv[i+1])
	}
	evt.Msg("load failed")
	requestFailuresTotal.WithLabelValues(op).Inc()
	return &types.FetchError{Op: op, Message: msg}
}
