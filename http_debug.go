package helloao

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// debugging client issues. Every outgoing request is stamped with a fresh
// X-Request-Id so request and response log lines can be correlated.
//
// When to use:
//   - Set HELLOAO_DEBUG=true or DEBUG=true environment variable
//   - During development when investigating upstream schema drift
//   - In CI pipelines for integration test debugging
//
// Performance impact:
//   - Adds overhead for request/response dumping and logging
//   - Should be disabled in production for optimal performance
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	reqID := uuid.NewString()
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-Id", reqID)

	if reqDump, err := httputil.DumpRequestOut(cloned, true); err == nil {
		log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(cloned)
	if err != nil {
		log.Error().Err(err).Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - HELLOAO_DEBUG=true (client-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
//
// Returns true if either environment variable is set to "true".
func debugLoggingRequested() bool {
	return os.Getenv("HELLOAO_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
