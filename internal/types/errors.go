package types

// The SDK surfaces exactly two error kinds: a ValidationError raised before
// any network I/O, and a FetchError covering every transport, status and
// decode failure. Upstream "not found", malformed payloads and unreachable
// hosts all collapse into the same FetchError; the underlying cause is
// logged at the call site and deliberately not attached to the error the
// caller receives.

// ValidationError reports a required input that was missing or empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string { return e.Field + " is required" }

// FetchError is the generic load failure returned for any failed request.
// Op identifies the operation; Message is the caller-facing text.
type FetchError struct {
	Op      string
	Message string
}

func (e *FetchError) Error() string { return e.Message }
