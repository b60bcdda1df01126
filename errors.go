package helloao

import (
	"errors"

	"github.com/awesomebible/helloao-go/internal/types"
)

// The SDK returns exactly two error kinds: ValidationError for missing
// inputs (raised before any network I/O) and FetchError for any failed
// request. The underlying cause of a FetchError is logged, never attached.
type (
	ValidationError = types.ValidationError
	FetchError      = types.FetchError
)

// IsValidation reports whether err is a missing-input error.
func IsValidation(err error) bool {
	var v *types.ValidationError
	return errors.As(err, &v)
}

// IsFetch reports whether err is a load failure.
func IsFetch(err error) bool {
	var f *types.FetchError
	return errors.As(err, &f)
}
