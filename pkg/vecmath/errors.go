package vecmath

import "errors"

var (
	// ErrNegative indicates a square root of a negative value was requested.
	ErrNegative = errors.New("vecmath: negative value")

	// ErrZeroMagnitude indicates a vector of length 0 cannot be normalized.
	ErrZeroMagnitude = errors.New("vecmath: zero magnitude")

	// ErrEmpty indicates Min was called with no values.
	ErrEmpty = errors.New("vecmath: no values")
)
