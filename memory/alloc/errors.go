package alloc

import "errors"

var (
	// ErrZeroSize indicates a request for zero (or a negative number of) bytes or slots.
	ErrZeroSize = errors.New("alloc: zero-size allocation")

	// ErrNilBlock indicates an operation on a nil or already released record.
	ErrNilBlock = errors.New("alloc: nil block")

	// ErrExhausted indicates the limit or the source could not satisfy the request.
	ErrExhausted = errors.New("alloc: memory exhausted")
)
