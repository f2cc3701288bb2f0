package dynarray

import "errors"

var (
	// ErrIndexOutOfRange indicates an index outside the live range.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrInvalidCapacity indicates a negative capacity request.
	ErrInvalidCapacity = errors.New("dynarray: invalid capacity")
)
