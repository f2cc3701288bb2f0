package shared

import "errors"

// ErrEmptyHandle indicates an operation that needs an object was called on an empty handle.
var ErrEmptyHandle = errors.New("shared: empty handle")
