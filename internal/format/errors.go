package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a header word.
	ErrTruncated = errors.New("format: truncated buffer")
)
