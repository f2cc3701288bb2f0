package alloc

import "github.com/joshuapare/slrkit/internal/format"

// Source supplies raw byte regions to an Allocator.
type Source interface {
	// Acquire returns a region of exactly n bytes. Content is unspecified.
	Acquire(n int) ([]byte, error)

	// Return gives back a region obtained from Acquire, possibly resliced to
	// a shorter length.
	Return(b []byte) error

	// Name identifies the source in statistics.
	Name() string
}

// HeapSource allocates regions on the Go heap.
type HeapSource struct{}

// NewHeapSource returns the heap source.
func NewHeapSource() HeapSource { return HeapSource{} }

// Acquire allocates n zeroed bytes. Capacity is rounded up to the word size,
// so small growth within the padding resizes in place.
func (HeapSource) Acquire(n int) ([]byte, error) {
	return make([]byte, n, format.Align8(n)), nil
}

// Return drops the region; the garbage collector reclaims it.
func (HeapSource) Return([]byte) error { return nil }

// Name returns "heap".
func (HeapSource) Name() string { return "heap" }

var _ Source = HeapSource{}
