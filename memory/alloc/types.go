package alloc

import "github.com/joshuapare/slrkit/diag"

// maxRegionBytes caps a single request. Anything larger is treated as
// exhaustion rather than handed to the Go runtime, which would abort the
// process instead of failing the call.
const maxRegionBytes = 1 << 40

// Options configures an Allocator. The zero value is valid.
type Options struct {
	// Source supplies raw byte regions for Blocks. Default: HeapSource.
	Source Source

	// Limit caps live bytes (headers included) across Blocks and Slots.
	// 0 means unlimited.
	Limit int64

	// Sink receives failure reports. nil uses diag.Active() at report time.
	Sink diag.Sink
}

// Stats is a snapshot of allocator counters.
type Stats struct {
	Source string // Name of the backing source

	AllocCalls   int // Alloc and AllocSlots calls
	ResizeCalls  int // Resize calls on any record
	ReleaseCalls int // Release calls on any record
	FailedCalls  int // Calls that returned an error

	LiveBlocks int   // Records allocated and not yet released
	LiveBytes  int64 // Bytes held by live records, headers included
	PeakBytes  int64 // High-water mark of LiveBytes
	Limit      int64 // Configured limit (0 = unlimited)
}
