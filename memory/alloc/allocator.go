package alloc

import (
	"fmt"

	"github.com/joshuapare/slrkit/diag"
	"github.com/joshuapare/slrkit/internal/buf"
	"github.com/joshuapare/slrkit/internal/format"
)

// Allocator hands out Blocks and Slots and keeps the accounting for them.
type Allocator struct {
	src   Source
	limit int64
	sink  diag.Sink

	stats allocatorStats
}

// allocatorStats holds internal allocator statistics.
type allocatorStats struct {
	AllocCalls   int
	ResizeCalls  int
	ReleaseCalls int
	FailedCalls  int
	LiveBlocks   int
	LiveBytes    int64
	PeakBytes    int64
}

var defaultAllocator = New(nil)

// Default returns the process-wide heap allocator used when a component is
// not given one.
func Default() *Allocator { return defaultAllocator }

// New creates an allocator. opts may be nil.
func New(opts *Options) *Allocator {
	if opts == nil {
		opts = &Options{}
	}
	src := opts.Source
	if src == nil {
		src = HeapSource{}
	}
	return &Allocator{
		src:   src,
		limit: opts.Limit,
		sink:  opts.Sink,
	}
}

// Stats returns a snapshot of the allocator counters.
func (a *Allocator) Stats() Stats {
	return Stats{
		Source:       a.src.Name(),
		AllocCalls:   a.stats.AllocCalls,
		ResizeCalls:  a.stats.ResizeCalls,
		ReleaseCalls: a.stats.ReleaseCalls,
		FailedCalls:  a.stats.FailedCalls,
		LiveBlocks:   a.stats.LiveBlocks,
		LiveBytes:    a.stats.LiveBytes,
		PeakBytes:    a.stats.PeakBytes,
		Limit:        a.limit,
	}
}

// Alloc returns a Block with n usable bytes. The block's header word records
// n; content is unspecified.
func (a *Allocator) Alloc(n int) (*Block, error) {
	a.stats.AllocCalls++

	if n <= 0 {
		return nil, a.fail(diag.LevelError, ErrZeroSize, "Attempted to allocate 0 bytes", "bytes", n)
	}

	total, err := regionBytes(n, 1)
	if err != nil {
		return nil, a.fail(diag.LevelError, fmt.Errorf("%w: %w", ErrExhausted, err),
			"Failed to allocate memory", "bytes", n)
	}

	raw, err := a.acquire(total)
	if err != nil {
		return nil, a.fail(diag.LevelError, err, "Failed to allocate memory", "bytes", n)
	}

	// Cannot fail: raw holds at least the header word.
	_ = format.PutHeader(raw, n)

	a.charge(total)
	a.stats.LiveBlocks++
	return &Block{a: a, raw: raw}, nil
}

// acquire takes a region of total bytes from the source after checking the
// limit. The region is not charged yet.
func (a *Allocator) acquire(total int) ([]byte, error) {
	if err := a.reserve(int64(total)); err != nil {
		return nil, err
	}
	raw, err := a.src.Acquire(total)
	if err != nil {
		return nil, fmt.Errorf("%w: %s source: %w", ErrExhausted, a.src.Name(), err)
	}
	return raw, nil
}

// reserve checks that delta more live bytes fit under the limit.
func (a *Allocator) reserve(delta int64) error {
	if a.limit <= 0 || delta <= 0 {
		return nil
	}
	if a.stats.LiveBytes+delta > a.limit {
		return fmt.Errorf("%w: %d live + %d requested exceeds limit %d",
			ErrExhausted, a.stats.LiveBytes, delta, a.limit)
	}
	return nil
}

func (a *Allocator) charge(n int) {
	a.stats.LiveBytes += int64(n)
	if a.stats.LiveBytes > a.stats.PeakBytes {
		a.stats.PeakBytes = a.stats.LiveBytes
	}
}

func (a *Allocator) uncharge(n int) {
	a.stats.LiveBytes -= int64(n)
}

// fail counts the failure, reports it and returns err.
func (a *Allocator) fail(level diag.Level, err error, msg string, attrs ...any) error {
	a.stats.FailedCalls++
	diag.Resolve(a.sink).Log(level, msg, append(attrs, "error", err)...)
	return err
}

// regionBytes is the header word plus count units of elemSize bytes.
func regionBytes(count, elemSize int) (int, error) {
	total, err := buf.SlotBytes(count, elemSize, format.HeaderSize)
	if err != nil {
		return 0, err
	}
	if total > maxRegionBytes {
		return 0, fmt.Errorf("request of %d bytes exceeds region cap %d", total, maxRegionBytes)
	}
	return total, nil
}
