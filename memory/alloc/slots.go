package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/slrkit/diag"
	"github.com/joshuapare/slrkit/internal/format"
)

// Slots is a typed allocation of n element slots. The slot storage is a Go
// slice so values holding pointers stay visible to the garbage collector; the
// byte size lives in the handle's header word and is charged to the
// allocator like any Block.
//
// Fresh slots hold the zero value of T. The region does not construct or
// destroy elements: callers decide which slots are live.
type Slots[T any] struct {
	a    *Allocator
	hdr  [format.HeaderSize]byte // usable byte count, little-endian
	data []T                     // nil once released
}

// AllocSlots allocates n slots of T from a.
func AllocSlots[T any](a *Allocator, n int) (*Slots[T], error) {
	if a == nil {
		a = Default()
	}
	a.stats.AllocCalls++

	if n <= 0 {
		return nil, a.fail(diag.LevelError, ErrZeroSize, "Attempted to allocate 0 slots", "slots", n)
	}

	total, err := regionBytes(n, elemSize[T]())
	if err != nil {
		return nil, a.fail(diag.LevelError, fmt.Errorf("%w: %w", ErrExhausted, err),
			"Failed to allocate memory", "slots", n)
	}
	if err := a.reserve(int64(total)); err != nil {
		return nil, a.fail(diag.LevelError, err, "Failed to allocate memory", "slots", n)
	}

	s := &Slots[T]{a: a, data: make([]T, n)}
	_ = format.PutHeader(s.hdr[:], total-format.HeaderSize)

	a.charge(total)
	a.stats.LiveBlocks++
	return s, nil
}

// elemSize is the in-memory size of one T.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Size returns the usable byte count recorded in the header word, or 0 for a
// nil or released region.
func (s *Slots[T]) Size() int {
	if s == nil || s.data == nil {
		return 0
	}
	n, _ := format.ReadHeader(s.hdr[:])
	return n
}

// Len returns the number of slots, or 0 for a nil or released region.
func (s *Slots[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Released reports whether the region no longer holds slots.
func (s *Slots[T]) Released() bool {
	return s == nil || s.data == nil
}

// At returns a pointer to slot i. i must be in [0, Len()); the pointer is
// invalidated by Resize and Release.
func (s *Slots[T]) At(i int) *T {
	return &s.data[i]
}

// Slice returns the slots as a slice, invalidated by Resize and Release.
func (s *Slots[T]) Slice() []T {
	if s == nil {
		return nil
	}
	return s.data
}

// Resize changes the region to n slots. Slots [0, min(old, n)) keep their
// values; new slots hold the zero value; slots beyond n are discarded without
// any destruction logic. On failure the region is unchanged.
func (s *Slots[T]) Resize(n int) error {
	if s == nil || s.data == nil {
		return nilSlots(s, diag.LevelError, "Cannot reallocate a nil slot region")
	}
	a := s.a
	a.stats.ResizeCalls++

	if n <= 0 {
		return a.fail(diag.LevelError, ErrZeroSize, "Attempted to set slot count to 0", "slots", n)
	}
	if n == len(s.data) {
		return nil
	}

	total, err := regionBytes(n, elemSize[T]())
	if err != nil {
		return a.fail(diag.LevelError, fmt.Errorf("%w: %w", ErrExhausted, err),
			"Could not reallocate memory", "slots", n)
	}
	curTotal := format.BlockLen(s.Size())
	delta := total - curTotal
	if err := a.reserve(int64(delta)); err != nil {
		return a.fail(diag.LevelError, err, "Could not reallocate memory", "slots", n)
	}

	data := make([]T, n)
	copy(data, s.data)
	// Drop references held by the old region, including discarded slots.
	clear(s.data)
	s.data = data

	_ = format.PutHeader(s.hdr[:], total-format.HeaderSize)
	if delta > 0 {
		a.charge(delta)
	} else {
		a.uncharge(-delta)
	}
	return nil
}

// Release frees the region. Values left in the slots are dropped without any
// destruction logic. Releasing again reports a warning and returns
// ErrNilBlock.
func (s *Slots[T]) Release() error {
	if s == nil || s.data == nil {
		return nilSlots(s, diag.LevelWarning, "Attempted to free a nil slot region")
	}
	a := s.a
	a.stats.ReleaseCalls++

	total := format.BlockLen(s.Size())
	clear(s.data)
	s.data = nil

	a.uncharge(total)
	a.stats.LiveBlocks--
	return nil
}

func nilSlots[T any](s *Slots[T], level diag.Level, msg string) error {
	if s == nil || s.a == nil {
		diag.Active().Log(level, msg, "error", ErrNilBlock)
		return ErrNilBlock
	}
	return s.a.fail(level, ErrNilBlock, msg)
}
