package alloc

import (
	"fmt"

	"github.com/joshuapare/slrkit/diag"
	"github.com/joshuapare/slrkit/internal/format"
)

// Block is a raw allocation: [ header word | payload ].
type Block struct {
	a   *Allocator
	raw []byte // nil once released
}

// Size returns the usable byte count recorded in the header word, or 0 for a
// nil or released block.
func (b *Block) Size() int {
	if b == nil || b.raw == nil {
		return 0
	}
	n, err := format.ReadHeader(b.raw)
	if err != nil {
		return 0
	}
	return n
}

// Bytes returns the usable payload. It is nil for a nil or released block.
// The slice is invalidated by Resize and Release.
func (b *Block) Bytes() []byte {
	if b == nil || b.raw == nil {
		return nil
	}
	p, err := format.Payload(b.raw)
	if err != nil {
		return nil
	}
	return p
}

// Released reports whether the block no longer refers to a region.
func (b *Block) Released() bool {
	return b == nil || b.raw == nil
}

// Resize grows or shrinks the block to n usable bytes. Shrinking discards the
// trailing bytes without looking at them; growing keeps the existing payload
// and leaves the new tail unspecified. On failure the block keeps its old
// region and size.
func (b *Block) Resize(n int) error {
	if b == nil || b.raw == nil {
		return nilBlock(b, diag.LevelError, "Cannot reallocate a nil block")
	}
	a := b.a
	a.stats.ResizeCalls++

	if n <= 0 {
		return a.fail(diag.LevelError, ErrZeroSize, "Attempted to set allocation size to 0", "bytes", n)
	}

	cur := b.Size()
	if n == cur {
		return nil
	}

	total, err := regionBytes(n, 1)
	if err != nil {
		return a.fail(diag.LevelError, fmt.Errorf("%w: %w", ErrExhausted, err),
			"Could not reallocate memory", "bytes", n)
	}
	curTotal := format.BlockLen(cur)
	delta := total - curTotal

	if err := a.reserve(int64(delta)); err != nil {
		return a.fail(diag.LevelError, err, "Could not reallocate memory", "bytes", n)
	}

	if total <= cap(b.raw) {
		// Fits the current region: adjust in place.
		b.raw = b.raw[:total]
	} else {
		raw, err := a.src.Acquire(total)
		if err != nil {
			err = fmt.Errorf("%w: %s source: %w", ErrExhausted, a.src.Name(), err)
			return a.fail(diag.LevelError, err, "Could not reallocate memory", "bytes", n)
		}
		copy(raw[format.HeaderSize:], b.raw[format.HeaderSize:curTotal])
		if err := a.src.Return(b.raw); err != nil {
			diag.Resolve(a.sink).Log(diag.LevelWarning, "Could not return old region to source",
				"source", a.src.Name(), "error", err)
		}
		b.raw = raw
	}

	_ = format.PutHeader(b.raw, n)
	if delta > 0 {
		a.charge(delta)
	} else {
		a.uncharge(-delta)
	}
	return nil
}

// Release returns the region to the source. The block is unusable afterwards;
// releasing it again reports a warning and returns ErrNilBlock.
func (b *Block) Release() error {
	if b == nil || b.raw == nil {
		return nilBlock(b, diag.LevelWarning, "Attempted to free a nil block")
	}
	a := b.a
	a.stats.ReleaseCalls++

	total := len(b.raw)
	raw := b.raw
	b.raw = nil

	a.uncharge(total)
	a.stats.LiveBlocks--

	if err := a.src.Return(raw); err != nil {
		return a.fail(diag.LevelError, fmt.Errorf("alloc: return region: %w", err),
			"Could not return region to source", "source", a.src.Name())
	}
	return nil
}

// nilBlock reports an operation on a nil or released block. A nil *Block has
// no allocator, so the report goes to the active sink.
func nilBlock(b *Block, level diag.Level, msg string) error {
	if b == nil || b.a == nil {
		diag.Active().Log(level, msg, "error", ErrNilBlock)
		return ErrNilBlock
	}
	return b.a.fail(level, ErrNilBlock, msg)
}
