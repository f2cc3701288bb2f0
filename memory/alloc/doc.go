// Package alloc provides raw sized allocations for the memory substrate.
//
// # Overview
//
// Every allocation handed out by this package describes its own size through
// a header word, in the spirit of a C allocator that stores the block length
// just before the address it returns. Two record kinds exist:
//
//   - Block: a byte region taken from a Source. The region is laid out as
//     [ header word | payload ] and Bytes returns the payload only.
//   - Slots[T]: a typed region of n element slots. The slots live in a Go
//     slice so the garbage collector can see pointers stored in them; the
//     byte size is recorded in the handle's own header word.
//
// Both are handles: Resize and Release are methods on the record, so there is
// no way to hand the allocator an address it did not produce.
//
// # Allocator
//
//	a := alloc.New(&alloc.Options{
//	    Source: alloc.NewMmapSource(),
//	    Limit:  64 << 20, // 64MB of live allocations
//	})
//
//	b, err := a.Alloc(256)
//	if err != nil {
//	    return err // errors.Is(err, alloc.ErrExhausted) when over the limit
//	}
//	copy(b.Bytes(), payload)
//
//	// Grow in place when the region allows it, otherwise move.
//	if err := b.Resize(512); err != nil {
//	    return err // b is still valid with its old size
//	}
//
//	_ = b.Release()
//
// # Failure Reporting
//
// Operations never panic on bad arguments. They return an error wrapping one
// of ErrZeroSize, ErrNilBlock or ErrExhausted and report the failure to the
// allocator's diag.Sink:
//
//   - zero-size requests and exhaustion: LevelError
//   - releasing a nil or already released record: LevelWarning
//
// # Sources
//
//   - HeapSource: Go heap (make)
//   - MmapSource: anonymous private mappings (golang.org/x/sys/unix), page
//     rounded; falls back to the heap on non-unix platforms
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
