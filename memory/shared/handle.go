package shared

import (
	"fmt"

	"github.com/joshuapare/slrkit/diag"
	"github.com/joshuapare/slrkit/memory"
	"github.com/joshuapare/slrkit/memory/alloc"
)

// cell is the single allocation behind a shared object. count follows value
// directly so both come from one region.
type cell[T any] struct {
	value T
	count uint64
}

// Options configures handle creation. The zero value is valid.
type Options[T any] struct {
	// Allocator supplies the cell. Default: alloc.Default().
	Allocator *alloc.Allocator

	// Sink receives failure reports. nil uses diag.Active() at report time.
	Sink diag.Sink

	// Destroy runs once when the last handle is released. When nil, *T's
	// Destroy method is used if T implements memory.Destroyer.
	Destroy func(*T)
}

// Handle refers to zero or one shared object. The zero value is empty.
type Handle[T any] struct {
	slots   *alloc.Slots[cell[T]] // nil when empty
	destroy func(*T)
	sink    diag.Sink
}

// New creates an object holding v with a count of 1. opts may be nil.
func New[T any](v T, opts *Options[T]) (Handle[T], error) {
	return Make(func(p *T) error {
		*p = v
		return nil
	}, opts)
}

// Make allocates the cell and lets construct initialize the payload in place.
// If allocation or construct fails nothing is left allocated and the returned
// handle is empty.
func Make[T any](construct func(*T) error, opts *Options[T]) (Handle[T], error) {
	var a *alloc.Allocator
	h := Handle[T]{}
	if opts != nil {
		a = opts.Allocator
		h.destroy = opts.Destroy
		h.sink = opts.Sink
	}

	slots, err := alloc.AllocSlots[cell[T]](a, 1)
	if err != nil {
		diag.Resolve(h.sink).Log(diag.LevelError, "Could not allocate shared object", "error", err)
		return Handle[T]{}, err
	}

	c := slots.At(0)
	if construct != nil {
		if err := construct(&c.value); err != nil {
			_ = slots.Release()
			err = fmt.Errorf("shared: construct: %w", err)
			diag.Resolve(h.sink).Log(diag.LevelError, "Could not construct shared object", "error", err)
			return Handle[T]{}, err
		}
	}
	c.count = 1

	h.slots = slots
	return h, nil
}

// IsHoldingReference reports whether the handle refers to an object.
func (h *Handle[T]) IsHoldingReference() bool {
	return h.slots != nil
}

// ReferenceCount returns the number of handles sharing the object.
func (h *Handle[T]) ReferenceCount() (uint64, error) {
	if h.slots == nil {
		diag.Resolve(h.sink).Log(diag.LevelError, "Cannot read the reference count of an empty handle",
			"error", ErrEmptyHandle)
		return 0, ErrEmptyHandle
	}
	return h.cell().count, nil
}

// Get returns a pointer to the payload. Calling it on an empty handle is a
// caller bug and panics.
func (h *Handle[T]) Get() *T {
	return &h.cell().value
}

// Value returns a copy of the payload. Same precondition as Get.
func (h *Handle[T]) Value() T {
	return h.cell().value
}

// Clone returns a new handle sharing the object and increments the count.
// Cloning an empty handle returns an empty handle.
func (h *Handle[T]) Clone() Handle[T] {
	if h.slots == nil {
		return Handle[T]{destroy: h.destroy, sink: h.sink}
	}
	h.cell().count++
	return *h
}

// Move transfers the reference to the returned handle and leaves h empty.
// The count is not touched.
func (h *Handle[T]) Move() Handle[T] {
	out := *h
	h.slots = nil
	return out
}

// Release drops this handle's share and leaves it empty. When the count
// reaches 0 the payload's destruction logic runs and the cell is released.
// Releasing an empty handle does nothing.
func (h *Handle[T]) Release() {
	if h.slots == nil {
		return
	}
	slots := h.slots
	h.slots = nil

	c := slots.At(0)
	c.count--
	if c.count > 0 {
		return
	}

	memory.Destroy(&c.value, h.destroy)
	if err := slots.Release(); err != nil {
		diag.Resolve(h.sink).Log(diag.LevelError, "Could not free shared object", "error", err)
	}
}

// Destroy is Release; it lets handles live in containers that run
// memory.Destroyer logic.
func (h *Handle[T]) Destroy() { h.Release() }

// Assign makes h share src's object, releasing whatever h held before.
func (h *Handle[T]) Assign(src Handle[T]) {
	if h.slots != nil && h.slots == src.slots {
		return
	}
	next := src.Clone()
	h.Release()
	*h = next
}

// AssignMove transfers src's reference into h, releasing whatever h held
// before. src is left empty.
func (h *Handle[T]) AssignMove(src *Handle[T]) {
	if h == src {
		return
	}
	next := src.Move()
	h.Release()
	*h = next
}

// Same reports whether h and other refer to the same object. Two empty
// handles are not the same object.
func (h *Handle[T]) Same(other Handle[T]) bool {
	return h.slots != nil && h.slots == other.slots
}

func (h *Handle[T]) cell() *cell[T] {
	return h.slots.At(0)
}

var _ memory.Destroyer = (*Handle[int])(nil)
