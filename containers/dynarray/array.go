package dynarray

import (
	"fmt"
	"iter"

	"github.com/joshuapare/slrkit/diag"
	"github.com/joshuapare/slrkit/memory"
	"github.com/joshuapare/slrkit/memory/alloc"
)

// Options configures an Array. The zero value is valid.
type Options[T any] struct {
	// Allocator supplies the slot region. Default: alloc.Default().
	Allocator *alloc.Allocator

	// Sink receives failure reports. nil uses diag.Active() at report time.
	Sink diag.Sink

	// Destroy runs when an element's lifetime ends. When nil, *T's Destroy
	// method is used if T implements memory.Destroyer.
	Destroy func(*T)
}

// Array is a growable sequence of T. The zero value is an empty array using
// the default allocator.
type Array[T any] struct {
	slots   *alloc.Slots[T] // nil while capacity is 0
	length  int
	a       *alloc.Allocator
	sink    diag.Sink
	destroy func(*T)
}

// New returns an empty array. opts may be nil.
func New[T any](opts *Options[T]) *Array[T] {
	arr := &Array[T]{}
	if opts != nil {
		arr.a = opts.Allocator
		arr.sink = opts.Sink
		arr.destroy = opts.Destroy
	}
	return arr
}

// Len returns the number of live elements.
func (arr *Array[T]) Len() int { return arr.length }

// Cap returns the number of reserved slots.
func (arr *Array[T]) Cap() int { return arr.slots.Len() }

// Add appends v. Capacity is expanded first when no slot is free; if that
// fails nothing is added.
func (arr *Array[T]) Add(v T) error {
	if arr.Cap()-arr.length < 1 {
		if err := arr.expand(); err != nil {
			return arr.fail(err, "Could not expand capacity")
		}
	}
	*arr.slots.At(arr.length) = v
	arr.length++
	return nil
}

// Insert places v so it becomes element index, shifting [index, Len()) one
// slot to the right. index must be in [0, Len()]; index == Len() appends.
func (arr *Array[T]) Insert(v T, index int) error {
	if index < 0 || index > arr.length {
		return arr.fail(fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfRange, index, arr.length),
			"Invalid index provided to insert at", "index", index)
	}
	if index == arr.length {
		return arr.Add(v)
	}

	if arr.Cap()-arr.length < 1 {
		if err := arr.expand(); err != nil {
			return arr.fail(err, "Could not expand capacity")
		}
	}

	s := arr.slots.Slice()
	// copy moves overlapping ranges like memmove, highest index first here.
	copy(s[index+1:arr.length+1], s[index:arr.length])
	s[index] = v
	arr.length++
	return nil
}

// Remove destroys element index and closes the gap by shifting
// [index+1, Len()) one slot to the left. Order is preserved.
func (arr *Array[T]) Remove(index int) error {
	if index < 0 || index >= arr.length {
		return arr.fail(fmt.Errorf("%w: remove at %d, length %d", ErrIndexOutOfRange, index, arr.length),
			"Provided index is out-of-range", "index", index)
	}

	s := arr.slots.Slice()
	memory.Destroy(&s[index], arr.destroy)

	copy(s[index:arr.length-1], s[index+1:arr.length])
	var zero T
	s[arr.length-1] = zero
	arr.length--
	return nil
}

// RemoveAll destroys every live element in index order. Capacity is kept.
func (arr *Array[T]) RemoveAll() error {
	arr.destroyRange(0, arr.length)
	arr.length = 0
	return nil
}

// FitCapacityToElements shrinks the capacity to exactly Len(), releasing the
// region when the array is empty.
func (arr *Array[T]) FitCapacityToElements() error {
	return arr.SetCapacity(arr.length)
}

// SetCapacity sets the capacity to exactly n. Elements at [n, Len()) are
// destroyed before the region is truncated, so shrinking below the length
// never leaks. n == 0 releases the region.
func (arr *Array[T]) SetCapacity(n int) error {
	if n < 0 {
		return arr.fail(fmt.Errorf("%w: %d", ErrInvalidCapacity, n), "Invalid capacity requested", "capacity", n)
	}
	if n == arr.Cap() {
		return nil
	}

	if n == 0 {
		arr.destroyRange(0, arr.length)
		arr.length = 0
		return arr.releaseSlots()
	}

	if arr.slots == nil {
		slots, err := alloc.AllocSlots[T](arr.a, n)
		if err != nil {
			return arr.fail(err, "Could not (re)allocate buffer")
		}
		arr.slots = slots
		return nil
	}

	if n < arr.length {
		arr.destroyRange(n, arr.length)
		arr.length = n
	}
	if err := arr.slots.Resize(n); err != nil {
		return arr.fail(err, "Could not (re)allocate buffer")
	}
	return nil
}

// Contains reports whether any live element equals v under eq.
func (arr *Array[T]) Contains(v T, eq func(a, b T) bool) bool {
	for i := range arr.length {
		if eq(*arr.slots.At(i), v) {
			return true
		}
	}
	return false
}

// ContainsComparable reports whether any live element of arr equals v.
func ContainsComparable[T comparable](arr *Array[T], v T) bool {
	return arr.Contains(v, func(a, b T) bool { return a == b })
}

// At returns element i.
func (arr *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= arr.length {
		var zero T
		return zero, arr.fail(fmt.Errorf("%w: at %d, length %d", ErrIndexOutOfRange, i, arr.length),
			"Provided index is out-of-range", "index", i)
	}
	return *arr.slots.At(i), nil
}

// Ref returns a pointer to element i without checking the index. The pointer
// is invalidated by any operation that changes the capacity.
func (arr *Array[T]) Ref(i int) *T {
	return arr.slots.At(i)
}

// Set replaces element i with v, destroying the previous value.
func (arr *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= arr.length {
		return arr.fail(fmt.Errorf("%w: set at %d, length %d", ErrIndexOutOfRange, i, arr.length),
			"Provided index is out-of-range", "index", i)
	}
	p := arr.slots.At(i)
	memory.Destroy(p, arr.destroy)
	*p = v
	return nil
}

// All iterates over the live elements in index order.
func (arr *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range arr.length {
			if !yield(i, *arr.slots.At(i)) {
				return
			}
		}
	}
}

// Values returns a copy of the live elements.
func (arr *Array[T]) Values() []T {
	out := make([]T, arr.length)
	if arr.length > 0 {
		copy(out, arr.slots.Slice()[:arr.length])
	}
	return out
}

// Destroy ends the array's lifetime: every live element is destroyed in index
// order and the region is released. The array is empty and reusable after.
func (arr *Array[T]) Destroy() {
	arr.destroyRange(0, arr.length)
	arr.length = 0
	if err := arr.releaseSlots(); err != nil {
		diag.Resolve(arr.sink).Log(diag.LevelError, "Could not deallocate buffer", "error", err)
	}
}

// expand grows the capacity by the growth policy.
func (arr *Array[T]) expand() error {
	return arr.SetCapacity(Grow(arr.Cap()))
}

func (arr *Array[T]) destroyRange(from, to int) {
	if from >= to || !memory.HasDestructor(arr.destroy) {
		return
	}
	s := arr.slots.Slice()
	for i := from; i < to; i++ {
		memory.Destroy(&s[i], arr.destroy)
	}
}

func (arr *Array[T]) releaseSlots() error {
	if arr.slots == nil {
		return nil
	}
	err := arr.slots.Release()
	arr.slots = nil
	return err
}

// fail reports err on the array's sink and returns it.
func (arr *Array[T]) fail(err error, msg string, attrs ...any) error {
	diag.Resolve(arr.sink).Log(diag.LevelError, msg, append(attrs, "error", err)...)
	return err
}
