// Package dynarray provides Array, a growable, contiguous, index-addressable
// sequence built on memory/alloc.
//
// # Storage
//
// An Array owns at most one alloc.Slots region. Slots [0, Len()) hold live
// elements in order; slots [Len(), Cap()) are reserved and hold the zero value.
// No region exists while the capacity is zero.
//
// # Growth Policy
//
// When an insertion needs room the capacity becomes
//
//	next = floor(cap * 1.4) + 1
//
// which grows strictly even from zero: 0, 1, 2, 3, 5, 8, 12, 17, 24, ...
//
// # Element Lifetime
//
// The array runs destruction logic whenever an element's lifetime ends:
// Remove, RemoveAll, Set (for the replaced value), SetCapacity below Len()
// and Destroy. Options.Destroy wins when set; otherwise *T's Destroy method
// is used when T implements memory.Destroyer. Arrays of shared.Handle values
// therefore release their shares automatically.
//
// # Example
//
//	arr := dynarray.New[int](nil)
//	defer arr.Destroy()
//
//	_ = arr.Add(5)
//	_ = arr.Add(7)
//	_ = arr.Insert(6, 1) // [5 6 7]
//	_ = arr.Remove(0)    // [6 7]
//
// # Thread Safety
//
// Arrays are not thread-safe.
package dynarray
