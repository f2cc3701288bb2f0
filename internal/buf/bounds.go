// Package buf holds overflow-safe size arithmetic shared by the allocation
// layer.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// the result would overflow int or either operand is negative.
// This is the count * elementSize calculation behind every typed allocation.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// SlotBytes returns the number of bytes needed for count slots of elemSize
// bytes each, plus header bytes of bookkeeping. It reports the specific
// failure (negative input or overflow) as an error.
//
//	n, err := buf.SlotBytes(capacity, int(unsafe.Sizeof(v)), format.HeaderSize)
//	if err != nil {
//	    return fmt.Errorf("slots: %w", err)
//	}
func SlotBytes(count, elemSize, header int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elemSize)
	}
	if header < 0 {
		return 0, fmt.Errorf("negative header size: %d", header)
	}

	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}

	total, ok = AddOverflowSafe(total, header)
	if !ok {
		return 0, fmt.Errorf("overflow: size=%d + header=%d", total, header)
	}
	return total, nil
}
