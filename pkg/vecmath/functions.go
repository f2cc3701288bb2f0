package vecmath

import (
	"cmp"
	"fmt"
	"math"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sqrt returns the square root of v, truncated for integer types.
func Sqrt[T Number](v T) (T, error) {
	f := float64(v)
	if f < 0 {
		return 0, fmt.Errorf("%w: sqrt(%v)", ErrNegative, v)
	}
	return T(math.Sqrt(f)), nil
}

// Min returns the smallest of first and rest. With several equal minima the
// first one wins.
func Min[T cmp.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		if v < m {
			m = v
		}
	}
	return m
}

// MinOf returns the smallest value in vs.
func MinOf[T cmp.Ordered](vs []T) (T, error) {
	if len(vs) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return Min(vs[0], vs[1:]...), nil
}
