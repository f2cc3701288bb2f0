// Package vecmath provides small numeric helpers and a generic 2D vector.
//
// Operations that can fail (square root of a negative value, normalizing a
// zero-length vector) return an error instead of a sentinel value:
//
//	v := vecmath.Vec2(3.0, 4.0)
//	n, err := v.Normalized()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(n) // (0.6, 0.8)
//
// Integer vectors are supported; Magnitude and Normalized truncate toward
// zero like any integer conversion.
package vecmath
