package vecmath

import "fmt"

// Vector2 is a 2D vector with numeric components. The zero value is the zero
// vector.
type Vector2[T Number] struct {
	X, Y T
}

// Common instantiations.
type (
	Vector2u32 = Vector2[uint32]
	Vector2i32 = Vector2[int32]
	Vector2f64 = Vector2[float64]
)

// Vec2 returns the vector (x, y).
func Vec2[T Number](x, y T) Vector2[T] { return Vector2[T]{X: x, Y: y} }

// Splat returns the vector (v, v).
func Splat[T Number](v T) Vector2[T] { return Vector2[T]{X: v, Y: v} }

// Zero returns (0, 0).
func Zero[T Number]() Vector2[T] { return Vector2[T]{} }

// UnitVector returns (1, 1) normalized.
func UnitVector[T Number]() (Vector2[T], error) {
	return Splat(T(1)).Normalized()
}

// Convert returns v with each component converted to U.
func Convert[U, T Number](v Vector2[T]) Vector2[U] {
	return Vector2[U]{X: U(v.X), Y: U(v.Y)}
}

func (v Vector2[T]) String() string { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }

// Neg returns (-x, -y).
func (v Vector2[T]) Neg() Vector2[T] { return Vector2[T]{X: -v.X, Y: -v.Y} }

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] { return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] { return Vector2[T]{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul multiplies component-wise.
func (v Vector2[T]) Mul(o Vector2[T]) Vector2[T] { return Vector2[T]{X: v.X * o.X, Y: v.Y * o.Y} }

// Div divides component-wise. Integer division by a zero component panics.
func (v Vector2[T]) Div(o Vector2[T]) Vector2[T] { return Vector2[T]{X: v.X / o.X, Y: v.Y / o.Y} }

func (v Vector2[T]) AddScalar(s T) Vector2[T] { return Vector2[T]{X: v.X + s, Y: v.Y + s} }
func (v Vector2[T]) SubScalar(s T) Vector2[T] { return Vector2[T]{X: v.X - s, Y: v.Y - s} }
func (v Vector2[T]) Scale(s T) Vector2[T]     { return Vector2[T]{X: v.X * s, Y: v.Y * s} }
func (v Vector2[T]) DivScalar(s T) Vector2[T] { return Vector2[T]{X: v.X / s, Y: v.Y / s} }

// Dot returns x1*x2 + y1*y2.
func (v Vector2[T]) Dot(o Vector2[T]) T { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product, x1*y2 - y1*x2.
func (v Vector2[T]) Cross(o Vector2[T]) T { return v.X*o.Y - v.Y*o.X }

// MagnitudeSquared returns x*x + y*y without the square root.
func (v Vector2[T]) MagnitudeSquared() T { return v.X*v.X + v.Y*v.Y }

// Magnitude returns the Euclidean length of v.
func (v Vector2[T]) Magnitude() (T, error) {
	m, err := Sqrt(v.MagnitudeSquared())
	if err != nil {
		return 0, fmt.Errorf("vecmath: magnitude of %v: %w", v, err)
	}
	return m, nil
}

// Normalized returns v scaled to length 1.
func (v Vector2[T]) Normalized() (Vector2[T], error) {
	m, err := v.Magnitude()
	if err != nil {
		return Vector2[T]{}, err
	}
	if m == 0 {
		return Vector2[T]{}, fmt.Errorf("%w: cannot normalize %v", ErrZeroMagnitude, v)
	}
	inv := T(1) / m
	return Vector2[T]{X: v.X * inv, Y: v.Y * inv}, nil
}
