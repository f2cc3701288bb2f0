package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrt(t *testing.T) {
	f, err := Sqrt(2.25)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f, 1e-12)

	i, err := Sqrt(17)
	require.NoError(t, err)
	assert.Equal(t, 4, i)

	_, err = Sqrt(-1.0)
	require.ErrorIs(t, err, ErrNegative)
}

func TestMin(t *testing.T) {
	assert.Equal(t, 3, Min(3))
	assert.Equal(t, -2, Min(4, -2, 9, -2))
	assert.Equal(t, "a", Min("c", "a", "b"))

	_, err := MinOf([]float64{})
	require.ErrorIs(t, err, ErrEmpty)

	m, err := MinOf([]float64{2.5, 0.5, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.5, m)
}

func TestVector2_Arithmetic(t *testing.T) {
	a := Vec2(6, 8)
	b := Vec2(2, 4)

	tests := []struct {
		name string
		got  Vector2[int]
		want Vector2[int]
	}{
		{"add", a.Add(b), Vec2(8, 12)},
		{"sub", a.Sub(b), Vec2(4, 4)},
		{"mul", a.Mul(b), Vec2(12, 32)},
		{"div", a.Div(b), Vec2(3, 2)},
		{"add scalar", a.AddScalar(1), Vec2(7, 9)},
		{"sub scalar", a.SubScalar(1), Vec2(5, 7)},
		{"scale", a.Scale(2), Vec2(12, 16)},
		{"div scalar", a.DivScalar(2), Vec2(3, 4)},
		{"neg", a.Neg(), Vec2(-6, -8)},
		{"splat", Splat(5), Vec2(5, 5)},
		{"zero", Zero[int](), Vector2[int]{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	assert.Equal(t, 44, a.Dot(b))
	assert.Equal(t, 8, a.Cross(b))
	assert.Equal(t, 100, a.MagnitudeSquared())
	assert.Equal(t, "(6, 8)", a.String())
}

func TestVector2_Magnitude(t *testing.T) {
	m, err := Vec2(3.0, 4.0).Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 5.0, m)

	mi, err := Vec2[int32](3, 4).Magnitude()
	require.NoError(t, err)
	assert.Equal(t, int32(5), mi)
}

func TestVector2_Normalized(t *testing.T) {
	n, err := Vec2(3.0, 4.0).Normalized()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)

	_, err = Zero[float64]().Normalized()
	require.ErrorIs(t, err, ErrZeroMagnitude)
}

func TestUnitVector(t *testing.T) {
	u, err := UnitVector[float64]()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, u.X, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, u.Y, 1e-12)

	m, err := u.Magnitude()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m, 1e-12)
}

func TestConvert(t *testing.T) {
	v := Convert[int32](Vec2(1.9, -2.7))
	assert.Equal(t, Vector2i32{X: 1, Y: -2}, v)

	u := Convert[float64](Vector2u32{X: 3, Y: 4})
	assert.Equal(t, Vec2(3.0, 4.0), u)
}
