package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slrkit/diag"
	"github.com/joshuapare/slrkit/internal/format"
)

type pair struct {
	k string
	v *int
}

func TestSlots_AllocAndSize(t *testing.T) {
	a, _ := newTestAllocator(t, Options{})

	s, err := AllocSlots[pair](a, 4)
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())

	esz := int(unsafe.Sizeof(pair{}))
	assert.Equal(t, 4*esz, s.Size())
	assert.Equal(t, int64(format.HeaderSize+4*esz), a.Stats().LiveBytes)

	// Fresh slots hold the zero value.
	for i := range s.Len() {
		assert.Equal(t, pair{}, *s.At(i))
	}
}

func TestSlots_ResizeKeepsPrefix(t *testing.T) {
	a, _ := newTestAllocator(t, Options{})

	s, err := AllocSlots[int](a, 3)
	require.NoError(t, err)
	copy(s.Slice(), []int{1, 2, 3})

	require.NoError(t, s.Resize(5))
	assert.Equal(t, []int{1, 2, 3, 0, 0}, s.Slice())

	require.NoError(t, s.Resize(2))
	assert.Equal(t, []int{1, 2}, s.Slice())
	assert.Equal(t, 2*int(unsafe.Sizeof(int(0))), s.Size())
	assert.Equal(t, int64(format.HeaderSize+s.Size()), a.Stats().LiveBytes)

	require.NoError(t, s.Resize(2), "same count is a no-op")
}

func TestSlots_ResizeClearsOldRegion(t *testing.T) {
	a, _ := newTestAllocator(t, Options{})

	s, err := AllocSlots[*int](a, 2)
	require.NoError(t, err)
	x, y := 1, 2
	*s.At(0), *s.At(1) = &x, &y

	old := s.Slice()
	require.NoError(t, s.Resize(1))
	assert.Nil(t, old[1], "discarded slot must not keep its reference alive")
	assert.Same(t, &x, *s.At(0))
}

func TestSlots_Failures(t *testing.T) {
	a, rec := newTestAllocator(t, Options{Limit: format.HeaderSize + 8})

	_, err := AllocSlots[int64](a, 0)
	require.ErrorIs(t, err, ErrZeroSize)

	_, err = AllocSlots[int64](a, 2)
	require.ErrorIs(t, err, ErrExhausted)

	s, err := AllocSlots[int64](a, 1)
	require.NoError(t, err)
	*s.At(0) = 9

	require.ErrorIs(t, s.Resize(2), ErrExhausted)
	require.ErrorIs(t, s.Resize(-1), ErrZeroSize)
	assert.Equal(t, []int64{9}, s.Slice(), "failed resize leaves the slots intact")

	assert.Equal(t, 4, rec.Count(diag.LevelError))
}

func TestSlots_Release(t *testing.T) {
	a, rec := newTestAllocator(t, Options{})

	s, err := AllocSlots[string](a, 8)
	require.NoError(t, err)

	require.NoError(t, s.Release())
	assert.True(t, s.Released())
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Size())

	require.ErrorIs(t, s.Release(), ErrNilBlock)
	require.ErrorIs(t, s.Resize(4), ErrNilBlock)
	assert.Equal(t, 1, rec.Count(diag.LevelWarning))
	assert.Equal(t, 1, rec.Count(diag.LevelError))

	st := a.Stats()
	assert.Zero(t, st.LiveBlocks)
	assert.Zero(t, st.LiveBytes)
}

func TestSlots_NilAllocatorUsesDefault(t *testing.T) {
	before := Default().Stats().LiveBlocks

	s, err := AllocSlots[byte](nil, 1)
	require.NoError(t, err)
	assert.Equal(t, before+1, Default().Stats().LiveBlocks)

	require.NoError(t, s.Release())
	assert.Equal(t, before, Default().Stats().LiveBlocks)
}
