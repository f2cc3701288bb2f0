package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slrkit/containers/dynarray"
	"github.com/joshuapare/slrkit/diag"
	"github.com/joshuapare/slrkit/memory/alloc"
	"github.com/joshuapare/slrkit/memory/shared"
)

// TestHandle_InArray stores shares in an Array and checks that removing an
// element releases its share.
func TestHandle_InArray(t *testing.T) {
	rec := diag.NewRecorder()
	a := alloc.New(&alloc.Options{Sink: rec})

	h, err := shared.New("config", &shared.Options[string]{Allocator: a, Sink: rec})
	require.NoError(t, err)

	arr := dynarray.New[shared.Handle[string]](&dynarray.Options[shared.Handle[string]]{Allocator: a, Sink: rec})
	for range 3 {
		require.NoError(t, arr.Add(h.Clone()))
	}
	n, err := h.ReferenceCount()
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)

	require.NoError(t, arr.Remove(0))
	n, _ = h.ReferenceCount()
	assert.EqualValues(t, 3, n)

	h.Release()
	assert.Equal(t, "config", arr.Ref(0).Value())

	require.NoError(t, arr.RemoveAll())
	arr.Destroy()
	assert.Equal(t, 0, a.Stats().LiveBlocks)
	assert.Zero(t, rec.Len())
}
