package dynarray

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArray_RandomOpsMatchSlice drives seeded random operations against an
// Array and a plain slice and checks they agree after every step. Every
// element ever stored must be destroyed exactly once by the end.
func TestArray_RandomOpsMatchSlice(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		rng := rand.New(rand.NewPCG(seed, 42))
		arr, a, rec := newTestArray[tracked](t, 0)

		var log []int
		ref := []int{}
		next := 0
		newElem := func() tracked {
			next++
			return tracked{id: next, log: &log}
		}

		for step := 0; step < 3000; step++ {
			switch op := rng.IntN(20); {
			case op < 8:
				v := newElem()
				require.NoError(t, arr.Add(v))
				ref = append(ref, v.id)
			case op < 12:
				idx := rng.IntN(len(ref) + 1)
				v := newElem()
				require.NoError(t, arr.Insert(v, idx))
				ref = slices.Insert(ref, idx, v.id)
			case op < 16:
				if len(ref) == 0 {
					continue
				}
				idx := rng.IntN(len(ref))
				require.NoError(t, arr.Remove(idx))
				ref = slices.Delete(ref, idx, idx+1)
			case op < 18:
				if len(ref) == 0 {
					continue
				}
				idx := rng.IntN(len(ref))
				v := newElem()
				require.NoError(t, arr.Set(idx, v))
				ref[idx] = v.id
			case op == 18:
				n := rng.IntN(len(ref) + 4)
				require.NoError(t, arr.SetCapacity(n))
				require.Equal(t, n, arr.Cap())
				if n < len(ref) {
					ref = ref[:n]
				}
			default:
				if rng.IntN(8) == 0 {
					require.NoError(t, arr.RemoveAll())
					ref = ref[:0]
				} else {
					require.NoError(t, arr.FitCapacityToElements())
					require.Equal(t, len(ref), arr.Cap())
				}
			}

			require.Equal(t, len(ref), arr.Len(), "seed %d step %d", seed, step)
			require.GreaterOrEqual(t, arr.Cap(), arr.Len())
			ids := make([]int, 0, arr.Len())
			for _, v := range arr.All() {
				ids = append(ids, v.id)
			}
			require.Equal(t, ref, ids, "seed %d step %d", seed, step)
		}

		arr.Destroy()
		require.Len(t, log, next, "seed %d", seed)
		seen := make(map[int]bool, next)
		for _, id := range log {
			require.False(t, seen[id], "seed %d: element %d destroyed twice", seed, id)
			seen[id] = true
		}
		assert.Equal(t, 0, a.Stats().LiveBlocks)
		assert.Zero(t, a.Stats().LiveBytes)
		assert.Zero(t, rec.Len())
	}
}
