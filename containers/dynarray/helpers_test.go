package dynarray

import (
	"testing"

	"github.com/joshuapare/slrkit/diag"
	"github.com/joshuapare/slrkit/memory/alloc"
)

// tracked records its id in log when destroyed.
type tracked struct {
	id  int
	log *[]int
}

func (t *tracked) Destroy() { *t.log = append(*t.log, t.id) }

// newTestArray returns an array on a private allocator reporting into a recorder.
func newTestArray[T any](t testing.TB, limit int64) (*Array[T], *alloc.Allocator, *diag.Recorder) {
	t.Helper()
	rec := diag.NewRecorder()
	a := alloc.New(&alloc.Options{Limit: limit, Sink: rec})
	arr := New(&Options[T]{Allocator: a, Sink: rec})
	t.Cleanup(arr.Destroy)
	return arr, a, rec
}

// fromValues builds an int array holding vs.
func fromValues(t testing.TB, vs ...int) *Array[int] {
	t.Helper()
	arr, _, _ := newTestArray[int](t, 0)
	for _, v := range vs {
		if err := arr.Add(v); err != nil {
			t.Fatalf("Add(%d): %v", v, err)
		}
	}
	return arr
}
