package shared

import (
	"testing"

	"github.com/joshuapare/slrkit/diag"
	"github.com/joshuapare/slrkit/memory/alloc"
)

// droppable counts how many times its destruction logic ran.
type droppable struct {
	id    int
	drops *int
}

func (p *droppable) Destroy() { *p.drops++ }

func newTestOptions[T any](t testing.TB, limit int64) (*Options[T], *alloc.Allocator, *diag.Recorder) {
	t.Helper()
	rec := diag.NewRecorder()
	a := alloc.New(&alloc.Options{Limit: limit, Sink: rec})
	return &Options[T]{Allocator: a, Sink: rec}, a, rec
}

func mustCount[T any](t testing.TB, h *Handle[T]) uint64 {
	t.Helper()
	n, err := h.ReferenceCount()
	if err != nil {
		t.Fatalf("ReferenceCount: %v", err)
	}
	return n
}
