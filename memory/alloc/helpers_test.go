package alloc

import (
	"errors"
	"testing"

	"github.com/joshuapare/slrkit/diag"
)

// errSourceDown is returned by flakySource once it is switched off.
var errSourceDown = errors.New("source down")

// flakySource wraps the heap and can be told to refuse requests.
type flakySource struct {
	down     bool
	acquired int
	returned int
}

func (f *flakySource) Acquire(n int) ([]byte, error) {
	if f.down {
		return nil, errSourceDown
	}
	f.acquired++
	return make([]byte, n), nil
}

func (f *flakySource) Return([]byte) error {
	f.returned++
	return nil
}

func (f *flakySource) Name() string { return "flaky" }

// newTestAllocator returns an allocator reporting into a fresh recorder.
func newTestAllocator(t testing.TB, opts Options) (*Allocator, *diag.Recorder) {
	t.Helper()
	rec := diag.NewRecorder()
	opts.Sink = rec
	return New(&opts), rec
}

// fill writes a recognizable pattern into b.
func fill(b []byte) {
	for i := range b {
		b[i] = byte(i + 1)
	}
}
