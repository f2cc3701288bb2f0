//go:build !unix

package alloc

// MmapSource falls back to the Go heap on platforms without unix mmap.
type MmapSource struct {
	HeapSource
}

// NewMmapSource returns the heap fallback.
func NewMmapSource() MmapSource { return MmapSource{} }

// Name reports the fallback so statistics do not claim mapped memory.
func (MmapSource) Name() string { return "mmap(heap)" }

var _ Source = MmapSource{}
