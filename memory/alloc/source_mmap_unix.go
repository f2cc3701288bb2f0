//go:build unix

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/slrkit/internal/format"
)

// MmapSource maps anonymous private pages for every region. Regions are page
// rounded; the caller sees exactly the bytes it asked for.
type MmapSource struct{}

// NewMmapSource returns the mmap-backed source.
func NewMmapSource() MmapSource { return MmapSource{} }

// Acquire maps enough pages for n bytes.
func (MmapSource) Acquire(n int) ([]byte, error) {
	size := format.AlignPage(n)
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	return data[:n], nil
}

// Return unmaps the region. Munmap needs the full mapping, so the slice is
// extended back to its capacity first.
func (MmapSource) Return(b []byte) error {
	if cap(b) == 0 {
		return nil
	}
	return unix.Munmap(b[:cap(b)])
}

// Name returns "mmap".
func (MmapSource) Name() string { return "mmap" }

var _ Source = MmapSource{}
