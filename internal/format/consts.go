// Package format holds the low-level layout of allocation records: the header
// word that precedes every raw block and the alignment rules applied to the
// regions handed out by a memory source.
package format

const (
	// HeaderSize is the size in bytes of the header word stored in front of
	// every raw block. Layout (little-endian):
	//   0x00  uint64  usable byte count
	//   0x08  payload...
	HeaderSize = 8

	// WordAlignment is the alignment applied to block sizes requested from a
	// memory source so the header word and payload start on word boundaries.
	WordAlignment     = 8
	WordAlignmentMask = WordAlignment - 1

	// PageSize is the granularity used by page-backed sources (mmap).
	PageSize     = 4096
	PageSizeMask = PageSize - 1
)
