package format

// Align8 returns n aligned up to the next 8-byte boundary.
// Used for raw block sizes so consecutive regions stay word aligned.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
//	Align8(16) = 16
func Align8(n int) int {
	return (n + WordAlignmentMask) & ^WordAlignmentMask
}

// AlignPage returns n aligned up to the next 4KB (4096-byte) boundary.
// Page-backed sources can only map whole pages.
//
// Example:
//
//	AlignPage(1)    = 4096
//	AlignPage(4096) = 4096
//	AlignPage(4097) = 8192
func AlignPage(n int) int {
	return (n + PageSizeMask) & ^PageSizeMask
}
