package format

// BlockLen returns the number of bytes a raw block needs to hold a payload of
// n usable bytes plus its header word.
func BlockLen(n int) int {
	return HeaderSize + n
}

// PutHeader records the usable byte count of a raw block in its header word.
// b must be the whole region, header included.
func PutHeader(b []byte, n int) error {
	if len(b) < HeaderSize {
		return ErrTruncated
	}
	PutU64(b, 0, uint64(n))
	return nil
}

// ReadHeader returns the usable byte count recorded in the header word of b.
func ReadHeader(b []byte) (int, error) {
	if len(b) < HeaderSize {
		return 0, ErrTruncated
	}
	return int(ReadU64(b, 0)), nil
}

// Payload returns the usable bytes of a raw block: everything after the header
// word up to the recorded size.
func Payload(b []byte) ([]byte, error) {
	n, err := ReadHeader(b)
	if err != nil {
		return nil, err
	}
	if HeaderSize+n > len(b) {
		return nil, ErrTruncated
	}
	return b[HeaderSize : HeaderSize+n], nil
}
