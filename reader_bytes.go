package bufrw

// BytesReader is a BufReader that reads from a pre-allocated byte slice.
//
// The whole slice is the buffer, so FillBuf never performs IO and never
// returns an error: the only failure a consumer can ever observe through it
// is an *UnexpectedEndError from ReadExact and friends. Exhaustion is
// permanent; there is no refill.
type BytesReader struct {
	B []byte // source slice
	N int    // current read position
}

var _ BufReader = (*BytesReader)(nil)

// NewBytesReader creates a new BytesReader.
func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{B: b}
}

// FillBuf implements BufReader. It returns everything not yet consumed and a
// nil error, unconditionally.
func (r *BytesReader) FillBuf() ([]byte, error) {
	if r.N >= len(r.B) {
		return nil, nil
	}
	return r.B[r.N:], nil
}

// Consume implements BufReader. It panics if n exceeds the unconsumed
// remainder of the slice.
func (r *BytesReader) Consume(n int) {
	if n > len(r.B)-r.N {
		panic("bufrw: Consume beyond buffered view")
	}
	r.N += n
}

// Reset allows the underlying byte slice to be reused.
func (r *BytesReader) Reset() {
	r.N = 0
}

// Len returns the number of bytes consumed.
func (r *BytesReader) Len() int {
	return r.N
}

// Size returns the size of the underlying byte slice.
func (r *BytesReader) Size() int {
	return len(r.B)
}

// Available returns the number of bytes available for reading.
func (r *BytesReader) Available() int {
	length := len(r.B) - r.N
	if length <= 0 {
		return 0
	}
	return length
}
