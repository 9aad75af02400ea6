package bufrw

// BytesWriter is a BufWriter that writes to a pre-allocated byte slice. It
// will not grow the slice's capacity.
//
// A write that does not fit into the remaining space fails with a
// *BufferOverflowError and transfers nothing, so after a failure the bytes
// accepted so far are intact and Bytes still returns a consistent prefix.
type BytesWriter struct {
	B []byte // destination slice
	N int    // current write position
}

var _ BufWriter = (*BytesWriter)(nil)

// NewBytesWriter creates a new BytesWriter.
func NewBytesWriter(p []byte) *BytesWriter {
	return &BytesWriter{B: p[:cap(p)]}
}

// WriteAll implements BufWriter. The write is all-or-nothing.
func (w *BytesWriter) WriteAll(p []byte) error {
	if len(p) > len(w.B)-w.N {
		return &BufferOverflowError{BytesPastEnd: len(p) - (len(w.B) - w.N)}
	}
	w.N += copy(w.B[w.N:], p)
	return nil
}

// Flush does nothing: bytes land in the destination slice immediately.
func (w *BytesWriter) Flush() error { return nil }

// Reset allows the underlying byte slice to be reused.
func (w *BytesWriter) Reset() { w.N = 0 }

// Len returns the number of bytes written.
func (w *BytesWriter) Len() int { return w.N }

// Size returns the capacity of the underlying byte slice.
func (w *BytesWriter) Size() int { return len(w.B) }

// Available returns the number of bytes available for writing.
func (w *BytesWriter) Available() int { return len(w.B) - w.N }

// Bytes returns a slice view of the written data.
func (w *BytesWriter) Bytes() []byte { return w.B[:w.N] }

// AppendWriter is a BufWriter that appends to an in-memory slice, growing it
// as needed. Writing never fails.
type AppendWriter struct {
	B []byte // accumulated bytes
}

var _ BufWriter = (*AppendWriter)(nil)

// NewAppendWriter creates an AppendWriter starting from b. Pass nil to start
// empty; pass a slice with spare capacity to avoid early reallocations.
func NewAppendWriter(b []byte) *AppendWriter {
	return &AppendWriter{B: b}
}

// WriteAll implements BufWriter. It always succeeds.
func (w *AppendWriter) WriteAll(p []byte) error {
	w.B = append(w.B, p...)
	return nil
}

// Flush does nothing: bytes land in the slice immediately.
func (w *AppendWriter) Flush() error { return nil }

// Reset truncates the accumulated bytes, keeping the capacity.
func (w *AppendWriter) Reset() { w.B = w.B[:0] }

// Len returns the number of bytes written.
func (w *AppendWriter) Len() int { return len(w.B) }

// Bytes returns the accumulated bytes.
func (w *AppendWriter) Bytes() []byte { return w.B }
