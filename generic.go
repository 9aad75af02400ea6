package bufrw

import "fmt"

// MarshalBinaryGeneric provides a generic `encoding.BinaryMarshaler`
// implementation for types that can report their size and encode to a sink.
func MarshalBinaryGeneric[T interface {
	Size() int
	EncodeTo(w BufWriter) (int64, error)
}](v T) ([]byte, error) {
	expectedSize := v.Size()
	w := NewBytesWriter(make([]byte, expectedSize))
	n, err := v.EncodeTo(w)
	if err != nil {
		return nil, err
	}
	if n < int64(expectedSize) {
		return nil, fmt.Errorf("%w: expected at least %d bytes, but wrote %d", ErrTruncatedData, expectedSize, n)
	}
	return w.Bytes(), nil
}

// UnmarshalBinaryGeneric provides a generic `UnmarshalBinary` for types
// implementing DecodeFrom. It adapts the stream-based decode to the
// slice-based `UnmarshalBinary` interface and adds a crucial check for
// unexpected trailing data.
func UnmarshalBinaryGeneric[T interface {
	DecodeFrom(r BufReader) (int64, error)
	Size() int
}](v T, data []byte) error {
	r := NewBytesReader(data)
	n, err := v.DecodeFrom(r)
	if err != nil {
		return err
	}
	expectedSize := v.Size()

	if n < int64(expectedSize) {
		// Robustness check: Ensure the buffer wasn't truncated.
		return fmt.Errorf("%w: expected at least %d bytes, but read %d", ErrTruncatedData, expectedSize, n)
	}

	// Ensure no unexpected trailing data remains.
	// This prevents parsing ambiguous or potentially malicious payloads.
	if len(data) > int(n) {
		if err := CheckBufferNotZeros(data[n:]); err != nil {
			return err
		}
	}
	return nil
}

// MarshalToGeneric provides a fallback implementation for the MarshalTo method.
func MarshalToGeneric[T interface {
	Size() int
	EncodeTo(w BufWriter) (int64, error)
}](v T, p []byte) (int, error) {
	size := v.Size()
	if len(p) < size {
		return 0, &BufferOverflowError{BytesPastEnd: size - len(p)}
	}
	w := NewBytesWriter(p)
	n, err := v.EncodeTo(w)
	if err != nil {
		return int(n), err
	}
	if n < int64(size) {
		return int(n), fmt.Errorf("%w: expected at least %d bytes, but wrote %d", ErrTruncatedData, size, n)
	}
	return int(n), nil
}
