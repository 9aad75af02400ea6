package bufrw

import (
	"encoding/binary"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the high performance cost of reflection in `binary.Size`
// on every call. Using a global concurrent map makes it safe to share codecs
// across goroutines even though individual readers and writers are not.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed provides a generic `Codec` implementation for any struct `Payload`
// composed of fixed-size fields, eliminating boilerplate for simple data structures.
//
// Constraint: The `Payload` type MUST NOT contain variable-size fields like slices,
// maps, or strings, as this will cause `binary.Size` to fail.
type Fixed[Payload any] struct {
	Payload Payload
}

// Statically assert that Fixed implements Codec.
var _ Codec = (*Fixed[struct{}])(nil)

// Size returns the fixed size of the struct in bytes.
// The result is cached to avoid reflection overhead on subsequent calls.
func (c *Fixed[Payload]) Size() int {
	bodyType := reflect.TypeOf((*Payload)(nil)).Elem()

	// Attempt to load from the concurrent-safe cache first for performance.
	if size, ok := sizeCache.Load(bodyType); ok {
		return size
	}

	// If not cached, perform the expensive reflection-based calculation.
	size := binary.Size(&c.Payload)

	// Store the result for subsequent calls.
	sizeCache.Store(bodyType, size)
	return size
}

// MarshalBinary implements the standard `encoding.BinaryMarshaler` interface.
// Note: This method allocates a new byte slice. For performance-critical paths,
// use `MarshalTo` or `EncodeTo` instead.
func (c *Fixed[Payload]) MarshalBinary() ([]byte, error) {
	buf := make([]byte, c.Size())
	if _, err := binary.Encode(buf, Order, &c.Payload); err != nil {
		// binary.Encode only reports its unexported buffer-too-small error,
		// meaning fewer bytes were written than expected.
		return nil, ErrBufferOverflow
	}
	return buf, nil
}

// UnmarshalBinary implements the standard `encoding.BinaryUnmarshaler` interface.
// Trailing bytes beyond the fixed size must be zero padding; anything else is
// rejected to surface truncated or oversized payloads.
func (c *Fixed[Payload]) UnmarshalBinary(data []byte) error {
	n, err := binary.Decode(data, Order, &c.Payload)
	if err != nil {
		// binary.Decode always reports its unexported buffer-too-small error,
		// meaning the data is truncated.
		return ErrTruncatedData
	}
	if len(data) > n {
		if err := CheckBufferNotZeros(data[n:]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeFrom reads the struct's fixed-size encoding from r.
func (c *Fixed[Payload]) DecodeFrom(r BufReader) (int64, error) {
	buf := make([]byte, c.Size())
	if err := ReadExact(r, buf); err != nil {
		return 0, err
	}
	if _, err := binary.Decode(buf, Order, &c.Payload); err != nil {
		return int64(len(buf)), ErrTruncatedData
	}
	return int64(len(buf)), nil
}

// EncodeTo writes the struct's fixed-size encoding to w.
func (c *Fixed[Payload]) EncodeTo(w BufWriter) (int64, error) {
	buf, err := c.MarshalBinary()
	if err != nil {
		return 0, err
	}
	if err := w.WriteAll(buf); err != nil {
		return 0, err
	}
	return int64(len(buf)), nil
}

// MarshalTo marshals the struct into the provided slice `p`.
// This is the most performant marshalling option as it avoids memory allocation.
func (c *Fixed[Payload]) MarshalTo(p []byte) (int, error) {
	n, err := binary.Encode(p, Order, &c.Payload)
	if err != nil {
		return n, &BufferOverflowError{BytesPastEnd: c.Size() - len(p)}
	}
	return n, nil
}
