package bufrw

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is default binary order
	Order = BE
)

const BUFFER_SIZE = 4096

// zeros backs WriteZeros so padding never allocates.
var zeros [BUFFER_SIZE]byte

func Ptr[T any](v T) *T { return &v } // ptr is a helper function to create a pointer to a value, making test setup cleaner.

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// CheckBufferNotZeros verifies that every byte of buf is zero. Parsers use it
// to ensure trailing bytes after a decoded structure are only padding and not
// garbage data, which could indicate a bug or a malicious payload.
func CheckBufferNotZeros(buf []byte) error {
	for i, b := range buf {
		if b != 0 {
			return fmt.Errorf("%w: found non-zero byte 0x%02x at offset %d", ErrTrailingData, b, i)
		}
	}
	return nil
}

// MAX_PADDING defines the maximum number of trailing bytes to check.
// This prevents an Out-Of-Memory error if a parsing bug leaves a large
// amount of data in the reader. Anything larger is considered a protocol error.
const MAX_PADDING = 1024 // 1KB

// CheckTrailingNotZeros verifies that any remaining bytes in a reader are all
// zero. This is critical for parsers to ensure the entire expected payload was
// consumed and no garbage data follows.
func CheckTrailingNotZeros(r BufReader) error {
	// Fast path for the common in-memory reader to avoid any work.
	if reader, ok := r.(*BytesReader); ok && reader.Available() == 0 {
		return nil
	}

	// Read up to MAX_PADDING+1 bytes; getting more than MAX_PADDING means
	// there was too much data regardless of its content.
	trailing, err := ReadAll(Take(r, MAX_PADDING+1), nil)
	if err != nil {
		return err
	}
	if len(trailing) > MAX_PADDING {
		return fmt.Errorf("%w: exceeds maximum expected size of %d bytes", ErrTrailingData, MAX_PADDING)
	}
	return CheckBufferNotZeros(trailing)
}
