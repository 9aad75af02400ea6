package bufrw

import (
	"errors"
	"fmt"
)

var (
	// ErrNilIO indicates that NewStdReader/NewStdWriter was called with a nil interface.
	ErrNilIO = errors.New("bufrw: NewStdReader/NewStdWriter called with a nil io.Reader/io.Writer")

	// ErrSizeTooSmall indicates a size conflict with bufio
	ErrSizeTooSmall = errors.New("bufrw: NewStdReaderSize with a size smaller than 16 conflict with bufio")

	// ErrAlreadyBuffered indicates that NewStdReader/NewStdWriter was called with an
	// already-buffered reader/writer, which would lead to unpredictable behavior
	// and performance issues.
	ErrAlreadyBuffered = errors.New("bufrw: reader or writer is already buffered")

	// ErrUnexpectedEnd indicates a source was exhausted before a read request could
	// be satisfied. Match it with errors.Is; the concrete value travelling through
	// the error chain is an *UnexpectedEndError carrying the byte counts.
	ErrUnexpectedEnd = errors.New("bufrw: unexpected end of input")

	// ErrBufferOverflow indicates a fixed-capacity writer rejected a write that
	// would not fit. Match it with errors.Is; the concrete value is a
	// *BufferOverflowError.
	ErrBufferOverflow = errors.New("bufrw: write past the end of the buffer")

	// ErrDiscardNegative indicates a Discard operation was attempted with a negative byte count.
	ErrDiscardNegative = errors.New("bufrw: cannot discard negative number of bytes")

	// ErrTrailingData is returned by UnmarshalBinaryGeneric when non-zero bytes are found
	// after the expected end of the data structure, indicating a potential parsing error
	// or malformed data.
	ErrTrailingData = errors.New("bufrw: non-zero trailing data found after decoding")

	// ErrTruncatedData indicates that a decode operation could not complete because the
	// underlying data ended before all expected bytes were read.
	ErrTruncatedData = errors.New("bufrw: truncated data")
)

// UnexpectedEndError reports that a reader ran out of data while a request was
// still outstanding. Required is the total number of bytes the request asked
// for, Available how many of them the reader could actually deliver.
type UnexpectedEndError struct {
	Required  int
	Available int
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("bufrw: %d bytes were required but only %d were available", e.Required, e.Available)
}

// Is matches ErrUnexpectedEnd so callers can test the kind without caring
// about the counts.
func (e *UnexpectedEndError) Is(target error) bool { return target == ErrUnexpectedEnd }

// BufferOverflowError reports a write that did not fit into a fixed-capacity
// writer. BytesPastEnd is by how many bytes the write exceeded the remaining
// space. The write is rejected as a whole; nothing is transferred.
type BufferOverflowError struct {
	BytesPastEnd int
}

func (e *BufferOverflowError) Error() string {
	return fmt.Sprintf("bufrw: attempted to write %d bytes past the end of the buffer", e.BytesPastEnd)
}

// Is matches ErrBufferOverflow so callers can test the kind without caring
// about the count.
func (e *BufferOverflowError) Is(target error) bool { return target == ErrBufferOverflow }
