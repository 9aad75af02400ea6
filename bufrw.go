// Package bufrw provides minimal capability interfaces for buffered byte
// input and output, intended as a foundation for serialization codecs and
// simple protocol encoders/decoders.
//
// The package deliberately exposes no single-call Read/Write primitives:
// those are easy to misuse because a partial transfer can be silently
// accepted as a complete one. A BufReader hands out a view of bytes that are
// already in memory and is told how many were consumed; a BufWriter accepts a
// complete byte sequence or fails. Everything else in the package is built on
// those two contracts.
package bufrw

import "io"

// BufReader is a source which has an internal buffer, allowing a consumer to
// look at buffered bytes before deciding how many to take.
//
// An implementation is exclusively owned by one caller at a time; the package
// does no locking and none of the interfaces are safe for concurrent use on
// the same instance.
type BufReader interface {
	// FillBuf returns the contents of the internal buffer, reading more data
	// from the underlying source if the buffer is empty. The returned slice is
	// only valid until the next Consume or FillBuf call.
	//
	// An empty slice with a nil error indicates the source has reached its end.
	// FillBuf never returns an empty slice to mean "try again later"; if the
	// underlying transport blocks, it blocks inside FillBuf. Repeated calls
	// without an intervening Consume return the same leading bytes, possibly
	// followed by newly buffered ones.
	FillBuf() ([]byte, error)

	// Consume tells the reader that n bytes of the slice most recently
	// returned by FillBuf have been used, so they are no longer returned by
	// later calls. Consume performs no IO.
	//
	// n larger than the last returned view is a contract violation and
	// panics; it is a bug in the caller, not a recoverable condition.
	Consume(n int)
}

// BufWriter is a buffered, byte-oriented sink.
//
// Implementations are not required to actually hold a buffer: a type may
// satisfy BufWriter directly when writes to it are cheap regardless of size.
// If writing involves a context switch or similar expensive operation the
// implementation should buffer internally.
type BufWriter interface {
	// WriteAll transfers every byte of p to the sink or fails. On success all
	// of p was handed to the underlying channel (not necessarily durably
	// persisted). On failure the amount actually transferred is
	// implementation-defined; unless the adapter documents otherwise the sink
	// must be treated as inconsistent and not reused without recovery.
	WriteAll(p []byte) error

	// Flush pushes any internally buffered bytes to the true sink. Flush
	// failures report through the same error channel as WriteAll; there is no
	// distinct flush error kind.
	Flush() error
}

// BufReadWriter is the combination of BufReader and BufWriter.
type BufReadWriter interface {
	BufReader
	BufWriter
}

// ReadExact fills dst completely from r.
//
// It repeatedly calls FillBuf and Consume until dst is full. If r reaches its
// end first, ReadExact returns an *UnexpectedEndError (matching
// ErrUnexpectedEnd); if FillBuf fails the transport error is returned
// verbatim. In either failure case the contents of dst and the amount
// consumed from r are unspecified, but never more than needed to fill dst.
func ReadExact(r BufReader, dst []byte) error {
	required := len(dst)
	for len(dst) > 0 {
		view, err := r.FillBuf()
		if err != nil {
			return err
		}
		if len(view) == 0 {
			return &UnexpectedEndError{Required: required, Available: required - len(dst)}
		}
		n := copy(dst, view)
		r.Consume(n)
		dst = dst[n:]
	}
	return nil
}

// ReadByte reads a single byte from r. It returns io.EOF if r is exhausted.
func ReadByte(r BufReader) (byte, error) {
	view, err := r.FillBuf()
	if err != nil {
		return 0, err
	}
	if len(view) == 0 {
		return 0, io.EOF
	}
	b := view[0]
	r.Consume(1)
	return b, nil
}

// ReadAll appends everything remaining in r to dst and returns the extended
// slice. Reading stops at the end of r or at the first transport error; bytes
// read before the error are kept in the returned slice.
func ReadAll(r BufReader, dst []byte) ([]byte, error) {
	for {
		view, err := r.FillBuf()
		if err != nil {
			return dst, err
		}
		if len(view) == 0 {
			return dst, nil
		}
		dst = append(dst, view...)
		r.Consume(len(view))
	}
}

// Discard skips the next n bytes of r, returning the number of bytes
// discarded. If r ends before n bytes could be skipped the count is returned
// together with an *UnexpectedEndError.
func Discard(r BufReader, n int64) (int64, error) {
	if n < 0 {
		return 0, ErrDiscardNegative
	}
	var skipped int64
	for skipped < n {
		view, err := r.FillBuf()
		if err != nil {
			return skipped, err
		}
		if len(view) == 0 {
			return skipped, &UnexpectedEndError{Required: int(n), Available: int(skipped)}
		}
		take := int64(len(view))
		if take > n-skipped {
			take = n - skipped
		}
		r.Consume(int(take))
		skipped += take
	}
	return skipped, nil
}

// Copy drains r into w, returning the number of bytes transferred. No
// intermediate buffer is needed: the view handed out by FillBuf is passed to
// WriteAll directly. Copy does not flush w.
func Copy(w BufWriter, r BufReader) (int64, error) {
	var n int64
	for {
		view, err := r.FillBuf()
		if err != nil {
			return n, err
		}
		if len(view) == 0 {
			return n, nil
		}
		if err := w.WriteAll(view); err != nil {
			return n, err
		}
		r.Consume(len(view))
		n += int64(len(view))
	}
}

// Empty is a BufReader with no data (always at the end).
var Empty BufReader = empty{}

// Sink is a BufWriter which throws away (ignores) the data.
var Sink BufWriter = sink{}

// Null is a BufReadWriter that has no data and throws away all data written
// to it. This is analogous to opening /dev/null on Linux/Unix but is
// zero-cost.
var Null BufReadWriter = null{}

type (
	empty struct{}
	sink  struct{}
	null  struct {
		empty
		sink
	}
)

func (empty) FillBuf() ([]byte, error) { return nil, nil }

func (empty) Consume(n int) {
	if n != 0 {
		panic("bufrw: Consume beyond buffered view")
	}
}

func (sink) WriteAll(p []byte) error { return nil }
func (sink) Flush() error            { return nil }
