package bufrw

import (
	"bufio"
	"bytes"
	"io"
)

// StdReader adapts an OS-buffered *bufio.Reader to the BufReader capability.
// Transport errors from the underlying io.Reader pass through verbatim.
type StdReader struct {
	r *bufio.Reader
}

var (
	_ BufReader = (*StdReader)(nil)
	_ io.Reader = (*StdReader)(nil)
)

// NewStdReaderSize wraps r with a buffer of at least size bytes. A size <= 0
// selects the bufio default. It returns an error instead of silently
// double-buffering an already-buffered reader, a common source of bugs.
func NewStdReaderSize(r io.Reader, size int) (*StdReader, error) {
	if r == nil {
		return nil, ErrNilIO
	}

	switch reader := r.(type) {
	// Reuse the underlying buffer if it's already a compatible StdReader.
	case *StdReader:
		if reader.r.Size() >= size {
			return reader, nil
		}
		return nil, ErrAlreadyBuffered

	// prevent unpredictable double-buffering.
	case *bufio.Reader:
		if reader.Size() >= size {
			return &StdReader{r: reader}, nil
		}
		return nil, ErrAlreadyBuffered
	}

	if size > 0 && size < 16 {
		return nil, ErrSizeTooSmall
	}

	// default use bufio
	return &StdReader{r: bufio.NewReaderSize(r, size)}, nil
}

// NewStdReader wraps r with the default buffer size.
//
// For a source that is already fully in memory, prefer BytesReader: it avoids
// the copy into the bufio buffer and can never produce a transport error.
func NewStdReader(r io.Reader) (*StdReader, error) {
	return NewStdReaderSize(r, 0)
}

// FillBuf implements BufReader. It triggers at most one read of the
// underlying source, and only when the buffer is empty.
func (r *StdReader) FillBuf() ([]byte, error) {
	if r.r.Buffered() == 0 {
		if _, err := r.r.Peek(1); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
	}
	// Peek of exactly the buffered amount cannot fail.
	return r.r.Peek(r.r.Buffered())
}

// Consume implements BufReader.
func (r *StdReader) Consume(n int) {
	if n > r.r.Buffered() {
		panic("bufrw: Consume beyond buffered view")
	}
	_, _ = r.r.Discard(n)
}

// Read implements io.Reader by delegating to the underlying bufio reader, so
// an StdReader can be passed back to code that wants the stdlib interface and
// the constructors can recognize one to reuse its buffer.
func (r *StdReader) Read(p []byte) (int, error) { return r.r.Read(p) }

// Size returns the size of the underlying bufio buffer.
func (r *StdReader) Size() int { return r.r.Size() }

// stdSink is what StdWriter needs from its destination: buffered (or cheap)
// writes plus an explicit flush.
type stdSink interface {
	io.Writer
	Flush() error
}

// bytesBufferSink lets a *bytes.Buffer act as a stdSink without an extra
// bufio layer in between.
type bytesBufferSink struct{ *bytes.Buffer }

func (bytesBufferSink) Flush() error { return nil }

// StdWriter adapts an OS-buffered *bufio.Writer (or a *bytes.Buffer) to the
// BufWriter capability. Transport errors pass through verbatim.
//
// After a failed WriteAll an unknown prefix of the input may already have
// reached the destination; the writer must not be reused.
type StdWriter struct {
	w stdSink
}

var (
	_ BufWriter = (*StdWriter)(nil)
	_ io.Writer = (*StdWriter)(nil)
)

// NewStdWriterSize wraps w with a buffer of at least size bytes. A size <= 0
// selects the bufio default. Like NewStdReaderSize it refuses to
// double-buffer.
func NewStdWriterSize(w io.Writer, size int) (*StdWriter, error) {
	if w == nil {
		return nil, ErrNilIO
	}

	switch bw := w.(type) {
	// Reuse the underlying buffer if it's already a compatible StdWriter.
	case *StdWriter:
		return bw, nil

	// prevent unpredictable double-buffering.
	case *bufio.Writer:
		if bw.Size() >= size {
			return &StdWriter{w: bw}, nil
		}
		return nil, ErrAlreadyBuffered

	// underlying is a buf so we don't need buffering
	case *bytes.Buffer:
		return &StdWriter{w: bytesBufferSink{bw}}, nil
	}

	return &StdWriter{w: bufio.NewWriterSize(w, size)}, nil
}

// NewStdWriter wraps w with the default buffer size.
func NewStdWriter(w io.Writer) (*StdWriter, error) {
	return NewStdWriterSize(w, 0)
}

// WriteAll implements BufWriter. bufio reports every short write as an error,
// which is exactly the contract WriteAll needs.
func (w *StdWriter) WriteAll(p []byte) error {
	_, err := w.w.Write(p)
	return err
}

// Flush implements BufWriter.
func (w *StdWriter) Flush() error { return w.w.Flush() }

// Write implements io.Writer by delegating to the underlying buffered sink,
// so an StdWriter can be passed back to code that wants the stdlib interface
// and the constructors can recognize one to reuse its buffer.
func (w *StdWriter) Write(p []byte) (int, error) { return w.w.Write(p) }

// AsIoReader adapts a BufReader to io.Reader, for handing a bufrw source to
// code that consumes stdlib interfaces.
func AsIoReader(r BufReader) io.Reader { return &ioReader{r: r} }

// AsIoWriter adapts a BufWriter to io.Writer. The caller remains responsible
// for flushing the BufWriter.
func AsIoWriter(w BufWriter) io.Writer { return &ioWriter{w: w} }

type ioReader struct{ r BufReader }

func (a *ioReader) Read(p []byte) (int, error) {
	view, err := a.r.FillBuf()
	if err != nil {
		return 0, err
	}
	if len(view) == 0 {
		return 0, io.EOF
	}
	n := copy(p, view)
	a.r.Consume(n)
	return n, nil
}

type ioWriter struct{ w BufWriter }

func (a *ioWriter) Write(p []byte) (int, error) {
	if err := a.w.WriteAll(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
