package bufrw

import "encoding/binary"

// Encoder simplifies writing binary data to any BufWriter. It tracks the
// first error that occurs; after an error, all subsequent write operations
// become no-ops and the root cause is available from Err or Result.
type Encoder struct {
	w       BufWriter
	count   int64 // total bytes written
	err     error // first error encountered. Subsequent writes become no-ops.
	order   binary.ByteOrder
	scratch [8]byte
}

// NewEncoder creates an Encoder writing to w with the default byte order.
func NewEncoder(w BufWriter) *Encoder {
	return &Encoder{w: w, order: Order}
}

// WithByteOrder allows setting a custom byte order and returns
// the configured for chaining.
func (e *Encoder) WithByteOrder(order binary.ByteOrder) *Encoder {
	e.order = order
	return e
}

func (e *Encoder) Count() int64 { return e.count }
func (e *Encoder) Err() error   { return e.err }

// setError records the first non-nil error.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (e *Encoder) setError(err error) {
	if e.err == nil && err != nil {
		e.err = err
	}
}

// Result flushes the sink and returns the final count and error state.
func (e *Encoder) Result() (int64, error) {
	e.Flush()
	return e.count, e.err
}

// Flush pushes any bytes buffered by the underlying sink.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	err := e.w.Flush()
	e.setError(err)
	return err
}

// writeAll is the single funnel to the sink, keeping count and the sticky
// error consistent.
func (e *Encoder) writeAll(p []byte) {
	if e.err != nil {
		return
	}
	if err := e.w.WriteAll(p); err != nil {
		e.err = err
		return
	}
	e.count += int64(len(p))
}

// WriteBytes writes a byte slice.
func (e *Encoder) WriteBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	e.writeAll(p)
}

// WriteZeros writes n zero bytes, often for padding. Padding is fed from a
// shared zero array so no temporary buffer is allocated.
func (e *Encoder) WriteZeros(n int64) {
	for n > 0 && e.err == nil {
		chunk := n
		if chunk > BUFFER_SIZE {
			chunk = BUFFER_SIZE
		}
		e.writeAll(zeros[:chunk])
		n -= chunk
	}
}

// Align writes zero bytes until the offset aligns with the given n.
func (e *Encoder) Align(n int) {
	if n > 1 {
		e.WriteZeros(Roundup(e.count, int64(n)) - e.count)
	}
}

// Encode writes the encoded form of m to the sink.
func (e *Encoder) Encode(m Marshaler) {
	if e.err != nil {
		return
	}
	n, err := m.EncodeTo(e.w)
	e.count += n
	e.setError(err)
}

// --- Primitive Write Operations ---

func (e *Encoder) WriteBool(v bool) {
	if v {
		e.scratch[0] = 1
	} else {
		e.scratch[0] = 0
	}
	e.writeAll(e.scratch[:1])
}

// WriteByte writes a single byte. Unlike the other primitives it also returns
// the error directly, mirroring io.ByteWriter call sites.
func (e *Encoder) WriteByte(v byte) error {
	e.scratch[0] = v
	e.writeAll(e.scratch[:1])
	return e.err
}

func (e *Encoder) WriteUint8(v uint8) {
	e.scratch[0] = v
	e.writeAll(e.scratch[:1])
}

func (e *Encoder) WriteUint16(v uint16) {
	e.order.PutUint16(e.scratch[:2], v)
	e.writeAll(e.scratch[:2])
}

func (e *Encoder) WriteUint32(v uint32) {
	e.order.PutUint32(e.scratch[:4], v)
	e.writeAll(e.scratch[:4])
}

func (e *Encoder) WriteUint64(v uint64) {
	e.order.PutUint64(e.scratch[:8], v)
	e.writeAll(e.scratch[:8])
}

func (e *Encoder) WriteInt8(v int8)   { e.WriteUint8(uint8(v)) }
func (e *Encoder) WriteInt16(v int16) { e.WriteUint16(uint16(v)) }
func (e *Encoder) WriteInt32(v int32) { e.WriteUint32(uint32(v)) }
func (e *Encoder) WriteInt64(v int64) { e.WriteUint64(uint64(v)) }
