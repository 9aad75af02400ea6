package bufrw

import (
	"encoding/binary"
	"io"
)

// Decoder simplifies reading binary data from any BufReader. It tracks the
// first error encountered; subsequent reads become no-ops, so a sequence of
// field reads can be written without per-call error checks and the root cause
// collected once at the end via Err or Result.
type Decoder struct {
	r       BufReader
	count   int64 // total bytes read
	err     error // first error encountered.
	order   binary.ByteOrder
	scratch [8]byte
}

// NewDecoder creates a Decoder reading from r with the default byte order.
func NewDecoder(r BufReader) *Decoder {
	return &Decoder{r: r, order: Order}
}

// WithByteOrder allows setting a custom byte order and returns
// the configured for chaining.
func (d *Decoder) WithByteOrder(order binary.ByteOrder) *Decoder {
	d.order = order
	return d
}

func (d *Decoder) Count() int64 { return d.count }
func (d *Decoder) Err() error   { return d.err }

// setError records the first non-nil error.
func (d *Decoder) setError(err error) {
	if d.err == nil && err != nil {
		d.err = err
	}
}

// Result returns the total bytes read and the final error state.
func (d *Decoder) Result() (int64, error) {
	return d.count, d.err
}

// readFull is an internal helper to read an exact number of scratch-sized bytes.
func (d *Decoder) readFull(n int) []byte {
	if d.err != nil {
		return nil
	}
	buf := d.scratch[:n]
	if err := ReadExact(d.r, buf); err != nil {
		d.err = err
		return nil
	}
	d.count += int64(n)
	return buf
}

// ReadBytes reads n bytes and returns a new byte slice.
func (d *Decoder) ReadBytes(n int) []byte {
	if n <= 0 || d.err != nil {
		return nil
	}
	buf := make([]byte, n)
	if err := ReadExact(d.r, buf); err != nil {
		d.err = err
		return nil
	}
	d.count += int64(n)
	return buf
}

// ReadBytesTo fills dest completely from the reader.
func (d *Decoder) ReadBytesTo(dest []byte) {
	if d.err != nil || len(dest) == 0 {
		return
	}
	if err := ReadExact(d.r, dest); err != nil {
		d.err = err
		return
	}
	d.count += int64(len(dest))
}

// Discard skips n bytes.
func (d *Decoder) Discard(n int64) {
	if d.err != nil {
		return
	}
	skipped, err := Discard(d.r, n)
	d.count += skipped
	d.setError(err)
}

// Align discards bytes until the offset aligns with the given n.
func (d *Decoder) Align(n int) {
	if n > 1 {
		d.Discard(Roundup(d.count, int64(n)) - d.count)
	}
}

// Decode reads and decodes u from the reader.
func (d *Decoder) Decode(u Unmarshaler) {
	if d.err != nil {
		return
	}
	n, err := u.DecodeFrom(d.r)
	d.count += n
	d.setError(err)
}

// --- Primitive Read Operations ---

func (d *Decoder) ReadBool(dest *bool) {
	if d.err != nil {
		return
	}
	b, err := d.readByte()
	if err == nil {
		*dest = b != 0
	}
}

// ReadByte reads a single byte. Unlike the other primitives it also returns
// the error directly, mirroring io.ByteReader call sites.
func (d *Decoder) ReadByte() (byte, error) {
	if d.err != nil {
		return 0, d.err
	}
	return d.readByte()
}

func (d *Decoder) ReadUint8(dest *uint8) {
	if d.err != nil {
		return
	}
	b, err := d.readByte()
	if err == nil {
		*dest = b
	}
}

func (d *Decoder) ReadUint16(dest *uint16) {
	buf := d.readFull(2)
	if d.err == nil {
		*dest = d.order.Uint16(buf)
	}
}

func (d *Decoder) ReadUint32(dest *uint32) {
	buf := d.readFull(4)
	if d.err == nil {
		*dest = d.order.Uint32(buf)
	}
}

func (d *Decoder) ReadUint64(dest *uint64) {
	buf := d.readFull(8)
	if d.err == nil {
		*dest = d.order.Uint64(buf)
	}
}

func (d *Decoder) ReadInt8(dest *int8) {
	if d.err != nil {
		return
	}
	b, err := d.readByte()
	if err == nil {
		*dest = int8(b)
	}
}

func (d *Decoder) ReadInt16(dest *int16) {
	buf := d.readFull(2)
	if d.err == nil {
		*dest = int16(d.order.Uint16(buf))
	}
}

func (d *Decoder) ReadInt32(dest *int32) {
	buf := d.readFull(4)
	if d.err == nil {
		*dest = int32(d.order.Uint32(buf))
	}
}

func (d *Decoder) ReadInt64(dest *int64) {
	buf := d.readFull(8)
	if d.err == nil {
		*dest = int64(d.order.Uint64(buf))
	}
}

// readByte reads one byte, converting a clean end of data into the same
// unexpected-end kind every other short read reports.
func (d *Decoder) readByte() (byte, error) {
	b, err := ReadByte(d.r)
	if err != nil {
		if err == io.EOF {
			err = &UnexpectedEndError{Required: 1, Available: 0}
		}
		d.err = err
		return 0, err
	}
	d.count++
	return b, nil
}
