package bufrw

// TakeReader provides a limited number of bytes from an underlying BufReader.
// After the limit is reached it reports end-of-data even if the underlying
// reader has more. Errors from the underlying reader do not count against the
// limit, so a later FillBuf may still succeed.
type TakeReader struct {
	r       BufReader
	limit   int64
	lastLen int
}

var _ BufReader = (*TakeReader)(nil)

// Take wraps r so that at most limit bytes can be read from it. A negative
// limit is treated as zero.
func Take(r BufReader, limit int64) *TakeReader {
	if limit < 0 {
		limit = 0
	}
	return &TakeReader{r: r, limit: limit}
}

// FillBuf implements BufReader. The returned view is the underlying view
// truncated to the remaining limit.
func (t *TakeReader) FillBuf() ([]byte, error) {
	view, err := t.r.FillBuf()
	if err != nil {
		return nil, err
	}
	t.lastLen = len(view)
	if int64(len(view)) > t.limit {
		view = view[:t.limit]
	}
	return view, nil
}

// Consume implements BufReader.
func (t *TakeReader) Consume(n int) {
	if int64(n) > t.limit || n > t.lastLen {
		panic("bufrw: Consume beyond buffered view")
	}
	t.limit -= int64(n)
	t.r.Consume(n)
}

// Remaining returns how many more bytes may be read before the limit cuts
// the stream off.
func (t *TakeReader) Remaining() int64 { return t.limit }
