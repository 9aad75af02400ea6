package bufrw

// ChainedReader concatenates the bytes of two BufReaders. It reads the first
// until its end, then switches to the second; once switched it never goes
// back, so a first reader that later grows is not re-polled.
type ChainedReader struct {
	first    BufReader
	second   BufReader
	onSecond bool
}

var _ BufReader = (*ChainedReader)(nil)

// Chain returns a reader yielding all bytes of first followed by all bytes of
// second.
func Chain(first, second BufReader) *ChainedReader {
	return &ChainedReader{first: first, second: second}
}

// FillBuf implements BufReader.
func (c *ChainedReader) FillBuf() ([]byte, error) {
	if c.onSecond {
		return c.second.FillBuf()
	}
	view, err := c.first.FillBuf()
	if err != nil {
		return nil, err
	}
	if len(view) == 0 {
		c.onSecond = true
		return c.second.FillBuf()
	}
	return view, nil
}

// Consume implements BufReader. It forwards to whichever reader produced the
// last view.
func (c *ChainedReader) Consume(n int) {
	if c.onSecond {
		c.second.Consume(n)
	} else {
		c.first.Consume(n)
	}
}
