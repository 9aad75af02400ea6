package bufrw

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- BytesReader contract suite ---

type BytesReaderTestSuite struct {
	suite.Suite
}

func (s *BytesReaderTestSuite) TestChunkedReadReproducesSource() {
	src := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	for k := 1; k <= len(src); k++ {
		r := NewBytesReader(src)
		var got []byte
		for {
			view, err := r.FillBuf()
			s.Require().NoError(err, "BytesReader.FillBuf must never fail")
			if len(view) == 0 {
				break
			}
			n := k
			if n > len(view) {
				n = len(view)
			}
			got = append(got, view[:n]...)
			r.Consume(n)
		}
		s.Assert().Equal(src, got, "chunk size %d", k)

		// Exhaustion is terminal.
		view, err := r.FillBuf()
		s.Require().NoError(err)
		s.Assert().Empty(view)
	}
}

func (s *BytesReaderTestSuite) TestFillBufIdempotentUntilConsume() {
	r := NewBytesReader([]byte{1, 2, 3})

	first, err := r.FillBuf()
	s.Require().NoError(err)
	second, err := r.FillBuf()
	s.Require().NoError(err)
	s.Assert().Equal(first, second)

	r.Consume(1)
	third, err := r.FillBuf()
	s.Require().NoError(err)
	s.Assert().Equal([]byte{2, 3}, third)
}

func (s *BytesReaderTestSuite) TestConsumeBeyondViewPanics() {
	r := NewBytesReader([]byte{1, 2})
	s.Assert().Panics(func() { r.Consume(3) })
}

func (s *BytesReaderTestSuite) TestReadExactScenario() {
	r := NewBytesReader([]byte{1, 2, 3, 4, 5})

	dst := make([]byte, 3)
	s.Require().NoError(ReadExact(r, dst))
	s.Assert().Equal([]byte{1, 2, 3}, dst)

	view, err := r.FillBuf()
	s.Require().NoError(err)
	s.Assert().Equal([]byte{4, 5}, view)

	err = ReadExact(r, make([]byte, 3))
	s.Require().Error(err)
	s.Assert().ErrorIs(err, ErrUnexpectedEnd)

	var endErr *UnexpectedEndError
	s.Require().ErrorAs(err, &endErr)
	s.Assert().Equal(3, endErr.Required)
	s.Assert().Equal(2, endErr.Available)
}

func (s *BytesReaderTestSuite) TestReadExactBoundaries() {
	s.T().Run("ExactFit", func(t *testing.T) {
		r := NewBytesReader([]byte{7, 8, 9})
		dst := make([]byte, 3)
		require.NoError(t, ReadExact(r, dst))
		assert.Equal(t, []byte{7, 8, 9}, dst)
	})

	s.T().Run("OneBytePastEnd", func(t *testing.T) {
		r := NewBytesReader([]byte{7, 8, 9})
		err := ReadExact(r, make([]byte, 4))
		assert.ErrorIs(t, err, ErrUnexpectedEnd)
	})

	s.T().Run("EmptyDestination", func(t *testing.T) {
		r := NewBytesReader(nil)
		assert.NoError(t, ReadExact(r, nil))
	})
}

func (s *BytesReaderTestSuite) TestReadByte() {
	r := NewBytesReader([]byte{42})

	b, err := ReadByte(r)
	s.Require().NoError(err)
	s.Assert().EqualValues(42, b)

	_, err = ReadByte(r)
	s.Assert().ErrorIs(err, io.EOF)
}

func (s *BytesReaderTestSuite) TestReadAll() {
	src := []byte{1, 2, 3}
	got, err := ReadAll(NewBytesReader(src), nil)
	s.Require().NoError(err)
	s.Assert().Equal(src, got)

	got, err = ReadAll(NewBytesReader(nil), []byte{9})
	s.Require().NoError(err)
	s.Assert().Equal([]byte{9}, got)
}

func (s *BytesReaderTestSuite) TestDiscard() {
	r := NewBytesReader([]byte{1, 2, 3, 4})

	skipped, err := Discard(r, 3)
	s.Require().NoError(err)
	s.Assert().EqualValues(3, skipped)

	skipped, err = Discard(r, 3)
	s.Assert().EqualValues(1, skipped)
	s.Assert().ErrorIs(err, ErrUnexpectedEnd)

	_, err = Discard(r, -1)
	s.Assert().ErrorIs(err, ErrDiscardNegative)
}

func TestBytesReaderSuite(t *testing.T) {
	suite.Run(t, new(BytesReaderTestSuite))
}

// --- Take / Chain adapters ---

func TestTakeZero(t *testing.T) {
	r := Take(NewBytesReader([]byte{1, 2, 3}), 0)

	view, err := r.FillBuf()
	require.NoError(t, err)
	assert.Empty(t, view)

	assert.ErrorIs(t, ReadExact(r, make([]byte, 1)), ErrUnexpectedEnd)
}

func TestTakeOne(t *testing.T) {
	r := Take(NewBytesReader([]byte{1, 2, 3}), 1)

	view, err := r.FillBuf()
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, view)
	r.Consume(1)

	view, err = r.FillBuf()
	require.NoError(t, err)
	assert.Empty(t, view)
	assert.ErrorIs(t, ReadExact(r, make([]byte, 1)), ErrUnexpectedEnd)
}

func TestTakeNegativeLimit(t *testing.T) {
	r := Take(NewBytesReader([]byte{1, 2, 3}), -5)

	view, err := r.FillBuf()
	require.NoError(t, err)
	assert.Empty(t, view)
	assert.Zero(t, r.Remaining())
	assert.ErrorIs(t, ReadExact(r, make([]byte, 1)), ErrUnexpectedEnd)
}

func TestTakeLeavesRestForUnderlying(t *testing.T) {
	under := NewBytesReader([]byte{1, 2, 3, 4})
	got, err := ReadAll(Take(under, 3), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	view, err := under.FillBuf()
	require.NoError(t, err)
	assert.Equal(t, []byte{4}, view)
}

func TestChainEmpty(t *testing.T) {
	r := Chain(NewBytesReader(nil), NewBytesReader(nil))
	for i := 0; i < 3; i++ {
		view, err := r.FillBuf()
		require.NoError(t, err)
		assert.Empty(t, view)
	}
}

func TestChainNonEmptyEmpty(t *testing.T) {
	r := Chain(NewBytesReader([]byte{42}), NewBytesReader(nil))

	view, err := r.FillBuf()
	require.NoError(t, err)
	assert.Equal(t, []byte{42}, view)
	r.Consume(1)

	view, err = r.FillBuf()
	require.NoError(t, err)
	assert.Empty(t, view)
}

func TestChainEmptyNonEmpty(t *testing.T) {
	r := Chain(NewBytesReader(nil), NewBytesReader([]byte{42}))

	view, err := r.FillBuf()
	require.NoError(t, err)
	assert.Equal(t, []byte{42}, view)
	r.Consume(1)

	view, err = r.FillBuf()
	require.NoError(t, err)
	assert.Empty(t, view)
}

func TestChainReadAcrossBoundary(t *testing.T) {
	r := Chain(NewBytesReader([]byte{1, 2}), NewBytesReader([]byte{3, 4, 5}))
	dst := make([]byte, 5)
	require.NoError(t, ReadExact(r, dst))
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, dst)
}

// --- Writers ---

func TestBytesWriterOverflowIsAllOrNothing(t *testing.T) {
	w := NewBytesWriter(make([]byte, 4))

	require.NoError(t, w.WriteAll([]byte{1, 2, 3}))

	err := w.WriteAll([]byte{4, 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBufferOverflow)

	var overflow *BufferOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, 1, overflow.BytesPastEnd)

	// Nothing of the failed write was transferred.
	assert.Equal(t, []byte{1, 2, 3}, w.Bytes())
	assert.Equal(t, 1, w.Available())
}

func TestWriteAllEmptyAlwaysSucceeds(t *testing.T) {
	full := NewBytesWriter(make([]byte, 0))
	assert.NoError(t, full.WriteAll(nil))
	assert.NoError(t, full.WriteAll([]byte{}))

	assert.NoError(t, Sink.WriteAll(nil))
	assert.NoError(t, NewAppendWriter(nil).WriteAll(nil))
}

func TestAppendWriterScenario(t *testing.T) {
	w := NewAppendWriter(nil)

	require.NoError(t, w.WriteAll([]byte{}))
	require.NoError(t, w.WriteAll([]byte{9, 9}))
	require.NoError(t, w.Flush())

	assert.Equal(t, []byte{9, 9}, w.Bytes())
	assert.Equal(t, 2, w.Len())
}

func TestEmptySinkNull(t *testing.T) {
	view, err := Empty.FillBuf()
	require.NoError(t, err)
	assert.Empty(t, view)
	Empty.Consume(0)
	assert.Panics(t, func() { Empty.Consume(1) })

	require.NoError(t, Sink.WriteAll([]byte{1, 2, 3}))
	require.NoError(t, Sink.Flush())

	view, err = Null.FillBuf()
	require.NoError(t, err)
	assert.Empty(t, view)
	require.NoError(t, Null.WriteAll([]byte{1}))
	require.NoError(t, Null.Flush())
}

func TestCopy(t *testing.T) {
	src := Chain(NewBytesReader([]byte{1, 2, 3}), NewBytesReader([]byte{4, 5}))
	dst := NewAppendWriter(nil)

	n, err := Copy(dst, src)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, dst.Bytes())
}

func TestCopyStopsOnSinkError(t *testing.T) {
	src := NewBytesReader([]byte{1, 2, 3})
	dst := NewBytesWriter(make([]byte, 2))

	_, err := Copy(dst, src)
	assert.ErrorIs(t, err, ErrBufferOverflow)

	// The source still holds the unwritten bytes.
	view, ferr := src.FillBuf()
	require.NoError(t, ferr)
	assert.Equal(t, []byte{1, 2, 3}, view)
}

func TestCheckTrailingNotZeros(t *testing.T) {
	assert.NoError(t, CheckTrailingNotZeros(NewBytesReader(nil)))
	assert.NoError(t, CheckTrailingNotZeros(NewBytesReader(make([]byte, 16))))

	err := CheckTrailingNotZeros(NewBytesReader([]byte{0, 0, 7}))
	assert.ErrorIs(t, err, ErrTrailingData)

	err = CheckTrailingNotZeros(NewBytesReader(make([]byte, MAX_PADDING+1)))
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestErrorSentinelMatching(t *testing.T) {
	var err error = &UnexpectedEndError{Required: 8, Available: 3}
	assert.ErrorIs(t, err, ErrUnexpectedEnd)
	assert.Contains(t, err.Error(), "8 bytes were required")
	assert.False(t, errors.Is(err, ErrBufferOverflow))

	err = &BufferOverflowError{BytesPastEnd: 2}
	assert.ErrorIs(t, err, ErrBufferOverflow)
	assert.Contains(t, err.Error(), "2 bytes past the end")
}
