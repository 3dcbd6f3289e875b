package buffer

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("WriteRead", func(t *testing.T) {

		buf := NewBufferSize(1 + 8 + 8)

		_, err := WriteUint8(buf, 0xab)
		require.NoError(t, err)
		_, err = WriteUint64(buf, 0x0102030405060708)
		require.NoError(t, err)
		_, err = WriteUint64(buf, ^uint64(0))
		require.NoError(t, err)
		require.Zero(t, buf.Available())

		_, err = WriteUint8(buf, 1)
		require.Error(t, err)

		require.Equal(t, []byte{0xab, 8, 7, 6, 5, 4, 3, 2, 1}, buf.Bytes()[:9])

		var c8 uint8
		var c64 uint64

		n, err := ReadUint8(buf, &c8)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, uint8(0xab), c8)

		_, err = ReadUint64(buf, &c64)
		require.NoError(t, err)
		require.Equal(t, uint64(0x0102030405060708), c64)

		_, err = ReadUint64(buf, &c64)
		require.NoError(t, err)
		require.Equal(t, ^uint64(0), c64)

		_, err = ReadUint8(buf, &c8)
		require.ErrorIs(t, err, io.EOF)

		_, err = ReadUint64(buf, nil)
		require.Error(t, err)

		buf.Reset()
		require.Equal(t, 17, buf.Size())
		require.Equal(t, 17, buf.Available())
	})

	t.Run("PeekDiscard", func(t *testing.T) {

		buf := NewBuffer([]byte{1, 2, 3, 4})

		p, err := buf.Peek(2)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2}, p)

		n, err := buf.Discard(3)
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.Equal(t, 1, buf.Size())

		_, err = buf.Peek(2)
		require.ErrorIs(t, err, io.EOF)

		n, err = buf.Discard(2)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, 1, n)
	})

	t.Run("Bufio", func(t *testing.T) {

		var stream bytes.Buffer

		// a 16-byte writer is flushed every other word
		w := bufio.NewWriterSize(&stream, 16)
		for i := uint64(0); i < 10; i++ {
			_, err := WriteUint64(w, i)
			require.NoError(t, err)
		}
		require.NoError(t, w.Flush())
		require.Equal(t, 80, stream.Len())

		r := bufio.NewReader(&stream)
		for i := uint64(0); i < 10; i++ {
			var c uint64
			_, err := ReadUint64(r, &c)
			require.NoError(t, err)
			require.Equal(t, i, c)
		}
	})
}
