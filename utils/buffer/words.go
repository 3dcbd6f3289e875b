package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// reserve makes sure that w can take size more bytes, flushing it if needed.
func reserve(w Writer, size int, op string) (err error) {
	if w.Available() >= size {
		return
	}
	if err = w.Flush(); err != nil {
		return
	}
	if w.Available() < size {
		return fmt.Errorf("cannot %s: %d bytes available after flush", op, w.Available())
	}
	return
}

// WriteUint8 writes c to w.
func WriteUint8(w Writer, c uint8) (n int64, err error) {

	if err = reserve(w, 1, "WriteUint8"); err != nil {
		return
	}

	nint, err := w.Write(append(w.AvailableBuffer(), c))
	return int64(nint), err
}

// WriteUint64 writes c to w in little-endian order.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if err = reserve(w, 8, "WriteUint64"); err != nil {
		return
	}

	nint, err := w.Write(binary.LittleEndian.AppendUint64(w.AvailableBuffer(), c))
	return int64(nint), err
}

// ReadUint8 reads one byte from r into c.
func ReadUint8(r Reader, c *uint8) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	var bb [1]byte
	if n, err = io.ReadFull(r, bb[:]); err != nil {
		return
	}

	*c = bb[0]

	return
}

// ReadUint64 reads a little-endian word from r into c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb [8]byte
	if n, err = io.ReadFull(r, bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return
}
