// Package buffer implements the reading and writing of little-endian words to and from
// io.Writer and io.Reader implementations that expose their internal buffers.
package buffer

import (
	"fmt"
	"io"
)

// Writer is a writer exposing its internal buffer, such as *bufio.Writer and *Buffer.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is a reader exposing its internal buffer, such as *bufio.Reader and *Buffer.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// Buffer is a fixed-size []byte implementing Writer and Reader.
// Writes beyond its size return an error instead of growing it.
type Buffer struct {
	buf []byte
	n   int
	off int
}

// NewBuffer returns a Buffer backed by buff, with read and write offsets at buff[0].
func NewBuffer(buff []byte) *Buffer {
	return &Buffer{buf: buff}
}

// NewBufferSize returns a Buffer of size bytes.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// Write appends p at the write offset.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) > len(b.buf)-b.n {
		return 0, fmt.Errorf("cannot Write: %d bytes exceed the %d available", len(p), len(b.buf)-b.n)
	}
	n = copy(b.buf[b.n:], p)
	b.n += n
	return n, nil
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return nil
}

// AvailableBuffer returns an empty slice with Available() capacity, valid until the next write.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[b.n:b.n]
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.buf) - b.n
}

// Bytes returns the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Reset moves the read and write offsets back to the start.
func (b *Buffer) Reset() {
	b.n, b.off = 0, 0
}

// Read copies the next len(p) bytes into p and returns io.EOF if fewer were available.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.buf[b.off:])
	b.off += n
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Size returns the number of bytes left to read.
func (b *Buffer) Size() int {
	return len(b.buf) - b.off
}

// Peek returns the next n bytes without consuming them.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if n > b.Size() {
		return b.buf[b.off:], io.EOF
	}
	return b.buf[b.off : b.off+n], nil
}

// Discard skips the next n bytes.
func (b *Buffer) Discard(n int) (discarded int, err error) {
	if remain := b.Size(); n > remain {
		b.off = len(b.buf)
		return remain, io.EOF
	}
	b.off += n
	return n, nil
}
