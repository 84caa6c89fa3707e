package stackstr

import (
	"bytes"
	"unsafe"
)

// Buffer is a string over memory owned by the caller. The memory must outlive
// the Buffer and must not be modified through other references while the
// Buffer is in use.
type Buffer struct {
	buf []byte
	end int
}

// Wrap adapts b as a string of capacity len(b)-1. The last byte of b is
// overwritten with a terminator and the content runs up to the first zero
// byte, so a buffer that already holds zero-terminated text keeps it.
//
// Wrap panics if b is empty.
func Wrap(b []byte) *Buffer {
	if len(b) == 0 {
		panic("stackstr: Wrap of an empty buffer")
	}
	b[len(b)-1] = 0
	return &Buffer{buf: b, end: bytes.IndexByte(b, 0)}
}

// WrapArray adapts the array a, inferring the capacity from its type.
func WrapArray[A Array](a *A) *Buffer {
	return Wrap(unsafe.Slice((*byte)(unsafe.Pointer(a)), len(*a)))
}

// Data returns the wrapped memory, terminator slot included.
func (b *Buffer) Data() []byte { return b.buf }

// Bytes returns the content. Appending to it cannot reach the terminator.
func (b *Buffer) Bytes() []byte { return b.buf[:b.end:b.end] }

// Len returns the content length.
func (b *Buffer) Len() int { return b.end }

// Capacity returns len(memory)-1.
func (b *Buffer) Capacity() int { return len(b.buf) - 1 }

// MaxSize equals Capacity.
func (b *Buffer) MaxSize() int { return len(b.buf) - 1 }

// Reserve does nothing.
func (b *Buffer) Reserve(int) {}

// ShrinkToFit does nothing.
func (b *Buffer) ShrinkToFit() {}

func (b *Buffer) setLen(n int) {
	b.end = n
	b.buf[n] = 0
}

// String returns a copy of the content.
func (b *Buffer) String() string { return string(b.buf[:b.end]) }

// Write appends p, implementing io.Writer. If p does not fit, the stored
// prefix length is returned with ErrLengthExceeded.
func (b *Buffer) Write(p []byte) (int, error) { return write(b, p) }

// WriteString appends s, implementing io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) { return write(b, s) }

// WriteByte appends c, implementing io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error { return PushBack(b, c) }
