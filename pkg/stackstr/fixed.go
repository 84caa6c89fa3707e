package stackstr

import "unsafe"

// Fixed is a string stored in an embedded array of type A. A Fixed over
// [N]byte holds at most N-1 bytes.
//
// The zero value is an empty string. Assigning a Fixed copies its bytes, so
// copies never share storage. Compare Fixed values with Equal rather than ==,
// which also sees the stale bytes past the end.
type Fixed[A Array] struct {
	arr A
	end int
}

// NewFixed returns a Fixed holding src.
func NewFixed[A Array, T Bytes](src T) (Fixed[A], error) {
	var f Fixed[A]
	err := Assign(&f, src)
	return f, err
}

// Data returns the embedded array as a slice, terminator slot included.
func (f *Fixed[A]) Data() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&f.arr)), len(f.arr))
}

// Bytes returns the content. Appending to it cannot reach the terminator.
func (f *Fixed[A]) Bytes() []byte { return f.Data()[:f.end:f.end] }

// Len returns the content length.
func (f *Fixed[A]) Len() int { return f.end }

// Capacity returns len(A)-1.
func (f *Fixed[A]) Capacity() int { return len(f.arr) - 1 }

// MaxSize equals Capacity.
func (f *Fixed[A]) MaxSize() int { return len(f.arr) - 1 }

// Reserve does nothing.
func (f *Fixed[A]) Reserve(int) {}

// ShrinkToFit does nothing.
func (f *Fixed[A]) ShrinkToFit() {}

func (f *Fixed[A]) setLen(n int) {
	f.end = n
	f.Data()[n] = 0
}

// String returns a copy of the content.
func (f Fixed[A]) String() string { return string(f.Bytes()) }

// Write appends p, implementing io.Writer. If p does not fit, the stored
// prefix length is returned with ErrLengthExceeded.
func (f *Fixed[A]) Write(p []byte) (int, error) { return write(f, p) }

// WriteString appends s, implementing io.StringWriter.
func (f *Fixed[A]) WriteString(s string) (int, error) { return write(f, s) }

// WriteByte appends c, implementing io.ByteWriter.
func (f *Fixed[A]) WriteByte(c byte) error { return PushBack(f, c) }
