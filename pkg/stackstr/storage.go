package stackstr

import (
	"errors"
	"fmt"
	"math"
)

var (
	_ Storage = (*Buffer)(nil)
	_ Storage = (*Fixed[[16]byte])(nil)
)

// NPos is returned by the search functions when nothing matches. As a count
// argument it means "through the end of the content".
const NPos = math.MaxInt

// Errors returned by stackstr operations.
var (
	ErrOutOfRange     = errors.New("stackstr: position out of range")
	ErrLengthExceeded = errors.New("stackstr: length exceeds capacity")
)

// Bytes is any plain byte sequence an operation can read from.
type Bytes interface {
	~string | ~[]byte
}

// Storage is the set of primitives a backend supplies. Everything else in the
// package is built on top of it.
//
// The interface is sealed: Buffer and Fixed are its only implementations.
type Storage interface {
	// Data returns the whole backing buffer, Capacity()+1 bytes including the
	// terminator slot. Writes through it bypass the length bookkeeping.
	Data() []byte

	// Bytes returns the content, Data()[:Len()].
	Bytes() []byte

	// Len returns the number of content bytes.
	Len() int

	// Capacity returns the number of usable bytes, excluding the terminator.
	Capacity() int

	// MaxSize returns the largest length the string can reach. It equals
	// Capacity.
	MaxSize() int

	// Reserve does nothing; the capacity is fixed.
	Reserve(n int)

	// ShrinkToFit does nothing; the capacity is fixed.
	ShrinkToFit()

	// setLen moves the end marker to n and writes the terminator there.
	setLen(n int)
}

// fit returns how many of n bytes can be stored starting at offset at. Under
// the truncating policy the count is cut to the remaining room; otherwise an
// overflow is reported as ErrLengthExceeded.
func fit[S Storage](s S, at, n int) (int, error) {
	room := s.Capacity() - at
	if room < 0 {
		room = 0
	}
	if n <= room {
		return n, nil
	}
	if TruncateOnOverflow {
		return room, nil
	}
	return 0, fmt.Errorf("%w: need %d, capacity %d", ErrLengthExceeded, at+n, s.Capacity())
}

// span clamps count so that [pos, pos+count) stays within length.
func span(pos, count, length int) int {
	if count < 0 || count > length-pos {
		return length - pos
	}
	return count
}

func outOfRange(pos, length int) error {
	return fmt.Errorf("%w: pos %d, length %d", ErrOutOfRange, pos, length)
}

// Len returns the content length of s.
func Len[S Storage](s S) int { return s.Len() }

// Empty reports whether s has no content.
func Empty[S Storage](s S) bool { return s.Len() == 0 }

// Full reports whether s has no free space left.
func Full[S Storage](s S) bool { return s.Len() >= s.Capacity() }

// FreeSpace returns the number of bytes that can still be stored.
func FreeSpace[S Storage](s S) int { return s.Capacity() - s.Len() }
