package stackstr

import "bytes"

// Search functions follow the rules of a read-only view over the content:
// a start position past the end finds nothing, and NPos is returned when
// nothing matches.

// Find returns the first index >= pos where needle occurs. An empty needle
// matches at pos.
func Find[S Storage, T Bytes](s S, needle T, pos int) int {
	h := s.Bytes()
	if pos < 0 || pos > len(h) {
		return NPos
	}
	if i := index(h[pos:], needle); i >= 0 {
		return pos + i
	}
	return NPos
}

// FindByte returns the first index >= pos holding c.
func FindByte[S Storage](s S, c byte, pos int) int {
	h := s.Bytes()
	if pos < 0 || pos >= len(h) {
		return NPos
	}
	if i := bytes.IndexByte(h[pos:], c); i >= 0 {
		return pos + i
	}
	return NPos
}

// RFind returns the last index <= pos where needle starts.
func RFind[S Storage, T Bytes](s S, needle T, pos int) int {
	h := s.Bytes()
	m := len(needle)
	if pos < 0 || m > len(h) {
		return NPos
	}
	for i := min(pos, len(h)-m); i >= 0; i-- {
		if equal(h[i:i+m], needle) {
			return i
		}
	}
	return NPos
}

// RFindByte returns the last index <= pos holding c.
func RFindByte[S Storage](s S, c byte, pos int) int {
	h := s.Bytes()
	if pos < 0 || len(h) == 0 {
		return NPos
	}
	if i := bytes.LastIndexByte(h[:min(pos, len(h)-1)+1], c); i >= 0 {
		return i
	}
	return NPos
}

// FindFirstOf returns the first index >= pos holding any byte of set.
func FindFirstOf[S Storage, T Bytes](s S, set T, pos int) int {
	return scanForward(s.Bytes(), makeByteSet(set), pos, true)
}

// FindFirstNotOf returns the first index >= pos holding a byte not in set.
func FindFirstNotOf[S Storage, T Bytes](s S, set T, pos int) int {
	return scanForward(s.Bytes(), makeByteSet(set), pos, false)
}

// FindLastOf returns the last index <= pos holding any byte of set.
func FindLastOf[S Storage, T Bytes](s S, set T, pos int) int {
	return scanBackward(s.Bytes(), makeByteSet(set), pos, true)
}

// FindLastNotOf returns the last index <= pos holding a byte not in set.
func FindLastNotOf[S Storage, T Bytes](s S, set T, pos int) int {
	return scanBackward(s.Bytes(), makeByteSet(set), pos, false)
}

// Contains reports whether needle occurs in s.
func Contains[S Storage, T Bytes](s S, needle T) bool {
	return index(s.Bytes(), needle) >= 0
}

type byteSet [8]uint32

func makeByteSet[T Bytes](chars T) byteSet {
	var bs byteSet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		bs[c/32] |= 1 << (c % 32)
	}
	return bs
}

func (bs *byteSet) has(c byte) bool {
	return bs[c/32]&(1<<(c%32)) != 0
}

func scanForward(h []byte, set byteSet, pos int, want bool) int {
	if pos < 0 {
		return NPos
	}
	for i := pos; i < len(h); i++ {
		if set.has(h[i]) == want {
			return i
		}
	}
	return NPos
}

func scanBackward(h []byte, set byteSet, pos int, want bool) int {
	if pos < 0 || len(h) == 0 {
		return NPos
	}
	for i := min(pos, len(h)-1); i >= 0; i-- {
		if set.has(h[i]) == want {
			return i
		}
	}
	return NPos
}

// index is bytes.Index over either kind of needle.
func index[T Bytes](h []byte, needle T) int {
	m := len(needle)
	if m == 0 {
		return 0
	}
	last := len(h) - m
	for i := 0; i <= last; i++ {
		j := bytes.IndexByte(h[i:last+1], needle[0])
		if j < 0 {
			return -1
		}
		i += j
		if equal(h[i:i+m], needle) {
			return i
		}
	}
	return -1
}

// equal reports whether b and x hold the same bytes.
func equal[T Bytes](b []byte, x T) bool {
	if len(b) != len(x) {
		return false
	}
	for i := range b {
		if b[i] != x[i] {
			return false
		}
	}
	return true
}
