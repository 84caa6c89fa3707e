package stackstr

import "iter"

// All returns an iterator over the index and value of each content byte.
// The content must not change length during iteration.
func All[S Storage](s S) iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, c := range s.Bytes() {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward returns an iterator over the content bytes from last to first.
func Backward[S Storage](s S) iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		b := s.Bytes()
		for i := len(b) - 1; i >= 0; i-- {
			if !yield(i, b[i]) {
				return
			}
		}
	}
}
