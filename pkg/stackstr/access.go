package stackstr

// At returns the byte at pos, or ErrOutOfRange if pos is not within the
// content. Unchecked access goes through s.Data()[pos].
func At[S Storage](s S, pos int) (byte, error) {
	if pos < 0 || pos >= s.Len() {
		return 0, outOfRange(pos, s.Len())
	}
	return s.Data()[pos], nil
}

// Front returns the first byte. On an empty string it returns the terminator.
func Front[S Storage](s S) byte {
	return s.Data()[0]
}

// Back returns the last byte. It panics on an empty string.
func Back[S Storage](s S) byte {
	return s.Data()[s.Len()-1]
}

// Substr returns the content bytes [pos, pos+count), clamping count to the
// end. The result aliases the storage of s.
func Substr[S Storage](s S, pos, count int) ([]byte, error) {
	end := s.Len()
	if pos < 0 || pos > end {
		return nil, outOfRange(pos, end)
	}
	n := pos + span(pos, count, end)
	return s.Data()[pos:n:n], nil
}

// CopyTo copies up to len(dst) content bytes starting at pos into dst and
// returns the number copied.
func CopyTo[S Storage](s S, dst []byte, pos int) (int, error) {
	end := s.Len()
	if pos < 0 || pos > end {
		return 0, outOfRange(pos, end)
	}
	return copy(dst, s.Data()[pos:end]), nil
}
