package stackstr

// Insert and Replace read src while shifting the content of s, so src must
// not alias the storage of s.
//
// The index forms (Insert, Erase, Replace) report a bad index as
// ErrOutOfRange. The position forms (InsertAt, EraseAt, EraseRange, ...)
// behave like iterators instead: they return the position following the
// edit, and an invalid position or range leaves s untouched and returns
// Len(s), the end position.

// Insert inserts src before index idx. Content pushed past the capacity is
// dropped.
func Insert[S Storage, T Bytes](s S, idx int, src T) error {
	if idx < 0 || idx > s.Len() {
		return outOfRange(idx, s.Len())
	}
	n, err := open(s, idx, len(src))
	if err != nil {
		return err
	}
	copy(s.Data()[idx:idx+n], src)
	return nil
}

// InsertFill inserts n copies of c before index idx.
func InsertFill[S Storage](s S, idx, n int, c byte) error {
	if idx < 0 || idx > s.Len() {
		return outOfRange(idx, s.Len())
	}
	n, err := open(s, idx, max(n, 0))
	if err != nil {
		return err
	}
	fill(s.Data()[idx:idx+n], c)
	return nil
}

// InsertAt inserts c before position pos and returns pos.
func InsertAt[S Storage](s S, pos int, c byte) int {
	if pos < 0 || pos > s.Len() {
		return s.Len()
	}
	n, err := open(s, pos, 1)
	if err != nil {
		return s.Len()
	}
	if n == 1 {
		s.Data()[pos] = c
	}
	return pos
}

// InsertRangeAt inserts src before position pos and returns pos.
func InsertRangeAt[S Storage, T Bytes](s S, pos int, src T) int {
	if pos < 0 || pos > s.Len() {
		return s.Len()
	}
	n, err := open(s, pos, len(src))
	if err != nil {
		return s.Len()
	}
	copy(s.Data()[pos:pos+n], src)
	return pos
}

// Erase removes count bytes starting at idx, clamping count to the end.
func Erase[S Storage](s S, idx, count int) error {
	end := s.Len()
	if idx < 0 || idx > end {
		return outOfRange(idx, end)
	}
	closeGap(s, idx, idx+span(idx, count, end))
	return nil
}

// EraseAt removes the byte at pos and returns the position of the byte that
// followed it.
func EraseAt[S Storage](s S, pos int) int {
	if pos < 0 || pos >= s.Len() {
		return s.Len()
	}
	closeGap(s, pos, pos+1)
	return pos
}

// EraseRange removes the bytes in [first, last) and returns first.
func EraseRange[S Storage](s S, first, last int) int {
	if first < 0 || first > last || last > s.Len() {
		return s.Len()
	}
	closeGap(s, first, last)
	return first
}

// Replace replaces the count bytes starting at pos with src.
func Replace[S Storage, T Bytes](s S, pos, count int, src T) error {
	end := s.Len()
	if pos < 0 || pos > end {
		return outOfRange(pos, end)
	}
	return replace(s, pos, pos+span(pos, count, end), src)
}

// ReplaceRange replaces the bytes in [first, last) with src and returns
// first.
func ReplaceRange[S Storage, T Bytes](s S, first, last int, src T) int {
	if first < 0 || first > last || last > s.Len() {
		return s.Len()
	}
	if err := replace(s, first, last, src); err != nil {
		return s.Len()
	}
	return first
}

// replace overwrites the common prefix of [first, last) and src in place,
// then inserts the rest of src or erases the rest of the old range.
func replace[S Storage, T Bytes](s S, first, last int, src T) error {
	old := last - first
	if _, err := fit(s, s.Len()-old, len(src)); err != nil {
		return err
	}
	common := min(old, len(src))
	copy(s.Data()[first:first+common], src[:common])
	at := first + common
	if len(src) > old {
		n, _ := open(s, at, len(src)-common)
		copy(s.Data()[at:at+n], src[common:])
		return nil
	}
	closeGap(s, at, last)
	return nil
}

// open shifts the content from idx right by up to n bytes and returns the
// size of the gap it made. The gap is cut so that idx+gap stays within the
// capacity, and trailing content that no longer fits is dropped.
func open[S Storage](s S, idx, n int) (int, error) {
	end := s.Len()
	if _, err := fit(s, end, n); err != nil {
		return 0, err
	}
	room := s.Capacity() - idx
	n = min(n, room)
	tail := min(end-idx, room-n)
	d := s.Data()
	copy(d[idx+n:idx+n+tail], d[idx:idx+tail])
	s.setLen(idx + n + tail)
	return n, nil
}

// closeGap removes [from, to) by shifting the remainder left.
func closeGap[S Storage](s S, from, to int) {
	end := s.Len()
	if from == to {
		return
	}
	d := s.Data()
	copy(d[from:], d[to:end])
	s.setLen(end - (to - from))
}
