package stackstr

import "fmt"

// Assign replaces the content of s with src.
func Assign[S Storage, T Bytes](s S, src T) error {
	n, err := fit(s, 0, len(src))
	if err != nil {
		return err
	}
	copy(s.Data()[:n], src)
	s.setLen(n)
	return nil
}

// AssignFill replaces the content of s with n copies of c.
func AssignFill[S Storage](s S, n int, c byte) error {
	n, err := fit(s, 0, max(n, 0))
	if err != nil {
		return err
	}
	fill(s.Data()[:n], c)
	s.setLen(n)
	return nil
}

// AssignSub replaces the content of s with src[pos:pos+count]. The count is
// clamped to the end of src; pos past the end of src is an error.
func AssignSub[S Storage, T Bytes](s S, src T, pos, count int) error {
	if pos < 0 || pos > len(src) {
		return outOfRange(pos, len(src))
	}
	return Assign(s, src[pos:pos+span(pos, count, len(src))])
}

// Append adds src after the content of s.
func Append[S Storage, T Bytes](s S, src T) error {
	end := s.Len()
	n, err := fit(s, end, len(src))
	if err != nil {
		return err
	}
	copy(s.Data()[end:end+n], src)
	s.setLen(end + n)
	return nil
}

// AppendFill adds n copies of c after the content of s.
func AppendFill[S Storage](s S, n int, c byte) error {
	end := s.Len()
	n, err := fit(s, end, max(n, 0))
	if err != nil {
		return err
	}
	fill(s.Data()[end:end+n], c)
	s.setLen(end + n)
	return nil
}

// AppendSub adds src[pos:pos+count] after the content of s.
func AppendSub[S Storage, T Bytes](s S, src T, pos, count int) error {
	if pos < 0 || pos > len(src) {
		return outOfRange(pos, len(src))
	}
	return Append(s, src[pos:pos+span(pos, count, len(src))])
}

// PushBack adds the byte c. It fails with ErrLengthExceeded when s is full,
// whatever the overflow policy.
func PushBack[S Storage](s S, c byte) error {
	end := s.Len()
	if end >= s.Capacity() {
		return fmt.Errorf("%w: push to full string of capacity %d", ErrLengthExceeded, s.Capacity())
	}
	s.Data()[end] = c
	s.setLen(end + 1)
	return nil
}

// PopBack removes the last byte. It does nothing on an empty string.
func PopBack[S Storage](s S) {
	if end := s.Len(); end > 0 {
		s.setLen(end - 1)
	}
}

// Resize sets the length of s to n. Growing pads with c; shrinking drops the
// tail.
func Resize[S Storage](s S, n int, c byte) error {
	if n < 0 {
		return outOfRange(n, s.Len())
	}
	end := s.Len()
	if n <= end {
		s.setLen(n)
		return nil
	}
	n, err := fit(s, 0, n)
	if err != nil {
		return err
	}
	fill(s.Data()[end:n], c)
	s.setLen(n)
	return nil
}

// Clear empties s.
func Clear[S Storage](s S) {
	s.setLen(0)
}

// write appends p for the io.Writer family of methods.
func write[S Storage, T Bytes](s S, p T) (int, error) {
	return writeAt(s, s.Len(), p)
}

// writeAt stores p at offset at and ends the content after it. A short write
// returns the stored count together with ErrLengthExceeded.
func writeAt[S Storage, T Bytes](s S, at int, p T) (int, error) {
	n, err := fit(s, at, len(p))
	if err != nil {
		return 0, err
	}
	copy(s.Data()[at:at+n], p)
	s.setLen(at + n)
	if n < len(p) {
		return n, fmt.Errorf("%w: wrote %d of %d bytes", ErrLengthExceeded, n, len(p))
	}
	return n, nil
}

func fill(b []byte, c byte) {
	for i := range b {
		b[i] = c
	}
}
