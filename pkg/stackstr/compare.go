package stackstr

// Compare compares the content of s with x lexicographically. The result is
// 0 if they are equal, -1 if s sorts first and +1 otherwise.
func Compare[S Storage, T Bytes](s S, x T) int {
	return compare(s.Bytes(), x)
}

// CompareSub compares the content bytes [pos, pos+count) with x.
func CompareSub[S Storage, T Bytes](s S, pos, count int, x T) (int, error) {
	sub, err := Substr(s, pos, count)
	if err != nil {
		return 0, err
	}
	return compare(sub, x), nil
}

// Equal reports whether s holds exactly the bytes of x. Lengths are compared
// before any byte, and Equal(s, x) agrees with Compare(s, x) == 0.
func Equal[S Storage, T Bytes](s S, x T) bool {
	return equal(s.Bytes(), x)
}

// StartsWith reports whether the content of s begins with prefix.
func StartsWith[S Storage, T Bytes](s S, prefix T) bool {
	b := s.Bytes()
	return len(b) >= len(prefix) && equal(b[:len(prefix)], prefix)
}

// EndsWith reports whether the content of s ends with suffix.
func EndsWith[S Storage, T Bytes](s S, suffix T) bool {
	b := s.Bytes()
	return len(b) >= len(suffix) && equal(b[len(b)-len(suffix):], suffix)
}

func compare[T Bytes](b []byte, x T) int {
	n := min(len(b), len(x))
	for i := 0; i < n; i++ {
		switch {
		case b[i] < x[i]:
			return -1
		case b[i] > x[i]:
			return 1
		}
	}
	switch {
	case len(b) < len(x):
		return -1
	case len(b) > len(x):
		return 1
	}
	return 0
}
