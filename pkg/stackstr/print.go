package stackstr

import "io"

// Placeholder replaces control bytes when content is printed.
const Placeholder = '.'

// Fprint writes the content of s to w, replacing every byte below 0x20
// except tab and newline with Placeholder.
func Fprint[S Storage](w io.Writer, s S) (int, error) {
	var chunk [64]byte
	b := s.Bytes()
	total := 0
	for len(b) > 0 {
		n := min(len(b), len(chunk))
		for i, c := range b[:n] {
			chunk[i] = printable(c)
		}
		m, err := w.Write(chunk[:n])
		total += m
		if err != nil {
			return total, err
		}
		b = b[n:]
	}
	return total, nil
}

// Escape appends the printable form of the content of s to dst.
func Escape[S Storage](dst []byte, s S) []byte {
	for _, c := range s.Bytes() {
		dst = append(dst, printable(c))
	}
	return dst
}

func printable(c byte) byte {
	if c < 0x20 && c != '\t' && c != '\n' {
		return Placeholder
	}
	return c
}
