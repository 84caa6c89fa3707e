package stackstr

import (
	"errors"
	"fmt"
)

// Assignf replaces the content of s with the formatted text.
func Assignf[S Storage](s S, format string, args ...any) error {
	return printf(s, 0, format, args...)
}

// Appendf adds the formatted text after the content of s.
func Appendf[S Storage](s S, format string, args ...any) error {
	return printf(s, s.Len(), format, args...)
}

// Fixedf returns a Fixed holding the formatted text.
func Fixedf[A Array](format string, args ...any) (Fixed[A], error) {
	var f Fixed[A]
	err := Assignf(&f, format, args...)
	return f, err
}

func printf[S Storage](s S, at int, format string, args ...any) error {
	_, err := fmt.Fprintf(&writer[S]{s: s, at: at}, format, args...)
	if TruncateOnOverflow && errors.Is(err, ErrLengthExceeded) {
		return nil
	}
	return err
}

// writer stores everything written to it from offset at onwards, cutting the
// content after the last write.
type writer[S Storage] struct {
	s  S
	at int
}

func (w *writer[S]) Write(p []byte) (int, error) {
	n, err := writeAt(w.s, w.at, p)
	w.at += n
	return n, err
}
