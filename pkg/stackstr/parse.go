package stackstr

import (
	"fmt"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ParseInt interprets the whole content of s as a base-10 integer of type I.
// Values that do not fit in I are reported as range errors.
func ParseInt[I constraints.Integer, S Storage](s S) (I, error) {
	b := s.Bytes()
	text := unsafe.String(unsafe.SliceData(b), len(b))
	var zero I
	bits := int(unsafe.Sizeof(zero)) * 8
	if ^zero < 0 {
		v, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("stackstr: parse int: %w", err)
		}
		return I(v), nil
	}
	v, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("stackstr: parse uint: %w", err)
	}
	return I(v), nil
}
