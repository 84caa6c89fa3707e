// Package stackstr provides fixed-capacity strings that keep their bytes in
// an inline buffer instead of on the heap.
//
// Two backends implement the Storage primitives:
//
//   - Fixed: owns a byte array chosen by its type parameter. The zero value is
//     an empty string, and copying a Fixed copies its bytes.
//
//   - Buffer: adapts memory supplied by the caller. Wrap keeps whatever
//     zero-terminated content the memory already holds.
//
// Every operation (Assign, Append, Insert, Erase, Replace, Find, Compare, ...)
// is a generic function over Storage, so both backends share one
// implementation and calls are resolved at compile time.
//
// The backing buffer always reserves one byte past the capacity for a zero
// terminator, and the byte at Len() is always zero.
//
// # Overflow
//
// Content that does not fit is cut at the capacity. Building with the
// stackstr_strict tag makes the same operations fail with ErrLengthExceeded
// and leave the string unchanged. PushBack on a full string always fails.
//
// Example usage:
//
//	var s stackstr.String15
//	stackstr.Assign(&s, "hello")
//	stackstr.Append(&s, ", world!!!")
//	fmt.Println(s.String()) // "hello, world!!!"
//
//	mem := make([]byte, 8)
//	b := stackstr.Wrap(mem)
//	stackstr.Assign(b, "HelloWorldX") // b holds "HelloWo"
package stackstr

//go:generate go run ../../internal/gensizes -o arrays.go
