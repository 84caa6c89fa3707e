//go:build stackstr_strict

package stackstr

// TruncateOnOverflow reports whether content that exceeds the capacity is cut
// to fit (true) or rejected with ErrLengthExceeded (false). It is selected at
// build time with the stackstr_strict tag.
const TruncateOnOverflow = false
