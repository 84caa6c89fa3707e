//go:build stackstr_strict

package stackstr

import (
	"errors"
	"testing"
)

func TestStrict_AssignRejects(t *testing.T) {
	var s String7
	mustAssign(t, &s, "keep")
	if err := Assign(&s, "HelloWorldX"); !errors.Is(err, ErrLengthExceeded) {
		t.Fatalf("Assign error = %v, want ErrLengthExceeded", err)
	}
	if s.String() != "keep" {
		t.Fatalf("String() = %q, want unchanged %q", s.String(), "keep")
	}
	checkTerminated(t, &s)
}

func TestStrict_InsertRejects(t *testing.T) {
	var s String7
	mustAssign(t, &s, "abcdef")
	if err := Insert(&s, 2, "XY"); !errors.Is(err, ErrLengthExceeded) {
		t.Fatalf("Insert error = %v, want ErrLengthExceeded", err)
	}
	if err := Insert(&s, 2, "X"); err != nil {
		t.Fatalf("Insert that fits error: %v", err)
	}
	if s.String() != "abXcdef" {
		t.Fatalf("String() = %q, want %q", s.String(), "abXcdef")
	}

	// Full now: a single byte no longer fits.
	if got := InsertAt(&s, 0, 'Y'); got != s.Len() {
		t.Fatalf("InsertAt = %d, want end %d", got, s.Len())
	}
	if s.String() != "abXcdef" {
		t.Fatalf("String() = %q, want unchanged", s.String())
	}
	checkTerminated(t, &s)
}

func TestStrict_InsertAtFits(t *testing.T) {
	var s String7
	mustAssign(t, &s, "abcdef")
	if got := InsertAt(&s, 0, 'X'); got != 0 {
		t.Fatalf("InsertAt = %d, want 0", got)
	}
	if s.String() != "Xabcdef" {
		t.Fatalf("String() = %q, want %q", s.String(), "Xabcdef")
	}
}

func TestStrict_ReplaceRejects(t *testing.T) {
	var s String7
	mustAssign(t, &s, "abcdefg")
	if err := Replace(&s, 1, 1, "XYZ"); !errors.Is(err, ErrLengthExceeded) {
		t.Fatalf("Replace error = %v, want ErrLengthExceeded", err)
	}
	if s.String() != "abcdefg" {
		t.Fatalf("String() = %q, want unchanged", s.String())
	}
}

func TestStrict_WriteAndFormat(t *testing.T) {
	var s String7
	mustAssign(t, &s, "abcde")
	if n, err := s.Write([]byte("xyz")); n != 0 || !errors.Is(err, ErrLengthExceeded) {
		t.Fatalf("Write = %d, %v; want 0, ErrLengthExceeded", n, err)
	}
	if err := Assignf(&s, "%s", "too long for it"); !errors.Is(err, ErrLengthExceeded) {
		t.Fatalf("Assignf error = %v, want ErrLengthExceeded", err)
	}
	if s.String() != "abcde" {
		t.Fatalf("String() = %q, want unchanged", s.String())
	}
}
