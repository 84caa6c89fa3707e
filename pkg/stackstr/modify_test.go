package stackstr

import (
	"errors"
	"testing"
)

func TestInsert(t *testing.T) {
	var s String15
	mustAssign(t, &s, "held")
	if err := Insert(&s, 3, "lo worl"); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if s.String() != "hello world" {
		t.Fatalf("String() = %q, want %q", s.String(), "hello world")
	}
	if err := Insert(&s, 12, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Insert past end error = %v, want ErrOutOfRange", err)
	}
	checkTerminated(t, &s)
}

func TestInsertFill(t *testing.T) {
	var s String15
	mustAssign(t, &s, "ab")
	if err := InsertFill(&s, 1, 3, '*'); err != nil {
		t.Fatalf("InsertFill error: %v", err)
	}
	if s.String() != "a***b" {
		t.Fatalf("String() = %q, want %q", s.String(), "a***b")
	}
}

func TestInsertAt(t *testing.T) {
	var s String7
	mustAssign(t, &s, "ac")
	if got := InsertAt(&s, 1, 'b'); got != 1 {
		t.Fatalf("InsertAt = %d, want 1", got)
	}
	if s.String() != "abc" {
		t.Fatalf("String() = %q, want %q", s.String(), "abc")
	}
	if got := InsertAt(&s, 9, 'x'); got != s.Len() {
		t.Fatalf("InsertAt past end = %d, want end %d", got, s.Len())
	}
	if got := InsertRangeAt(&s, 3, "de"); got != 3 || s.String() != "abcde" {
		t.Fatalf("InsertRangeAt = %d, %q", got, s.String())
	}
}

func TestErase(t *testing.T) {
	var s String15
	mustAssign(t, &s, "hello world")
	if err := Erase(&s, 5, NPos); err != nil {
		t.Fatalf("Erase error: %v", err)
	}
	if s.String() != "hello" {
		t.Fatalf("String() = %q, want %q", s.String(), "hello")
	}
	if err := Erase(&s, 1, 2); err != nil {
		t.Fatalf("Erase error: %v", err)
	}
	if s.String() != "hlo" {
		t.Fatalf("String() = %q, want %q", s.String(), "hlo")
	}
	if err := Erase(&s, 3, 10); err != nil {
		t.Fatalf("Erase at end error: %v", err)
	}
	if err := Erase(&s, 4, 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Erase past end error = %v, want ErrOutOfRange", err)
	}
	checkTerminated(t, &s)
}

func TestEraseAt_BeyondEnd(t *testing.T) {
	var s String7
	mustAssign(t, &s, "abc")
	for _, pos := range []int{3, 4, 100, -1} {
		if got := EraseAt(&s, pos); got != s.Len() {
			t.Errorf("EraseAt(%d) = %d, want end %d", pos, got, s.Len())
		}
		if s.String() != "abc" {
			t.Fatalf("EraseAt(%d) changed content to %q", pos, s.String())
		}
	}
	if got := EraseAt(&s, 1); got != 1 || s.String() != "ac" {
		t.Fatalf("EraseAt(1) = %d, %q", got, s.String())
	}
}

func TestEraseRange(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
		want        string
		ret         int
	}{
		{"middle", 1, 3, "adef", 1},
		{"to end", 2, 6, "ab", 2},
		{"empty", 2, 2, "abcdef", 2},
		{"reversed", 3, 1, "abcdef", 6},
		{"past end", 4, 7, "abcdef", 6},
		{"negative", -1, 2, "abcdef", 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s String7
			mustAssign(t, &s, "abcdef")
			if got := EraseRange(&s, tc.first, tc.last); got != tc.ret {
				t.Fatalf("EraseRange = %d, want %d", got, tc.ret)
			}
			if s.String() != tc.want {
				t.Fatalf("String() = %q, want %q", s.String(), tc.want)
			}
			checkTerminated(t, &s)
		})
	}
}

func TestEraseThenInsert_Restores(t *testing.T) {
	var s String15
	mustAssign(t, &s, "hello world")

	var saved [5]byte
	sub, _ := Substr(&s, 3, 5)
	n := copy(saved[:], sub)

	EraseRange(&s, 3, 8)
	if s.String() != "helrld" {
		t.Fatalf("after erase = %q", s.String())
	}
	InsertRangeAt(&s, 3, saved[:n])
	if s.String() != "hello world" {
		t.Fatalf("after insert = %q, want %q", s.String(), "hello world")
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name       string
		pos, count int
		src        string
		want       string
	}{
		{"same length", 0, 5, "HOWDY", "HOWDY world"},
		{"shorter", 0, 5, "HEY", "HEY world"},
		{"longer", 6, 5, "there!", "hello there!"},
		{"count clamped", 6, NPos, "all", "hello all"},
		{"insert only", 5, 0, ",", "hello, world"},
		{"erase only", 5, 6, "", "hello"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s String15
			mustAssign(t, &s, "hello world")
			if err := Replace(&s, tc.pos, tc.count, tc.src); err != nil {
				t.Fatalf("Replace error: %v", err)
			}
			if s.String() != tc.want {
				t.Fatalf("String() = %q, want %q", s.String(), tc.want)
			}
			checkTerminated(t, &s)
		})
	}

	var s String15
	mustAssign(t, &s, "abc")
	if err := Replace(&s, 4, 1, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Replace past end error = %v, want ErrOutOfRange", err)
	}
}

func TestReplaceRange_Invalid(t *testing.T) {
	var s String7
	mustAssign(t, &s, "abc")
	if got := ReplaceRange(&s, 2, 1, "x"); got != 3 || s.String() != "abc" {
		t.Fatalf("ReplaceRange reversed = %d, %q", got, s.String())
	}
	if got := ReplaceRange(&s, 0, 4, "x"); got != 3 || s.String() != "abc" {
		t.Fatalf("ReplaceRange past end = %d, %q", got, s.String())
	}
	if got := ReplaceRange(&s, 1, 2, "BB"); got != 1 || s.String() != "aBBc" {
		t.Fatalf("ReplaceRange = %d, %q", got, s.String())
	}
}
