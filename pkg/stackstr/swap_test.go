package stackstr

import "testing"

func TestSwap_DifferentCapacities(t *testing.T) {
	var a Fixed[[6]byte]
	var b Fixed[[4]byte]
	mustAssign(t, &a, "hello")
	mustAssign(t, &b, "hi")

	Swap(&a, &b)

	if a.String() != "hi" {
		t.Fatalf("a = %q, want %q", a.String(), "hi")
	}
	if b.String() != "hel" {
		t.Fatalf("b = %q, want %q", b.String(), "hel")
	}
	checkTerminated(t, &a)
	checkTerminated(t, &b)
}

func TestSwap_SameCapacity(t *testing.T) {
	var a, b String15
	mustAssign(t, &a, "left side")
	mustAssign(t, &b, "right")

	Swap(&a, &b)
	if a.String() != "right" || b.String() != "left side" {
		t.Fatalf("after Swap: a = %q, b = %q", a.String(), b.String())
	}
	Swap(&a, &b)
	if a.String() != "left side" || b.String() != "right" {
		t.Fatalf("after second Swap: a = %q, b = %q", a.String(), b.String())
	}
}

func TestSwap_BufferAndFixed(t *testing.T) {
	mem := make([]byte, 4)
	b := Wrap(mem)
	var f String15
	mustAssign(t, b, "abc")
	mustAssign(t, &f, "0123456789")

	Swap(b, &f)
	if b.String() != "012" {
		t.Fatalf("buffer = %q, want %q", b.String(), "012")
	}
	if f.String() != "abc" {
		t.Fatalf("fixed = %q, want %q", f.String(), "abc")
	}
	checkTerminated(t, b)
	checkTerminated(t, &f)
}
