// Command gensizes writes the Array constraint and the named capacity aliases
// of package stackstr.
//
// Usage:
//
//	go run ./internal/gensizes -o pkg/stackstr/arrays.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
)

// capacities lists every capacity a Fixed can be built with. Each one becomes
// a [capacity+1]byte term of the Array constraint.
var capacities = func() []int {
	var cs []int
	for c := 0; c <= 64; c++ {
		cs = append(cs, c)
	}
	return append(cs, 80, 96, 100, 127, 128, 191, 192, 255, 256, 511, 512, 1023, 1024, 2047, 2048, 4095, 4096)
}()

// aliases are the named capacities exported for convenience.
var aliases = []int{7, 15, 31, 63, 127, 255}

const termsPerLine = 6

func generate() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by gensizes; DO NOT EDIT.\n\n")
	b.WriteString("package stackstr\n\n")
	b.WriteString("// Array is the set of byte-array types a Fixed can embed. A Fixed over\n")
	b.WriteString("// [N]byte has capacity N-1; the last byte holds the terminator.\n")
	b.WriteString("type Array interface {\n\t")
	for i, c := range capacities {
		if i > 0 {
			b.WriteString(" |")
			if i%termsPerLine == 0 {
				b.WriteString("\n\t\t")
			} else {
				b.WriteString(" ")
			}
		}
		fmt.Fprintf(&b, "~[%d]byte", c+1)
	}
	b.WriteString("\n}\n\n")
	b.WriteString("// Fixed strings of common capacities.\n")
	b.WriteString("type (\n")
	for _, c := range aliases {
		fmt.Fprintf(&b, "\tString%d = Fixed[[%d]byte]\n", c, c+1)
	}
	b.WriteString(")\n")
	return format.Source(b.Bytes())
}

func main() {
	out := flag.String("o", "arrays.go", "output file")
	flag.Parse()

	src, err := generate()
	if err != nil {
		slog.Error("format generated source", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		slog.Error("write generated source", "file", *out, "error", err)
		os.Exit(1)
	}
}
