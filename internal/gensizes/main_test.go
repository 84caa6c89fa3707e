package main

import (
	"bytes"
	"os"
	"testing"
)

func TestGeneratedFileUpToDate(t *testing.T) {
	want, err := generate()
	if err != nil {
		t.Fatalf("generate() error: %v", err)
	}
	got, err := os.ReadFile("../../pkg/stackstr/arrays.go")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("pkg/stackstr/arrays.go is stale; run go generate ./pkg/stackstr")
	}
}

func TestCapacitiesSorted(t *testing.T) {
	for i := 1; i < len(capacities); i++ {
		if capacities[i] <= capacities[i-1] {
			t.Fatalf("capacities[%d] = %d after %d", i, capacities[i], capacities[i-1])
		}
	}
	in := make(map[int]bool, len(capacities))
	for _, c := range capacities {
		in[c] = true
	}
	for _, a := range aliases {
		if !in[a] {
			t.Errorf("alias capacity %d is not in capacities", a)
		}
	}
}
