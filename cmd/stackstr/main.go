// Package main is the entry point for the stackstr CLI.
//
// Usage:
//
//	stackstr [flags] <command> [args]
//
// Commands:
//
//	fit      - Store text in a fixed-capacity string
//	escape   - Print text with control bytes replaced by placeholders
//	find     - Search text the way the library does
//	parse    - Parse a base-10 integer from a fixed-capacity string
//	config   - Configuration management
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/stackstr/cmd/stackstr/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
