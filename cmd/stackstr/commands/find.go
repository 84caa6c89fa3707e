package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/haivivi/stackstr/pkg/cli"
	"github.com/haivivi/stackstr/pkg/stackstr"
)

var (
	findMode string
	findPos  int
)

// findModes maps each --mode to its search and whether it scans backward.
var findModes = map[string]struct {
	search   func(s *stackstr.Buffer, needle string, pos int) int
	backward bool
}{
	"first":        {stackstr.Find[*stackstr.Buffer, string], false},
	"last":         {stackstr.RFind[*stackstr.Buffer, string], true},
	"first-of":     {stackstr.FindFirstOf[*stackstr.Buffer, string], false},
	"last-of":      {stackstr.FindLastOf[*stackstr.Buffer, string], true},
	"first-not-of": {stackstr.FindFirstNotOf[*stackstr.Buffer, string], false},
	"last-not-of":  {stackstr.FindLastNotOf[*stackstr.Buffer, string], true},
}

var findCmd = &cobra.Command{
	Use:   "find TEXT NEEDLE",
	Short: "Search a fixed-capacity string",
	Long: `Store TEXT in a string of the effective capacity and search it for NEEDLE.

Modes:
  first         first occurrence of NEEDLE at or after --pos
  last          last occurrence of NEEDLE starting at or before --pos
  first-of      first byte at or after --pos that is in NEEDLE
  last-of       last byte at or before --pos that is in NEEDLE
  first-not-of  first byte at or after --pos that is not in NEEDLE
  last-not-of   last byte at or before --pos that is not in NEEDLE

Forward modes start at 0 and backward modes at the end unless --pos is given.
A failed search reports index -1.`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVar(&findMode, "mode", "first", "search mode")
	findCmd.Flags().IntVar(&findPos, "pos", -1, "start position")
	rootCmd.AddCommand(findCmd)
}

// findResult is the outcome of a search.
type findResult struct {
	Mode  string `json:"mode" yaml:"mode"`
	Pos   int    `json:"pos" yaml:"pos"`
	Found bool   `json:"found" yaml:"found"`
	Index int    `json:"index" yaml:"index"`
}

func (r findResult) Text() string { return strconv.Itoa(r.Index) }

func runFind(cmd *cobra.Command, args []string) error {
	mode, ok := findModes[findMode]
	if !ok {
		return fmt.Errorf("unknown find mode %q", findMode)
	}
	s, err := newString()
	if err != nil {
		return err
	}
	if err := stackstr.Assign(s, args[0]); err != nil {
		return fmt.Errorf("find: %w", err)
	}

	pos := findPos
	if pos < 0 {
		pos = 0
		if mode.backward {
			pos = stackstr.NPos
		}
	}
	result := findResult{Mode: findMode, Pos: pos, Index: -1}
	if i := mode.search(s, args[1], pos); i != stackstr.NPos {
		result.Found = true
		result.Index = i
	}
	return cli.Output(result, outputOptions())
}
