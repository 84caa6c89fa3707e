package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/haivivi/stackstr/pkg/cli"
	"github.com/haivivi/stackstr/pkg/stackstr"
)

var (
	parseBits     int
	parseUnsigned bool
)

var parseCmd = &cobra.Command{
	Use:   "parse TEXT",
	Short: "Parse a base-10 integer from a fixed-capacity string",
	Long: `Store TEXT in a string of the effective capacity and parse it as a
base-10 integer of the chosen width.

Examples:
  stackstr parse -- -42
  stackstr parse --bits 8 --unsigned 255`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().IntVar(&parseBits, "bits", 64, "integer width: 8, 16, 32 or 64")
	parseCmd.Flags().BoolVar(&parseUnsigned, "unsigned", false, "parse an unsigned integer")
	rootCmd.AddCommand(parseCmd)
}

// parseResult is a parsed integer with the type it was parsed as.
type parseResult struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

func (r parseResult) Text() string { return r.Value }

func runParse(cmd *cobra.Command, args []string) error {
	s, err := newString()
	if err != nil {
		return err
	}
	if err := stackstr.Assign(s, args[0]); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	var value string
	switch {
	case parseBits == 8 && parseUnsigned:
		value, err = parseAs[uint8](s)
	case parseBits == 8:
		value, err = parseAs[int8](s)
	case parseBits == 16 && parseUnsigned:
		value, err = parseAs[uint16](s)
	case parseBits == 16:
		value, err = parseAs[int16](s)
	case parseBits == 32 && parseUnsigned:
		value, err = parseAs[uint32](s)
	case parseBits == 32:
		value, err = parseAs[int32](s)
	case parseBits == 64 && parseUnsigned:
		value, err = parseAs[uint64](s)
	case parseBits == 64:
		value, err = parseAs[int64](s)
	default:
		return fmt.Errorf("unsupported integer width %d", parseBits)
	}
	if err != nil {
		return err
	}

	typ := "int" + strconv.Itoa(parseBits)
	if parseUnsigned {
		typ = "u" + typ
	}
	return cli.Output(parseResult{Type: typ, Value: value}, outputOptions())
}

func parseAs[I constraints.Integer](s *stackstr.Buffer) (string, error) {
	v, err := stackstr.ParseInt[I](s)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}
