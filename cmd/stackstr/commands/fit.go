package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haivivi/stackstr/pkg/cli"
	"github.com/haivivi/stackstr/pkg/stackstr"
)

var fitCmd = &cobra.Command{
	Use:   "fit TEXT...",
	Short: "Store text in a fixed-capacity string",
	Long: `Store TEXT in a string of the effective capacity and report what was kept.

Multiple arguments are joined with single spaces.

Examples:
  stackstr fit --cap 7 HelloWorldX
  stackstr fit -o json hello world`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFit,
}

func init() {
	rootCmd.AddCommand(fitCmd)
}

// fitReport describes the string after an assignment.
type fitReport struct {
	Content   string `json:"content" yaml:"content"`
	Len       int    `json:"len" yaml:"len"`
	Capacity  int    `json:"capacity" yaml:"capacity"`
	Requested int    `json:"requested" yaml:"requested"`
	Truncated bool   `json:"truncated" yaml:"truncated"`
	Hash      string `json:"hash" yaml:"hash"`
	Usage     string `json:"usage" yaml:"usage"`
}

func (r fitReport) Text() string { return r.Content }

func runFit(cmd *cobra.Command, args []string) error {
	s, err := newString()
	if err != nil {
		return err
	}
	for i, arg := range args {
		if i > 0 {
			err = stackstr.PushBack(s, ' ')
		}
		if err == nil {
			err = stackstr.Append(s, arg)
		}
		if err != nil && !stackstr.TruncateOnOverflow {
			return fmt.Errorf("fit: %w", err)
		}
	}

	requested := len(strings.Join(args, " "))
	report := fitReport{
		Content:   s.String(),
		Len:       s.Len(),
		Capacity:  s.Capacity(),
		Requested: requested,
		Truncated: s.Len() < requested,
		Hash:      fmt.Sprintf("%016x", stackstr.Hash(s)),
		Usage:     cli.FormatUsage(s),
	}
	if report.Truncated {
		slog.Warn("text truncated", "dropped", requested-s.Len(), "s", s)
	}
	return cli.Output(report, outputOptions())
}
