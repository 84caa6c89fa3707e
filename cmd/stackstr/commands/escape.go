package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/stackstr/pkg/cli"
	"github.com/haivivi/stackstr/pkg/stackstr"
)

var escapeColor bool

var escapeCmd = &cobra.Command{
	Use:   "escape [TEXT]",
	Short: "Print text with control bytes replaced by placeholders",
	Long: `Store TEXT, or standard input when TEXT is omitted, in a string of the
effective capacity and print it with control bytes other than tab and
newline shown as '.'.

Examples:
  stackstr escape "$(printf 'a\x01b')"
  head -c 64 /dev/urandom | stackstr escape --cap 32 --color`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEscape,
}

func init() {
	escapeCmd.Flags().BoolVar(&escapeColor, "color", false, "highlight placeholders (default from config)")
	rootCmd.AddCommand(escapeCmd)
}

// escapeReport is the structured form of escaped output.
type escapeReport struct {
	Escaped  string `json:"escaped" yaml:"escaped"`
	Len      int    `json:"len" yaml:"len"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}

func (r escapeReport) Text() string { return r.Escaped }

func runEscape(cmd *cobra.Command, args []string) error {
	s, err := newString()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		err = stackstr.Assign(s, args[0])
	} else {
		_, err = io.Copy(s, cmd.InOrStdin())
	}
	if err != nil {
		if !errors.Is(err, stackstr.ErrLengthExceeded) {
			return fmt.Errorf("escape: %w", err)
		}
		slog.Warn("input does not fit", "error", err, "s", s)
	}

	if outputFormat != "" {
		report := escapeReport{
			Escaped:  string(stackstr.Escape(nil, s)),
			Len:      s.Len(),
			Capacity: s.Capacity(),
		}
		return cli.Output(report, outputOptions())
	}

	if escapeColor || globalConfig.Color {
		styles := cli.NewStyles(cli.DefaultTheme)
		fmt.Println(styles.RenderEscaped(s))
		if verbose {
			fmt.Fprintln(os.Stderr, styles.RenderSummary(s))
		}
		return nil
	}
	if _, err := stackstr.Fprint(os.Stdout, s); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
