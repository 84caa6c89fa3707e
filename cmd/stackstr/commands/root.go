package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/stackstr/pkg/cli"
	"github.com/haivivi/stackstr/pkg/stackstr"
)

// ConfigEnv overrides the config file location when --config is not given.
const ConfigEnv = "STACKSTR_CONFIG"

var (
	// Global flags
	verbose      bool
	configPath   string
	outputFormat string
	capacity     int
)

var rootCmd = &cobra.Command{
	Use:   "stackstr",
	Short: "Fixed-capacity string toolkit",
	Long: `stackstr - inspect how text behaves in fixed-capacity strings.

Every command stores its input in a string of a fixed capacity (--cap,
or the configured default) and reports the result. Depending on how the
library was built, text beyond the capacity is either truncated or
rejected; 'stackstr version' shows which.

Configuration is stored in ~/.stackstr/config.yaml, or the file named
by --config or $STACKSTR_CONFIG.

Examples:
  stackstr fit --cap 7 HelloWorldX
  printf 'a\x01b' | stackstr escape
  stackstr find --mode last-of "hello world" lo
  stackstr config set capacity 127`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&configPath, "config", "", "config file (default ~/.stackstr/config.yaml)")
	pf.StringVarP(&outputFormat, "output", "o", "", "output format: yaml, json or raw")
	pf.IntVar(&capacity, "cap", -1, "string capacity in bytes (default from config)")
}

// globalConfig is loaded by setup before any command runs.
var globalConfig *cli.Config

func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	path := configPath
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	cfg, err := cli.LoadConfig(path)
	if err != nil {
		return err
	}
	globalConfig = cfg
	slog.Debug("config loaded", "path", cfg.Path())
	return nil
}

// effectiveCapacity returns the --cap flag, or the configured default.
func effectiveCapacity() (int, error) {
	if capacity < 0 {
		return globalConfig.EffectiveCapacity(), nil
	}
	if capacity > cli.MaxCapacity {
		return 0, fmt.Errorf("capacity %d exceeds maximum %d", capacity, cli.MaxCapacity)
	}
	return capacity, nil
}

// newString allocates a string of the effective capacity.
func newString() (*stackstr.Buffer, error) {
	n, err := effectiveCapacity()
	if err != nil {
		return nil, err
	}
	return stackstr.Wrap(make([]byte, n+1)), nil
}

// outputOptions resolves the output format from the flag and the config.
func outputOptions() cli.OutputOptions {
	format := cli.OutputFormat(outputFormat)
	if format == "" {
		format = globalConfig.Output
	}
	return cli.OutputOptions{Format: format}
}
