package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/haivivi/stackstr/cmd/stackstr/internal/build"
	"github.com/haivivi/stackstr/pkg/cli"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat != "" {
			return cli.Output(build.Get(), outputOptions())
		}
		fmt.Println(build.String())
		if verbose {
			fmt.Printf("  go:     %s\n", runtime.Version())
			fmt.Printf("  config: %s\n", globalConfig.Path())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
