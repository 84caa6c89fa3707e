package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/stackstr/pkg/cli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `Manage the stackstr configuration file.

Keys:
  capacity  default string capacity in bytes
  output    default output format (yaml, json, raw)
  color     highlight placeholders in escaped output (true, false)`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := struct {
			Capacity int              `json:"capacity" yaml:"capacity"`
			Output   cli.OutputFormat `json:"output" yaml:"output"`
			Color    bool             `json:"color" yaml:"color"`
			Path     string           `json:"path" yaml:"path"`
		}{
			Capacity: globalConfig.EffectiveCapacity(),
			Output:   globalConfig.Output,
			Color:    globalConfig.Color,
			Path:     globalConfig.Path(),
		}
		if view.Output == "" {
			view.Output = cli.FormatYAML
		}
		opts := outputOptions()
		if opts.Format == cli.FormatRaw {
			opts.Format = cli.FormatYAML
		}
		return cli.Output(view, opts)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(globalConfig.Path())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := globalConfig.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := globalConfig.Save(); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
