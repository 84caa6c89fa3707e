// Package cli provides the configuration, output formatting and terminal
// styling shared by the stackstr command-line tool.
//
// Configuration is a single YAML file, ~/.stackstr/config.yaml by default,
// holding the capacity and output format used when flags leave them unset.
//
// Example usage:
//
//	cfg, err := cli.LoadConfig("")
//	if err != nil {
//	    return err
//	}
//	return cli.Output(report, cli.OutputOptions{Format: cfg.Output})
package cli
