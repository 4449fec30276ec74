package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/double128/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the default configuration file, ready to be copied to
~/.double128/config.yaml and edited.

With --resolved, prints the configuration actually in effect after
layering --config and the search path over the defaults. Passing
--config - reads the file from stdin, which checks an edited config
before installing it.

Examples:
  double128 config > ~/.double128/config.yaml
  double128 config --resolved --config ./my-theme.yaml
  double128 config --resolved --config - < ./my-theme.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := resolveConfig(os.Stdin)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// resolveConfig loads the effective configuration. A --config of "-"
// parses stdin over the defaults instead of searching the filesystem.
func resolveConfig(stdin io.Reader) (config.Config, error) {
	if flagConfig != "-" {
		return loadConfig()
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return config.Config{}, fmt.Errorf("reading stdin: %w", err)
	}
	cfg, err := config.Parse(data)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
