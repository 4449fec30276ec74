// double128 is a 4x4 tile-merge puzzle for the terminal.
//
// Usage:
//
//	double128 play           - Play a local game
//	double128 serve          - Start SSH server for remote play
//	double128 odds           - Show the tile distribution
//	double128 config         - Print the default config file
//
// Global flags:
//
//	--config <path> - Custom config YAML (layered over the defaults)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/double128/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "double128",
	Short: "Double to 128 - a tile-merge puzzle in your terminal",
	Long: `Double to 128 is a 4x4 puzzle. Each turn you are given a tile and
place it on an empty cell. Equal neighbours merge into the new tile and
double it, up to four times in a row. A tile that reaches 128 explodes and
clears the 3x3 block around it. The game ends when the grid is full.

Available commands:
  play     - Play a local game
  serve    - Start SSH server for remote play
  odds     - Show how often each tile is drawn
  config   - Print the configuration

Examples:
  double128 play
  double128 play --seed 42
  double128 serve --ssh :2222
  double128 odds --samples 100000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(oddsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration selected by --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
