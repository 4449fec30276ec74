package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/double128/internal/engine"
)

var flagSamples int

var oddsCmd = &cobra.Command{
	Use:   "odds",
	Short: "Show the tile distribution",
	Long: `Print how likely each pending tile is.

With --samples, also draws that many tiles and prints the observed
frequencies next to the expected ones. Use --seed for a repeatable run.

Examples:
  double128 odds
  double128 odds --samples 100000 --seed 1`,
	Args: cobra.NoArgs,
	RunE: runOdds,
}

func init() {
	oddsCmd.Flags().IntVar(&flagSamples, "samples", 0, "Number of tiles to draw for an empirical check")
}

func runOdds(_ *cobra.Command, _ []string) error {
	if flagSamples < 0 {
		return fmt.Errorf("--samples must be >= 0, got %d", flagSamples)
	}

	odds := engine.Odds()

	var counts map[int]int
	if flagSamples > 0 {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		counts = sample(rand.New(rand.NewSource(seed)), flagSamples)
	}

	if counts == nil {
		fmt.Printf("  %5s  %6s  %8s\n", "Tile", "Weight", "Chance")
		fmt.Printf("  %5s  %6s  %8s\n", "----", "------", "------")
	} else {
		fmt.Printf("  %5s  %6s  %8s  %8s\n", "Tile", "Weight", "Chance", "Observed")
		fmt.Printf("  %5s  %6s  %8s  %8s\n", "----", "------", "------", "--------")
	}

	for _, o := range odds {
		line := fmt.Sprintf("  %5d  %6d  %7.3f%%", o.Value, o.Weight, 100*o.Probability())
		if counts != nil {
			line += fmt.Sprintf("  %7.3f%%", 100*float64(counts[o.Value])/float64(flagSamples))
		}
		fmt.Println(line)
	}

	if counts != nil {
		fmt.Printf("\n%d samples\n", flagSamples)
	}
	return nil
}

// sample draws n tiles from src and counts each value.
func sample(src engine.Source, n int) map[int]int {
	counts := make(map[int]int)
	for range n {
		counts[engine.Draw(src)]++
	}
	return counts
}
