package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/double128/internal/config"
	"github.com/vovakirdan/double128/internal/core"
	"github.com/vovakirdan/double128/internal/game"
	"github.com/vovakirdan/double128/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local game",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/hjkl/wasd - Move the cursor
  Enter/Space      - Place the pending tile
  Mouse click      - Place the pending tile on the clicked cell
  R                - New game (once the grid is full)
  Ctrl+S           - Save a screenshot to ~/.double128/screenshots
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Examples:
  double128 play
  double128 play --seed 42
  double128 play --log-file ./double128.log
  double128 play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write gameplay logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	var logger *log.Logger
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("opening log file: %w", openErr)
		}
		defer f.Close()

		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          game.ID,
			Level:           cfg.Log.LogLevel(),
		})
	}

	screenshots, err := config.ExpandHome("~/.double128/screenshots")
	if err != nil {
		screenshots = "" // No home directory: screenshots disabled
	}

	g := game.New(cfg)
	g.Reset(rc)
	if logger != nil {
		logger.Info("game started", "seed", flagSeed, "pending", g.Snapshot().Pending)
	}

	if err := tui.Run(g, rc.ScreenW, rc.ScreenH, tui.Options{
		Logger:        logger,
		ShowHelp:      cfg.Display.ShowHelp,
		Mouse:         cfg.Display.Mouse,
		ScreenshotDir: screenshots,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
