package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geometry-rush/internal/games/rush"
	"github.com/vovakirdan/geometry-rush/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with keyboard, mouse or touch.

Controls:
  Space/Up/W/Click/Tap  - Jump (also starts the run)
  Enter                 - Start
  P                     - Pause
  R                     - Restart (after game over)
  Q/Esc                 - Quit

Examples:
  rush window
  rush window --scale 1.5 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 800x450 world")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "rush")

	cfg, preset, err := loadGameConfig()
	if err != nil {
		fatal("Error loading config", err)
	}

	store := openStore(logger)
	defer closeStore(store, logger)

	runtime := runtimeConfig()
	err = gui.Run(rush.New(cfg), runtime, gui.Options{
		Store:      store,
		Logger:     logger,
		Player:     flagPlayer,
		Difficulty: string(preset),
		Scale:      flagScale,
	})
	if err != nil {
		closeStore(store, logger) // fatal skips deferred calls
		fatal("Error running window", err)
	}
}
