package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/geometry-rush/internal/games/rush"
	"github.com/vovakirdan/geometry-rush/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run in the terminal",
	Long: `Start a run directly, skipping the menu.

Controls:
  Space/Up/W  - Jump (also starts the run)
  Enter       - Start
  P           - Pause
  R           - Restart (after game over)
  Esc/B       - Leave (when idle, paused or over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start, sparser obstacles, forgiving collisions
  normal - Default tuning
  hard   - Faster start, denser obstacles, tight collisions
  fixed  - No speed ramp, constant spawn interval

Logs are written to ~/.arcade/rush.log.

Examples:
  rush play
  rush play --difficulty easy
  rush play --seed 42
  rush play --config ./my-rush.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger("rush")
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		fatal("Error loading config", err)
	}

	store := openStore(logger)
	defer closeStore(store, logger)

	err = tui.Run(rush.New(cfg), runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		Player:     flagPlayer,
		Difficulty: string(preset),
	})
	if err != nil {
		logger.Error("game exited with error", "error", err)
		closeStore(store, logger) // fatal skips deferred calls
		fatal("Error running game", err)
	}
}

// runMenu opens the interactive menu; it is the root command's action.
func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger("rush")
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		fatal("Error loading config", err)
	}

	store := openStore(logger)
	defer closeStore(store, logger)

	err = tui.RunSession(cfg, runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		Player:     flagPlayer,
		Difficulty: string(preset),
	})
	if err != nil {
		logger.Error("menu exited with error", "error", err)
		closeStore(store, logger) // fatal skips deferred calls
		fatal("Error running menu", err)
	}
}
