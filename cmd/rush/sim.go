package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geometry-rush/internal/core"
	"github.com/vovakirdan/geometry-rush/internal/games/rush"
	"github.com/vovakirdan/geometry-rush/internal/storage"
)

var (
	flagFrames   int
	flagAutoJump bool
	flagSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a display and report the result.

The run starts immediately. With --autojump a simple autopilot jumps
ahead of each obstacle; otherwise the cube never jumps. The run stops at
game over or after --frames frames.

Examples:
  rush sim --seed 42
  rush sim --frames 20000 --autojump --difficulty hard
  rush sim --autojump --save --player bot`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum frames to simulate")
	simCmd.Flags().BoolVar(&flagAutoJump, "autojump", false, "Let the autopilot jump")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Save the finished run to the database")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "rush-sim")

	cfg, preset, err := loadGameConfig()
	if err != nil {
		fatal("Error loading config", err)
	}

	game := rush.New(cfg)
	if err := game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}); err != nil {
		fatal("Error creating game", err)
	}
	sim := game.Simulation()
	pilot := rush.NewAutopilot()

	start := time.Now()
	jumps := 0
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)

	for sim.Frame() < flagFrames {
		if flagAutoJump && pilot.ShouldJump(sim) {
			in.Set(core.ActionJump)
		}
		result := game.Step(in)
		in.Clear()

		if result.Err != nil {
			logger.Error("simulation fault", "frame", sim.Frame(), "error", result.Err)
			os.Exit(1)
		}
		if result.Has(core.EventJump) {
			jumps++
		}
		if result.State.GameOver {
			break
		}
	}

	logger.Info("simulation finished",
		"state", sim.State(),
		"frames", sim.Frame(),
		"distance", sim.Score(),
		"speed", sim.Speed(),
		"jumps", jumps,
		"seed", game.Seed(),
		"difficulty", preset,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if !flagSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("Error opening runs database", err)
	}
	defer closeStore(store, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	id, err := store.SaveRun(ctx, storage.Run{
		Player:     flagPlayer,
		Score:      sim.Score(),
		Distance:   sim.Distance(),
		Frames:     sim.Frame(),
		Seed:       game.Seed(),
		Difficulty: string(preset),
	})
	if err != nil {
		logger.Error("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "id", id)
}
