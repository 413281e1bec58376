package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/geometry-rush/internal/config"
	"github.com/vovakirdan/geometry-rush/internal/core"
	"github.com/vovakirdan/geometry-rush/internal/storage"
)

// newLogger creates the charm logger used by every command.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to ~/.arcade/rush.log so full-screen UIs stay clean.
// It falls back to discarding output when the file cannot be opened.
func fileLogger(prefix string) (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "rush.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	return newLogger(f, prefix), func() { f.Close() }
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.RushConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RushConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RushConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// runtimeConfig builds the host runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the runs database. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// closeStore closes a store opened by openStore.
func closeStore(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close runs database", "error", err)
	}
}

// fatal prints err and exits.
func fatal(format string, err error) {
	fmt.Fprintf(os.Stderr, format+": %v\n", err)
	os.Exit(1)
}
