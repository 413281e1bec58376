// rush is an endless runner for the terminal, the desktop and SSH.
//
// Usage:
//
//	rush                     - Start the interactive menu
//	rush play                - Play a run directly in the terminal
//	rush window              - Play in a desktop window
//	rush sim                 - Run a headless simulation
//	rush serve               - Start SSH server for remote play
//	rush scores              - Show high scores
//	rush config              - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.arcade/rush.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rush",
	Short: "Geometry Rush - jump the cube over an endless obstacle stream",
	Long: `Geometry Rush is an endless runner. A cube slides along the ground
while obstacles scroll in from the right; jump over them for as long as
you can. The world speeds up as the distance grows.

Available commands:
  play     - Play a run directly in the terminal
  window   - Play in a desktop window
  sim      - Run a headless simulation
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default configuration

Running rush without a command opens the interactive menu.

Examples:
  rush
  rush play --difficulty hard
  rush window --scale 1.5
  rush sim --frames 6000 --autojump --seed 42
  rush serve --ssh :2222
  rush scores`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/rush.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "local", "Player name recorded with runs")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
