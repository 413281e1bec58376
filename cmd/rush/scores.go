package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geometry-rush/internal/platform/tui"
	"github.com/vovakirdan/geometry-rush/internal/storage"
)

var (
	flagClear  bool
	flagLimit  int
	flagMine   bool
	flagBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs and overall statistics.

Examples:
  rush scores
  rush scores --limit 25
  rush scores --mine --player alice
  rush scores --browse
  rush scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagMine, "mine", false, "Only show runs of --player")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse runs in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("Error opening runs database", err)
	}
	defer store.Close()

	if flagBrowse {
		runtime := runtimeConfig()
		if _, err := tui.RunScoreboard(store, flagPlayer, runtime.ScreenW, runtime.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if flagClear {
		if err := store.ClearRuns(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Println("All runs deleted.")
		return
	}

	var runs []storage.Run
	if flagMine {
		runs, err = store.PlayerRuns(ctx, flagPlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(ctx, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	title := "High Scores - Geometry Rush"
	if flagMine {
		title = fmt.Sprintf("Recent runs - %s", flagPlayer)
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rush play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %-10s  %s\n", "Rank", "Distance", "Player", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %-10s  %s\n", "----", "--------", "------", "----------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-12s  %-10s  %s\n",
			i+1, fmt.Sprintf("%dm", r.Score), r.Player, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats(ctx)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %dm   Runs: %d   Avg: %.1fm   Total: %.0fm\n",
		stats.BestScore, stats.Runs, stats.AvgScore, stats.TotalDistance)
}
