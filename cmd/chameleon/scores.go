package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okvist/chameleon-tui/internal/platform/tui"
	"github.com/okvist/chameleon-tui/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top recorded runs along with the persisted high score.

Examples:
  chameleon scores
  chameleon scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScoresCmd,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in an interactive table")
}

func runScoresCmd(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Hungry Chameleon - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'chameleon play' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Flies", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.FliesEaten, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best run: %d\n", best)
	}

	// The high-score file is the canonical record; it may disagree with the
	// database when runs were played elsewhere.
	if hsFile, err := storage.NewHighScoreFile(flagHighScore); err == nil {
		if high, err := hsFile.Load(); err == nil {
			fmt.Printf("High score: %d\n", high)
		}
	}
}
