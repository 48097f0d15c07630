// chameleon is a terminal rendition of the Hungry Chameleon arcade game:
// rotate around your pivot, stick out your tongue, and catch the flies
// before one of them runs into you.
//
// Usage:
//
//	chameleon play            - Play the game
//	chameleon scores          - Show the best recorded runs
//	chameleon serve           - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Run-history database (default: ~/.chameleon/runs.db)
//	--highscore <path>   - High-score file (default: ~/.chameleon/highscore.txt)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chameleon",
	Short: "Hungry Chameleon - catch flies in your terminal",
	Long: `Hungry Chameleon is a terminal arcade game. You are a chameleon fixed
to a pivot in the middle of a wrapping field; flies drift around you at
random. Rotate with the arrow keys, hold space to stick out your tongue,
and catch flies for points. Touch a fly without your tongue out and the
run is over. Your best score is kept in a plain text file.

Controls:
  Left/Right  - Rotate around the pivot
  Space       - Tongue out (held, max one second)
  Enter       - Restart after game over
  P           - Pause
  Q/Esc       - Quit

Examples:
  chameleon play
  chameleon play --difficulty hard
  chameleon scores --tui
  chameleon serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chameleon/runs.db", "Path to run-history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "~/.chameleon/highscore.txt", "Path to high-score file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
