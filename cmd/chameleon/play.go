package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okvist/chameleon-tui/internal/config"
	"github.com/okvist/chameleon-tui/internal/core"
	"github.com/okvist/chameleon-tui/internal/game"
	"github.com/okvist/chameleon-tui/internal/platform/tui"
	"github.com/okvist/chameleon-tui/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run.

Difficulty options:
  easy   - Fewer, slower flies
  normal - The classic setup (default)
  hard   - More and faster flies

Examples:
  chameleon play
  chameleon play --difficulty easy
  chameleon play --config ./my-chameleon.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.LoadChameleon(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyChameleonPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// High-score file: a missing or corrupt record is a warning, never fatal.
	var scores game.HighScoreStore
	hsFile, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: high score disabled: %v\n", err)
	} else {
		if _, loadErr := hsFile.Load(); loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: high score unreadable, starting from zero: %v\n", loadErr)
		}
		scores = hsFile
	}

	// Open run-history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without history - the game still works
		store = nil
	}

	g := game.New(gameCfg, scores)
	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
