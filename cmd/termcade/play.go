package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/games/blaster"
	"github.com/termcade/termcade/internal/games/duelpong"
	"github.com/termcade/termcade/internal/games/flapper"
	"github.com/termcade/termcade/internal/platform/tui"
	"github.com/termcade/termcade/internal/registry"
	"github.com/termcade/termcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  W/S or Up/Down  - Move (duelpong)
  A/D or arrows   - Move (blaster)
  Space           - Flap (flapper) / Fire
  P/Esc           - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Forgiving opponent / slow progression
  normal - The stock tuning
  hard   - Sharper opponent / fast progression
  fixed  - No progression, stays at the config's initial level

Examples:
  termcade play duelpong
  termcade play blaster --difficulty easy
  termcade play flapper --config ./my-flapper.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'termcade list' to see available games.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults when not a terminal
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

	// Set config path and difficulty before the game's Reset loads them.
	switch gameID {
	case "duelpong":
		duelpong.SetConfigPath(flagConfig)
		duelpong.SetDifficultyPreset(flagDifficulty)
	case "blaster":
		blaster.SetConfigPath(flagConfig)
		blaster.SetDifficultyPreset(flagDifficulty)
	case "flapper":
		flapper.SetConfigPath(flagConfig)
		flapper.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage; the game still works.
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
