// termcade is a terminal arcade for playing retro-style games locally or
// over SSH.
//
// Usage:
//
//	termcade list              - List available games
//	termcade play <game>       - Play a game
//	termcade menu              - Start menu to pick games interactively
//	termcade serve             - Start SSH server for remote play
//	termcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.termcade/termcade.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/termcade/termcade/internal/games/blaster"
	_ "github.com/termcade/termcade/internal/games/duelpong"
	_ "github.com/termcade/termcade/internal/games/flapper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termcade",
	Short: "Termcade - Play retro games in your terminal",
	Long: `Termcade is a terminal-based gaming platform that lets you play
classic-style games directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and stats

Examples:
  termcade list
  termcade play duelpong
  termcade menu
  termcade serve --ssh :2222
  termcade scores blaster`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termcade/termcade.db", "Path to runs database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
