// snake is the classic grid Snake game for the terminal.
//
// Usage:
//
//	snake                 - Play (same as "snake play")
//	snake play            - Play a game in this terminal
//	snake serve           - Start SSH server for remote play
//	snake scores          - Show high scores
//	snake config          - Print the default configuration
//
// Global flags:
//
//	--config <path> - Game config YAML (default: search ~/.snake/configs, ./configs)
//	--tps <rate>    - Override ticks per second
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagTPS    int
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
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is the classic grid game: steer the snake to the food, grow,
and avoid running into your own tail. The board wraps at the edges.

Running snake without a command starts a game.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default configuration

Examples:
  snake
  snake play --seed 42 --sound
  snake serve --ssh :2222
  snake scores --limit 20`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Ticks per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
