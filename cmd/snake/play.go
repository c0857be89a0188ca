package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagSound   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start a game of Snake in this terminal.

Controls:
  Arrows/WASD  - Steer (one turn per tick, no reversing)
  Enter/R      - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --tps 15 --sound
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags; the root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues (overrides audio.enabled)")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session log to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newPlayLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagTPS
	cfg.Seed = flagSeed

	// Get terminal size; the model corrects it on the first resize message
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var sound *audio.Player
	if flagSound || gameCfg.Audio.Enabled {
		sound, err = audio.NewPlayer(gameCfg.Audio)
		if err != nil {
			logger.Warn("sound disabled", "error", err)
			sound = nil
		}
	}

	runErr := tui.Run(snake.New(gameCfg), tui.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
		Player: currentPlayer(),
	}, cfg)

	// Release resources before potential exit
	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newPlayLogger logs to path, or nowhere when path is empty.
// The terminal itself belongs to the game.
func newPlayLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	return logger, func() { f.Close() }, nil
}

// currentPlayer names local scores after the OS user.
func currentPlayer() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
