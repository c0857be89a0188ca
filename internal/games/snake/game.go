// Package snake implements the grid Snake game: the per-tick state engine,
// the session that owns it, and the terminal renderer.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ID is the identifier used for score storage.
const ID = "snake"

// Game is one Snake session. It builds a State from the configuration,
// feeds it turns and ticks, and restarts it after game over.
type Game struct {
	cfg      config.SnakeConfig
	grid     Grid
	rng      *rand.Rand
	state    *State
	tick     uint64
	tickRate int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a Snake session using the given configuration.
// Call Reset before the first tick.
func New(cfg config.SnakeConfig) *Game {
	return &Game{
		cfg: cfg,
		grid: Grid{
			TileSize: cfg.Board.TileSize,
			Width:    cfg.Board.CanvasWidth,
			Height:   cfg.Board.CanvasHeight,
		},
		tickRate: cfg.Timing.TicksPerSecond,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes the session from scratch.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate > 0 {
		g.tickRate = rt.TickRate
	}
	g.start(rt.Seed)
	g.Resize(rt.ScreenW, rt.ScreenH)
}

// start rebuilds all entities from the initial conditions.
func (g *Game) start(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.state = NewState(g.grid, g.cfg.Snake.InitialLength, g.rng)
	g.tick = 0
}

// Restart begins a new game, but only once the current one is over.
// The new seed is drawn from the old generator, so a fixed seed replays
// the same sequence of games.
func (g *Game) Restart() bool {
	if g.state == nil || !g.state.IsGameOver() {
		return false
	}
	g.start(g.rng.Int63())
	return true
}

// Resize records the terminal size. The board itself never changes size;
// a screen too small to hold it pauses the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	fw, fh := g.FrameSize()
	g.tooSmall = !core.NewRect(0, 0, w, h).Fits(fw, fh)
}

// Turn forwards a direction change to the engine.
func (g *Game) Turn(dir Direction) bool {
	return g.state.SetPendingDirection(dir)
}

// Tick advances the session by one step. Nothing moves while the
// screen is too small.
func (g *Game) Tick() Outcome {
	if g.tooSmall {
		return Outcome{GameOver: g.state.IsGameOver()}
	}
	if !g.state.IsGameOver() {
		g.tick++
	}
	return g.state.Tick()
}

// TickInterval returns the delay between ticks.
func (g *Game) TickInterval() time.Duration {
	return time.Second / time.Duration(g.tickRate)
}

// DisplayScore returns the score as shown to the player.
func (g *Game) DisplayScore() int {
	return g.state.Score() * g.cfg.Scoring.PointsPerFood
}

// State returns the externally visible session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.DisplayScore(),
		GameOver: g.state.IsGameOver(),
	}
}

// Engine exposes the underlying state for read access.
func (g *Game) Engine() *State {
	return g.state
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d (%d food)\n", g.tick, g.DisplayScore(), g.state.Score())
	fmt.Fprintf(&b, "Tail len: %d, Direction: %s\n", len(g.state.tail), g.state.Direction())
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", g.state.head.X, g.state.head.Y, g.state.food.X, g.state.food.Y)
	fmt.Fprintf(&b, "GameOver: %v, TooSmall: %v\n", g.state.gameOver, g.tooSmall)
	return b.String()
}
