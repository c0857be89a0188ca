package snake

// GameStateType represents the current session state.
type GameStateType string

const (
	StateRunning     GameStateType = "running"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Score        int // Food eaten
	DisplayScore int
	TailLen      int
	HeadX        int
	HeadY        int
	Dir          Direction
	FoodX        int
	FoodY        int
	State        GameStateType
}

// Snapshot returns the current session snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.state.gameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	}

	return Snapshot{
		Tick:         g.tick,
		Score:        g.state.score,
		DisplayScore: g.DisplayScore(),
		TailLen:      len(g.state.tail),
		HeadX:        g.state.head.X,
		HeadY:        g.state.head.Y,
		Dir:          g.state.Direction(),
		FoodX:        g.state.food.X,
		FoodY:        g.state.food.Y,
		State:        state,
	}
}
