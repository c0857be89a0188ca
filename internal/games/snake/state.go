package snake

import "math/rand"

// Direction represents one of the four movement directions.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Velocity is a unit step on the grid, in tiles per tick.
type Velocity struct {
	X, Y int
}

// Velocity returns the unit vector for the direction.
func (d Direction) Velocity() Velocity {
	switch d {
	case DirUp:
		return Velocity{X: 0, Y: -1}
	case DirDown:
		return Velocity{X: 0, Y: 1}
	case DirLeft:
		return Velocity{X: -1, Y: 0}
	default:
		return Velocity{X: 1, Y: 0}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Position is a canvas coordinate. On the board both components are
// multiples of the tile size.
type Position struct {
	X, Y int
}

// Grid describes the board in canvas pixels.
type Grid struct {
	TileSize int
	Width    int
	Height   int
}

// TilesX returns the number of columns.
func (g Grid) TilesX() int {
	return g.Width / g.TileSize
}

// TilesY returns the number of rows.
func (g Grid) TilesY() int {
	return g.Height / g.TileSize
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// wrap folds a position that stepped off one edge onto the opposite edge.
func (g Grid) wrap(p Position) Position {
	if p.X > g.Width-g.TileSize {
		p.X = 0
	}
	if p.X < 0 {
		p.X = g.Width - g.TileSize
	}
	if p.Y > g.Height-g.TileSize {
		p.Y = 0
	}
	if p.Y < 0 {
		p.Y = g.Height - g.TileSize
	}
	return p
}

// Outcome reports what a tick did.
type Outcome struct {
	Ate      bool // Head landed on food; the snake grew and food moved
	GameOver bool // The session is in its terminal state after this tick
}

// State is the authoritative state of one game: the snake, the food,
// the score and the per-tick input and terminal flags.
// It is owned by a single session and never shared.
type State struct {
	grid     Grid
	rng      *rand.Rand
	head     Position
	velocity Velocity
	tail     []Position // Head-to-tail order
	food     Position
	score    int // Food eaten

	inputConsumed bool // A direction change was accepted since the last tick
	gameOver      bool
}

// NewState builds the initial state: the head at the left edge on the
// middle row moving right, initialLength-1 tail segments trailing off the
// board to the left, and food on a random cell.
func NewState(grid Grid, initialLength int, rng *rand.Rand) *State {
	y := (grid.TilesY() / 2) * grid.TileSize

	s := &State{
		grid:     grid,
		rng:      rng,
		head:     Position{X: 0, Y: y},
		velocity: DirRight.Velocity(),
		tail:     make([]Position, 0, max(initialLength-1, 0)),
	}
	for i := 1; i < initialLength; i++ {
		s.tail = append(s.tail, Position{X: -i * grid.TileSize, Y: y})
	}
	s.placeFood()
	return s
}

// SetPendingDirection turns the snake. At most one turn is accepted per
// tick, and never a turn straight back onto the first tail segment.
// Returns whether the turn was accepted.
func (s *State) SetPendingDirection(dir Direction) bool {
	if s.gameOver || s.inputConsumed {
		return false
	}
	if dir.Opposite().Velocity() == s.velocity {
		return false
	}

	s.velocity = dir.Velocity()
	s.inputConsumed = true
	return true
}

// Tick advances the game by one step.
//
// The self-collision test looks at the head before it moves, so a crash is
// reported one tick after the head entered the body.
func (s *State) Tick() Outcome {
	if s.gameOver {
		return Outcome{GameOver: true}
	}

	s.inputConsumed = false

	if s.hitsTail(s.head) {
		s.gameOver = true
		return Outcome{GameOver: true}
	}

	// Advance: the old head becomes the first tail segment
	s.tail = append([]Position{s.head}, s.tail...)
	s.head = s.grid.wrap(Position{
		X: s.head.X + s.velocity.X*s.grid.TileSize,
		Y: s.head.Y + s.velocity.Y*s.grid.TileSize,
	})

	if s.head == s.food {
		s.score++
		s.placeFood()
		return Outcome{Ate: true}
	}

	s.tail = s.tail[:len(s.tail)-1]
	return Outcome{}
}

// hitsTail reports whether p is occupied by a tail segment.
func (s *State) hitsTail(p Position) bool {
	for _, seg := range s.tail {
		if seg == p {
			return true
		}
	}
	return false
}

// placeFood moves the food to a uniformly random cell. The snake's body is
// not excluded.
func (s *State) placeFood() {
	s.food = Position{
		X: s.rng.Intn(s.grid.TilesX()) * s.grid.TileSize,
		Y: s.rng.Intn(s.grid.TilesY()) * s.grid.TileSize,
	}
}

// Head returns the head position.
func (s *State) Head() Position {
	return s.head
}

// Tail returns a copy of the tail segments in head-to-tail order.
func (s *State) Tail() []Position {
	out := make([]Position, len(s.tail))
	copy(out, s.tail)
	return out
}

// Velocity returns the current velocity.
func (s *State) Velocity() Velocity {
	return s.velocity
}

// Direction returns the direction matching the current velocity.
func (s *State) Direction() Direction {
	for _, d := range []Direction{DirRight, DirDown, DirLeft, DirUp} {
		if d.Velocity() == s.velocity {
			return d
		}
	}
	return DirRight
}

// Food returns the food position.
func (s *State) Food() Position {
	return s.food
}

// Score returns the number of food items eaten.
func (s *State) Score() int {
	return s.score
}

// IsGameOver reports whether the state is terminal.
func (s *State) IsGameOver() bool {
	return s.gameOver
}

// InputConsumed reports whether a turn was accepted since the last tick.
func (s *State) InputConsumed() bool {
	return s.inputConsumed
}

// Grid returns the board geometry.
func (s *State) Grid() Grid {
	return s.grid
}
