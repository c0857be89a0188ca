package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// helpHeight is the number of rows below the game reserved for key help.
const helpHeight = 1

// Session is a single game driven by the model.
// Game logic stays free of Bubble Tea; the model handles input, timing and display.
type Session interface {
	// ID is used as the game key in score storage.
	ID() string

	// Reset starts a fresh game for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize reports a new screen size without restarting.
	Resize(w, h int)

	// Turn requests a direction change, returning whether it was accepted.
	Turn(dir snake.Direction) bool

	// Restart starts over, but only from the terminal state.
	Restart() bool

	// Tick advances the simulation by one step.
	Tick() snake.Outcome

	// TickInterval is the delay between ticks.
	TickInterval() time.Duration

	// State returns the displayed score and terminal flag.
	State() core.GameState

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)
}

var _ Session = (*snake.Game)(nil)

// Options carries the optional collaborators of a Model.
// Every field may be left zero.
type Options struct {
	Store  *storage.Store // Final scores are saved here
	Sound  *audio.Player  // Cues for eating and game over
	Logger *log.Logger    // Session events; discarded when nil
	Player string         // Name recorded with scores

	// Renderer detects the color support of the player's terminal.
	// Needed for SSH sessions, where stdout is not the player's terminal.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for one Snake session.
type Model struct {
	game       Session
	screen     *core.Screen
	styles     *styleCache
	helpStyle  lipgloss.Style
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	store      *storage.Store
	sound      *audio.Player
	logger     *log.Logger
	player     string
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model and starts the game.
func NewModel(game Session, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	gameH := max(cfg.ScreenH-helpHeight, 0)
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  gameH,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	})

	styles := newStyleCache(opts.Renderer)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameH),
		styles:    styles,
		helpStyle: styles.base().Foreground(lipgloss.Color("241")),
		config:    cfg,
		keys:      NewKeyMapper(),
		help:      h,
		store:     opts.Store,
		sound:     opts.Sound,
		logger:    logger,
		player:    opts.Player,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "player", m.player, "seed", m.config.Seed)
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Turns reach the engine immediately;
// the engine itself limits them to one per tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if !m.game.Restart() {
			return m, nil
		}
		m.scoreSaved = false
		m.logger.Info("game restarted", "player", m.player)
		// The tick loop stopped at game over
		return m, tickCmd(m.game.TickInterval())
	}

	if dir, ok := directionFor(action); ok {
		m.game.Turn(dir)
	}
	return m, nil
}

// handleResize processes window resize events. The board keeps its size;
// the game pauses itself while it does not fit.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	gameH := max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, gameH)
	m.game.Resize(msg.Width, gameH)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	outcome := m.game.Tick()

	if outcome.Ate {
		m.sound.Play(audio.CueEat)
	}

	if outcome.GameOver {
		m.recordGameOver()
		return m, nil
	}

	return m, tickCmd(m.game.TickInterval())
}

// recordGameOver logs and saves the final score once per game.
func (m *Model) recordGameOver() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	score := m.game.State().Score
	m.logger.Info("game over", "player", m.player, "score", score)
	m.sound.Play(audio.CueGameOver)

	if score <= 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, score); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return renderScreen(m.screen, m.styles) + "\n" + m.helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for a local session.
func Run(game Session, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
