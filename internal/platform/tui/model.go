package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okvist/chameleon-tui/internal/core"
	"github.com/okvist/chameleon-tui/internal/game"
	"github.com/okvist/chameleon-tui/internal/storage"
)

// Model is the Bubble Tea model driving the chameleon game loop.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	store     *storage.Store // Run history; may be nil
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      *HeldTracker
	edge      core.InputFrame // One-shot actions queued for the next tick
	gameState core.GameState
	quitting  bool
	runSaved  bool // Whether the run was recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   NewHeldTracker(cfg.TickRate),
		edge:   core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
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

// handleKey processes keyboard input. Held-semantics keys refresh the held
// tracker; the rest are queued as one-shot actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case IsHeldAction(action):
		m.held.Press(action)
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.edge.Set(action)
		}
	case action != core.ActionNone:
		m.edge.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in its
// own field units, so a resize only rescales the drawing surface.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.edge.Clone()
	m.held.Tick(&frame)

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.runSaved = false
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	// Record the run once per game over
	if m.gameState.GameOver && !m.runSaved {
		if m.store != nil && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.gameState.Score, m.game.World().FliesEaten())
		}
		m.runSaved = true
	}

	m.edge.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
