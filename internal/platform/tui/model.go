package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcade-tui/brickout/internal/core"
	"github.com/arcade-tui/brickout/internal/game"
	"github.com/arcade-tui/brickout/internal/storage"
)

// TickMsg triggers one simulation tick.
type TickMsg time.Time

// resetMsg fires once after the life-reset delay to re-dock a lost ball.
// A pending reset is never cancelled; the session ignores it if it no
// longer applies.
type resetMsg struct{}

// tickCmd schedules the next simulation tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// resetCmd schedules the one-shot round reset.
func resetCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return resetMsg{}
	})
}

// Model is the Bubble Tea model driving one game session. It owns the
// collaborators the simulation core is specified against: the tick and
// reset scheduling, the key-to-action input source, and the screen buffer
// the session renders into.
type Model struct {
	session *game.Session
	screen  *core.Screen
	store   *storage.Store
	cfg     core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	input   core.InputFrame

	quitting bool
}

// NewModel creates a model for a fresh game session.
func NewModel(store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		session: game.NewSession(),
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		store:   store,
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case resetMsg:
		m.session.ResetRound()
		return m, nil
	}

	return m, nil
}

// handleKey records actions for the next tick; input is never applied
// mid-tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleTick applies buffered input, runs one simulation step, and
// schedules whatever the session's directive asks for.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyInput()

	cmds := []tea.Cmd{tickCmd(m.cfg.TickInterval)}

	switch m.session.Tick() {
	case game.DirectiveScheduleReset:
		cmds = append(cmds, resetCmd(m.cfg.ResetDelay))
	case game.DirectiveRoundWon:
		m.recordRound(storage.OutcomeWon)
	case game.DirectiveGameOver:
		m.recordRound(storage.OutcomeLost)
	}

	return m, tea.Batch(cmds...)
}

// applyInput drains the input frame into session operations.
func (m *Model) applyInput() {
	if m.input.Has(core.ActionLeft) {
		m.session.MovePaddle(-game.PaddleStep)
	}
	if m.input.Has(core.ActionRight) {
		m.session.MovePaddle(game.PaddleStep)
	}
	if m.input.Has(core.ActionLaunch) {
		switch m.session.Phase() {
		case game.PhaseAwaitingStart:
			m.session.Launch()
		case game.PhaseRoundWon:
			m.session.Restart()
		}
	}
	if m.input.Has(core.ActionRestart) && m.session.Phase() == game.PhaseGameOver {
		// The finished session is terminal; restarting means a new one.
		m.session = game.NewSession()
	}
	m.input.Clear()
}

// recordRound saves a finished round to the history store (best effort).
func (m *Model) recordRound(outcome string) {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRound(storage.RoundRecord{
		Outcome:       outcome,
		Ticks:         m.session.TickCount(),
		BricksCleared: m.session.BricksCleared(),
		LivesLeft:     core.Max(m.session.Lives(), 0),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local session.
func Run(store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
