package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfarouk/metro-runner/internal/core"
	"github.com/mfarouk/metro-runner/internal/game"
)

// Model is the Bubble Tea model driving a Metro Runner session. The
// session itself is pure and tick-driven; the model feeds it input
// frames and fixed-rate ticks and draws its screen buffer.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	runtime  core.RuntimeConfig
	keys     *KeyMapper
	frame    core.InputFrame
	quitting bool
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig) Model {
	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		runtime: cfg,
		keys:    NewKeyMapper(),
		frame:   core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.frame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The simulation runs in logical coordinates, so a resize only
		// changes the cell grid it is projected onto.
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.session.Step(m.frame, m.runtime.Delta())
		m.frame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// View renders the current session state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given session.
func Run(session *game.Session, cfg core.RuntimeConfig) error {
	model := NewModel(session, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
