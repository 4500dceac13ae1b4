package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// statusBarHeight is the number of rows below the playfield.
const statusBarHeight = 1

// Model is the Bubble Tea model running one flappy game.
// The playfield fills the terminal except for the bottom status bar.
type Model struct {
	game     *flappy.Game
	viewport *flappy.Viewport
	screen   *core.Screen
	painter  Painter
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	gen      int  // Incremented on every run start, tags TickMsg
	showHelp bool // Full help overlay
	quitting bool
}

// NewModel creates a model for a terminal of cfg.ScreenW x cfg.ScreenH cells.
// A nil logger discards output.
func NewModel(fc config.FlappyConfig, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.Normalize()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	painter := NewPainter(fc.Display)
	rows := max(cfg.ScreenH-statusBarHeight, 0)
	viewport := flappy.NewViewport(painter.WorldSize(cfg.ScreenW, rows))

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		viewport: viewport,
		screen:   core.NewScreen(cfg.ScreenW, rows),
		painter:  painter,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
	}
	m.game = flappy.New(fc, viewport, m.nextSeed())
	return m
}

// nextSeed returns the configured seed, or a time-based one when unset.
func (m Model) nextSeed() int64 {
	if m.config.Seed != 0 {
		return m.config.Seed
	}
	return time.Now().UnixNano()
}

// Game returns the underlying simulation.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Init sets the window title. Ticking starts with the first run.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("flappy")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(m.keys.MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleAction applies a mapped input action.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.showHelp = !m.showHelp
		return m, nil
	}

	if !m.game.IsActive() {
		m.game.SetSeed(m.nextSeed())
	}
	if !m.game.HandleAction(action) {
		return m, nil
	}

	// A new run began: start a fresh tick chain
	m.showHelp = false
	m.gen++
	w, h := m.viewport.Size()
	m.logger.Info("run started", "gen", m.gen, "width", w, "height", h)
	return m, tickCmd(m.config.TickRate, m.gen)
}

// handleResize resizes the playfield. The running game keeps going and
// picks up the new size on its next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	rows := max(msg.Height-statusBarHeight, 0)
	m.screen.Resize(msg.Width, rows)
	m.viewport.Resize(m.painter.WorldSize(msg.Width, rows))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick advances the simulation one step and schedules the next tick
// unless the run just ended.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.game.IsActive() {
		return m, nil
	}

	result := m.game.Step()
	if result.Ended() {
		m.logger.Info("game over",
			"score", result.Score,
			"collision", result.Collision,
			"ticks", m.game.Ticks(),
		)
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.painter.Draw(m.screen, m.game)
	if lines := overlayLines(m.game, m.keys, m.showHelp); lines != nil {
		color := core.ColorWhite
		if m.game.State() == flappy.StateGameOver && !m.showHelp {
			color = core.ColorRed
		}
		DrawOverlay(m.screen, lines, color)
	}

	return RenderScreen(m.screen) + "\n" + m.statusBar()
}

// statusBar renders score, run state and the short help on one line.
func (m Model) statusBar() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		scoreStyle.Render(fmt.Sprintf("Score %d", m.game.Score())),
		stateStyle.Render(m.game.State().String()),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(fc config.FlappyConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(fc, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
