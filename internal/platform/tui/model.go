package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/double128/internal/core"
	"github.com/vovakirdan/double128/internal/game"
)

// Options configures a Model.
type Options struct {
	// Renderer binds colors to a terminal. Nil means the local terminal.
	Renderer *lipgloss.Renderer

	// Logger receives gameplay events. Nil discards them.
	Logger *log.Logger

	// ShowHelp renders the key help line below the board.
	ShowHelp bool

	// Mouse enables click-to-place.
	Mouse bool

	// ScreenshotDir is where ctrl+s writes the current screen.
	// Empty disables screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a single game session.
// Every key or click is one engine event; there is no tick loop.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	styles   Styles
	logger   *log.Logger
	opts     Options
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a game that has already been Reset.
func NewModel(g *game.Game, width, height int, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   g,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: NewStyles(opts.Renderer),
		logger: logger,
		opts:   opts,
		width:  width,
		height: height,
	}
	m.keys.Sync(g.State())
	m.keys.Help.SetEnabled(opts.ShowHelp)
	m.screen = core.NewScreen(width, m.boardHeight())
	g.Resize(width, m.boardHeight())
	return m
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.game.Title())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.opts.ShowHelp && key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	in := core.NewInputFrame()
	in.Set(action)
	m.step(in)
	return m, nil
}

// handleMouse turns a left-button press into a click frame.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.opts.Mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	in := core.NewInputFrame()
	in.SetClick(msg.X, msg.Y)
	m.step(in)
	return m, nil
}

// step feeds one input frame to the game and logs what it did.
func (m *Model) step(in core.InputFrame) {
	round := m.game.Snapshot().Round
	res := m.game.Step(in)
	m.keys.Sync(res.State)

	if !res.Changed {
		return
	}

	snap := m.game.Snapshot()
	if snap.Round != round {
		m.logger.Info("new game", "round", snap.Round, "pending", snap.Pending)
		return
	}

	last := m.game.Last()
	m.logger.Debug("press",
		"cell", snap.Cursor,
		"placed", last.Placed,
		"value", last.Value,
		"merges", last.Merges,
		"exploded", last.Exploded,
	)
	if res.State.GameOver {
		m.logger.Info("grid full", "round", snap.Round)
	}
}

// boardHeight is the screen height left after the help view.
func (m Model) boardHeight() int {
	if !m.opts.ShowHelp {
		return m.height
	}
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 0)
}

func (m *Model) resize() {
	h := m.boardHeight()
	m.screen.Resize(m.width, h)
	m.game.Resize(m.width, h)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", game.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen, m.styles)
	if m.opts.ShowHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Run starts a Bubble Tea program for g on the local terminal.
func Run(g *game.Game, width, height int, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(NewModel(g, width, height, opts), programOpts...)
	_, err := p.Run()
	return err
}
