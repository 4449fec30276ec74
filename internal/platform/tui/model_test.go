package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/double128/internal/config"
	"github.com/vovakirdan/double128/internal/core"
	"github.com/vovakirdan/double128/internal/game"
	"github.com/vovakirdan/double128/internal/grid"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	g := game.New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 7})
	return NewModel(g, 80, 30, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

// screenPos finds a screen position that the game maps to cell c.
func screenPos(t *testing.T, g *game.Game, c grid.Coord) (int, int) {
	t.Helper()
	for sy := range 30 {
		for sx := range 80 {
			if got, ok := g.CellAt(sx, sy); ok && got == c {
				return sx, sy
			}
		}
	}
	t.Fatalf("no screen position for cell %v", c)
	return 0, 0
}

func TestModelKeyPress(t *testing.T) {
	m := newTestModel(t, Options{})
	pending := m.game.Snapshot().Pending

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.game.Engine().Cell(1, 0); got != pending {
		t.Errorf("Cell(1,0) = %d, want pending %d", got, pending)
	}
}

func TestModelMouseClick(t *testing.T) {
	m := newTestModel(t, Options{Mouse: true})
	sx, sy := screenPos(t, m.game, grid.C(2, 1))
	pending := m.game.Snapshot().Pending

	// Releases and other buttons are ignored
	m = update(t, m, tea.MouseMsg{X: sx, Y: sy, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: sx, Y: sy, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.game.Snapshot().Empty != 16 {
		t.Fatal("only left presses should place tiles")
	}

	m = update(t, m, tea.MouseMsg{X: sx, Y: sy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.game.Engine().Cell(2, 1); got != pending {
		t.Errorf("Cell(2,1) = %d, want pending %d", got, pending)
	}
}

func TestModelMouseDisabled(t *testing.T) {
	m := newTestModel(t, Options{})
	sx, sy := screenPos(t, m.game, grid.C(0, 0))

	m = update(t, m, tea.MouseMsg{X: sx, Y: sy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.game.Snapshot().Empty != 16 {
		t.Error("clicks should be ignored with mouse disabled")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if v := next.View(); v != "" {
		t.Errorf("View() after quit = %q, want empty", v)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 8})
	if !m.game.State().TooSmall {
		t.Error("20x8 should be too small")
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("View() should show the resize hint")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 24})
	if m.game.State().TooSmall {
		t.Error("60x24 should fit")
	}
	if m.screen.Width() != 60 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, want 60x24", m.screen.Width(), m.screen.Height())
	}
}

func TestModelHelpLine(t *testing.T) {
	m := newTestModel(t, Options{ShowHelp: true})

	view := m.View()
	if !strings.Contains(view, "place tile") || !strings.Contains(view, "quit") {
		t.Errorf("View() should end with the help line, got:\n%s", view)
	}
	if strings.Contains(view, "new game") {
		t.Error("new game help should be hidden while playing")
	}
	if m.screen.Height() >= 30 {
		t.Errorf("screen height %d should leave room for help", m.screen.Height())
	}

	short := m.screen.Height()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if m.screen.Height() >= short {
		t.Error("full help should take more lines than short help")
	}
}

func TestModelHelpToggleIgnoredWhenHidden(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.keys.Help.Enabled() {
		t.Error("help binding should be disabled when help is hidden")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if m.help.ShowAll {
		t.Error("? should not toggle full help when help is hidden")
	}
	if m.screen.Height() != 30 {
		t.Errorf("screen height = %d, want 30", m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, game.ID+"_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Double to 128") {
		t.Error("screenshot should contain the title")
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(2, 1, "cd", core.ColorRed)

	got := RenderScreen(s, NewStyles(lipgloss.NewRenderer(io.Discard)))
	if got != s.String() {
		t.Errorf("ascii renderer should emit plain text:\n%q\nwant\n%q", got, s.String())
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColor(0, 0, "128", core.ColorBrightRed)
	s.DrawTextColor(4, 0, "2", core.ColorWhite)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	got := RenderScreen(s, NewStyles(r))

	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", got)
	}
	if plain := ansi.Strip(got); plain != s.String() {
		t.Errorf("stripped output = %q, want %q", plain, s.String())
	}
}
