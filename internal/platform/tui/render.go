package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/double128/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-color codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Styles holds one lipgloss style per screen color.
// Styles are bound to a renderer so SSH sessions get their own color profile.
type Styles struct {
	colors map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewStyles builds styles for the given renderer.
// A nil renderer uses lipgloss' default (local terminal) renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := Styles{
		colors: make(map[core.Color]lipgloss.Style, len(ansiCodes)),
		plain:  r.NewStyle(),
	}
	for c, code := range ansiCodes {
		s.colors[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return s
}

func (s Styles) style(c core.Color) lipgloss.Style {
	if st, ok := s.colors[c]; ok {
		return st
	}
	return s.plain
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
