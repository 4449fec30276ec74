package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/double128/internal/core"
	"github.com/vovakirdan/double128/internal/engine"
	"github.com/vovakirdan/double128/internal/grid"
)

const (
	cellWidth  = 6 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	boardW = engine.Size*cellWidth + 1  // +1 for right border
	boardH = engine.Size*cellHeight + 1 // +1 for bottom border

	pendingW = cellWidth + 1
	pendingH = 3

	titleY   = 0
	pendingY = 2
	boardY   = pendingY + pendingH + 1
	statusY  = boardY + boardH + 1

	minWidth  = boardW + 2
	minHeight = statusY + 1
)

// layout holds the screen rectangles for the current screen size.
type layout struct {
	board   core.Rect
	pending core.Rect
}

func (g *Game) layout() layout {
	boardX := (g.screenW - boardW) / 2
	return layout{
		board:   core.NewRect(boardX, boardY, boardW, boardH),
		pending: core.NewRect(boardX+(boardW-pendingW)/2, pendingY, pendingW, pendingH),
	}
}

// CellAt maps a screen position to the grid cell drawn there.
// Positions on grid lines or outside the board report false.
func (g *Game) CellAt(sx, sy int) (grid.Coord, bool) {
	b := g.layout().board
	if !b.Contains(sx, sy) {
		return grid.Coord{}, false
	}
	dx, dy := sx-b.X, sy-b.Y
	if dx%cellWidth == 0 || dy%cellHeight == 0 {
		return grid.Coord{}, false
	}
	c := grid.C(dx/cellWidth, dy/cellHeight)
	if c.X >= engine.Size || c.Y >= engine.Size {
		return grid.Coord{}, false
	}
	return c, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	dst.DrawTextCentered(titleY, g.Title())
	g.renderPending(dst, l.pending)
	g.renderBoard(dst, l.board)
	g.renderStatus(dst, l.board)

	if g.engine.IsGameOver() {
		g.drawOverlay(dst, l.board, "GRID FULL", "R: new game")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight))
}

// renderPending draws the next-tile box. A pending 128 and the new-game
// affordance on a full board are both drawn as the star glyph.
func (g *Game) renderPending(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)
	label := "Next"
	dst.DrawText(r.X-len(label)-1, r.Y+1, label)

	pending := g.engine.Pending()
	if g.engine.IsGameOver() || pending == engine.MaxValue {
		cx, cy := r.Center()
		dst.SetCell(cx, cy, core.Cell{Rune: g.display.StarRune(), Color: g.palette.Star})
		return
	}
	drawCentered(dst, r.X+1, r.Y+1, r.W-2, strconv.Itoa(pending), g.palette.Tile(pending))
}

// renderBoard draws the 4x4 grid with tiles and the cursor.
func (g *Game) renderBoard(dst *core.Screen, b core.Rect) {
	for y := range engine.Size + 1 {
		for x := range engine.Size + 1 {
			px := b.X + x*cellWidth
			py := b.Y + y*cellHeight

			dst.Set(px, py, junction(x, y))

			if x < engine.Size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < engine.Size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	over := g.engine.IsGameOver()
	for y := range engine.Size {
		for x := range engine.Size {
			cellX := b.X + x*cellWidth + 1
			cellY := b.Y + y*cellHeight + 1

			val := g.engine.Cell(x, y)
			switch {
			case val != 0:
				drawCentered(dst, cellX+1, cellY, cellWidth-3, strconv.Itoa(val), g.palette.Tile(val))
			case !over:
				drawCentered(dst, cellX+1, cellY, cellWidth-3, string(g.display.EmptyRune()), core.ColorGray)
			}

			if !over && g.cursor == grid.C(x, y) {
				dst.SetCell(cellX, cellY, core.Cell{Rune: '[', Color: g.palette.Cursor})
				dst.SetCell(cellX+cellWidth-2, cellY, core.Cell{Rune: ']', Color: g.palette.Cursor})
			}
		}
	}
}

// junction returns the box-drawing rune for grid line intersection (x, y).
func junction(x, y int) rune {
	last := engine.Size
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

// renderStatus draws the outcome of the last press below the board.
func (g *Game) renderStatus(dst *core.Screen, b core.Rect) {
	msg := g.statusText()
	if msg == "" {
		return
	}
	x := b.X + (b.W-len(msg))/2
	color := core.ColorDefault
	if g.last.Exploded {
		color = g.palette.Tile(engine.MaxValue)
	}
	dst.DrawTextColor(max(x, 0), statusY, msg, color)
}

func (g *Game) statusText() string {
	switch {
	case g.engine.IsGameOver():
		return fmt.Sprintf("Game %d over", g.rounds)
	case g.last.Exploded:
		return fmt.Sprintf("128! Cleared %d tiles", len(g.last.Cleared))
	case g.last.Merges > 0:
		return fmt.Sprintf("%d merges: %d -> %d", g.last.Merges, g.last.Placed, g.last.Value)
	case g.engine.Pending() == engine.MaxValue:
		return "Star: clears a 3x3 block"
	default:
		return ""
	}
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, b core.Rect, lines ...string) {
	centerX, centerY := b.Center()

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// drawCentered writes text centered within width cells starting at x.
func drawCentered(dst *core.Screen, x, y, width int, text string, color core.Color) {
	n := len([]rune(text))
	pad := max((width-n)/2, 0)
	dst.DrawTextColor(x+pad, y, text, color)
}
