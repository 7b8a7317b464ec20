package stacker

import (
	"fmt"
	"time"

	"github.com/vovakirdan/gravity-stacker/internal/core"
	"github.com/vovakirdan/gravity-stacker/internal/games/stacker/playfield"
)

// Visual characters for rendering
const (
	BlockGlyph = '█'
	GhostGlyph = '░'
	EmptyGlyph = '·'
	ArrowDown  = '▼'
	ArrowUp    = '▲'
)

// Layout constants, in screen cells.
const (
	cellW  = 2  // Each board column is drawn two characters wide
	panelW = 18 // Side panel with preview and stats
	gap    = 2  // Space between board and panel
)

// shapeColors assigns each shape its color.
var shapeColors = map[playfield.ShapeID]core.Color{
	playfield.ShapeI:    core.ColorCyan,
	playfield.ShapeO:    core.ColorYellow,
	playfield.ShapeT:    core.ColorMagenta,
	playfield.ShapeS:    core.ColorGreen,
	playfield.ShapeZ:    core.ColorRed,
	playfield.ShapeJ:    core.ColorBlue,
	playfield.ShapeL:    core.ColorOrange,
	playfield.ShapePlus: core.ColorBrightWhite,
}

// layout is where the board and panel sit on screen.
type layout struct {
	board core.Rect // Includes the border
	panel core.Rect
}

// boardSize returns the bordered board dimensions.
func (g *Game) boardSize() (int, int) {
	return g.cfg.Board.Cols*cellW + 2, g.cfg.Board.Rows + 2
}

// MinSize returns the smallest screen the current board fits on.
func (g *Game) MinSize() (int, int) {
	bw, bh := g.boardSize()
	return bw + gap + panelW, bh + 1
}

// updateLayout records whether the screen is large enough to play.
func (g *Game) updateLayout(w, h int) {
	minW, minH := g.MinSize()
	g.tooSmall = w < minW || h < minH
}

// computeLayout centers board and panel on a w x h screen.
func (g *Game) computeLayout(w, h int) layout {
	bw, bh := g.boardSize()
	minW, minH := g.MinSize()
	x := core.Max(0, (w-minW)/2)
	y := core.Max(0, (h-minH)/2) + 1
	return layout{
		board: core.NewRect(x, y, bw, bh),
		panel: core.NewRect(x+bw+gap, y, panelW, bh),
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.updateLayout(dst.Width(), dst.Height())

	if g.tooSmall {
		minW, minH := g.MinSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	s := g.engine.Snapshot()
	l := g.computeLayout(dst.Width(), dst.Height())

	dst.DrawText(l.board.X, l.board.Y-1, g.Title())
	g.renderBoard(dst, l.board, s)
	g.renderPanel(dst, l.panel, s)

	switch {
	case s.GameOver():
		g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	case s.Paused:
		g.renderOverlay(dst, "PAUSED", "Press P to resume")
	}
}

// renderBoard draws the border, locked cells, landing ghost and active piece.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect, s playfield.Snapshot) {
	border := core.ColorWhite
	if s.GameOver() {
		border = core.ColorRed
	}
	dst.DrawBoxColored(r, border)

	// Arrows on the edge pieces fall towards.
	edgeY, arrow := r.Bottom()-1, ArrowDown
	if s.Gravity == playfield.GravityUp {
		edgeY, arrow = r.Y, ArrowUp
	}
	for x := r.X + 2; x < r.Right()-2; x += 4 {
		dst.SetColored(x, edgeY, arrow, core.ColorBrightYellow)
	}

	for y, row := range s.Board {
		for x, c := range row {
			if c == playfield.CellEmpty {
				dst.SetColored(r.X+1+x*cellW+1, r.Y+1+y, EmptyGlyph, core.ColorGray)
				continue
			}
			drawCell(dst, r, x, y, BlockGlyph, shapeColors[c])
		}
	}

	if ghost := s.Landing(); ghost != nil && ghost.Y != s.Active.Y {
		for _, c := range ghost.Cells() {
			drawCell(dst, r, c[0], c[1], GhostGlyph, core.ColorGray)
		}
	}
	if s.Active != nil {
		for _, c := range s.Active.Cells() {
			drawCell(dst, r, c[0], c[1], BlockGlyph, shapeColors[s.Active.Shape])
		}
	}
}

// drawCell fills one board column (cellW characters) at board coordinates.
func drawCell(dst *core.Screen, r core.Rect, x, y int, glyph rune, color core.Color) {
	sx := r.X + 1 + x*cellW
	sy := r.Y + 1 + y
	for i := range cellW {
		dst.SetColored(sx+i, sy, glyph, color)
	}
}

// renderPanel draws the next-piece preview and session stats.
func (g *Game) renderPanel(dst *core.Screen, r core.Rect, s playfield.Snapshot) {
	y := r.Y
	dst.DrawText(r.X, y, "NEXT")
	y++
	for dy, row := range s.Next.Matrix {
		for dx, filled := range row {
			if filled {
				for i := range cellW {
					dst.SetColored(r.X+dx*cellW+i, y+dy, BlockGlyph, shapeColors[s.Next.Shape])
				}
			}
		}
	}
	y += 5

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", s.Score)},
		{"HIGH", fmt.Sprintf("%d", s.HighScore)},
		{"LINES", fmt.Sprintf("%d", s.Lines)},
		{"PIECES", fmt.Sprintf("%d", s.Pieces)},
	}
	for _, st := range stats {
		dst.DrawText(r.X, y, fmt.Sprintf("%-7s%s", st.label, st.value))
		y++
	}

	y++
	arrow := ArrowDown
	if s.Gravity == playfield.GravityUp {
		arrow = ArrowUp
	}
	dst.DrawTextColored(r.X, y, fmt.Sprintf("GRAVITY %c %s", arrow, s.Gravity), core.ColorBrightYellow)
	y++
	if s.NextFlipIn > 0 {
		secs := int((s.NextFlipIn + time.Second - 1) / time.Second)
		color := core.ColorDefault
		if secs <= 3 {
			color = core.ColorBrightRed
		}
		dst.DrawTextColored(r.X, y, fmt.Sprintf("FLIP IN %ds", secs), color)
	} else {
		dst.DrawText(r.X, y, "FLIP   manual")
	}

	y += 2
	help := []string{
		"←/→  move",
		"↑ x  rotate",
		"z    rotate ccw",
		"↓    soft drop",
		"spc  hard drop",
		"g    flip",
		"p    pause",
	}
	for _, line := range help {
		if y >= r.Bottom() {
			break
		}
		dst.DrawTextColored(r.X, y, line, core.ColorGray)
		y++
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
