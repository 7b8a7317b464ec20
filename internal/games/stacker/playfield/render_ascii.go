package playfield

import (
	"fmt"
	"strings"
)

// RenderASCII dumps a snapshot as text for debugging and test messages.
//
// Format:
//   - header line with score, lines, gravity and status
//   - one line per board row: '.' empty, uppercase shape letter for locked
//     cells, lowercase letter for the active piece
func RenderASCII(s Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Score: %d | Lines: %d | Gravity: %s | %s\n", s.Score, s.Lines, s.Gravity, s.Status)

	grid := make([][]rune, s.Rows)
	for y := range grid {
		grid[y] = make([]rune, s.Cols)
		for x := range grid[y] {
			if c := s.Board[y][x]; c != CellEmpty {
				grid[y][x] = c.Rune()
			} else {
				grid[y][x] = '.'
			}
		}
	}
	if s.Active != nil {
		letter := strings.ToLower(s.Active.Shape.String())
		for _, c := range s.Active.Cells() {
			x, y := c[0], c[1]
			if x >= 0 && x < s.Cols && y >= 0 && y < s.Rows {
				grid[y][x] = []rune(letter)[0]
			}
		}
	}

	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
