package playfield

import (
	"fmt"
)

// Cell is the content of one board position.
// CellEmpty or the ShapeID of the piece that was merged there.
type Cell = ShapeID

// CellEmpty marks an unoccupied board position.
const CellEmpty Cell = 0

// Board is the grid of locked cells, indexed [row][col].
// Its dimensions never change after creation.
type Board struct {
	cols  int
	rows  int
	cells [][]Cell
}

// NewBoard creates an empty board.
func NewBoard(cols, rows int) *Board {
	b := &Board{cols: cols, rows: rows, cells: make([][]Cell, rows)}
	for y := range b.cells {
		b.cells[y] = make([]Cell, cols)
	}
	return b
}

// ParseBoard builds a board from ASCII rows, top row first.
// '.' is empty; a shape letter (I O T S Z J L P) is a locked cell of that shape.
// Every row must have the same length.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("playfield: empty layout")
	}
	cols := len(rows[0])
	b := NewBoard(cols, len(rows))
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("playfield: row %d has %d columns, expected %d", y, len(row), cols)
		}
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			id, ok := shapeFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("playfield: unknown cell %q at (%d, %d)", ch, x, y)
			}
			b.cells[y][x] = id
		}
	}
	return b, nil
}

// Cols returns the board width.
func (b *Board) Cols() int {
	return b.cols
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// At returns the cell at (x, y), or CellEmpty when out of range.
func (b *Board) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return CellEmpty
	}
	return b.cells[y][x]
}

// inBounds reports whether (x, y) is a board position.
func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// Collides reports whether matrix m placed with its top-left at (ox, oy)
// touches a wall, the floor, the ceiling or a locked cell.
func (b *Board) Collides(m Matrix, ox, oy int) bool {
	for y, row := range m {
		for x, filled := range row {
			if !filled {
				continue
			}
			bx, by := ox+x, oy+y
			if !b.inBounds(bx, by) || b.cells[by][bx] != CellEmpty {
				return true
			}
		}
	}
	return false
}

// Merge copies every occupied cell of m into the board with the given tag.
// Cells outside the board are dropped.
func (b *Board) Merge(m Matrix, ox, oy int, tag Cell) {
	for y, row := range m {
		for x, filled := range row {
			if filled && b.inBounds(ox+x, oy+y) {
				b.cells[oy+y][ox+x] = tag
			}
		}
	}
}

// rowFull reports whether every cell in row y is occupied.
func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// Sweep removes every full row and refills the board with empty rows on the
// spawn edge: the top when gravity points down, the bottom when it points up.
// Returns the number of rows removed.
func (b *Board) Sweep(g Gravity) int {
	kept := make([][]Cell, 0, b.rows)
	for y := range b.rows {
		if !b.rowFull(y) {
			kept = append(kept, b.cells[y])
		}
	}
	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]Cell, cleared)
	for i := range fresh {
		fresh[i] = make([]Cell, b.cols)
	}

	if g == GravityUp {
		b.cells = append(kept, fresh...)
	} else {
		b.cells = append(fresh, kept...)
	}
	return cleared
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != CellEmpty {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{cols: b.cols, rows: b.rows, cells: make([][]Cell, b.rows)}
	for y := range b.cells {
		out.cells[y] = append([]Cell(nil), b.cells[y]...)
	}
	return out
}

// Grid returns a copy of the cells, indexed [row][col].
func (b *Board) Grid() [][]Cell {
	return b.Clone().cells
}
