package playfield

// RotateDir is the direction of a quarter turn.
type RotateDir int

const (
	Clockwise        RotateDir = 1
	CounterClockwise RotateDir = -1
)

// Rotate returns m turned a quarter in the given direction.
// The input is left untouched. Clockwise is transpose then reverse every row;
// counter-clockwise is transpose then reverse the row order.
func Rotate(m Matrix, dir RotateDir) Matrix {
	t := transpose(m)
	if dir == Clockwise {
		for _, row := range t {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		return t
	}
	for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
		t[i], t[j] = t[j], t[i]
	}
	return t
}

// transpose returns a new matrix with rows and columns swapped.
func transpose(m Matrix) Matrix {
	h, w := m.Height(), m.Width()
	out := make(Matrix, w)
	for x := range w {
		out[x] = make([]bool, h)
		for y := range h {
			out[x][y] = m[y][x]
		}
	}
	return out
}
