package playfield

// ShapeID identifies one of the fixed piece templates.
// The zero value is reserved so a ShapeID doubles as a board cell tag.
type ShapeID uint8

const (
	ShapeI ShapeID = iota + 1
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
	ShapePlus
)

// ShapeCount is the number of templates a piece is drawn from.
const ShapeCount = 8

// Matrix is a square grid of occupied flags, indexed [row][col].
type Matrix [][]bool

// templates holds every shape at rotation 0. Never mutated.
var templates = map[ShapeID]Matrix{
	ShapeI: parseMatrix(
		".X..",
		".X..",
		".X..",
		".X..",
	),
	ShapeO: parseMatrix(
		"XX",
		"XX",
	),
	ShapeT: parseMatrix(
		"...",
		"XXX",
		".X.",
	),
	ShapeS: parseMatrix(
		".XX",
		"XX.",
		"...",
	),
	ShapeZ: parseMatrix(
		"XX.",
		".XX",
		"...",
	),
	ShapeJ: parseMatrix(
		".X.",
		".X.",
		"XX.",
	),
	ShapeL: parseMatrix(
		".X.",
		".X.",
		".XX",
	),
	ShapePlus: parseMatrix(
		".X.",
		"XXX",
		".X.",
	),
}

// shapeRunes maps shapes to the letter used in ASCII dumps and layouts.
var shapeRunes = map[ShapeID]rune{
	ShapeI:    'I',
	ShapeO:    'O',
	ShapeT:    'T',
	ShapeS:    'S',
	ShapeZ:    'Z',
	ShapeJ:    'J',
	ShapeL:    'L',
	ShapePlus: 'P',
}

// Shapes returns all shape IDs in a stable order.
func Shapes() []ShapeID {
	return []ShapeID{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL, ShapePlus}
}

// Template returns a fresh copy of the shape's rotation-0 matrix.
// Returns nil for unknown shapes.
func Template(id ShapeID) Matrix {
	m, ok := templates[id]
	if !ok {
		return nil
	}
	return m.Clone()
}

// Rune returns the display letter for the shape, or '?' if unknown.
func (id ShapeID) Rune() rune {
	if r, ok := shapeRunes[id]; ok {
		return r
	}
	return '?'
}

// String returns the shape letter as a string.
func (id ShapeID) String() string {
	return string(id.Rune())
}

// shapeFromRune is the inverse of ShapeID.Rune.
func shapeFromRune(r rune) (ShapeID, bool) {
	for id, sr := range shapeRunes {
		if sr == r {
			return id, true
		}
	}
	return 0, false
}

// parseMatrix builds a matrix from rows where 'X' marks an occupied cell.
func parseMatrix(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for y, row := range rows {
		m[y] = make([]bool, len(row))
		for x, ch := range row {
			m[y][x] = ch == 'X'
		}
	}
	return m
}

// Width returns the number of columns.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return len(m)
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for y := range m {
		out[y] = append([]bool(nil), m[y]...)
	}
	return out
}

// Equal reports whether two matrices have the same dimensions and cells.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(other[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (m Matrix) Count() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}
