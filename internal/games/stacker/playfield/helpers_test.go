package playfield

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// seqRand hands out a fixed sequence of shapes, cycling when exhausted.
type seqRand struct {
	seq []ShapeID
	i   int
}

func (r *seqRand) Intn(n int) int {
	id := r.seq[r.i%len(r.seq)]
	r.i++
	return int(id-1) % n
}

// newEngine builds a 10x20 engine with timed flips off and the given shape order.
func newEngine(t *testing.T, shapes ...ShapeID) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.FlipInterval = 0
	return New(cfg, &seqRand{seq: shapes})
}

// layoutWithBottom returns a rows-high layout whose last lines are bottom.
func layoutWithBottom(cols, rows int, bottom ...string) []string {
	out := make([]string, 0, rows)
	for range rows - len(bottom) {
		out = append(out, strings.Repeat(".", cols))
	}
	return append(out, bottom...)
}

// requireActiveLegal checks the active piece is on the board and not overlapping.
func requireActiveLegal(t *testing.T, e *Engine) {
	t.Helper()
	s := e.Snapshot()
	if s.Active == nil {
		return
	}
	for _, c := range s.Active.Cells() {
		x, y := c[0], c[1]
		require.True(t, x >= 0 && x < s.Cols && y >= 0 && y < s.Rows,
			"active cell (%d, %d) out of bounds\n%s", x, y, RenderASCII(s))
		require.Equal(t, CellEmpty, s.Board[y][x],
			"active cell (%d, %d) overlaps the board\n%s", x, y, RenderASCII(s))
	}
}

// moveFully shifts the active piece until it stops.
func moveFully(e *Engine, dx int) {
	for e.Move(dx) {
	}
}

const frame = time.Second / 60
