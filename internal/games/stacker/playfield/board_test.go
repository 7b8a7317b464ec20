package playfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard([]string{
		"....",
		".T..",
		"IIOO",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, b.Cols())
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, ShapeT, b.At(1, 1))
	assert.Equal(t, ShapeO, b.At(3, 2))
	assert.Equal(t, CellEmpty, b.At(0, 0))
	assert.Equal(t, CellEmpty, b.At(-1, 0), "out of range reads as empty")
	assert.Equal(t, 5, b.Filled())
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
	}{
		{"empty", nil},
		{"ragged", []string{"...", ".."}},
		{"unknown cell", []string{"..#"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBoard(tc.layout)
			assert.Error(t, err)
		})
	}
}

func TestCollides(t *testing.T) {
	b, err := ParseBoard([]string{
		"....",
		"....",
		"..O.",
	})
	require.NoError(t, err)
	o := Template(ShapeO)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"free", 0, 0, false},
		{"left wall", -1, 0, true},
		{"right wall", 3, 0, true},
		{"floor", 0, 2, true},
		{"ceiling", 0, -1, true},
		{"locked cell", 1, 1, true},
		{"beside locked cell", 0, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, b.Collides(o, tc.x, tc.y))
		})
	}
}

func TestCollidesIgnoresEmptyMatrixCells(t *testing.T) {
	b := NewBoard(4, 4)
	// I template only occupies column 1 of its matrix.
	assert.False(t, b.Collides(Template(ShapeI), -1, 0))
	assert.True(t, b.Collides(Template(ShapeI), -2, 0))
}

func TestMergeDropsOutOfRange(t *testing.T) {
	b := NewBoard(3, 3)
	b.Merge(Template(ShapeO), 2, 2, ShapeO)
	assert.Equal(t, 1, b.Filled())
	assert.Equal(t, ShapeO, b.At(2, 2))
}

func TestSweepClearBoardIsNoop(t *testing.T) {
	b, err := ParseBoard([]string{
		"....",
		"TT..",
		"OOO.",
	})
	require.NoError(t, err)
	before := b.Grid()

	for _, g := range []Gravity{GravityDown, GravityUp} {
		assert.Equal(t, 0, b.Sweep(g))
		assert.Equal(t, before, b.Grid())
	}
}

func TestSweepRowCount(t *testing.T) {
	for full := 0; full <= 4; full++ {
		layout := []string{"S...", "...."}
		for range full {
			layout = append(layout, "ZZZZ")
		}
		layout = append(layout, "J...")

		b, err := ParseBoard(layout)
		require.NoError(t, err)
		rows := b.Rows()

		assert.Equal(t, full, b.Sweep(GravityDown), "full rows: %d", full)
		assert.Equal(t, rows, b.Rows())
		assert.Len(t, b.Grid(), rows)
		assert.Equal(t, 2, b.Filled(), "partial rows must survive")
	}
}

func TestSweepGravityDownInsertsAtTop(t *testing.T) {
	b, err := ParseBoard([]string{
		"T...",
		"LLLL",
		".S..",
	})
	require.NoError(t, err)

	require.Equal(t, 1, b.Sweep(GravityDown))

	want, _ := ParseBoard([]string{
		"....",
		"T...",
		".S..",
	})
	assert.Equal(t, want.Grid(), b.Grid())
}

func TestSweepGravityUpInsertsAtBottom(t *testing.T) {
	b, err := ParseBoard([]string{
		"T...",
		"LLLL",
		".S..",
	})
	require.NoError(t, err)

	require.Equal(t, 1, b.Sweep(GravityUp))

	want, _ := ParseBoard([]string{
		"T...",
		".S..",
		"....",
	})
	assert.Equal(t, want.Grid(), b.Grid())
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(2, 2)
	c := b.Clone()
	c.Merge(Template(ShapeO), 0, 0, ShapeO)
	assert.Equal(t, 0, b.Filled())
	assert.Equal(t, 4, c.Filled())
}
