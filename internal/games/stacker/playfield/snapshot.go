package playfield

import "time"

// Snapshot is a read-only copy of everything a renderer needs.
// Mutating it has no effect on the engine.
type Snapshot struct {
	Cols, Rows int
	Board      [][]Cell
	Active     *Piece // nil once the session is over
	Next       Piece
	Gravity    Gravity
	Status     Status
	Paused     bool

	Score     int
	HighScore int
	Lines     int
	Pieces    int
	LastClear int // Rows removed by the most recent lock

	DropInterval time.Duration
	NextFlipIn   time.Duration // 0 when timed flips are disabled
}

// GameOver reports whether the snapshot was taken after the session ended.
func (s Snapshot) GameOver() bool {
	return s.Status == StatusGameOver
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Cols:         e.board.Cols(),
		Rows:         e.board.Rows(),
		Board:        e.board.Grid(),
		Next:         e.next.Clone(),
		Gravity:      e.gravity,
		Status:       e.status,
		Paused:       e.paused,
		Score:        e.score,
		HighScore:    e.HighScore(),
		Lines:        e.lines,
		Pieces:       e.pieces,
		LastClear:    e.lastClear,
		DropInterval: e.dropInterval,
	}
	if e.status == StatusRunning {
		active := e.active.Clone()
		s.Active = &active
	}
	if e.cfg.FlipInterval > 0 {
		s.NextFlipIn = max(e.cfg.FlipInterval-e.flipAcc, 0)
	}
	return s
}

// Cells returns the board coordinates covered by the piece.
func (p Piece) Cells() [][2]int {
	var out [][2]int
	for y, row := range p.Matrix {
		for x, filled := range row {
			if filled {
				out = append(out, [2]int{p.X + x, p.Y + y})
			}
		}
	}
	return out
}

// Landing returns where the active piece would lock after a hard drop,
// or nil once the session is over.
func (s Snapshot) Landing() *Piece {
	if s.Active == nil {
		return nil
	}
	b := &Board{cols: s.Cols, rows: s.Rows, cells: s.Board}
	p := s.Active.Clone()
	step := int(s.Gravity)
	for !b.Collides(p.Matrix, p.X, p.Y+step) {
		p.Y += step
	}
	return &p
}
