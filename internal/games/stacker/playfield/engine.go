// Package playfield implements the gravity-flipping stacker rules: the board,
// the active and next pieces, wall kicks, the line-clear sweep and scoring.
// It has no knowledge of terminals, keys or storage; the game package drives
// it with elapsed time and discrete commands and reads it through Snapshot.
package playfield

import (
	"time"

	"github.com/vovakirdan/gravity-stacker/internal/core"
)

// Gravity is the direction pieces fall in: +1 down, -1 up.
type Gravity int

const (
	GravityDown Gravity = 1
	GravityUp   Gravity = -1
)

// String returns "down" or "up".
func (g Gravity) String() string {
	if g == GravityUp {
		return "up"
	}
	return "down"
}

// Status is the engine's top-level state.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "running"
}

// Randomizer picks the next shape. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Piece is a shape instance placed on the board.
type Piece struct {
	Shape  ShapeID
	Matrix Matrix
	X, Y   int
}

// Clone returns a copy with its own matrix.
func (p Piece) Clone() Piece {
	p.Matrix = p.Matrix.Clone()
	return p
}

// Config holds the engine's fixed parameters for one session.
type Config struct {
	Cols         int
	Rows         int
	DropInterval time.Duration // Time between automatic soft drops
	FlipInterval time.Duration // Time between automatic gravity flips; 0 disables them
	LineScores   []int         // Points indexed by rows cleared in one sweep
	Layout       []string      // Optional starting board, see ParseBoard
}

// DefaultLineScores is the award table for 0 through 4 rows in one sweep.
var DefaultLineScores = []int{0, 120, 360, 700, 1100}

// DefaultConfig returns the reference 10x20 setup.
func DefaultConfig() Config {
	return Config{
		Cols:         10,
		Rows:         20,
		DropInterval: time.Second,
		FlipInterval: 12 * time.Second,
		LineScores:   DefaultLineScores,
	}
}

// Engine owns one game session. It is not safe for concurrent use; the
// caller serializes Tick and commands on a single goroutine.
type Engine struct {
	cfg Config
	rng Randomizer

	board   *Board
	active  Piece
	next    Piece
	gravity Gravity
	status  Status
	paused  bool

	score     int
	highScore int
	lines     int
	pieces    int
	lastClear int

	dropInterval time.Duration
	dropAcc      time.Duration
	flipAcc      time.Duration
}

// New creates an engine and starts the first session.
func New(cfg Config, rng Randomizer) *Engine {
	if len(cfg.LineScores) == 0 {
		cfg.LineScores = DefaultLineScores
	}
	e := &Engine{
		cfg:          cfg,
		rng:          rng,
		dropInterval: cfg.DropInterval,
	}
	e.Restart()
	return e
}

// Restart clears the board, resets score, timers and gravity, and spawns a
// fresh active and next piece. Always accepted. The best score carries over.
func (e *Engine) Restart() {
	e.highScore = e.HighScore()
	e.board = e.initialBoard()
	e.gravity = GravityDown
	e.status = StatusRunning
	e.paused = false
	e.score = 0
	e.lines = 0
	e.pieces = 0
	e.lastClear = 0
	e.dropAcc = 0
	e.flipAcc = 0

	e.next = e.randomPiece()
	e.spawn()
}

// initialBoard returns the configured layout, or an empty board when there
// is none or it does not fit the configured size.
func (e *Engine) initialBoard() *Board {
	if len(e.cfg.Layout) > 0 {
		if b, err := ParseBoard(e.cfg.Layout); err == nil && b.Cols() == e.cfg.Cols && b.Rows() == e.cfg.Rows {
			return b
		}
	}
	return NewBoard(e.cfg.Cols, e.cfg.Rows)
}

// randomPiece draws a shape uniformly from the template set.
func (e *Engine) randomPiece() Piece {
	all := Shapes()
	id := all[e.rng.Intn(len(all))]
	return Piece{Shape: id, Matrix: Template(id)}
}

// spawnOrigin is where a piece enters: centered, on the edge gravity moves away from.
func (e *Engine) spawnOrigin(m Matrix) (int, int) {
	x := e.board.Cols()/2 - m.Width()/2
	if e.gravity == GravityUp {
		return x, e.board.Rows() - m.Height()
	}
	return x, 0
}

// spawn promotes the next piece to active and draws a new next piece.
// If the entry position is blocked the session ends and nothing is placed.
func (e *Engine) spawn() {
	p := e.next
	p.X, p.Y = e.spawnOrigin(p.Matrix)
	if e.board.Collides(p.Matrix, p.X, p.Y) {
		e.status = StatusGameOver
		return
	}
	e.active = p
	e.next = e.randomPiece()
}

// canAct reports whether gameplay input is currently accepted.
func (e *Engine) canAct() bool {
	return e.status == StatusRunning && !e.paused
}

// Tick advances the timers by dt. The gravity-flip timer is checked before
// the drop timer so a flip is visible to a drop fired in the same tick.
func (e *Engine) Tick(dt time.Duration) {
	if !e.canAct() {
		return
	}
	e.dropAcc += dt
	e.flipAcc += dt

	if e.cfg.FlipInterval > 0 && e.flipAcc > e.cfg.FlipInterval {
		e.flipGravity()
		e.flipAcc = 0
	}
	if e.dropAcc > e.dropInterval {
		e.softDrop()
	}
}

// Move shifts the active piece one column towards the sign of dx.
// Returns false and leaves everything unchanged if the shift collides.
func (e *Engine) Move(dx int) bool {
	if !e.canAct() {
		return false
	}
	step := core.Sign(dx)
	if step == 0 {
		return false
	}
	x := e.active.X + step
	if e.board.Collides(e.active.Matrix, x, e.active.Y) {
		return false
	}
	e.active.X = x
	return true
}

// Rotate turns the active piece a quarter. When the turned matrix collides,
// the origin is shifted by +1, -2, +3, -4, ... columns in turn (cumulatively)
// until it fits; once the next offset would exceed the matrix width the
// rotation is dropped and the piece is left as it was.
func (e *Engine) Rotate(dir RotateDir) bool {
	if !e.canAct() {
		return false
	}
	rotated := Rotate(e.active.Matrix, dir)
	width := rotated.Width()
	x := e.active.X
	offset := 1
	for e.board.Collides(rotated, x, e.active.Y) {
		x += offset
		offset = -(offset + core.Sign(offset))
		if offset > width {
			return false
		}
	}
	e.active.Matrix = rotated
	e.active.X = x
	return true
}

// SoftDrop advances the active piece one cell with gravity, locking it in
// place if it cannot advance. Resets the drop timer either way.
func (e *Engine) SoftDrop() {
	if !e.canAct() {
		return
	}
	e.softDrop()
}

func (e *Engine) softDrop() {
	e.dropAcc = 0
	y := e.active.Y + int(e.gravity)
	if e.board.Collides(e.active.Matrix, e.active.X, y) {
		e.lock()
		return
	}
	e.active.Y = y
}

// HardDrop moves the active piece as far as gravity allows and locks it.
func (e *Engine) HardDrop() {
	if !e.canAct() {
		return
	}
	e.dropAcc = 0
	step := int(e.gravity)
	for !e.board.Collides(e.active.Matrix, e.active.X, e.active.Y+step) {
		e.active.Y += step
	}
	e.lock()
}

// lock merges the active piece, sweeps full rows, scores, and spawns the next piece.
func (e *Engine) lock() {
	e.board.Merge(e.active.Matrix, e.active.X, e.active.Y, e.active.Shape)
	e.pieces++

	cleared := e.board.Sweep(e.gravity)
	e.lastClear = cleared
	e.lines += cleared
	e.score += e.lineScore(cleared)

	e.spawn()
}

// lineScore looks up the award for n rows cleared in one sweep.
// Counts beyond the table use its last entry.
func (e *Engine) lineScore(n int) int {
	if n <= 0 {
		return 0
	}
	table := e.cfg.LineScores
	if n >= len(table) {
		return table[len(table)-1]
	}
	return table[n]
}

// FlipGravity inverts gravity on player request.
func (e *Engine) FlipGravity() {
	if !e.canAct() {
		return
	}
	e.flipGravity()
}

// flipGravity inverts gravity and clamps the active piece's row into the
// range valid for the new direction. Overlap is left for the next drop.
func (e *Engine) flipGravity() {
	e.gravity = -e.gravity
	lo, hi := 0, e.board.Rows()-e.active.Matrix.Height()
	if e.gravity == GravityDown {
		hi = max(hi, e.active.Y)
	} else {
		lo = min(lo, e.active.Y)
	}
	e.active.Y = core.Clamp(e.active.Y, lo, hi)
}

// TogglePause flips the paused flag while the session is running.
func (e *Engine) TogglePause() {
	if e.status != StatusRunning {
		return
	}
	e.paused = !e.paused
}

// SetDropInterval changes the automatic drop cadence. Non-positive values are ignored.
func (e *Engine) SetDropInterval(d time.Duration) {
	if d > 0 {
		e.dropInterval = d
	}
}

// SetHighScore seeds the best score known from previous sessions.
func (e *Engine) SetHighScore(score int) {
	e.highScore = score
}

// HighScore returns the larger of the seeded best score and the current score.
func (e *Engine) HighScore() int {
	return max(e.highScore, e.score)
}

// Score returns the current session score.
func (e *Engine) Score() int {
	return e.score
}

// Status returns whether the session is running or over.
func (e *Engine) Status() Status {
	return e.status
}

// Paused reports whether the session is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// Gravity returns the current gravity direction.
func (e *Engine) Gravity() Gravity {
	return e.gravity
}

// Lines returns the total rows cleared this session.
func (e *Engine) Lines() int {
	return e.lines
}
