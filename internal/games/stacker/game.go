// Package stacker adapts the gravity-flipping playfield engine to the arcade
// platform: it loads the YAML config, turns input frames into engine commands,
// converts fixed ticks to elapsed time and draws the playfield into a Screen.
package stacker

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/gravity-stacker/internal/config"
	"github.com/vovakirdan/gravity-stacker/internal/core"
	"github.com/vovakirdan/gravity-stacker/internal/games/stacker/playfield"
	"github.com/vovakirdan/gravity-stacker/internal/registry"
)

// Mode selects the game variant.
type Mode int

const (
	ModeGravity Mode = iota // Gravity flips on a timer and on command
	ModeClassic             // Gravity flips only on command
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select none.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements registry.Game around a playfield.Engine.
type Game struct {
	mode Mode

	engine     *playfield.Engine
	cfg        config.StackerConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	dt        time.Duration // Simulated time per Step
	tickCount int
	lines     int // Lines seen at the end of the previous Step
	highScore int // Seeded by the platform from the score store
	tooSmall  bool
}

// New creates a stacker with timed gravity flips.
func New() *Game {
	return &Game{mode: ModeGravity}
}

// NewClassic creates a stacker whose gravity only flips on command.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register("stacker", func() registry.Game {
		return New()
	})
	registry.Register("stacker_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "stacker_classic"
	}
	return "stacker"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Gravity Stacker (Classic)"
	}
	return "Gravity Stacker"
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	cfg, err := config.LoadStacker(configPath)
	if err != nil {
		cfg = config.DefaultStackerConfig()
	}
	config.ApplyStackerPreset(&cfg, difficultyPreset)
	if g.mode == ModeClassic {
		cfg.Timing.FlipIntervalMs = 0
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.dt = rc.TickDuration()
	g.tickCount = 0
	g.lines = 0

	if g.engine != nil {
		g.highScore = max(g.highScore, g.engine.HighScore())
	}
	g.engine = playfield.New(engineConfig(cfg), rand.New(rand.NewSource(rc.Seed)))
	g.engine.SetHighScore(g.highScore)

	g.updateLayout(rc.ScreenW, rc.ScreenH)
}

// engineConfig converts the YAML config into engine parameters.
func engineConfig(cfg config.StackerConfig) playfield.Config {
	return playfield.Config{
		Cols:         cfg.Board.Cols,
		Rows:         cfg.Board.Rows,
		DropInterval: cfg.Timing.DropInterval(),
		FlipInterval: cfg.Timing.FlipInterval(),
		LineScores:   cfg.Scoring.LineScores,
		Layout:       cfg.Board.Layout,
	}
}

// SetHighScore seeds the best score from earlier sessions.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
	if g.engine != nil {
		g.engine.SetHighScore(score)
	}
}

// actionCommands maps platform actions to engine commands.
var actionCommands = map[core.Action]playfield.Command{
	core.ActionLeft:      playfield.CmdMoveLeft,
	core.ActionRight:     playfield.CmdMoveRight,
	core.ActionDown:      playfield.CmdSoftDrop,
	core.ActionRotateCW:  playfield.CmdRotateCW,
	core.ActionRotateCCW: playfield.CmdRotateCCW,
	core.ActionHardDrop:  playfield.CmdHardDrop,
	core.ActionFlip:      playfield.CmdFlipGravity,
	core.ActionRestart:   playfield.CmdRestart,
	core.ActionPause:     playfield.CmdPause,
}

// Step applies this frame's commands in the order they arrived, then
// advances the engine clock by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Ordered() {
		cmd, ok := actionCommands[a]
		if !ok {
			continue
		}
		if cmd == playfield.CmdRestart {
			g.tickCount = 0
			g.lines = 0
		}
		g.engine.Apply(cmd)
	}

	if g.engine.Status() == playfield.StatusRunning && !g.engine.Paused() {
		g.tickCount++
		g.engine.SetDropInterval(g.difficulty.DropInterval(
			g.cfg.Timing.DropInterval(), g.cfg.Timing.MinDropInterval(), g.engine.Score(), g.tickCount))
		g.engine.Tick(g.dt)
	}

	cleared := g.engine.Lines() - g.lines
	g.lines = g.engine.Lines()
	return core.StepResult{State: g.State(), Cleared: cleared}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{HighScore: g.highScore}
	}
	return core.GameState{
		Score:     g.engine.Score(),
		HighScore: g.engine.HighScore(),
		GameOver:  g.engine.Status() == playfield.StatusGameOver,
		Paused:    g.engine.Paused(),
	}
}

// Stats reports rows cleared and pieces locked in the current session.
func (g *Game) Stats() (lines, pieces int) {
	if g.engine == nil {
		return 0, 0
	}
	s := g.engine.Snapshot()
	return s.Lines, s.Pieces
}

// Snapshot returns the engine's current snapshot.
func (g *Game) Snapshot() playfield.Snapshot {
	return g.engine.Snapshot()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	s := g.engine.Snapshot()
	b.WriteString(fmt.Sprintf("Mode: %s, Tick: %d, Drop: %v\n", g.ID(), g.tickCount, s.DropInterval))
	if s.Active != nil {
		b.WriteString(fmt.Sprintf("Active: %s at (%d, %d), Next: %s\n", s.Active.Shape, s.Active.X, s.Active.Y, s.Next.Shape))
	}
	b.WriteString(fmt.Sprintf("GameOver: %v, Paused: %v, Pieces: %d\n", s.GameOver(), s.Paused, s.Pieces))
	b.WriteString(playfield.RenderASCII(s))
	return b.String()
}
