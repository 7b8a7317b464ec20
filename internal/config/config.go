// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// StackerConfig contains all configuration for the gravity stacker.
type StackerConfig struct {
	Board      StackerBoard     `yaml:"board"`
	Timing     StackerTiming    `yaml:"timing"`
	Scoring    StackerScoring   `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// StackerBoard defines the playfield size and an optional starting layout.
type StackerBoard struct {
	Cols   int      `yaml:"cols"`
	Rows   int      `yaml:"rows"`
	Layout []string `yaml:"layout"` // Top row first, '.' empty, shape letters locked
}

// StackerTiming defines the automatic drop and gravity-flip cadence.
type StackerTiming struct {
	DropIntervalMs    int `yaml:"drop_interval_ms"`
	MinDropIntervalMs int `yaml:"min_drop_interval_ms"` // Floor reached at max difficulty
	FlipIntervalMs    int `yaml:"flip_interval_ms"`     // 0 disables timed flips
}

// StackerScoring defines the award per number of rows cleared at once.
type StackerScoring struct {
	LineScores []int `yaml:"line_scores"` // Indexed by rows cleared, 0 through 4
}

// DropInterval returns the base automatic drop interval.
func (t StackerTiming) DropInterval() time.Duration {
	return time.Duration(t.DropIntervalMs) * time.Millisecond
}

// MinDropInterval returns the fastest drop interval difficulty may reach.
func (t StackerTiming) MinDropInterval() time.Duration {
	return time.Duration(t.MinDropIntervalMs) * time.Millisecond
}

// FlipInterval returns the gravity flip interval, 0 when disabled.
func (t StackerTiming) FlipInterval() time.Duration {
	return time.Duration(t.FlipIntervalMs) * time.Millisecond
}

// Minimum playable board size.
const (
	MinStackerCols = 4
	MinStackerRows = 4
)

// Validate reports every problem with the configuration.
func (c StackerConfig) Validate() error {
	var errs []error
	if c.Board.Cols < MinStackerCols || c.Board.Rows < MinStackerRows {
		errs = append(errs, fmt.Errorf("config: board %dx%d is smaller than %dx%d",
			c.Board.Cols, c.Board.Rows, MinStackerCols, MinStackerRows))
	}
	if len(c.Board.Layout) > 0 && len(c.Board.Layout) != c.Board.Rows {
		errs = append(errs, fmt.Errorf("config: layout has %d rows, board has %d", len(c.Board.Layout), c.Board.Rows))
	}
	for i, row := range c.Board.Layout {
		if len(row) != c.Board.Cols {
			errs = append(errs, fmt.Errorf("config: layout row %d has %d columns, board has %d", i, len(row), c.Board.Cols))
		}
	}
	if c.Timing.DropIntervalMs <= 0 {
		errs = append(errs, errors.New("config: drop_interval_ms must be positive"))
	}
	if c.Timing.MinDropIntervalMs <= 0 {
		errs = append(errs, errors.New("config: min_drop_interval_ms must be positive"))
	}
	if c.Timing.FlipIntervalMs < 0 {
		errs = append(errs, errors.New("config: flip_interval_ms must not be negative"))
	}
	if len(c.Scoring.LineScores) < 5 {
		errs = append(errs, fmt.Errorf("config: line_scores needs 5 entries, got %d", len(c.Scoring.LineScores)))
	}
	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. The empty string means
// "use the config as loaded" and is returned unchanged.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
