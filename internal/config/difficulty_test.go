package config

import (
	"math"
	"testing"
	"time"
)

func scoreDifficulty(initial float64) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 3.0},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(0.0))

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{500, 0.5},
		{1000, 1.0},
		{5000, 1.0},
		{-10, 0.0},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}
}

func TestDifficultyLevelFromInitial(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(0.5))
	if got := d.Level(500, 0); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(500) = %v, expected 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(0.2))
	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := d.Level(100000, 0); got != 0.2 {
		t.Errorf("Level() = %v, expected initial 0.2", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := scoreDifficulty(0.0)
	cfg.Progression.Type = "time"
	d := NewDifficultyManager(cfg)
	if got := d.Level(1000, 250); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Level(ticks=250) = %v, expected 0.25", got)
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(0.0))
	d.SetInitialLevel(3)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("Level() = %v, expected 1.0", got)
	}
}

func TestDropInterval(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(0.0))
	base := time.Second
	floor := 300 * time.Millisecond

	tests := []struct {
		score    int
		expected time.Duration
	}{
		{0, time.Second},
		{500, 400 * time.Millisecond},  // speed 2.5
		{1000, 300 * time.Millisecond}, // speed 4, 250ms floored
	}
	for _, tt := range tests {
		if got := d.DropInterval(base, floor, tt.score, 0); got != tt.expected {
			t.Errorf("DropInterval(score=%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}
}
