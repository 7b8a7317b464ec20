package config

import (
	_ "embed"
)

//go:embed defaults/stacker.yaml
var defaultStackerYAML []byte

// DefaultStackerConfig returns the default gravity stacker configuration.
func DefaultStackerConfig() StackerConfig {
	return StackerConfig{
		Board: StackerBoard{
			Cols: 10,
			Rows: 20,
		},
		Timing: StackerTiming{
			DropIntervalMs:    1000,
			MinDropIntervalMs: 120,
			FlipIntervalMs:    12000,
		},
		Scoring: StackerScoring{
			LineScores: []int{0, 120, 360, 700, 1100},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}
