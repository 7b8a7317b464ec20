package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStacker loads gravity stacker configuration.
// Search order: customPath -> ~/.arcade/configs/stacker.yaml -> ./configs/stacker.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A custom path must exist, parse and validate; the other sources are skipped
// when unusable.
func LoadStacker(customPath string) (StackerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StackerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeStacker(data)
		if err != nil {
			return StackerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return StackerConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", "stacker.yaml")}
	if userCfgPath := userConfigPath("stacker.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeStacker(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := decodeStacker(defaultStackerYAML); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}
	return DefaultStackerConfig(), nil // Fallback to hardcoded if embed fails
}

// decodeStacker unmarshals YAML on top of DefaultStackerConfig.
func decodeStacker(data []byte) (StackerConfig, error) {
	cfg := DefaultStackerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StackerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyStackerPreset modifies the config based on a difficulty preset.
func ApplyStackerPreset(cfg *StackerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timing.DropIntervalMs = 1200
		if cfg.Timing.FlipIntervalMs > 0 {
			cfg.Timing.FlipIntervalMs = 18000
		}
	case DifficultyHard:
		cfg.Timing.DropIntervalMs = 700
		if cfg.Timing.FlipIntervalMs > 0 {
			cfg.Timing.FlipIntervalMs = 8000
		}
	}
}
