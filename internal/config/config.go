// Package config provides YAML-based game configuration loading and
// difficulty management for Froggit.
package config

import "fmt"

// FroggitConfig contains all configuration for the game.
type FroggitConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Timing     TimingConfig     `yaml:"timing"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Render     RenderConfig     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the world grid.
type GridConfig struct {
	Size float64 `yaml:"size"` // World units per cell
}

// TimingConfig defines animation timing in seconds.
type TimingConfig struct {
	SlideDuration float64 `yaml:"slide_duration"`
	DeathDuration float64 `yaml:"death_duration"`
}

// GameplayConfig defines rules outside the level file.
type GameplayConfig struct {
	Lives int    `yaml:"lives"`
	Level string `yaml:"level"` // Level highlighted in the picker
}

// RenderConfig defines how one grid cell maps to terminal cells.
type RenderConfig struct {
	CellW int `yaml:"cell_w"`
	CellH int `yaml:"cell_h"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "goals", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Goals/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to lane speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
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
