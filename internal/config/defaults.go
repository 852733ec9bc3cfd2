package config

import (
	_ "embed"
)

//go:embed defaults/froggit.yaml
var defaultFroggitYAML []byte

// DefaultFroggitConfig returns the default configuration.
func DefaultFroggitConfig() FroggitConfig {
	return FroggitConfig{
		Grid: GridConfig{
			Size: 64,
		},
		Timing: TimingConfig{
			SlideDuration: 0.25,
			DeathDuration: 0.8,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
			Level: "level1",
		},
		Render: RenderConfig{
			CellW: 4,
			CellH: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "goals",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
	}
}
