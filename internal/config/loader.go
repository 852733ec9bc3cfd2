package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in each directory.
const FileName = "froggit.yaml"

// LoadFroggit loads the game configuration. Fields missing from the file
// keep their default values.
// Search order: customPath -> ~/.froggit/configs/froggit.yaml -> ./configs/froggit.yaml -> embedded default
func LoadFroggit(customPath string) (FroggitConfig, error) {
	cfg := DefaultFroggitConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultFroggitConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultFroggitConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFroggitYAML, &cfg); err != nil {
		return DefaultFroggitConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".froggit", "configs", filename)
}

// ApplyFroggitPreset modifies the config based on a difficulty preset.
func ApplyFroggitPreset(cfg *FroggitConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		// Lane speeds exactly as written in the level.
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Timing.SlideDuration = 0.2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Timing.SlideDuration = 0.3
	}
}
