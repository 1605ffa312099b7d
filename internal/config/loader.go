package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/cauldron.yaml"

// LoadCauldron loads the cauldron game configuration.
// Search order: customPath -> ~/.cauldron/configs/cauldron.yaml -> ./configs/cauldron.yaml -> embedded default
func LoadCauldron(customPath string) (CauldronConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cauldron.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(localConfigPath); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultCauldronConfig()
	if err := yaml.Unmarshal(defaultCauldronYAML, &cfg); err != nil {
		return DefaultCauldronConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads one YAML file on top of the hardcoded defaults, so a file
// only needs the keys it changes.
func loadFile(path string) (CauldronConfig, error) {
	cfg := DefaultCauldronConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cauldron", "configs", filename)
}

// ApplyCauldronPreset modifies the config based on a difficulty preset.
func ApplyCauldronPreset(cfg *CauldronConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Cauldron.Size = 180
		cfg.Spawner.Period = 4.0
	case DifficultyHard:
		cfg.Cauldron.Size = 120
		cfg.Spawner.Period = 2.5
	}
}
