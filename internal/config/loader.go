package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const worldsFile = "worlds.yaml"

// LoadWorlds loads the platformer configuration.
// Search order: customPath -> ~/.worlds/configs/worlds.yaml -> ./configs/worlds.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadWorlds(customPath string) (WorldsConfig, error) {
	cfg, err := loadWorlds(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadWorlds(customPath string) (WorldsConfig, error) {
	cfg := DefaultWorldsConfig()

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

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(worldsFile), filepath.Join("configs", worldsFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := cfg
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	embedded := cfg
	if err := yaml.Unmarshal(defaultWorldsYAML, &embedded); err != nil {
		return DefaultWorldsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg WorldsConfig) ([]byte, error) {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".worlds", "configs", filename)
}
