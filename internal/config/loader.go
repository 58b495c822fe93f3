package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the game configuration.
// Search order: customPath -> ~/.polyfall/configs/polyfall.yaml ->
// ./configs/polyfall.yaml -> embedded default.
func Load(customPath string) (PolyfallConfig, error) {
	var cfg PolyfallConfig

	// An explicit path must exist and parse; silent fallback would hide
	// the user's mistake.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("polyfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/polyfall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPolyfallYAML, &cfg); err != nil {
		return DefaultPolyfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".polyfall", "configs", filename)
}

// normalize fills out-of-range or missing fields from the defaults, so a
// partial user config still produces a playable game.
func normalize(cfg PolyfallConfig) PolyfallConfig {
	def := DefaultPolyfallConfig()

	if cfg.Board.Width <= 0 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height <= 0 {
		cfg.Board.Height = def.Board.Height
	}
	if cfg.Pieces.Size < 4 || cfg.Pieces.Size > 9 {
		cfg.Pieces.Size = def.Pieces.Size
	}
	if cfg.Pieces.QueueLength <= 0 {
		cfg.Pieces.QueueLength = def.Pieces.QueueLength
	}
	if cfg.Pieces.HoldEnabled == nil {
		cfg.Pieces.HoldEnabled = def.Pieces.HoldEnabled
	}
	if cfg.Pieces.GhostEnabled == nil {
		cfg.Pieces.GhostEnabled = def.Pieces.GhostEnabled
	}
	if cfg.Timing.LockDelayMs <= 0 {
		cfg.Timing.LockDelayMs = def.Timing.LockDelayMs
	}
	if cfg.Timing.TickRate <= 0 {
		cfg.Timing.TickRate = def.Timing.TickRate
	}
	if cfg.Difficulty.StartLevel < 1 || cfg.Difficulty.StartLevel > 99 {
		cfg.Difficulty.StartLevel = def.Difficulty.StartLevel
	}
	return cfg
}
