package config

import (
	_ "embed"
)

//go:embed defaults/polyfall.yaml
var defaultPolyfallYAML []byte

// DefaultPolyfallConfig returns the default configuration.
func DefaultPolyfallConfig() PolyfallConfig {
	return PolyfallConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Pieces: PiecesConfig{
			Size:         4,
			QueueLength:  3,
			HoldEnabled:  boolPtr(true),
			GhostEnabled: boolPtr(true),
		},
		Timing: TimingConfig{
			LockDelayMs: 500,
			TickRate:    60,
		},
		Difficulty: DifficultyConfig{
			Preset:     string(DifficultyNormal),
			StartLevel: 1,
		},
	}
}

func boolPtr(v bool) *bool { return &v }

// DefaultYAML returns the embedded default YAML, used by the CLI to write a
// starter config file.
func DefaultYAML() []byte {
	return defaultPolyfallYAML
}
