// Package config provides YAML-based game configuration loading and
// difficulty presets for the platform.
package config

// PolyfallConfig contains all configuration for a run.
type PolyfallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Pieces     PiecesConfig     `yaml:"pieces"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PiecesConfig defines the piece catalog parameters. The toggles are
// pointers so a YAML file that omits them is distinguishable from one that
// sets them to false; Load fills omitted toggles from the defaults.
type PiecesConfig struct {
	Size         int   `yaml:"size"`          // polyomino size, 4-9
	QueueLength  int   `yaml:"queue_length"`  // next-piece preview length
	HoldEnabled  *bool `yaml:"hold_enabled"`  // allow stashing a piece
	GhostEnabled *bool `yaml:"ghost_enabled"` // show the drop projection
}

// TimingConfig defines the simulation timing parameters.
type TimingConfig struct {
	LockDelayMs float64 `yaml:"lock_delay_ms"` // grace period for grounded pieces
	TickRate    int     `yaml:"tick_rate"`     // simulation ticks per second
}

// DifficultyConfig defines the starting difficulty.
type DifficultyConfig struct {
	Preset     string `yaml:"preset"`      // "easy", "normal" or "hard"
	StartLevel int    `yaml:"start_level"` // level floor, 1-99
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the config for a named difficulty. Unknown presets
// leave the config untouched.
func ApplyPreset(cfg *PolyfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Preset = string(preset)
		cfg.Difficulty.StartLevel = 1
		cfg.Timing.LockDelayMs = 700
	case DifficultyNormal:
		cfg.Difficulty.Preset = string(preset)
		cfg.Difficulty.StartLevel = 1
		cfg.Timing.LockDelayMs = 500
	case DifficultyHard:
		cfg.Difficulty.Preset = string(preset)
		cfg.Difficulty.StartLevel = 5
		cfg.Timing.LockDelayMs = 350
	}
}

// ValidPreset reports whether the name maps to a known preset.
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
