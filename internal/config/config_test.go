package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultPolyfallConfig()
	if cfg.Board != def.Board || cfg.Timing != def.Timing {
		t.Fatalf("embedded default = %+v, want %+v", cfg, def)
	}
	if cfg.Pieces.Size != def.Pieces.Size || cfg.Pieces.QueueLength != def.Pieces.QueueLength {
		t.Fatalf("pieces = %+v, want %+v", cfg.Pieces, def.Pieces)
	}
	if !*cfg.Pieces.HoldEnabled || !*cfg.Pieces.GhostEnabled {
		t.Fatalf("default toggles = %+v", cfg.Pieces)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polyfall.yaml")
	data := "pieces:\n  size: 5\n  queue_length: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pieces.Size != 5 || cfg.Pieces.QueueLength != 4 {
		t.Fatalf("pieces = %+v", cfg.Pieces)
	}
	// Unset fields are backfilled from the defaults.
	if cfg.Board.Width != 10 || cfg.Timing.TickRate != 60 {
		t.Fatalf("normalize did not backfill: %+v", cfg)
	}
}

func TestLoadPartialConfigKeepsToggles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polyfall.yaml")
	data := "board:\n  width: 12\npieces:\n  size: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	// Omitted toggles default to on rather than the bool zero value.
	if cfg.Pieces.HoldEnabled == nil || !*cfg.Pieces.HoldEnabled {
		t.Fatal("hold disabled by a config that never mentioned it")
	}
	if cfg.Pieces.GhostEnabled == nil || !*cfg.Pieces.GhostEnabled {
		t.Fatal("ghost disabled by a config that never mentioned it")
	}
}

func TestLoadExplicitFalseToggles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polyfall.yaml")
	data := "pieces:\n  hold_enabled: false\n  ghost_enabled: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *cfg.Pieces.HoldEnabled || *cfg.Pieces.GhostEnabled {
		t.Fatalf("explicit false overridden: %+v", cfg.Pieces)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit config")
	}
}

func TestNormalizeRejectsBadSize(t *testing.T) {
	cfg := normalize(PolyfallConfig{Pieces: PiecesConfig{Size: 17}})
	if cfg.Pieces.Size != 4 {
		t.Fatalf("size = %d, want 4", cfg.Pieces.Size)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultPolyfallConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.StartLevel != 5 || cfg.Timing.LockDelayMs != 350 {
		t.Fatalf("hard preset = %+v %+v", cfg.Difficulty, cfg.Timing)
	}

	before := cfg
	ApplyPreset(&cfg, "bogus")
	if cfg != before {
		t.Fatal("unknown preset changed the config")
	}
}

func TestValidPreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard"} {
		if !ValidPreset(name) {
			t.Errorf("ValidPreset(%q) = false", name)
		}
	}
	if ValidPreset("impossible") {
		t.Error("ValidPreset accepted an unknown name")
	}
}
