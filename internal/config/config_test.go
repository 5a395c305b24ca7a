package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cups != 12 {
		t.Errorf("expected 12 cups, got %d", cfg.Cups)
	}
	if cfg.Gravity != 9.81 {
		t.Errorf("expected gravity 9.81, got %f", cfg.Gravity)
	}
	if cfg.Frames < 2 {
		t.Error("frames should be at least 2")
	}
	if cfg.StepsPerFrame < 1 {
		t.Error("steps_per_frame should be positive")
	}
	if err := cfg.Wheel().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.yaml")

	cfg := DefaultConfig()
	cfg.Cups = 7
	cfg.InflowRate = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("cups: 6\ndamping: 2.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Cups != 6 {
		t.Errorf("expected cups 6, got %d", cfg.Cups)
	}
	if cfg.Damping != 2.5 {
		t.Errorf("expected damping 2.5, got %f", cfg.Damping)
	}
	if cfg.Gravity != DefaultGravity {
		t.Errorf("unspecified gravity should default, got %f", cfg.Gravity)
	}
}

func TestWheelMapping(t *testing.T) {
	cfg := DefaultConfig()
	w := cfg.Wheel()

	if w.CupCount != cfg.Cups {
		t.Errorf("cup count mismatch: %d vs %d", w.CupCount, cfg.Cups)
	}
	if w.FrameCount != cfg.Frames {
		t.Errorf("frame count mismatch: %d vs %d", w.FrameCount, cfg.Frames)
	}
	if w.StepsPerFrame != cfg.StepsPerFrame {
		t.Errorf("steps mismatch: %d vs %d", w.StepsPerFrame, cfg.StepsPerFrame)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("chaotic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.InflowRate != 5.0 {
		t.Errorf("expected inflow 5.0, got %f", cfg.InflowRate)
	}

	// Returned preset is a copy; mutations must not leak back.
	cfg.Cups = 99
	if Presets["chaotic"].Cups == 99 {
		t.Error("preset mutation leaked into the registry")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected at least one preset")
	}
}
