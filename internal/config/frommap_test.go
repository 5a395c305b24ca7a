package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func fullMap() map[string]any {
	return map[string]any{
		"N_CUPS":      12,
		"RADIUS":      1.0,
		"G":           9.81,
		"DAMPING":     1.0,
		"LEAK_RATE":   1.0,
		"INFLOW_RATE": 5.0,
		"INERTIA":     1.0,
		"OMEGA0":      0.1,
		"T_START":     0.0,
		"T_END":       40.0,
		"N_FRAMES":    1000,
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(fullMap(), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CupCount != 12 {
		t.Errorf("cup count: got %d, want 12", cfg.CupCount)
	}
	if cfg.Gravity != 9.81 {
		t.Errorf("gravity: got %f, want 9.81", cfg.Gravity)
	}
	if cfg.StepsPerFrame != 8 {
		t.Errorf("steps: got %d, want 8", cfg.StepsPerFrame)
	}
}

func TestFromMapDefaultSteps(t *testing.T) {
	cfg, err := FromMap(fullMap(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StepsPerFrame != DefaultSteps {
		t.Errorf("steps: got %d, want default %d", cfg.StepsPerFrame, DefaultSteps)
	}
}

func TestFromMapMissingFields(t *testing.T) {
	for key := range fullMap() {
		t.Run(key, func(t *testing.T) {
			m := fullMap()
			delete(m, key)

			_, err := FromMap(m, 4)
			var mfe *MissingFieldError
			if !errors.As(err, &mfe) {
				t.Fatalf("expected MissingFieldError, got %v", err)
			}
			if mfe.Field != key {
				t.Errorf("reported field %q, want %q", mfe.Field, key)
			}
		})
	}
}

func TestFromMapTypeErrors(t *testing.T) {
	m := fullMap()
	m["RADIUS"] = "one meter"
	_, err := FromMap(m, 4)
	var fte *FieldTypeError
	if !errors.As(err, &fte) {
		t.Fatalf("expected FieldTypeError, got %v", err)
	}
	if fte.Field != "RADIUS" {
		t.Errorf("reported field %q, want RADIUS", fte.Field)
	}

	m = fullMap()
	m["N_CUPS"] = 12.5
	if _, err := FromMap(m, 4); err == nil {
		t.Error("fractional cup count should be rejected")
	}
}

func TestFromMapWholeFloatsAsInts(t *testing.T) {
	// JSON decoding yields float64 for every number.
	m := fullMap()
	m["N_CUPS"] = 12.0
	m["N_FRAMES"] = 500.0

	cfg, err := FromMap(m, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CupCount != 12 || cfg.FrameCount != 500 {
		t.Errorf("got cups=%d frames=%d", cfg.CupCount, cfg.FrameCount)
	}
}

func TestLoadJSONMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel_config.json")
	if err := os.WriteFile(path, []byte(`{"N_CUPS": 6, "INFLOW_RATE": 2.0}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadJSON(path, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CupCount != 6 {
		t.Errorf("cups: got %d, want 6", cfg.CupCount)
	}
	if cfg.InflowRate != 2.0 {
		t.Errorf("inflow: got %f, want 2.0", cfg.InflowRate)
	}
	if cfg.Gravity != DefaultGravity {
		t.Errorf("gravity should default, got %f", cfg.Gravity)
	}
	if cfg.StepsPerFrame != DefaultSteps {
		t.Errorf("steps should default, got %d", cfg.StepsPerFrame)
	}
}

func TestLoadJSONBadFile(t *testing.T) {
	if _, err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"), 4); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadJSON(path, 4); err == nil {
		t.Error("expected error for malformed json")
	}
}
