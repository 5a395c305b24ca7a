package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/san-kum/wheely/internal/wheel"
)

// MissingFieldError reports a required key absent from a parameter map.
// It is distinct from wheel.InvalidConfigError: a map can carry every
// key and still describe an invalid configuration.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("config: missing field: %s", e.Field)
}

// FieldTypeError reports a key whose value has the wrong dynamic type.
type FieldTypeError struct {
	Field string
	Value any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("config: field %s: unexpected value %v (%T)", e.Field, e.Value, e.Value)
}

// FromMap builds an engine configuration from a key/value map using the
// uppercase external field names (N_CUPS, RADIUS, G, DAMPING, LEAK_RATE,
// INFLOW_RATE, INERTIA, OMEGA0, T_START, T_END, N_FRAMES). Every key is
// required. stepsPerFrame <= 0 selects the default of DefaultSteps.
// The returned config is not validated; callers hit wheel.Simulate's
// own validation next.
func FromMap(m map[string]any, stepsPerFrame int) (wheel.Config, error) {
	if stepsPerFrame <= 0 {
		stepsPerFrame = DefaultSteps
	}

	var cfg wheel.Config
	var err error

	if cfg.CupCount, err = intField(m, "N_CUPS"); err != nil {
		return wheel.Config{}, err
	}
	if cfg.Radius, err = floatField(m, "RADIUS"); err != nil {
		return wheel.Config{}, err
	}
	if cfg.Gravity, err = floatField(m, "G"); err != nil {
		return wheel.Config{}, err
	}
	if cfg.Damping, err = floatField(m, "DAMPING"); err != nil {
		return wheel.Config{}, err
	}
	if cfg.LeakRate, err = floatField(m, "LEAK_RATE"); err != nil {
		return wheel.Config{}, err
	}
	if cfg.InflowRate, err = floatField(m, "INFLOW_RATE"); err != nil {
		return wheel.Config{}, err
	}
	if cfg.Inertia, err = floatField(m, "INERTIA"); err != nil {
		return wheel.Config{}, err
	}
	if cfg.Omega0, err = floatField(m, "OMEGA0"); err != nil {
		return wheel.Config{}, err
	}
	if cfg.TStart, err = floatField(m, "T_START"); err != nil {
		return wheel.Config{}, err
	}
	if cfg.TEnd, err = floatField(m, "T_END"); err != nil {
		return wheel.Config{}, err
	}
	if cfg.FrameCount, err = intField(m, "N_FRAMES"); err != nil {
		return wheel.Config{}, err
	}
	cfg.StepsPerFrame = stepsPerFrame

	return cfg, nil
}

// LoadJSON reads a JSON parameter file with the uppercase field names,
// filling unspecified keys from the defaults, and funnels the merged map
// through FromMap so both entry paths share one presence/type check.
func LoadJSON(path string, stepsPerFrame int) (wheel.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return wheel.Config{}, err
	}

	var user map[string]any
	if err := json.Unmarshal(data, &user); err != nil {
		return wheel.Config{}, err
	}

	merged := defaultMap()
	for k, v := range user {
		merged[k] = v
	}

	return FromMap(merged, stepsPerFrame)
}

func defaultMap() map[string]any {
	d := DefaultConfig()
	return map[string]any{
		"N_CUPS":      d.Cups,
		"RADIUS":      d.Radius,
		"G":           d.Gravity,
		"DAMPING":     d.Damping,
		"LEAK_RATE":   d.LeakRate,
		"INFLOW_RATE": d.InflowRate,
		"INERTIA":     d.Inertia,
		"OMEGA0":      d.Omega0,
		"T_START":     d.TStart,
		"T_END":       d.TEnd,
		"N_FRAMES":    d.Frames,
	}
}

func floatField(m map[string]any, key string) (float64, error) {
	v, ok := m[key]
	if !ok {
		return 0, &MissingFieldError{Field: key}
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, &FieldTypeError{Field: key, Value: v}
}

func intField(m map[string]any, key string) (int, error) {
	v, ok := m[key]
	if !ok {
		return 0, &MissingFieldError{Field: key}
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		// JSON numbers decode as float64; accept whole values only.
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &FieldTypeError{Field: key, Value: v}
}
