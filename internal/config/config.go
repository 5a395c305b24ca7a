package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/wheely/internal/wheel"
)

const (
	DefaultCups     = 12
	DefaultRadius   = 1.0
	DefaultGravity  = 9.81
	DefaultDamping  = 1.0
	DefaultLeakRate = 1.0
	DefaultInflow   = 5.0
	DefaultInertia  = 1.0
	DefaultOmega0   = 0.1
	DefaultTEnd     = 40.0
	DefaultFrames   = 1000
	DefaultSteps    = 4
)

type Config struct {
	Cups          int     `yaml:"cups"`
	Radius        float64 `yaml:"radius"`
	Gravity       float64 `yaml:"gravity"`
	Damping       float64 `yaml:"damping"`
	LeakRate      float64 `yaml:"leak_rate"`
	InflowRate    float64 `yaml:"inflow_rate"`
	Inertia       float64 `yaml:"inertia"`
	Omega0        float64 `yaml:"omega0"`
	TStart        float64 `yaml:"t_start"`
	TEnd          float64 `yaml:"t_end"`
	Frames        int     `yaml:"frames"`
	StepsPerFrame int     `yaml:"steps_per_frame"`
}

func DefaultConfig() *Config {
	return &Config{
		Cups:          DefaultCups,
		Radius:        DefaultRadius,
		Gravity:       DefaultGravity,
		Damping:       DefaultDamping,
		LeakRate:      DefaultLeakRate,
		InflowRate:    DefaultInflow,
		Inertia:       DefaultInertia,
		Omega0:        DefaultOmega0,
		TStart:        0,
		TEnd:          DefaultTEnd,
		Frames:        DefaultFrames,
		StepsPerFrame: DefaultSteps,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Wheel converts the file-level configuration into the engine's Config.
func (c *Config) Wheel() wheel.Config {
	return wheel.Config{
		CupCount:      c.Cups,
		Radius:        c.Radius,
		Gravity:       c.Gravity,
		Damping:       c.Damping,
		LeakRate:      c.LeakRate,
		InflowRate:    c.InflowRate,
		Inertia:       c.Inertia,
		Omega0:        c.Omega0,
		TStart:        c.TStart,
		TEnd:          c.TEnd,
		FrameCount:    c.Frames,
		StepsPerFrame: c.StepsPerFrame,
	}
}
