package config

var Presets = map[string]*Config{
	// The classic chaotic regime: strong inflow against moderate
	// damping keeps the wheel reversing unpredictably.
	"chaotic": {
		Cups: 12, Radius: 1.0, Gravity: 9.81, Damping: 1.0,
		LeakRate: 1.0, InflowRate: 5.0, Inertia: 1.0, Omega0: 0.1,
		TStart: 0, TEnd: 40, Frames: 1000, StepsPerFrame: 4,
	},
	// Heavy damping relative to inflow settles the wheel into steady
	// one-directional rotation.
	"steady": {
		Cups: 12, Radius: 1.0, Gravity: 9.81, Damping: 5.0,
		LeakRate: 2.0, InflowRate: 3.0, Inertia: 1.0, Omega0: 0.5,
		TStart: 0, TEnd: 40, Frames: 1000, StepsPerFrame: 4,
	},
	// No inflow: a spun wheel with empty cups coasts down under damping.
	"coastdown": {
		Cups: 12, Radius: 1.0, Gravity: 9.81, Damping: 0.5,
		LeakRate: 1.0, InflowRate: 0.0, Inertia: 1.0, Omega0: 3.0,
		TStart: 0, TEnd: 20, Frames: 500, StepsPerFrame: 4,
	},
	// Few large cups, slow leak: long mass transients.
	"sloshy": {
		Cups: 4, Radius: 1.5, Gravity: 9.81, Damping: 1.5,
		LeakRate: 0.3, InflowRate: 2.0, Inertia: 2.0, Omega0: 0.0,
		TStart: 0, TEnd: 60, Frames: 1200, StepsPerFrame: 4,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
