package wheel

// Config holds the parameters for one simulation run. It is a value
// type: callers construct it, [Simulate] consumes it, nothing mutates it.
type Config struct {
	CupCount      int     // number of cups, evenly spaced around the rim
	Radius        float64 // wheel radius, the torque arm length
	Gravity       float64 // gravitational acceleration
	Damping       float64 // viscous damping coefficient on omega
	LeakRate      float64 // fractional mass loss per unit time, every cup
	InflowRate    float64 // mass added per unit time to cups in the gate
	Inertia       float64 // wheel moment of inertia
	Omega0        float64 // angular velocity at TStart
	TStart        float64
	TEnd          float64
	FrameCount    int // sampled output frames, both endpoints included
	StepsPerFrame int // RK4 sub-steps between consecutive frames
}

// Validate rejects configurations the integrator cannot run. Physical
// plausibility is not enforced: Inertia, Damping, LeakRate, InflowRate
// and Radius are accepted as given, including zero inertia, which makes
// the derivative non-finite. Widening this set would change which
// parameter regimes callers can explore, so it stays as is.
func (c Config) Validate() error {
	if c.CupCount < 1 {
		return &InvalidConfigError{Field: "CupCount", Reason: "must be positive"}
	}
	if c.FrameCount < 2 {
		return &InvalidConfigError{Field: "FrameCount", Reason: "must be at least 2"}
	}
	if c.TEnd <= c.TStart {
		return &InvalidConfigError{Field: "TEnd", Reason: "must be greater than TStart"}
	}
	if c.StepsPerFrame < 1 {
		return &InvalidConfigError{Field: "StepsPerFrame", Reason: "must be positive"}
	}
	return nil
}
