package wheel

// Result holds one simulated trajectory as three flat buffers. Times and
// Theta have FrameCount entries. Masses has CupCount*FrameCount entries
// in cup-major order: all frames for cup 0, then all frames for cup 1,
// and so on.
type Result struct {
	CupCount   int
	FrameCount int
	Times      []float64
	Theta      []float64
	Masses     []float64
}

// Mass returns the mass of one cup at one frame.
func (r *Result) Mass(cup, frame int) float64 {
	return r.Masses[cup*r.FrameCount+frame]
}

// CupSeries returns the mass history of a single cup, aliasing the
// underlying buffer.
func (r *Result) CupSeries(cup int) []float64 {
	return r.Masses[cup*r.FrameCount : (cup+1)*r.FrameCount]
}

// FrameMasses returns the per-cup masses at one frame.
func (r *Result) FrameMasses(frame int) []float64 {
	out := make([]float64, r.CupCount)
	for cup := range out {
		out[cup] = r.Masses[cup*r.FrameCount+frame]
	}
	return out
}

// Simulate validates cfg, integrates the wheel from TStart to TEnd and
// returns the sampled trajectory. The state starts all zero except
// omega = Omega0. Between consecutive frames the state advances by
// StepsPerFrame RK4 steps of size frameDt/StepsPerFrame; the last frame
// is recorded without advancing further. Frame timestamps accumulate by
// repeated addition of the sub-step size, so they match the closed form
// TStart + k*frameDt only up to floating-point summation error.
func Simulate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	state := make(State, 2+cfg.CupCount)
	state[1] = cfg.Omega0

	frameDt := (cfg.TEnd - cfg.TStart) / float64(cfg.FrameCount-1)
	subDt := frameDt / float64(cfg.StepsPerFrame)

	result := &Result{
		CupCount:   cfg.CupCount,
		FrameCount: cfg.FrameCount,
		Times:      make([]float64, cfg.FrameCount),
		Theta:      make([]float64, cfg.FrameCount),
		Masses:     make([]float64, cfg.CupCount*cfg.FrameCount),
	}

	stepper := newRK4(len(state))
	t := cfg.TStart

	for frame := 0; frame < cfg.FrameCount; frame++ {
		result.Times[frame] = t
		result.Theta[frame] = state[0]
		for cup := 0; cup < cfg.CupCount; cup++ {
			result.Masses[cup*cfg.FrameCount+frame] = state[2+cup]
		}

		if frame+1 == cfg.FrameCount {
			break
		}

		for step := 0; step < cfg.StepsPerFrame; step++ {
			stepper.Step(state, subDt, cfg)
			t += subDt
		}
	}

	return result, nil
}
