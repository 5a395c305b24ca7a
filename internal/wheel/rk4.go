package wheel

// rk4 advances a state vector with the classic explicit four-stage
// Runge-Kutta scheme at a fixed step size. The k and scratch buffers
// are allocated once and reused across steps.
type rk4 struct {
	k1, k2, k3, k4 State
	scratch        State
}

func newRK4(n int) *rk4 {
	return &rk4{
		k1:      make(State, n),
		k2:      make(State, n),
		k3:      make(State, n),
		k4:      make(State, n),
		scratch: make(State, n),
	}
}

// Step advances s in place by dt. Deterministic given identical inputs.
func (r *rk4) Step(s State, dt float64, cfg Config) {
	n := len(s)
	half := dt * 0.5

	deriveInto(r.k1, s, cfg)

	for i := 0; i < n; i++ {
		r.scratch[i] = s[i] + half*r.k1[i]
	}
	deriveInto(r.k2, r.scratch, cfg)

	for i := 0; i < n; i++ {
		r.scratch[i] = s[i] + half*r.k2[i]
	}
	deriveInto(r.k3, r.scratch, cfg)

	for i := 0; i < n; i++ {
		r.scratch[i] = s[i] + dt*r.k3[i]
	}
	deriveInto(r.k4, r.scratch, cfg)

	sixth := dt / 6.0
	for i := 0; i < n; i++ {
		s[i] += sixth * (r.k1[i] + 2*r.k2[i] + 2*r.k3[i] + r.k4[i])
	}
}
