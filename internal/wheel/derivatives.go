package wheel

import "math"

// Derivatives evaluates the equations of motion at state s. It is pure:
// s is not modified and a fresh vector of the same length is returned.
//
// Cup i sits at angle theta + i*2π/n. Gravity acting on each cup's mass
// produces a torque m*g*R*sin(angle); the wheel accelerates by the net
// torque minus damping, divided by inertia. Each cup leaks mass at
// LeakRate and, while inside the inflow gate, gains mass at InflowRate.
func Derivatives(s State, cfg Config) State {
	d := make(State, len(s))
	deriveInto(d, s, cfg)
	return d
}

func deriveInto(dst, s State, cfg Config) {
	theta := s[0]
	omega := s[1]
	spacing := twoPi / float64(cfg.CupCount)

	torque := 0.0
	for i := 0; i < cfg.CupCount; i++ {
		angle := theta + spacing*float64(i)
		torque += s[2+i] * cfg.Gravity * cfg.Radius * math.Sin(angle)
	}

	dst[0] = omega
	dst[1] = (-cfg.Damping*omega + torque) / cfg.Inertia

	for i := 0; i < cfg.CupCount; i++ {
		angle := theta + spacing*float64(i)
		phi := math.Mod(angle, twoPi)
		if phi < 0 {
			phi += twoPi
		}
		mass := s[2+i]
		if phi < GateHalfWidth || phi > twoPi-GateHalfWidth {
			dst[2+i] = cfg.InflowRate - cfg.LeakRate*mass
		} else {
			dst[2+i] = -cfg.LeakRate * mass
		}
	}
}
