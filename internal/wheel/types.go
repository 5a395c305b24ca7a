package wheel

import "math"

const twoPi = 2 * math.Pi

// GateHalfWidth is the angular half-width, in radians, of the inflow
// sector centered at angle zero. A cup whose angle normalizes into
// [0, GateHalfWidth) or (2π-GateHalfWidth, 2π) receives inflow.
// Fixed model constant.
const GateHalfWidth = 0.1

// State is the integrated state vector, laid out as
// [theta, omega, mass_0, ..., mass_{n-1}] for a wheel with n cups.
// Its length is fixed at 2+n for the duration of a run.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Theta() float64 { return s[0] }
func (s State) Omega() float64 { return s[1] }

// Masses returns the per-cup mass slice, aliasing the state vector.
func (s State) Masses() []float64 { return s[2:] }
