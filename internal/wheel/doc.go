// Package wheel implements the Lorenz water wheel: a rotating wheel of
// evenly spaced cups that fill from a fixed inflow spout and drain at a
// constant leak rate, driven by gravity and opposed by viscous damping.
//
// The package exposes a single entry point, [Simulate], which integrates
// the equations of motion with a fixed-step fourth-order Runge-Kutta
// scheme and returns the sampled trajectory:
//
//	cfg := wheel.Config{CupCount: 12, Radius: 1, Gravity: 9.81, ...}
//	res, err := wheel.Simulate(cfg)
//
// # Thread Safety
//
// The engine is stateless: each call to [Simulate] allocates its own
// state vector and output buffers, so concurrent calls from independent
// goroutines are safe without locking.
package wheel
