package fluid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Diagnostics reports per-frame solver health to the shell. Nothing in here
// is fatal: a missed tolerance or a clamped parameter degrades the frame,
// it never aborts it.
type Diagnostics struct {
	// Frame counts completed steps since the last Reset.
	Frame int
	// ParamClamps counts parameter values that had to be clamped or
	// replaced before a frame could run.
	ParamClamps int
	// Residual is the max absolute divergence left after the last frame's
	// projections.
	Residual float64
	// Converged reports whether Residual met the solver tolerance.
	Converged bool
}

// Diagnostics returns the current solver health snapshot.
func (s *Sim) Diagnostics() Diagnostics { return s.diag }

// TotalIntensity sums all dye across every channel, a cheap conservation
// check for the shell and the tests.
func (s *Sim) TotalIntensity() float64 {
	total := 0.0
	for c := 0; c < numChannels; c++ {
		total += floats.Sum(s.dye[c])
	}
	return total
}

// MaxSpeed returns the largest velocity component magnitude on the grid.
func (s *Sim) MaxSpeed() float64 {
	u := floats.Norm(s.u, math.Inf(1))
	v := floats.Norm(s.v, math.Inf(1))
	if v > u {
		return v
	}
	return u
}
