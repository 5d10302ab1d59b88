package fluid

import (
	"math"
	"strconv"
)

// Solver iteration budgets. Fixed rather than user-facing: both relaxations
// are unconditionally stable, the counts only trade residual error for time.
const (
	diffusionSweeps = 20
	pressureSweeps  = 40
)

// maxIntensity is the upper bound for every dye channel.
const maxIntensity = 1.0

// intensityEpsilon truncates faint dye residue to zero after decay.
const intensityEpsilon = 1e-6

// Params holds the live-tunable solver values. They are read each Step and
// sanitized before the frame runs, so out-of-range edits degrade the frame
// instead of failing it.
type Params struct {
	// Per-channel dye diffusion rates.
	DiffusionR float64
	DiffusionG float64
	DiffusionB float64

	// Viscosity is the diffusion rate applied to the velocity field.
	Viscosity float64

	// Drag removes this fraction of velocity every frame.
	Drag float64

	// Gravity is applied uniformly to every fluid cell, scaled by Dt.
	// It is deliberately not weighted by dye intensity: dye is passive.
	GravityX float64
	GravityY float64

	// Dt is the integration step size.
	Dt float64

	// Decay multiplies every dye channel by (1 - Decay) each frame.
	Decay float64

	// MixingStrength blends each dye cell with its four neighbors after
	// diffusion, softening edges between adjacent colors. It is the weight
	// per open side, bounded at 0.25 so the center weight stays
	// non-negative.
	MixingStrength float64

	// Noise toggles zero-mean stochastic perturbation of dye and velocity.
	// NoiseIntensity bounds the perturbation and is not scaled by Dt.
	Noise          bool
	NoiseIntensity float64

	// BrushRadius is the dye/barrier disk size used by the shell.
	BrushRadius int
}

// Config controls the fluid simulation dimensions and initial parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration. The rates mirror the
// defaults the interactive shell ships with.
func DefaultConfig() Config {
	return Config{
		Width:  400,
		Height: 300,
		Seed:   1337,
		Params: Params{
			DiffusionR:     0.10,
			DiffusionG:     0.05,
			DiffusionB:     0.07,
			Viscosity:      0.05,
			Drag:           0.02,
			GravityX:       0,
			GravityY:       0.005,
			Dt:             1.0,
			Decay:          0.001,
			MixingStrength: 0.05,
			Noise:          false,
			NoiseIntensity: 0.01,
			BrushRadius:    4,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Invalid entries are ignored and the defaults kept.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	readFloat := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	readFloat("diffusion_r", &c.Params.DiffusionR)
	readFloat("diffusion_g", &c.Params.DiffusionG)
	readFloat("diffusion_b", &c.Params.DiffusionB)
	readFloat("viscosity", &c.Params.Viscosity)
	readFloat("drag", &c.Params.Drag)
	readFloat("gravity_x", &c.Params.GravityX)
	readFloat("gravity_y", &c.Params.GravityY)
	readFloat("dt", &c.Params.Dt)
	readFloat("decay", &c.Params.Decay)
	readFloat("mixing", &c.Params.MixingStrength)
	readFloat("noise_intensity", &c.Params.NoiseIntensity)
	if v, ok := cfg["noise"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.Noise = parsed
		}
	}
	if v, ok := cfg["brush_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.BrushRadius = parsed
		}
	}
	return c
}

// sanitized clamps every parameter to its valid domain and replaces
// non-finite values, returning the corrected params and the number of
// corrections made. A frame never fails on bad parameters.
func (p Params) sanitized() (Params, int) {
	clamps := 0
	rate := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			clamps++
			return 0
		}
		return v
	}
	unit := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			clamps++
			return 0
		}
		if v >= 1 {
			clamps++
			return 0.999
		}
		return v
	}
	p.DiffusionR = rate(p.DiffusionR)
	p.DiffusionG = rate(p.DiffusionG)
	p.DiffusionB = rate(p.DiffusionB)
	p.Viscosity = rate(p.Viscosity)
	p.Drag = unit(p.Drag)
	p.Decay = unit(p.Decay)
	if math.IsNaN(p.GravityX) || math.IsInf(p.GravityX, 0) {
		p.GravityX = 0
		clamps++
	}
	if math.IsNaN(p.GravityY) || math.IsInf(p.GravityY, 0) {
		p.GravityY = 0
		clamps++
	}
	if math.IsNaN(p.Dt) || math.IsInf(p.Dt, 0) || p.Dt <= 0 {
		p.Dt = 1e-4
		clamps++
	} else if p.Dt > 10 {
		p.Dt = 10
		clamps++
	}
	if math.IsNaN(p.MixingStrength) || math.IsInf(p.MixingStrength, 0) || p.MixingStrength < 0 {
		p.MixingStrength = 0
		clamps++
	} else if p.MixingStrength > 0.25 {
		p.MixingStrength = 0.25
		clamps++
	}
	if math.IsNaN(p.NoiseIntensity) || math.IsInf(p.NoiseIntensity, 0) || p.NoiseIntensity < 0 {
		p.NoiseIntensity = 0
		clamps++
	} else if p.NoiseIntensity > 0.1 {
		p.NoiseIntensity = 0.1
		clamps++
	}
	if p.BrushRadius < 1 {
		p.BrushRadius = 1
		clamps++
	}
	return p, clamps
}
