package fluid

import (
	"flowpaint/internal/core"
	pkgcore "flowpaint/pkg/core"
)

// Dye channel indices.
const (
	ChannelR = iota
	ChannelG
	ChannelB
	numChannels
)

// Sim is a grid-based fluid and dye solver: a velocity field advanced with
// the stable-fluids ordering (force, diffuse, project, advect, project) and
// three passive dye channels transported by it. User-painted barriers act as
// impermeable solids for every stage.
//
// All fields are allocated once and never resized. A Step runs to completion
// before the shell applies the next frame's edits, so nothing here is
// concurrency-safe and nothing needs to be.
type Sim struct {
	cfg  Config
	grid Grid

	params Params

	u, v     []float64
	uTmp     []float64
	vTmp     []float64
	dye      [numChannels][]float64
	dyeTmp   [numChannels][]float64
	pressure []float64
	div      []float64
	solid    []bool

	rng  *pkgcore.RNG
	diag Diagnostics
}

var _ core.Sim = (*Sim)(nil)

// New returns a fluid simulation with the provided dimensions using defaults.
func New(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a fluid simulation configured from the provided
// options. Every field is zero-initialized; the grid is immutable for the
// life of the Sim.
func NewWithConfig(cfg Config) *Sim {
	grid := NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	total := grid.Cells()
	s := &Sim{
		cfg:      cfg,
		grid:     grid,
		params:   cfg.Params,
		u:        make([]float64, total),
		v:        make([]float64, total),
		uTmp:     make([]float64, total),
		vTmp:     make([]float64, total),
		pressure: make([]float64, total),
		div:      make([]float64, total),
		solid:    make([]bool, total),
		rng:      pkgcore.NewRNG(cfg.Seed),
	}
	for c := 0; c < numChannels; c++ {
		s.dye[c] = make([]float64, total)
		s.dyeTmp[c] = make([]float64, total)
	}
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "fluid" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Grid exposes the lattice descriptor shared by all fields.
func (s *Sim) Grid() Grid { return s.grid }

// Params returns the current live parameter values.
func (s *Sim) Params() Params { return s.params }

// SetParams replaces the live parameter values. They are sanitized on the
// next Step, not here, so the shell may hand over raw slider values.
func (s *Sim) SetParams(p Params) { s.params = p }

// Reset clears every field and barrier and reseeds the noise source.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng = pkgcore.NewRNG(seed)
	s.params = s.cfg.Params
	fill(s.u, 0)
	fill(s.v, 0)
	fill(s.uTmp, 0)
	fill(s.vTmp, 0)
	fill(s.pressure, 0)
	fill(s.div, 0)
	for c := 0; c < numChannels; c++ {
		fill(s.dye[c], 0)
		fill(s.dyeTmp[c], 0)
	}
	for i := range s.solid {
		s.solid[i] = false
	}
	s.diag = Diagnostics{}
}

// Step advances the simulation one frame using the current parameters.
// The sequence is fixed: body forces, velocity diffusion, projection,
// self-advection, projection again, barrier enforcement, then dye
// diffusion, mixing, advection, decay and optional noise. It never fails; invalid
// parameters are clamped and counted in Diagnostics.
func (s *Sim) Step() {
	p, clamps := s.params.sanitized()
	s.diag.ParamClamps += clamps
	dt := p.Dt

	s.applyBodyForces(p, dt)
	if p.Viscosity > 0 {
		s.diffuse(s.uTmp, s.u, p.Viscosity, dt)
		s.u, s.uTmp = s.uTmp, s.u
		s.diffuse(s.vTmp, s.v, p.Viscosity, dt)
		s.v, s.vTmp = s.vTmp, s.v
	}
	s.project()
	s.selfAdvectVelocity(dt)
	s.project()
	s.enforceVelocity()

	rates := [numChannels]float64{p.DiffusionR, p.DiffusionG, p.DiffusionB}
	for c := 0; c < numChannels; c++ {
		if rates[c] > 0 {
			s.diffuse(s.dyeTmp[c], s.dye[c], rates[c], dt)
			s.dye[c], s.dyeTmp[c] = s.dyeTmp[c], s.dye[c]
		}
	}
	if p.MixingStrength > 0 {
		s.mixDye(p.MixingStrength)
	}
	for c := 0; c < numChannels; c++ {
		s.advect(s.dyeTmp[c], s.dye[c], s.u, s.v, dt)
		s.dye[c], s.dyeTmp[c] = s.dyeTmp[c], s.dye[c]
	}
	if p.Decay > 0 {
		s.decayDye(p.Decay)
	}
	if p.Noise && p.NoiseIntensity > 0 {
		s.perturbDye(p.NoiseIntensity)
	}
	s.clampDye()

	s.diag.Frame++
	s.diag.Residual = s.maxDivergence()
	s.diag.Converged = s.diag.Residual <= divergenceTolerance
}

// applyBodyForces adds gravity (and, when enabled, a bounded velocity
// perturbation) to every non-solid cell. Gravity is uniform: dye intensity
// does not weight it.
func (s *Sim) applyBodyForces(p Params, dt float64) {
	gx := p.GravityX * dt
	gy := p.GravityY * dt
	keep := 1 - p.Drag
	for i := range s.u {
		if s.solid[i] {
			continue
		}
		s.u[i] = s.u[i]*keep + gx
		s.v[i] = s.v[i]*keep + gy
	}
	if p.Noise && p.NoiseIntensity > 0 {
		s.perturbVelocity(p.NoiseIntensity)
	}
}

// selfAdvectVelocity transports the velocity field along itself. Both
// components are traced through the same pre-advection field.
func (s *Sim) selfAdvectVelocity(dt float64) {
	s.advect(s.uTmp, s.u, s.u, s.v, dt)
	s.advect(s.vTmp, s.v, s.u, s.v, dt)
	s.u, s.uTmp = s.uTmp, s.u
	s.v, s.vTmp = s.vTmp, s.v
}

func (s *Sim) decayDye(decay float64) {
	keep := 1 - decay
	for c := 0; c < numChannels; c++ {
		ch := s.dye[c]
		for i, val := range ch {
			val *= keep
			if val < intensityEpsilon {
				val = 0
			}
			ch[i] = val
		}
	}
}

func (s *Sim) clampDye() {
	for c := 0; c < numChannels; c++ {
		ch := s.dye[c]
		for i, val := range ch {
			if val < 0 {
				ch[i] = 0
			} else if val > maxIntensity {
				ch[i] = maxIntensity
			}
		}
	}
}

// AddDye splats additive dye within a disk of the given radius, clamped to
// the maximum intensity. The disk is clipped to the grid; solid cells take
// no dye. Intensities are per channel in [0, 1].
func (s *Sim) AddDye(cx, cy, radius int, r, g, b float64) {
	if radius < 1 {
		radius = 1
	}
	amounts := [numChannels]float64{r, g, b}
	s.eachDiskCell(cx, cy, radius, func(idx int) {
		if s.solid[idx] {
			return
		}
		for c := 0; c < numChannels; c++ {
			val := s.dye[c][idx] + amounts[c]
			if val > maxIntensity {
				val = maxIntensity
			}
			if val < 0 {
				val = 0
			}
			s.dye[c][idx] = val
		}
	})
}

// ClearDye resets every dye channel to zero without reallocating.
func (s *Sim) ClearDye() {
	for c := 0; c < numChannels; c++ {
		fill(s.dye[c], 0)
		fill(s.dyeTmp[c], 0)
	}
}

// eachDiskCell invokes fn for every in-bounds cell within the disk.
func (s *Sim) eachDiskCell(cx, cy, radius int, fn func(idx int)) {
	r2 := radius * radius
	for y := cy - radius; y <= cy+radius; y++ {
		if y < 0 || y >= s.grid.H {
			continue
		}
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || x >= s.grid.W {
				continue
			}
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			fn(s.grid.Index(x, y))
		}
	}
}

func fill(slice []float64, val float64) {
	for i := range slice {
		slice[i] = val
	}
}
