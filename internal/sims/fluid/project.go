package fluid

import "math"

// divergenceTolerance is the residual below which a projection is considered
// converged. Exceeding it is not an error; the residual is reported through
// Diagnostics and the best available result kept.
const divergenceTolerance = 1e-3

// project removes the divergent component of the velocity field: compute the
// discrete divergence at every fluid cell, relax the Poisson equation
// laplacian(p) = div over fluid cells only, then subtract the pressure
// gradient from (u, v). Runs before and after self-advection each frame.
//
// Solid and out-of-domain faces carry no through-flow: the neighbor's normal
// velocity is mirrored to -center when computing divergence, and the
// pressure gradient across such a face is zero (Neumann).
func (s *Sim) project() {
	w, h := s.grid.W, s.grid.H
	u, v := s.u, s.v

	for y := 0; y < h; y++ {
		base := y * w
		for x := 0; x < w; x++ {
			idx := base + x
			s.pressure[idx] = 0
			if s.solid[idx] {
				s.div[idx] = 0
				continue
			}
			s.div[idx] = -0.5 * s.faceDelta(x, y, idx, u, v)
		}
	}

	for sweep := 0; sweep < pressureSweeps; sweep++ {
		for y := 0; y < h; y++ {
			base := y * w
			for x := 0; x < w; x++ {
				idx := base + x
				if s.solid[idx] {
					continue
				}
				st := s.cellStencil(x, y, idx)
				if st.n == 0 {
					continue
				}
				sum := 0.0
				for side, open := range st.open {
					if open {
						sum += s.pressure[st.idx[side]]
					}
				}
				s.pressure[idx] = (s.div[idx] + sum) / float64(st.n)
			}
		}
	}

	for y := 0; y < h; y++ {
		base := y * w
		for x := 0; x < w; x++ {
			idx := base + x
			if s.solid[idx] {
				continue
			}
			st := s.cellStencil(x, y, idx)
			pc := s.pressure[idx]
			side := func(dir int) float64 {
				if st.open[dir] {
					return s.pressure[st.idx[dir]]
				}
				return pc
			}
			u[idx] -= 0.5 * (side(sideRight) - side(sideLeft))
			v[idx] -= 0.5 * (side(sideDown) - side(sideUp))
		}
	}
}

// faceDelta computes (uR - uL) + (vD - vU) for the cell at (x, y), with the
// no-through-flow mirror at closed faces: a solid or out-of-domain neighbor
// contributes -center, so the face-averaged normal velocity there is zero.
func (s *Sim) faceDelta(x, y, idx int, u, v []float64) float64 {
	st := s.cellStencil(x, y, idx)
	sample := func(dir int, field []float64) float64 {
		if st.open[dir] {
			return field[st.idx[dir]]
		}
		return -field[idx]
	}
	return sample(sideRight, u) - sample(sideLeft, u) +
		sample(sideDown, v) - sample(sideUp, v)
}

// maxDivergence returns the largest absolute discrete divergence across all
// fluid cells, with the same no-through-flow face treatment as project.
func (s *Sim) maxDivergence() float64 {
	w, h := s.grid.W, s.grid.H
	u, v := s.u, s.v
	maxDiv := 0.0
	for y := 0; y < h; y++ {
		base := y * w
		for x := 0; x < w; x++ {
			idx := base + x
			if s.solid[idx] {
				continue
			}
			if d := math.Abs(0.5 * s.faceDelta(x, y, idx, u, v)); d > maxDiv {
				maxDiv = d
			}
		}
	}
	return maxDiv
}
