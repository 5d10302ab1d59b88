package fluid

// diffuse solves dst - rate*dt*laplacian(dst) = src, the implicit (backward
// Euler) form of diffusion, by Gauss-Seidel relaxation. The implicit form is
// unconditionally stable for any rate and dt >= 0; the explicit form blows
// up once rate*dt crosses the grid-spacing threshold.
//
// Solid neighbors and out-of-domain neighbors are excluded from the stencil
// on both sides: they neither contribute to the average nor receive flux
// (zero-flux boundary). Solid cells carry their src value through unchanged.
//
// rate == 0 copies src into dst exactly. src is never mutated.
func (s *Sim) diffuse(dst, src []float64, rate, dt float64) {
	a := rate * dt
	if a <= 0 {
		copy(dst, src)
		return
	}
	w, h := s.grid.W, s.grid.H
	copy(dst, src)
	for sweep := 0; sweep < diffusionSweeps; sweep++ {
		for y := 0; y < h; y++ {
			base := y * w
			for x := 0; x < w; x++ {
				idx := base + x
				if s.solid[idx] {
					continue
				}
				st := s.cellStencil(x, y, idx)
				sum := 0.0
				for side, open := range st.open {
					if open {
						sum += dst[st.idx[side]]
					}
				}
				dst[idx] = (src[idx] + a*sum) / (1 + a*float64(st.n))
			}
		}
	}
}

// mixDye blends each dye cell with its four neighbors: weight strength per
// open side, the remainder on the center. Closed sides hand their weight
// back to the center, so the pass conserves total intensity and nothing
// bleeds into or out of barriers. strength is bounded at 0.25 to keep the
// center weight non-negative. Runs after dye diffusion, before advection.
func (s *Sim) mixDye(strength float64) {
	w, h := s.grid.W, s.grid.H
	for c := 0; c < numChannels; c++ {
		src, dst := s.dye[c], s.dyeTmp[c]
		for y := 0; y < h; y++ {
			base := y * w
			for x := 0; x < w; x++ {
				idx := base + x
				if s.solid[idx] {
					dst[idx] = src[idx]
					continue
				}
				st := s.cellStencil(x, y, idx)
				acc := (1 - strength*float64(st.n)) * src[idx]
				for side, open := range st.open {
					if open {
						acc += strength * src[st.idx[side]]
					}
				}
				dst[idx] = acc
			}
		}
		s.dye[c], s.dyeTmp[c] = s.dyeTmp[c], s.dye[c]
	}
}
