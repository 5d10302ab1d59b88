package fluid

// Stochastic perturbation. Samples are zero-mean Gaussian scaled by the
// intensity and truncated at three sigma, so a single frame's injection is
// bounded regardless of dt and cannot push the implicit solves out of their
// stable range.

func (s *Sim) perturbDye(intensity float64) {
	bound := 3 * intensity
	for c := 0; c < numChannels; c++ {
		ch := s.dye[c]
		for i := range ch {
			if s.solid[i] {
				continue
			}
			ch[i] += truncate(s.rng.NormFloat64()*intensity, bound)
		}
	}
}

func (s *Sim) perturbVelocity(intensity float64) {
	bound := 3 * intensity
	for i := range s.u {
		if s.solid[i] {
			continue
		}
		s.u[i] += truncate(s.rng.NormFloat64()*intensity, bound)
		s.v[i] += truncate(s.rng.NormFloat64()*intensity, bound)
	}
}

func truncate(v, bound float64) float64 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}
