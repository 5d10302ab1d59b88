package fluid

import "math"

// advect transports src along the velocity field (u, v) by semi-Lagrangian
// backtracing: each destination cell looks backward dt along its velocity
// and bilinearly interpolates the source there. Stable for arbitrary dt (no
// CFL restriction) at the cost of numerical smoothing.
//
// The backtraced position is clamped half a cell inside the domain. Corners
// of the interpolation square that are solid are dropped and the remaining
// weights renormalized, so barrier-side values never leak into the flow.
// Solid destination cells keep their src value. src is never mutated.
func (s *Sim) advect(dst, src, u, v []float64, dt float64) {
	w, h := s.grid.W, s.grid.H
	loX, hiX := 0.5, float64(w)-1.5
	loY, hiY := 0.5, float64(h)-1.5
	if hiX < loX {
		loX, hiX = 0, 0
	}
	if hiY < loY {
		loY, hiY = 0, 0
	}
	for y := 0; y < h; y++ {
		base := y * w
		for x := 0; x < w; x++ {
			idx := base + x
			if s.solid[idx] {
				dst[idx] = src[idx]
				continue
			}
			dx := u[idx] * dt
			dy := v[idx] * dt
			if dx == 0 && dy == 0 {
				dst[idx] = src[idx]
				continue
			}
			fx, fy := 0.0, 0.0
			// A trace that ends in or crosses a solid region would sample
			// barrier-side values; shrink it until it stays on the fluid
			// side. A trace that is still blocked after shrinking keeps the
			// cell's own value: never sample across a wall.
			blocked := false
			for i := 0; ; i++ {
				fx = float64(x) - dx
				fy = float64(y) - dy
				if fx < loX {
					fx = loX
				} else if fx > hiX {
					fx = hiX
				}
				if fy < loY {
					fy = loY
				} else if fy > hiY {
					fy = hiY
				}
				blocked = s.traceBlocked(float64(x), float64(y), fx, fy)
				if !blocked || i >= 4 {
					break
				}
				dx /= 2
				dy /= 2
			}
			if blocked {
				dst[idx] = src[idx]
				continue
			}
			dst[idx] = s.sampleBilinear(src, fx, fy, src[idx])
		}
	}
}

// traceBlocked reports whether the backtrace from (x0, y0) to (fx, fy) ends
// in or passes through a solid cell. The segment is sampled at half-cell
// spacing, dense enough that a single-cell wall cannot slip between samples.
func (s *Sim) traceBlocked(x0, y0, fx, fy float64) bool {
	dx := fx - x0
	dy := fy - y0
	span := math.Abs(dx)
	if a := math.Abs(dy); a > span {
		span = a
	}
	steps := int(math.Ceil(span * 2))
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if s.solidAtPoint(x0+dx*t, y0+dy*t) {
			return true
		}
	}
	return false
}

func (s *Sim) solidAtPoint(fx, fy float64) bool {
	x := int(math.Round(fx))
	y := int(math.Round(fy))
	if !s.grid.InBounds(x, y) {
		return true
	}
	return s.solid[s.grid.Index(x, y)]
}

// sampleBilinear interpolates src at the fractional position (fx, fy).
// Solid corners get zero weight; the rest are renormalized. When every
// corner is solid the fallback value is returned. The result is a convex
// combination of corner values and therefore never overshoots them.
func (s *Sim) sampleBilinear(src []float64, fx, fy, fallback float64) float64 {
	w, h := s.grid.W, s.grid.H
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	if x0 < 0 {
		x0 = 0
	} else if x0 > w-1 {
		x0 = w - 1
	}
	if y0 < 0 {
		y0 = 0
	} else if y0 > h-1 {
		y0 = h - 1
	}
	x1 := x0 + 1
	if x1 > w-1 {
		x1 = w - 1
	}
	y1 := y0 + 1
	if y1 > h-1 {
		y1 = h - 1
	}
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	corners := [4]int{
		y0*w + x0,
		y0*w + x1,
		y1*w + x0,
		y1*w + x1,
	}
	weights := [4]float64{
		(1 - tx) * (1 - ty),
		tx * (1 - ty),
		(1 - tx) * ty,
		tx * ty,
	}

	total := 0.0
	acc := 0.0
	for i, c := range corners {
		if s.solid[c] {
			continue
		}
		acc += weights[i] * src[c]
		total += weights[i]
	}
	if total <= 0 {
		return fallback
	}
	return acc / total
}
