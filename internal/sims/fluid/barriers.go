package fluid

// Stencil side order shared by the solver passes.
const (
	sideLeft = iota
	sideRight
	sideUp
	sideDown
)

// stencil describes the von Neumann neighborhood of one cell: the linear
// index of each side and whether that side is open fluid. Solid neighbors
// and out-of-domain sides are closed. Every barrier-aware stencil in the
// solver consults this instead of repeating the boundary checks; idx values
// of closed sides are not valid and must not be read.
type stencil struct {
	idx  [4]int
	open [4]bool
	n    int
}

func (s *Sim) cellStencil(x, y, idx int) stencil {
	w := s.grid.W
	st := stencil{idx: [4]int{idx - 1, idx + 1, idx - w, idx + w}}
	if x > 0 && !s.solid[idx-1] {
		st.open[sideLeft] = true
		st.n++
	}
	if x < w-1 && !s.solid[idx+1] {
		st.open[sideRight] = true
		st.n++
	}
	if y > 0 && !s.solid[idx-w] {
		st.open[sideUp] = true
		st.n++
	}
	if y < s.grid.H-1 && !s.solid[idx+w] {
		st.open[sideDown] = true
		st.n++
	}
	return st
}

// IsSolid reports whether the cell at (x, y) is an impermeable barrier.
// Out-of-range coordinates count as solid: the domain edge is a wall.
func (s *Sim) IsSolid(x, y int) bool {
	if !s.grid.InBounds(x, y) {
		return true
	}
	return s.solid[s.grid.Index(x, y)]
}

// SetBarrier marks (or clears) every cell within a disk of the given radius
// as solid. The disk is clipped to the grid. A cell that turns solid has its
// velocity, dye and in-flight scratch values zeroed immediately, so drawing
// a wall through moving fluid does not leave flow trapped inside it.
func (s *Sim) SetBarrier(cx, cy, radius int, solid bool) {
	if radius < 1 {
		radius = 1
	}
	s.eachDiskCell(cx, cy, radius, func(idx int) {
		s.solid[idx] = solid
		if !solid {
			return
		}
		s.u[idx] = 0
		s.v[idx] = 0
		s.uTmp[idx] = 0
		s.vTmp[idx] = 0
		for c := 0; c < numChannels; c++ {
			s.dye[c][idx] = 0
			s.dyeTmp[c][idx] = 0
		}
	})
}

// ClearBarriers resets the whole mask to fluid without reallocating.
func (s *Sim) ClearBarriers() {
	for i := range s.solid {
		s.solid[i] = false
	}
}

// Solid exposes the backing barrier mask for rendering. Treat as read-only.
func (s *Sim) Solid() []bool { return s.solid }

// enforceVelocity zeroes velocity at every solid cell and the normal
// component at domain-edge cells. Tangential edge velocity is left alone:
// the outer walls are free-slip, applied uniformly every frame.
func (s *Sim) enforceVelocity() {
	for i := range s.u {
		if s.solid[i] {
			s.u[i] = 0
			s.v[i] = 0
		}
	}
	w, h := s.grid.W, s.grid.H
	s.grid.EachEdge(func(x, y, idx int) {
		if x == 0 || x == w-1 {
			s.u[idx] = 0
		}
		if y == 0 || y == h-1 {
			s.v[idx] = 0
		}
	})
}
