package fluid

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports a coordinate outside the grid. It is returned by the
// bounds-checked accessors; solver internals never see bad coordinates.
var ErrOutOfRange = errors.New("coordinate out of range")

// Grid describes the fixed lattice shared by every field in the simulation.
// Cells are stored row-major: index = y*W + x.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions, clamped to at least 1x1.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// Cells returns the total cell count.
func (g Grid) Cells() int { return g.W * g.H }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// CheckBounds returns ErrOutOfRange (wrapped with the offending coordinates)
// when (x, y) lies outside the grid.
func (g Grid) CheckBounds(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, g.W, g.H)
	}
	return nil
}

// EachInterior invokes fn for every cell not on the outer boundary.
func (g Grid) EachInterior(fn func(x, y, idx int)) {
	for y := 1; y < g.H-1; y++ {
		base := y * g.W
		for x := 1; x < g.W-1; x++ {
			fn(x, y, base+x)
		}
	}
}

// EachEdge invokes fn for every cell on the outer boundary, each exactly once.
func (g Grid) EachEdge(fn func(x, y, idx int)) {
	if g.H == 1 {
		for x := 0; x < g.W; x++ {
			fn(x, 0, x)
		}
		return
	}
	if g.W == 1 {
		for y := 0; y < g.H; y++ {
			fn(0, y, g.Index(0, y))
		}
		return
	}
	for x := 0; x < g.W; x++ {
		fn(x, 0, g.Index(x, 0))
		fn(x, g.H-1, g.Index(x, g.H-1))
	}
	for y := 1; y < g.H-1; y++ {
		fn(0, y, g.Index(0, y))
		fn(g.W-1, y, g.Index(g.W-1, y))
	}
}
