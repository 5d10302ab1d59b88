package fluid

import (
	"math"
	"testing"

	pkgcore "flowpaint/pkg/core"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func randomField(n int, seed int64) []float64 {
	rng := pkgcore.NewRNG(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// dirichletEnergy sums squared differences over horizontal and vertical
// neighbor pairs. Smoothing must not increase it.
func dirichletEnergy(g Grid, field []float64) float64 {
	e := 0.0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			idx := g.Index(x, y)
			if x < g.W-1 {
				d := field[idx] - field[idx+1]
				e += d * d
			}
			if y < g.H-1 {
				d := field[idx] - field[idx+g.W]
				e += d * d
			}
		}
	}
	return e
}

func TestDiffuseZeroRateIsIdentity(t *testing.T) {
	s := NewWithConfig(calmConfig(16, 16))
	src := randomField(s.grid.Cells(), 1)
	dst := randomField(s.grid.Cells(), 2)

	s.diffuse(dst, src, 0, 1)

	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("cell %d changed under zero rate: %g != %g", i, dst[i], src[i])
		}
	}
}

func TestDiffuseSmoothsWithinRange(t *testing.T) {
	s := NewWithConfig(calmConfig(24, 24))
	src := randomField(s.grid.Cells(), 3)
	dst := make([]float64, len(src))

	s.diffuse(dst, src, 0.4, 1)

	// Every relaxation update is a weighted average, so the result obeys the
	// discrete maximum principle.
	lo, hi := floats.Min(src), floats.Max(src)
	for i, v := range dst {
		if v < lo || v > hi {
			t.Fatalf("cell %d overshot source range [%g,%g]: %g", i, lo, hi, v)
		}
	}

	if before, after := stat.Variance(src, nil), stat.Variance(dst, nil); after >= before {
		t.Errorf("variance did not decrease: %g -> %g", before, after)
	}
	if before, after := dirichletEnergy(s.grid, src), dirichletEnergy(s.grid, dst); after >= before {
		t.Errorf("neighbor energy did not decrease: %g -> %g", before, after)
	}
}

func TestDiffuseConservesTotal(t *testing.T) {
	s := NewWithConfig(calmConfig(24, 24))
	src := randomField(s.grid.Cells(), 4)
	dst := make([]float64, len(src))

	s.diffuse(dst, src, 0.4, 1)

	before, after := floats.Sum(src), floats.Sum(dst)
	if math.Abs(after-before) > 1e-3*before {
		t.Errorf("zero-flux diffusion changed the total: %g -> %g", before, after)
	}
}

func TestDiffuseLeavesSolidCellsAlone(t *testing.T) {
	s := NewWithConfig(calmConfig(16, 16))
	wallIdx := s.grid.Index(8, 8)
	s.solid[wallIdx] = true

	src := randomField(s.grid.Cells(), 5)
	src[wallIdx] = 0.5
	dst := make([]float64, len(src))

	s.diffuse(dst, src, 0.4, 1)

	if dst[wallIdx] != src[wallIdx] {
		t.Errorf("solid cell was relaxed: %g != %g", dst[wallIdx], src[wallIdx])
	}
	lo, hi := floats.Min(src), floats.Max(src)
	for i, v := range dst {
		if v < lo || v > hi {
			t.Fatalf("cell %d left source range near barrier: %g", i, v)
		}
	}
}
