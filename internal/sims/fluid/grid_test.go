package fluid

import (
	"errors"
	"testing"
)

func TestNewGridClampsToMinimumSize(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Errorf("NewGrid(0,-3) = %dx%d, want 1x1", g.W, g.H)
	}
	if g.Cells() != 1 {
		t.Errorf("Cells() = %d, want 1", g.Cells())
	}
}

func TestGridIndexRowMajor(t *testing.T) {
	g := NewGrid(7, 5)
	if got := g.Index(0, 0); got != 0 {
		t.Errorf("Index(0,0) = %d", got)
	}
	if got := g.Index(3, 2); got != 2*7+3 {
		t.Errorf("Index(3,2) = %d, want %d", got, 2*7+3)
	}
	if got := g.Index(6, 4); got != g.Cells()-1 {
		t.Errorf("Index(6,4) = %d, want %d", got, g.Cells()-1)
	}
}

func TestGridCheckBounds(t *testing.T) {
	g := NewGrid(4, 4)
	if err := g.CheckBounds(3, 3); err != nil {
		t.Errorf("CheckBounds(3,3) = %v, want nil", err)
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		err := g.CheckBounds(c[0], c[1])
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("CheckBounds(%d,%d) = %v, want ErrOutOfRange", c[0], c[1], err)
		}
	}
}

func TestGridEachInterior(t *testing.T) {
	g := NewGrid(6, 4)
	count := 0
	g.EachInterior(func(x, y, idx int) {
		count++
		if x <= 0 || x >= g.W-1 || y <= 0 || y >= g.H-1 {
			t.Fatalf("EachInterior visited boundary cell (%d,%d)", x, y)
		}
		if idx != g.Index(x, y) {
			t.Fatalf("index mismatch at (%d,%d): %d", x, y, idx)
		}
	})
	if want := (g.W - 2) * (g.H - 2); count != want {
		t.Errorf("EachInterior visited %d cells, want %d", count, want)
	}
}

func TestGridEachEdgeVisitsEachCellOnce(t *testing.T) {
	for _, dims := range [][2]int{{6, 4}, {3, 3}, {5, 1}, {1, 5}, {1, 1}} {
		g := NewGrid(dims[0], dims[1])
		seen := make(map[int]bool)
		g.EachEdge(func(x, y, idx int) {
			if seen[idx] {
				t.Fatalf("%dx%d: edge cell (%d,%d) visited twice", g.W, g.H, x, y)
			}
			seen[idx] = true
			if x != 0 && x != g.W-1 && y != 0 && y != g.H-1 {
				t.Fatalf("%dx%d: EachEdge visited interior cell (%d,%d)", g.W, g.H, x, y)
			}
		})
		want := g.Cells()
		if g.W > 2 && g.H > 2 {
			want -= (g.W - 2) * (g.H - 2)
		}
		if len(seen) != want {
			t.Errorf("%dx%d: EachEdge visited %d cells, want %d", g.W, g.H, len(seen), want)
		}
	}
}
