package fluid

import "fmt"

// ScalarField is a read-only snapshot of one scalar field.
type ScalarField struct {
	w, h   int
	values []float64
}

// Value returns the field value at (x, y).
func (f ScalarField) Value(x, y int) (float64, error) {
	if x < 0 || x >= f.w {
		return 0, fmt.Errorf("%w: x index %d, must be between 0 and %d", ErrOutOfRange, x, f.w-1)
	}
	if y < 0 || y >= f.h {
		return 0, fmt.Errorf("%w: y index %d, must be between 0 and %d", ErrOutOfRange, y, f.h-1)
	}
	return f.values[y*f.w+x], nil
}

// Size returns the field dimensions.
func (f ScalarField) Size() (int, int) { return f.w, f.h }

// VectorField is a read-only snapshot of the velocity field.
type VectorField struct {
	w, h             int
	valuesU, valuesV []float64
}

// Value returns the (u, v) components at (x, y).
func (f VectorField) Value(x, y int) (float64, float64, error) {
	if x < 0 || x >= f.w {
		return 0, 0, fmt.Errorf("%w: x index %d, must be between 0 and %d", ErrOutOfRange, x, f.w-1)
	}
	if y < 0 || y >= f.h {
		return 0, 0, fmt.Errorf("%w: y index %d, must be between 0 and %d", ErrOutOfRange, y, f.h-1)
	}
	idx := y*f.w + x
	return f.valuesU[idx], f.valuesV[idx], nil
}

// Size returns the field dimensions.
func (f VectorField) Size() (int, int) { return f.w, f.h }

// ColorField returns read-only copies of the three dye channels.
func (s *Sim) ColorField() (r, g, b ScalarField) {
	snap := func(src []float64) ScalarField {
		vals := make([]float64, len(src))
		copy(vals, src)
		return ScalarField{w: s.grid.W, h: s.grid.H, values: vals}
	}
	return snap(s.dye[ChannelR]), snap(s.dye[ChannelG]), snap(s.dye[ChannelB])
}

// VelocityField returns a read-only copy of the velocity field, for debug
// visualization.
func (s *Sim) VelocityField() VectorField {
	uCopy := make([]float64, len(s.u))
	copy(uCopy, s.u)
	vCopy := make([]float64, len(s.v))
	copy(vCopy, s.v)
	return VectorField{w: s.grid.W, h: s.grid.H, valuesU: uCopy, valuesV: vCopy}
}

// Channels exposes the backing dye slices, indexed ChannelR/G/B, for the
// renderer's per-frame upload. Treat as read-only.
func (s *Sim) Channels() [3][]float64 { return s.dye }

// VelocityAt returns the live velocity at (x, y) without copying, for the
// overlay's sparse sampling.
func (s *Sim) VelocityAt(x, y int) (float64, float64, error) {
	if err := s.grid.CheckBounds(x, y); err != nil {
		return 0, 0, err
	}
	idx := s.grid.Index(x, y)
	return s.u[idx], s.v[idx], nil
}

// DyeAt returns the live dye intensities at (x, y).
func (s *Sim) DyeAt(x, y int) (r, g, b float64, err error) {
	if err := s.grid.CheckBounds(x, y); err != nil {
		return 0, 0, 0, err
	}
	idx := s.grid.Index(x, y)
	return s.dye[ChannelR][idx], s.dye[ChannelG][idx], s.dye[ChannelB][idx], nil
}
