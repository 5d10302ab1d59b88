//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"flowpaint/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type velocityProvider interface {
	VelocityAt(x, y int) (float64, float64, error)
}

// Overlay draws a sparse arrow field of the fluid velocity on top of the
// canvas. Toggled with the V key; purely diagnostic.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.show = !o.show
	}
}

// Draw renders the arrow field when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(velocityProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}

	spacing := o.sampleSpacing(size)
	span := float64(spacing * o.scale)
	maxLen := span * 0.8
	const calmThreshold = 1e-3
	const headAngle = math.Pi / 6

	for y := spacing / 2; y < size.H; y += spacing {
		for x := spacing / 2; x < size.W; x += spacing {
			u, v, err := provider.VelocityAt(x, y)
			if err != nil {
				continue
			}
			speed := math.Hypot(u, v)
			sx := (float64(x) + 0.5) * float64(o.scale)
			sy := (float64(y) + 0.5) * float64(o.scale)
			if speed < calmThreshold {
				vector.StrokeCircle(screen, float32(sx), float32(sy), 1, 1, color.RGBA{R: 90, G: 130, B: 170, A: 120}, false)
				continue
			}
			nx, ny := u/speed, v/speed
			length := maxLen * clamp01(speed)
			if length < 2 {
				length = 2
			}
			tipX := sx + nx*length
			tipY := sy + ny*length
			col := speedColor(clamp01(speed))
			vector.StrokeLine(screen, float32(sx), float32(sy), float32(tipX), float32(tipY), 1, col, false)

			headLen := math.Min(length*0.35, 6)
			angle := math.Atan2(ny, nx)
			leftX := tipX - math.Cos(angle+headAngle)*headLen
			leftY := tipY - math.Sin(angle+headAngle)*headLen
			rightX := tipX - math.Cos(angle-headAngle)*headLen
			rightY := tipY - math.Sin(angle-headAngle)*headLen
			vector.StrokeLine(screen, float32(tipX), float32(tipY), float32(leftX), float32(leftY), 1, col, false)
			vector.StrokeLine(screen, float32(tipX), float32(tipY), float32(rightX), float32(rightY), 1, col, false)
		}
	}
}

func (o *Overlay) sampleSpacing(size core.Size) int {
	const targetSamples = 400.0
	area := float64(size.W * size.H)
	spacing := int(math.Sqrt(area / targetSamples))
	if spacing < 4 {
		spacing = 4
	}
	if spacing > 24 {
		spacing = 24
	}
	return spacing
}

func speedColor(t float64) color.RGBA {
	return color.RGBA{
		R: uint8(60 + 195*t),
		G: uint8(120 * (1 - t)),
		B: uint8(200 * (1 - t)),
		A: 220,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
