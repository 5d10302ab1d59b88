//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// CanvasPainter updates a single RGBA image from the simulation's dye
// channels and barrier mask.
type CanvasPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewCanvasPainter allocates a painter for a grid of size w*h.
func NewCanvasPainter(w, h int) *CanvasPainter {
	cp := &CanvasPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	cp.img = ebiten.NewImage(w, h)
	return cp
}

// Blit uploads the dye planes into the painter image and draws it scaled.
func (cp *CanvasPainter) Blit(dst *ebiten.Image, r, g, b []float64, solid []bool, barrier color.RGBA, scale int) {
	if len(r) != cp.w*cp.h || len(g) != len(r) || len(b) != len(r) {
		return
	}
	fillDyeRGBA(cp.buf, r, g, b, solid, barrier)
	cp.img.WritePixels(cp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(cp.img, op)
}

// Size returns the dimensions of the underlying image.
func (cp *CanvasPainter) Size() (int, int) { return cp.w, cp.h }
