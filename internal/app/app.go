//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"flowpaint/internal/core"
	"flowpaint/internal/render"
	"flowpaint/internal/sims/fluid"
	"flowpaint/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var barrierColor = color.RGBA{R: 110, G: 110, B: 118, A: 255}

// dyePalette lists the splat colors the C key cycles through.
var dyePalette = [][3]float64{
	{1, 0.15, 0.1},
	{0.1, 1, 0.2},
	{0.15, 0.3, 1},
	{1, 0.9, 0.1},
	{0.1, 0.9, 0.9},
	{1, 1, 1},
}

type editKind int

const (
	editDye editKind = iota
	editBarrier
	editEraseBarrier
)

// edit is a buffered user action. Edits collected during a frame are applied
// together at the start of the next solver frame, never mid-solve.
type edit struct {
	kind   editKind
	x, y   int
	radius int
	r      float64
	g      float64
	b      float64
}

// Game adapts the fluid simulation to the ebiten.Game interface. It owns the
// input-to-grid mapping, the edit buffer, the HUD and the debug overlay; the
// solver itself knows nothing about any of this.
type Game struct {
	sim     *fluid.Sim
	painter *render.CanvasPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	ticker  *core.FixedStep

	cfg      *Config
	paused   bool
	tickOnce bool
	seed     int64
	dyeIndex int

	pending []edit
}

// New constructs a Game for the provided simulation.
func New(sim *fluid.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewCanvasPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		ticker:  core.NewFixedStep(cfg.TPS),
		cfg:     cfg,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.pending = g.pending[:0]
	g.tickOnce = false
}

// Update collects input, applies the buffered edits at the frame boundary
// and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.ticker.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.dyeIndex = (g.dyeIndex + 1) % len(dyePalette)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.sim.ClearDye()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.sim.ClearBarriers()
	}

	g.handleWheel()
	g.collectPaintEdits()

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.sim.Size().W * g.cfg.Scale)
	}

	// Frame boundary: the solver is idle here, so the buffered edits land
	// atomically before the next step.
	g.applyPending()
	if (!g.paused && g.ticker.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleWheel() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	radius := g.sim.Params().BrushRadius
	if dy > 0 {
		radius++
	} else {
		radius--
	}
	g.sim.SetIntParameter("brush_radius", radius)
}

// collectPaintEdits turns mouse drags over the canvas into buffered edits.
// Left paints dye, right paints barriers, shift+right erases them.
func (g *Game) collectPaintEdits() {
	cx, cy := ebiten.CursorPosition()
	gx, gy, ok := g.cursorToGrid(cx, cy)
	if !ok {
		return
	}
	radius := g.sim.Params().BrushRadius
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		c := dyePalette[g.dyeIndex]
		g.pending = append(g.pending, edit{kind: editDye, x: gx, y: gy, radius: radius, r: c[0], g: c[1], b: c[2]})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		kind := editBarrier
		if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
			kind = editEraseBarrier
		}
		g.pending = append(g.pending, edit{kind: kind, x: gx, y: gy, radius: radius})
	}
}

func (g *Game) cursorToGrid(cx, cy int) (int, int, bool) {
	scale := g.cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	size := g.sim.Size()
	gx := cx / scale
	gy := cy / scale
	if gx < 0 || gx >= size.W || gy < 0 || gy >= size.H {
		return 0, 0, false
	}
	return gx, gy, true
}

func (g *Game) applyPending() {
	for _, e := range g.pending {
		switch e.kind {
		case editDye:
			g.sim.AddDye(e.x, e.y, e.radius, e.r, e.g, e.b)
		case editBarrier:
			g.sim.SetBarrier(e.x, e.y, e.radius, true)
		case editEraseBarrier:
			g.sim.SetBarrier(e.x, e.y, e.radius, false)
		}
	}
	g.pending = g.pending[:0]
}

// Draw renders the canvas, overlay, HUD, brush cursor and status line.
func (g *Game) Draw(screen *ebiten.Image) {
	ch := g.sim.Channels()
	g.painter.Blit(screen, ch[fluid.ChannelR], ch[fluid.ChannelG], ch[fluid.ChannelB], g.sim.Solid(), barrierColor, g.cfg.Scale)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}

	size := g.sim.Size()
	if g.hud != nil {
		g.hud.Draw(screen, size.W*g.cfg.Scale, size.H*g.cfg.Scale)
	}

	cx, cy := ebiten.CursorPosition()
	if _, _, ok := g.cursorToGrid(cx, cy); ok {
		r := float32(g.sim.Params().BrushRadius * g.cfg.Scale)
		vector.StrokeCircle(screen, float32(cx), float32(cy), r, 1, color.RGBA{R: 255, G: 255, B: 255, A: 150}, false)
	}

	diag := g.sim.Diagnostics()
	status := fmt.Sprintf("fps %0.1f  frame %d  residual %.2g  clamps %d", ebiten.ActualFPS(), diag.Frame, diag.Residual, diag.ParamClamps)
	if g.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, size.H*g.cfg.Scale-16)
}

// Layout returns the logical screen size: canvas plus HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.cfg.Scale + g.cfg.HUDWidth, s.H * g.cfg.Scale
}
