//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"flowpaint/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

const (
	hudRowHeight = 22
	hudTopMargin = 26
	hudButtonW   = 14
	hudButtonH   = 14
)

// HUD renders the parameter panel to the right of the simulation view and
// turns clicks on its -/+ buttons into parameter updates.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls    []hudControlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	boolSetter  core.BoolParameterSetter

	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

type hudControlState struct {
	control core.ParameterControl
	value   string
	fval    float64
	ival    int
	bval    bool

	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = fmt.Sprintf("%s controls", sim.Name())
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	if setter, ok := sim.(core.BoolParameterSetter); ok {
		h.boolSetter = setter
	}
	return h
}

// Update refreshes the cached parameter values and handles HUD clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored at offsetX with the given pixel height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(h.panel, h.title, basicfont.Face7x13, 8, 16, color.White)
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		rowY := hudTopMargin + i*hudRowHeight
		h.controls[i].minusRect = image.Rect(h.width-2*hudButtonW-10, rowY, h.width-hudButtonW-10, rowY+hudButtonH)
		h.controls[i].plusRect = image.Rect(h.width-hudButtonW-6, rowY, h.width-6, rowY+hudButtonH)
	}
}

func (h *HUD) refreshControlValues() {
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		return
	}
	snapshot := provider.Parameters()
	byKey := map[string]core.Parameter{}
	for _, group := range snapshot.Groups {
		for _, param := range group.Params {
			byKey[param.Key] = param
		}
	}
	for i := range h.controls {
		param, ok := byKey[h.controls[i].control.Key]
		if !ok {
			continue
		}
		h.controls[i].value = param.Value
		switch h.controls[i].control.Type {
		case core.ParamTypeFloat:
			if v, err := strconv.ParseFloat(param.Value, 64); err == nil {
				h.controls[i].fval = v
			}
		case core.ParamTypeInt:
			if v, err := strconv.Atoi(param.Value); err == nil {
				h.controls[i].ival = v
			}
		case core.ParamTypeBool:
			if v, err := strconv.ParseBool(param.Value); err == nil {
				h.controls[i].bval = v
			}
		}
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	cx, cy := ebiten.CursorPosition()
	cx -= h.panelOffsetX
	if cx < 0 || cx >= h.width {
		return
	}
	pt := image.Pt(cx, cy)
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case pt.In(state.minusRect):
			h.adjust(state, -1)
		case pt.In(state.plusRect):
			h.adjust(state, +1)
		}
	}
}

func (h *HUD) adjust(state *hudControlState, dir float64) {
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeBool:
		if h.boolSetter != nil {
			h.boolSetter.SetBoolParameter(ctrl.Key, !state.bval)
		}
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		step := int(ctrl.Step)
		if step == 0 {
			step = 1
		}
		next := clampInt(state.ival+int(dir)*step, ctrl)
		h.intSetter.SetIntParameter(ctrl.Key, next)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		step := ctrl.Step
		if step == 0 {
			step = 0.1
		}
		next := clampFloat(state.fval+dir*step, ctrl)
		h.floatSetter.SetFloatParameter(ctrl.Key, next)
	}
}

func clampFloat(v float64, ctrl core.ParameterControl) float64 {
	if ctrl.HasMin && v < ctrl.Min {
		v = ctrl.Min
	}
	if ctrl.HasMax && v > ctrl.Max {
		v = ctrl.Max
	}
	return v
}

func clampInt(v int, ctrl core.ParameterControl) int {
	if ctrl.HasMin && v < int(ctrl.Min) {
		v = int(ctrl.Min)
	}
	if ctrl.HasMax && v > int(ctrl.Max) {
		v = int(ctrl.Max)
	}
	return v
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		rowY := hudTopMargin + i*hudRowHeight
		baseline := rowY + hudButtonH - 2
		label := fmt.Sprintf("%s: %s", state.control.Label, state.value)
		text.Draw(h.panel, label, face, 8, baseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})

		if state.control.Type == core.ParamTypeBool {
			h.drawButton(state.plusRect, "~")
			continue
		}
		h.drawButton(state.minusRect, "-")
		h.drawButton(state.plusRect, "+")
	}
}

func (h *HUD) drawButton(r image.Rectangle, glyph string) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 54, G: 54, B: 66, A: 255})
	h.panel.DrawImage(h.pixel, op)
	text.Draw(h.panel, glyph, basicfont.Face7x13, r.Min.X+4, r.Max.Y-3, color.White)
}
