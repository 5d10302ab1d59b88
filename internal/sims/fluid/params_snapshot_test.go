package fluid

import (
	"testing"

	"flowpaint/internal/core"
)

func TestSetParametersByKey(t *testing.T) {
	s := NewWithConfig(calmConfig(8, 8))

	if !s.SetFloatParameter("viscosity", 0.25) {
		t.Fatal("viscosity key rejected")
	}
	if !s.SetFloatParameter("gravity_x", -0.01) {
		t.Fatal("gravity_x key rejected")
	}
	if !s.SetIntParameter("brush_radius", 9) {
		t.Fatal("brush_radius key rejected")
	}
	if !s.SetBoolParameter("noise", true) {
		t.Fatal("noise key rejected")
	}

	p := s.Params()
	if p.Viscosity != 0.25 || p.GravityX != -0.01 || p.BrushRadius != 9 || !p.Noise {
		t.Errorf("setters did not stick: %+v", p)
	}

	if s.SetFloatParameter("no_such_key", 1) {
		t.Error("unknown float key accepted")
	}
	if s.SetIntParameter("viscosity", 1) {
		t.Error("float key accepted as int")
	}
	if s.SetBoolParameter("brush_radius", true) {
		t.Error("int key accepted as bool")
	}
}

func TestSetIntParameterFloorsBrushRadius(t *testing.T) {
	s := NewWithConfig(calmConfig(8, 8))
	s.SetIntParameter("brush_radius", -3)
	if got := s.Params().BrushRadius; got != 1 {
		t.Errorf("brush radius = %d, want 1", got)
	}
}

func TestParameterControlsMatchSetters(t *testing.T) {
	s := NewWithConfig(calmConfig(8, 8))
	for _, ctl := range s.ParameterControls() {
		var ok bool
		switch ctl.Type {
		case core.ParamTypeFloat:
			ok = s.SetFloatParameter(ctl.Key, ctl.Min)
		case core.ParamTypeInt:
			ok = s.SetIntParameter(ctl.Key, int(ctl.Min)+1)
		case core.ParamTypeBool:
			ok = s.SetBoolParameter(ctl.Key, false)
		default:
			t.Fatalf("control %q has unknown type %q", ctl.Key, ctl.Type)
		}
		if !ok {
			t.Errorf("control %q rejected by its setter", ctl.Key)
		}
	}
}

func TestParametersSnapshotReflectsValues(t *testing.T) {
	s := NewWithConfig(calmConfig(8, 8))
	s.SetFloatParameter("dt", 0.5)
	s.SetBoolParameter("noise", true)

	snap := s.Parameters()
	if len(snap.Groups) == 0 {
		t.Fatal("empty parameter snapshot")
	}
	values := map[string]string{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if got := values["dt"]; got != "0.5" {
		t.Errorf("dt snapshot = %q, want \"0.5\"", got)
	}
	if got := values["noise"]; got != "true" {
		t.Errorf("noise snapshot = %q, want \"true\"", got)
	}
	if _, ok := values["brush_radius"]; !ok {
		t.Error("brush_radius missing from snapshot")
	}
}
