package fluid

import (
	"strconv"

	"flowpaint/internal/core"
)

// Parameters snapshots the current tunables for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	p := s.params
	groups := []core.ParameterGroup{
		{
			Name: "Dye",
			Params: []core.Parameter{
				floatParam("diffusion_r", "Red diffusion", p.DiffusionR),
				floatParam("diffusion_g", "Green diffusion", p.DiffusionG),
				floatParam("diffusion_b", "Blue diffusion", p.DiffusionB),
				floatParam("decay", "Decay", p.Decay),
				floatParam("mixing", "Mixing", p.MixingStrength),
			},
		},
		{
			Name: "Flow",
			Params: []core.Parameter{
				floatParam("viscosity", "Viscosity", p.Viscosity),
				floatParam("drag", "Drag", p.Drag),
				floatParam("gravity_x", "Gravity X", p.GravityX),
				floatParam("gravity_y", "Gravity Y", p.GravityY),
				floatParam("dt", "Time step", p.Dt),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				boolParam("noise", "Noise", p.Noise),
				floatParam("noise_intensity", "Noise intensity", p.NoiseIntensity),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("brush_radius", "Brush radius", p.BrushRadius),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable controls.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "diffusion_r", Label: "Red diffusion", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true},
		{Key: "diffusion_g", Label: "Green diffusion", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true},
		{Key: "diffusion_b", Label: "Blue diffusion", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true},
		{Key: "decay", Label: "Decay", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 0.999, HasMin: true, HasMax: true},
		{Key: "mixing", Label: "Mixing", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 0.25, HasMin: true, HasMax: true},
		{Key: "viscosity", Label: "Viscosity", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true},
		{Key: "drag", Label: "Drag", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.999, HasMin: true, HasMax: true},
		{Key: "gravity_x", Label: "Gravity X", Type: core.ParamTypeFloat, Step: 0.005},
		{Key: "gravity_y", Label: "Gravity Y", Type: core.ParamTypeFloat, Step: 0.005},
		{Key: "dt", Label: "Time step", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.0001, Max: 10, HasMin: true, HasMax: true},
		{Key: "noise", Label: "Noise", Type: core.ParamTypeBool},
		{Key: "noise_intensity", Label: "Noise intensity", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.1, HasMin: true, HasMax: true},
		{Key: "brush_radius", Label: "Brush radius", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float tunable by key. Values are sanitized at
// the next Step, not here.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "diffusion_r":
		s.params.DiffusionR = value
	case "diffusion_g":
		s.params.DiffusionG = value
	case "diffusion_b":
		s.params.DiffusionB = value
	case "decay":
		s.params.Decay = value
	case "mixing":
		s.params.MixingStrength = value
	case "viscosity":
		s.params.Viscosity = value
	case "drag":
		s.params.Drag = value
	case "gravity_x":
		s.params.GravityX = value
	case "gravity_y":
		s.params.GravityY = value
	case "dt":
		s.params.Dt = value
	case "noise_intensity":
		s.params.NoiseIntensity = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable by key.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush_radius":
		if value < 1 {
			value = 1
		}
		s.params.BrushRadius = value
	default:
		return false
	}
	return true
}

// SetBoolParameter updates a boolean tunable by key.
func (s *Sim) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "noise":
		s.params.Noise = value
	default:
		return false
	}
	return true
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(v, 'g', 4, 64),
	}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(v),
	}
}

func boolParam(key, label string, v bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(v),
	}
}
