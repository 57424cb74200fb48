package session

import (
	"strconv"

	"lifeboard/internal/core"
)

// ParamSpeed is the HUD key of the evolve divisor.
const ParamSpeed = "evolve_speed"

// Parameters reports the session status for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	live := s.ctrl.Live()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				textParam("mode", "Mode", s.ctrl.Mode().String()),
				intParam("generation", "Generation", s.generation),
				intParam("population", "Population", live.Population()),
				intParam("ticks", "Ticks", int(s.ticks)),
				intParam(ParamSpeed, "Ticks / gen", s.ctrl.Speed()),
			},
		},
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", s.w),
				intParam("h", "Height", s.h),
				intParam("cell_size", "Cell size", s.opts.CellSize),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	b := s.ctrl.SpeedBounds()
	return []core.ParameterControl{{
		Key:   ParamSpeed,
		Label: "Ticks / gen",
		Step:  b.Step,
		Min:   b.Min,
		Max:   b.Max,
	}}
}

// SetIntParameter updates an adjustable parameter. Values are clamped.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != ParamSpeed {
		return false
	}
	s.ctrl.SetSpeed(value)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
