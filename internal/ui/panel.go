package ui

import (
	"image"
	"strconv"

	"lifeboard/internal/core"
)

// Panel holds the HUD layout and the state of its -/+ controls. It has no
// drawing dependencies; the ebiten HUD renders it.
type Panel struct {
	width    int
	controls []controlState
	setter   core.IntParameterSetter
	snapshot core.ParameterSnapshot
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

// NewPanel lays out the controls source exposes. source may additionally
// implement core.IntParameterSetter to make the buttons live.
func NewPanel(source core.ParameterControlsProvider, width int) *Panel {
	if width < 0 {
		width = 0
	}
	p := &Panel{width: width}
	controls := source.ParameterControls()
	p.controls = make([]controlState, len(controls))
	for i, ctrl := range controls {
		p.controls[i] = controlState{control: ctrl, value: "--"}
	}
	if setter, ok := source.(core.IntParameterSetter); ok {
		p.setter = setter
	}
	p.layout()
	return p
}

// Width returns the panel width in pixels.
func (p *Panel) Width() int { return p.width }

// Refresh caches the parameter snapshot and updates control values.
func (p *Panel) Refresh(snapshot core.ParameterSnapshot) {
	p.snapshot = snapshot
	for i := range p.controls {
		state := &p.controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

// Click handles a primary click at panel-local (x, y). It reports whether a
// button consumed the click.
func (p *Panel) Click(x, y int) bool {
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			p.adjust(state, -1)
			return true
		}
		if pointInRect(x, y, state.plusRect) {
			p.adjust(state, 1)
			return true
		}
	}
	return false
}

// StatusLines returns "label: value" lines for every non-adjustable
// parameter in the cached snapshot, in snapshot order.
func (p *Panel) StatusLines() []string {
	adjustable := make(map[string]bool, len(p.controls))
	for _, c := range p.controls {
		adjustable[c.control.Key] = true
	}
	var lines []string
	for _, group := range p.snapshot.Groups {
		for _, param := range group.Params {
			if adjustable[param.Key] {
				continue
			}
			lines = append(lines, param.Label+": "+param.Value)
		}
	}
	return lines
}

// StatusTop is the baseline of the first status line.
func (p *Panel) StatusTop() int {
	return controlsTop + len(p.controls)*lineHeight + statusSpacing
}

func (p *Panel) adjust(state *controlState, direction int) {
	if !p.canAdjust(state, direction) {
		return
	}
	target := p.target(state, direction)
	if p.setter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (p *Panel) target(state *controlState, direction int) int {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if target < state.control.Min {
		target = state.control.Min
	}
	if target > state.control.Max {
		target = state.control.Max
	}
	return target
}

func (p *Panel) canAdjust(state *controlState, direction int) bool {
	if p.setter == nil || !state.hasValue || direction == 0 {
		return false
	}
	return p.target(state, direction) != state.intValue
}

func (p *Panel) layout() {
	if p.width <= 0 {
		return
	}
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
