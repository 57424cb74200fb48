package app

import "lifeboard/internal/core"

// PointerSample is the mouse state read from the backend for one frame.
type PointerSample struct {
	X, Y         int
	JustPressed  bool
	JustReleased bool
}

// PointerTracker turns per-frame mouse samples into pointer events. Moves
// are reported only while the button is held and the cursor has moved.
type PointerTracker struct {
	button       core.Button
	down         bool
	lastX, lastY int
}

// NewPointerTracker tracks the given button.
func NewPointerTracker(button core.Button) *PointerTracker {
	return &PointerTracker{button: button}
}

// Sample appends the events implied by s to q.
func (p *PointerTracker) Sample(q *core.EventQueue, s PointerSample) {
	if s.JustPressed {
		p.down = true
		p.lastX, p.lastY = s.X, s.Y
		q.Push(core.PointerDown{Button: p.button, X: s.X, Y: s.Y})
	} else if p.down && (s.X != p.lastX || s.Y != p.lastY) {
		p.lastX, p.lastY = s.X, s.Y
		q.Push(core.PointerMove{X: s.X, Y: s.Y})
	}
	if s.JustReleased && p.down {
		p.down = false
		q.Push(core.PointerUp{Button: p.button})
	}
}

// Down reports whether the tracked button is held.
func (p *PointerTracker) Down() bool { return p.down }
