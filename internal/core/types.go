package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// EventSource yields pending input events without blocking. ok is false once
// the queue is drained.
type EventSource interface {
	PollEvent() (ev Event, ok bool)
}

// Canvas is the set of drawing primitives the simulation renders with.
// Coordinates are in the same pixel space as pointer events.
type Canvas interface {
	Clear(c color.Color)
	DrawFilledRect(x, y, w, h int, c color.Color)
	DrawLine(x1, y1, x2, y2 int, c color.Color)
}

// Surface is a complete presentation layer: input plus drawing plus an
// explicit end-of-frame.
type Surface interface {
	EventSource
	Canvas
	Present()
}
