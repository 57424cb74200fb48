package core

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Key identifies a bound command key. Presentation layers map their physical
// keys onto these.
type Key int

const (
	KeyToggleRun Key = iota
	KeyReset
	KeyClear
	KeyFaster
	KeySlower
	KeyStep
	KeyRandomize
)

var keyNames = map[Key]string{
	KeyToggleRun: "toggle-run",
	KeyReset:     "reset",
	KeyClear:     "clear",
	KeyFaster:    "faster",
	KeySlower:    "slower",
	KeyStep:      "step",
	KeyRandomize: "randomize",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one input notification from the presentation layer.
type Event interface {
	event()
}

// Quit asks the frame loop to stop after the current frame.
type Quit struct{}

// PointerDown reports a button press at pixel (X, Y).
type PointerDown struct {
	Button Button
	X, Y   int
}

// PointerUp reports a button release.
type PointerUp struct {
	Button Button
}

// PointerMove reports the pointer moving to pixel (X, Y).
type PointerMove struct {
	X, Y int
}

// KeyDown reports a bound key press.
type KeyDown struct {
	Key Key
}

func (Quit) event()        {}
func (PointerDown) event() {}
func (PointerUp) event()   {}
func (PointerMove) event() {}
func (KeyDown) event()     {}

// EventQueue is a FIFO EventSource. The zero value is ready to use.
type EventQueue struct {
	pending []Event
}

// Push appends events to the queue.
func (q *EventQueue) Push(evs ...Event) {
	q.pending = append(q.pending, evs...)
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int { return len(q.pending) }

// PollEvent pops the oldest event.
func (q *EventQueue) PollEvent() (Event, bool) {
	if len(q.pending) == 0 {
		return nil, false
	}
	ev := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	if len(q.pending) == 0 {
		q.pending = nil
	}
	return ev, true
}
