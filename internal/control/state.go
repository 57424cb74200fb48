package control

// Mode names the two top-level controller states.
type Mode int

const (
	ModeEditing Mode = iota
	ModeRunning
)

func (m Mode) String() string {
	if m == ModeRunning {
		return "running"
	}
	return "editing"
}

// State is the controller's tagged state. Only Editing and Running implement
// it, so painting while running cannot be expressed.
type State interface {
	Mode() Mode
	sealed()
}

// Editing is the initial state. Stroke is non-nil while a press-drag gesture
// is in progress.
type Editing struct {
	Stroke *Stroke
}

// Stroke is an active paint gesture.
type Stroke struct {
	// Value is the state every visited cell receives, fixed at press time.
	Value bool
}

// Running means the simulation evolves on qualifying ticks.
type Running struct{}

func (Editing) Mode() Mode { return ModeEditing }
func (Running) Mode() Mode { return ModeRunning }

func (Editing) sealed() {}
func (Running) sealed() {}
