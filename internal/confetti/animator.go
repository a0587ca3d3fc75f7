package confetti

// State is the animator lifecycle state.
type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	}
	return "unknown"
}

// Animator drives a Field from the host's fixed-rate update loop. The host
// calls Step once per frame; the field only moves while attached.
type Animator struct {
	field *Field
	state State
	ticks uint64
}

func NewAnimator(f *Field) *Animator {
	return &Animator{field: f}
}

func (a *Animator) Attach() { a.state = Animating }

func (a *Animator) Detach() { a.state = Idle }

func (a *Animator) State() State { return a.state }

// Ticks reports how many frames have advanced the field.
func (a *Animator) Ticks() uint64 { return a.ticks }

// Step ticks the field once if animating and reports whether it did.
func (a *Animator) Step() bool {
	if a.state != Animating {
		return false
	}
	a.field.Tick()
	a.ticks++
	return true
}
