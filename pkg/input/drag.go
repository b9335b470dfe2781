package input

// Sensitivity scales pointer movement into target movement
const Sensitivity = 1.5

// DragState is the smoother's position in the drag state machine
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	switch s {
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Smoother turns pointer drag deltas into target position changes.
// It never moves the player directly.
type Smoother struct {
	target  *Target
	running func() bool
	state   DragState
	lastX   float64
}

// NewSmoother creates a smoother writing to target. Drags only begin while
// running reports true.
func NewSmoother(target *Target, running func() bool) *Smoother {
	return &Smoother{
		target:  target,
		running: running,
	}
}

// DragStart begins a drag at pointerX if the game is running
func (s *Smoother) DragStart(pointerX float64) {
	if s.running != nil && !s.running() {
		return
	}
	s.state = Dragging
	s.lastX = pointerX
}

// DragMove applies the movement since the last pointer position
func (s *Smoother) DragMove(pointerX float64) {
	if s.state != Dragging {
		return
	}
	s.target.Nudge((pointerX - s.lastX) * Sensitivity)
	s.lastX = pointerX
}

// DragEnd returns to idle from any state
func (s *Smoother) DragEnd() {
	s.state = Idle
}

// State returns the current drag state
func (s *Smoother) State() DragState {
	return s.state
}
