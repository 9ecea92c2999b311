package carousel

import "fmt"

// Phase is the state of the position state machine.
type Phase int

const (
	// PhaseIdle means the offset rests at the position's target.
	PhaseIdle Phase = iota
	// PhaseDragging means the offset follows the pointer; Position is unchanged.
	PhaseDragging
	// PhaseSettling means the spring is animating toward the target.
	PhaseSettling
	// PhaseJumping means Position was silently reset and the offset snapped;
	// it lasts until the next frame.
	PhaseJumping
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	case PhaseJumping:
		return "jumping"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Flags describe why the offset may or may not be settling.
type Flags struct {
	Dragging  bool
	Animating bool
	// Jumping disables spring interpolation for one position change.
	Jumping bool
	Hovered bool
}

// machine holds the authoritative position and its flags.
// Every handler mutates it through the Carousel that owns it.
type machine struct {
	position int
	length   int
	phase    Phase
	flags    Flags
}

// stepBy moves position by step, clamped to the sequence, and returns the new position.
func (m *machine) stepBy(step int) int {
	m.position = clampInt(m.position+step, 0, m.length-1)
	return m.position
}

// jumpTo sets position directly, clamped to the sequence.
func (m *machine) jumpTo(position int) {
	m.position = clampInt(position, 0, m.length-1)
}

// resize installs a new sequence length, keeping position in range.
func (m *machine) resize(length, position int) {
	m.length = length
	m.position = clampInt(position, 0, length-1)
}

func (m *machine) beginDrag() {
	m.flags.Dragging = true
	m.phase = PhaseDragging
}

func (m *machine) endDrag() {
	m.flags.Dragging = false
	if m.phase == PhaseDragging {
		m.phase = PhaseIdle
	}
}

func (m *machine) beginSettle() {
	m.flags.Dragging = false
	if m.phase != PhaseJumping {
		m.phase = PhaseSettling
	}
}

func (m *machine) beginJump() {
	m.flags.Jumping = true
	m.phase = PhaseJumping
}

// endJump clears the jump flag and returns to Idle unless something else
// (a drag or a new settle) has taken over.
func (m *machine) endJump() {
	m.flags.Jumping = false
	if m.phase == PhaseJumping {
		if m.flags.Animating {
			m.phase = PhaseSettling
		} else {
			m.phase = PhaseIdle
		}
	}
}

func (m *machine) settled() {
	m.flags.Animating = false
	if m.phase == PhaseSettling {
		m.phase = PhaseIdle
	}
}

// reset drops every transient flag.
func (m *machine) reset() {
	m.flags = Flags{}
	m.phase = PhaseIdle
}
