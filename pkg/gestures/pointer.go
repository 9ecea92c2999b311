// Package gestures turns raw pointer events into drag gestures.
package gestures

import "fmt"

// Offset is a 2D position or displacement in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Sub returns o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// PointerPhase identifies a pointer event.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
	// PointerPhaseEnter fires when the pointer moves over the mount target.
	PointerPhaseEnter
	// PointerPhaseLeave fires when the pointer moves off the mount target.
	PointerPhaseLeave
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	case PointerPhaseEnter:
		return "enter"
	case PointerPhaseLeave:
		return "leave"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample delivered by the host.
type PointerEvent struct {
	PointerID int64
	Phase     PointerPhase
	Position  Offset
}

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	Position Offset
}

// DragUpdateDetails describes pointer motion during a drag.
type DragUpdateDetails struct {
	Position     Offset
	Delta        Offset
	PrimaryDelta float64
	// Total is the displacement from the pointer-down position.
	Total Offset
}

// DragEndDetails describes the release of a drag.
type DragEndDetails struct {
	Position        Offset
	Velocity        Offset
	PrimaryVelocity float64
	// Total is the displacement from the pointer-down position.
	Total Offset
}
