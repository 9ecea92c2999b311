package gestures

import (
	"math"
	"time"
)

// DefaultTouchSlop is the distance a pointer must travel before a drag is recognized.
const DefaultTouchSlop = 8.0

// HorizontalDragRecognizer tracks one pointer and reports horizontal drags.
//
// A drag is accepted once horizontal travel exceeds the slop and dominates
// vertical travel; vertical-dominant motion rejects the pointer so the host
// can treat it as something else (e.g. page scroll).
type HorizontalDragRecognizer struct {
	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	// Slop overrides DefaultTouchSlop when positive.
	Slop float64

	now      func() time.Time
	tracking bool
	pointer  int64
	start    Offset
	last     Offset
	tracker  velocityTracker
	accepted bool
	rejected bool
}

// NewHorizontalDragRecognizer creates a recognizer reading time from now.
// A nil now uses time.Now.
func NewHorizontalDragRecognizer(now func() time.Time) *HorizontalDragRecognizer {
	if now == nil {
		now = time.Now
	}
	return &HorizontalDragRecognizer{now: now}
}

// AddPointer starts tracking a pointer-down event. Any drag in progress is
// cancelled first.
func (r *HorizontalDragRecognizer) AddPointer(event PointerEvent) {
	if event.Phase != PointerPhaseDown {
		return
	}
	if r.tracking {
		r.cancel()
	}
	r.tracking = true
	r.pointer = event.PointerID
	r.start = event.Position
	r.last = event.Position
	r.tracker.reset()
	r.tracker.add(r.now(), event.Position.X)
	r.accepted = false
	r.rejected = false
}

// HandleEvent processes move, up and cancel events for the tracked pointer.
func (r *HorizontalDragRecognizer) HandleEvent(event PointerEvent) {
	if !r.tracking || event.PointerID != r.pointer || r.rejected {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		r.handleMove(event)
	case PointerPhaseUp:
		r.handleUp(event)
	case PointerPhaseCancel:
		r.cancel()
	}
}

// IsDragging reports whether a drag has been accepted and not yet ended.
func (r *HorizontalDragRecognizer) IsDragging() bool {
	return r.tracking && r.accepted
}

// Reset drops the tracked pointer without firing callbacks.
func (r *HorizontalDragRecognizer) Reset() {
	r.tracking = false
	r.accepted = false
	r.rejected = false
}

func (r *HorizontalDragRecognizer) slop() float64 {
	if r.Slop > 0 {
		return r.Slop
	}
	return DefaultTouchSlop
}

func (r *HorizontalDragRecognizer) handleMove(event PointerEvent) {
	now := r.now()
	total := event.Position.Sub(r.start)

	if !r.accepted {
		primary := math.Abs(total.X)
		orthogonal := math.Abs(total.Y)
		switch {
		case primary > r.slop() && primary >= orthogonal:
			r.accepted = true
			if r.OnStart != nil {
				r.OnStart(DragStartDetails{Position: r.start})
			}
		case orthogonal > r.slop():
			r.rejected = true
			r.tracking = false
			return
		}
	}

	delta := event.Position.Sub(r.last)
	r.tracker.add(now, event.Position.X)

	if r.accepted && r.OnUpdate != nil {
		r.OnUpdate(DragUpdateDetails{
			Position:     event.Position,
			Delta:        delta,
			PrimaryDelta: delta.X,
			Total:        total,
		})
	}

	r.last = event.Position
}

func (r *HorizontalDragRecognizer) handleUp(event PointerEvent) {
	accepted := r.accepted
	r.tracking = false
	r.accepted = false
	if !accepted || r.OnEnd == nil {
		return
	}
	// A pointer held still before release reports zero velocity.
	velocity := r.tracker.velocity(r.now())
	r.OnEnd(DragEndDetails{
		Position:        event.Position,
		Velocity:        Offset{X: velocity},
		PrimaryVelocity: velocity,
		Total:           event.Position.Sub(r.start),
	})
}

func (r *HorizontalDragRecognizer) cancel() {
	accepted := r.accepted
	r.tracking = false
	r.accepted = false
	if accepted && r.OnCancel != nil {
		r.OnCancel()
	}
}
