package engine

import (
	"github.com/go-drift/carousel/pkg/errors"
	"github.com/go-drift/carousel/pkg/gestures"
)

type surfaceListener struct {
	id int
	fn func(gestures.PointerEvent)
}

// Surface is a mount target: the on-screen region a carousel listens on.
//
// Listeners are registered per pointer phase and removed with the function
// AddListener returns. Dispatch must be called on the engine goroutine.
type Surface struct {
	// Bounds is the region used by HandlePointer to derive enter/leave events.
	// A zero Bounds disables hit testing and treats every event as inside.
	Bounds Rect

	listeners map[gestures.PointerPhase][]surfaceListener
	nextID    int
	inside    bool
}

// NewSurface creates a surface covering bounds.
func NewSurface(bounds Rect) *Surface {
	return &Surface{
		Bounds:    bounds,
		listeners: make(map[gestures.PointerPhase][]surfaceListener),
	}
}

// AddListener registers fn for events of the given phase.
// Returns a function that removes the listener; calling it twice is harmless.
func (s *Surface) AddListener(phase gestures.PointerPhase, fn func(gestures.PointerEvent)) func() {
	if s.listeners == nil {
		s.listeners = make(map[gestures.PointerPhase][]surfaceListener)
	}
	s.nextID++
	id := s.nextID
	s.listeners[phase] = append(s.listeners[phase], surfaceListener{id: id, fn: fn})
	return func() {
		entries := s.listeners[phase]
		for i, l := range entries {
			if l.id == id {
				s.listeners[phase] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered listeners across all phases.
func (s *Surface) ListenerCount() int {
	n := 0
	for _, entries := range s.listeners {
		n += len(entries)
	}
	return n
}

// Dispatch delivers event to the listeners registered for its phase.
// A panicking listener is reported and does not stop the others.
func (s *Surface) Dispatch(event gestures.PointerEvent) {
	entries := append([]surfaceListener(nil), s.listeners[event.Phase]...)
	for _, l := range entries {
		dispatchOne(l.fn, event)
	}
}

func dispatchOne(fn func(gestures.PointerEvent), event gestures.PointerEvent) {
	defer errors.Recover("engine.surface." + event.Phase.String())
	fn(event)
}

// HandlePointer hit-tests a raw pointer event against Bounds, synthesizes
// enter/leave transitions, and dispatches the event. Down events outside the
// bounds are dropped; move, up and cancel are always forwarded so a drag that
// leaves the surface still ends.
func (s *Surface) HandlePointer(event gestures.PointerEvent) {
	hit := s.HitTest(event.Position)
	switch {
	case hit && !s.inside:
		s.inside = true
		s.Dispatch(gestures.PointerEvent{PointerID: event.PointerID, Phase: gestures.PointerPhaseEnter, Position: event.Position})
	case !hit && s.inside:
		s.inside = false
		s.Dispatch(gestures.PointerEvent{PointerID: event.PointerID, Phase: gestures.PointerPhaseLeave, Position: event.Position})
	}
	if event.Phase == gestures.PointerPhaseDown && !hit {
		return
	}
	if event.Phase == gestures.PointerPhaseEnter || event.Phase == gestures.PointerPhaseLeave {
		return
	}
	s.Dispatch(event)
}

// HitTest reports whether pos falls inside Bounds.
func (s *Surface) HitTest(pos gestures.Offset) bool {
	if s.Bounds.IsEmpty() {
		return true
	}
	return s.Bounds.Contains(pos)
}

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromSize returns a rectangle at (left, top) with the given size.
func RectFromSize(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies within r, inclusive of the top-left edge.
func (r Rect) Contains(p gestures.Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}
