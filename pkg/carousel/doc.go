// Package carousel implements the position state machine and loop illusion
// of a draggable, optionally looping, optionally autoplaying item carousel.
//
// A Carousel owns one authoritative Position: an index into the render
// sequence, which is the caller's items padded with a copy of the last item
// in front and a copy of the first item behind when looping. Gestures and
// autoplay ticks change Position by one step at a time; a spring then
// settles the continuous track offset toward -(Position * Stride). When a
// settle lands on a padding copy, the carousel silently resets Position to
// the matching real item without visible motion.
//
// # States
//
//	Idle ──drag start──► Dragging ──drag end──► Settling ──complete──► Idle
//	  ▲                                            │
//	  │                           complete on a    │
//	  └──next frame── Jumping ◄── padding copy ────┘
//
// An autoplay tick moves any state to Settling. At most one settle is in
// flight; a new step replaces its target.
//
// # Lifecycle
//
// New computes the render sequence and initial position. Attach acquires the
// host resources (spring ticker, autoplay timer, pointer and hover listeners)
// and Detach releases all of them, after which no host callback can change
// Position or Offset. Update is the single entry point for option changes.
//
// Nothing here is safe for concurrent use; call every method on the engine
// goroutine.
package carousel
