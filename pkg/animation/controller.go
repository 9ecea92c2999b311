package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the state of a SpringController.
//
//	           AnimateTo / JumpTo
//	Idle ─────────────────────────► Running ──► Completed
//	                                   │
//	                 Stop / Set        ▼
//	                               Stopped
//
// A new AnimateTo while Running pre-empts the in-flight spring: the old
// target never reports Completed.
type AnimationStatus int

const (
	// AnimationIdle means no animation has run yet.
	AnimationIdle AnimationStatus = iota
	// AnimationRunning means a target is being animated toward.
	AnimationRunning
	// AnimationCompleted means the value reached the last target.
	AnimationCompleted
	// AnimationStopped means the animation was interrupted before completion.
	AnimationStopped
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationIdle:
		return "idle"
	case AnimationRunning:
		return "running"
	case AnimationCompleted:
		return "completed"
	case AnimationStopped:
		return "stopped"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// maxFrameDt caps a single frame's step so a stalled host does not make the
// spring jump to the end in one frame.
const maxFrameDt = 0.032

type listenerEntry[T any] struct {
	id int
	fn T
}

// SpringController drives a value toward a target using spring physics.
//
// Status listeners observe two edges: AnimationRunning fires each time a new
// target is set, AnimationCompleted fires when the value settles on it.
// JumpTo performs a zero-duration transition that still reports both edges.
//
// Always call Dispose when done to stop the ticker and drop listeners.
type SpringController struct {
	// Spring is used for animations started after it is set.
	Spring SpringDescription
	// Integrator selects the simulation used by AnimateTo.
	Integrator Integrator
	// Tolerance decides when the spring is at rest.
	Tolerance Tolerance

	provider        TickerProvider
	ticker          *Ticker
	sim             Simulation
	value           float64
	velocity        float64
	target          float64
	lastElapsed     time.Duration
	status          AnimationStatus
	listeners       []listenerEntry[func()]
	statusListeners []listenerEntry[func(AnimationStatus)]
	nextListenerID  int
	disposed        bool
}

// NewSpringController creates a controller whose frames come from provider.
func NewSpringController(provider TickerProvider, spring SpringDescription) *SpringController {
	if spring.IsZero() {
		spring = DefaultSpring()
	}
	return &SpringController{
		Spring:     spring,
		Integrator: IntegratorEuler,
		Tolerance:  DefaultTolerance,
		provider:   provider,
	}
}

// Value returns the current value.
func (c *SpringController) Value() float64 { return c.value }

// Velocity returns the current velocity in units per second.
func (c *SpringController) Velocity() float64 { return c.velocity }

// Target returns the most recent animation target.
func (c *SpringController) Target() float64 { return c.target }

// Status returns the current status.
func (c *SpringController) Status() AnimationStatus { return c.status }

// IsAnimating reports whether a spring is in flight.
func (c *SpringController) IsAnimating() bool { return c.status == AnimationRunning }

// Set moves the value immediately without animating. An in-flight animation
// is stopped and does not complete.
func (c *SpringController) Set(value float64) {
	if c.disposed {
		return
	}
	c.halt()
	c.value = value
	c.velocity = 0
	if c.status == AnimationRunning {
		c.setStatus(AnimationStopped)
	}
	c.notifyListeners()
}

// AnimateTo springs from the current value toward target, starting with the
// given velocity.
func (c *SpringController) AnimateTo(target, velocity float64) {
	if c.disposed {
		return
	}
	c.halt()

	c.target = target
	c.velocity = velocity
	sim := c.newSimulation(c.value, velocity, target)
	c.sim = sim
	c.lastElapsed = 0
	c.statusEdge(AnimationRunning)
	if c.disposed || c.sim != sim {
		return
	}

	c.ticker = c.provider.CreateTicker(c.tick)
	c.ticker.Start()
}

// JumpTo sets the value to target with zero duration. Both the running and
// completed edges fire before JumpTo returns.
func (c *SpringController) JumpTo(target float64) {
	if c.disposed {
		return
	}
	c.halt()
	c.target = target
	c.statusEdge(AnimationRunning)
	if c.disposed {
		return
	}
	c.value = target
	c.velocity = 0
	c.notifyListeners()
	c.setStatus(AnimationCompleted)
}

// Stop halts the animation at the current value.
func (c *SpringController) Stop() {
	if c.disposed {
		return
	}
	c.halt()
	if c.status == AnimationRunning {
		c.setStatus(AnimationStopped)
	}
}

func (c *SpringController) halt() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.sim = nil
}

func (c *SpringController) newSimulation(position, velocity, target float64) Simulation {
	sim := NewSimulation(c.Integrator, c.Spring, position, velocity, target)
	switch s := sim.(type) {
	case *SpringSimulation:
		s.SetTolerance(c.Tolerance)
	case *HarmonicSimulation:
		s.SetTolerance(c.Tolerance)
	}
	return sim
}

func (c *SpringController) tick(elapsed time.Duration) {
	sim := c.sim
	if sim == nil {
		return
	}
	dt := (elapsed - c.lastElapsed).Seconds()
	if dt <= 0 {
		return
	}
	c.lastElapsed = elapsed
	if dt > maxFrameDt {
		dt = maxFrameDt
	}

	done := sim.Step(dt)
	c.value = sim.Position()
	c.velocity = sim.Velocity()
	c.notifyListeners()

	if done && c.sim == sim {
		c.halt()
		c.value = c.target
		c.velocity = 0
		c.setStatus(AnimationCompleted)
	}
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *SpringController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners = append(c.listeners, listenerEntry[func()]{id: id, fn: fn})
	return func() {
		c.listeners = removeEntry(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires on status edges.
// Returns an unsubscribe function.
func (c *SpringController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners = append(c.statusListeners, listenerEntry[func(AnimationStatus)]{id: id, fn: fn})
	return func() {
		c.statusListeners = removeEntry(c.statusListeners, id)
	}
}

func removeEntry[T any](entries []listenerEntry[T], id int) []listenerEntry[T] {
	for i, e := range entries {
		if e.id == id {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}

func (c *SpringController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.statusEdge(status)
}

// statusEdge records status and notifies even when it repeats, so every new
// target reports its own running edge.
func (c *SpringController) statusEdge(status AnimationStatus) {
	c.status = status
	listeners := append([]listenerEntry[func(AnimationStatus)](nil), c.statusListeners...)
	for _, l := range listeners {
		l.fn(status)
	}
}

func (c *SpringController) notifyListeners() {
	listeners := append([]listenerEntry[func()](nil), c.listeners...)
	for _, l := range listeners {
		l.fn()
	}
}

// Dispose stops the animation and drops all listeners. The value is frozen.
func (c *SpringController) Dispose() {
	c.halt()
	c.listeners = nil
	c.statusListeners = nil
	c.disposed = true
}
