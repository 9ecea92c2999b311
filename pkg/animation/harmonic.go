package animation

import "github.com/charmbracelet/harmonica"

// HarmonicSimulation steps a damped spring with harmonica's closed-form
// solver. The solver coefficients depend on the step size, so they are
// recomputed only when dt changes.
type HarmonicSimulation struct {
	desc      SpringDescription
	spring    harmonica.Spring
	lastDt    float64
	position  float64
	velocity  float64
	target    float64
	tolerance Tolerance
	done      bool
}

// NewHarmonicSimulation creates a harmonica-backed spring.
func NewHarmonicSimulation(spring SpringDescription, position, velocity, target float64) *HarmonicSimulation {
	h := &HarmonicSimulation{
		desc:      spring,
		position:  position,
		velocity:  velocity,
		target:    target,
		tolerance: DefaultTolerance,
	}
	h.done = atRest(position, velocity, target, h.tolerance)
	if h.done {
		h.position = target
		h.velocity = 0
	}
	return h
}

// SetTolerance replaces the rest tolerance.
func (h *HarmonicSimulation) SetTolerance(t Tolerance) {
	h.tolerance = t
}

// Step advances the simulation by dt seconds.
func (h *HarmonicSimulation) Step(dt float64) bool {
	if h.done {
		return true
	}
	if dt <= 0 {
		return false
	}
	if dt != h.lastDt {
		h.spring = harmonica.NewSpring(dt, h.desc.AngularFrequency(), h.desc.DampingRatio())
		h.lastDt = dt
	}
	h.position, h.velocity = h.spring.Update(h.position, h.velocity, h.target)

	if atRest(h.position, h.velocity, h.target, h.tolerance) {
		h.position = h.target
		h.velocity = 0
		h.done = true
	}
	return h.done
}

// Position returns the current position.
func (h *HarmonicSimulation) Position() float64 { return h.position }

// Velocity returns the current velocity in units per second.
func (h *HarmonicSimulation) Velocity() float64 { return h.velocity }

// Target returns the rest position.
func (h *HarmonicSimulation) Target() float64 { return h.target }

// IsDone reports whether the spring has settled.
func (h *HarmonicSimulation) IsDone() bool { return h.done }
