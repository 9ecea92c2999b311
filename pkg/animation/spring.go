package animation

import (
	"fmt"
	"math"
)

// SpringDescription describes a damped harmonic oscillator.
type SpringDescription struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// DefaultSpring returns a moderately stiff, well-damped spring
// (stiffness 300, damping 30, unit mass).
func DefaultSpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 300, Damping: 30}
}

// IsZero reports whether d is the zero value.
func (d SpringDescription) IsZero() bool {
	return d == SpringDescription{}
}

// AngularFrequency returns the undamped angular frequency in rad/s.
func (d SpringDescription) AngularFrequency() float64 {
	return math.Sqrt(d.Stiffness / d.Mass)
}

// DampingRatio returns the damping ratio. 1 is critical damping.
func (d SpringDescription) DampingRatio() float64 {
	return d.Damping / (2 * math.Sqrt(d.Stiffness*d.Mass))
}

// Tolerance decides when a spring is at rest.
type Tolerance struct {
	// Distance is the maximum distance from the target, in pixels.
	Distance float64
	// Velocity is the maximum speed, in pixels per second.
	Velocity float64
}

// DefaultTolerance treats half a pixel at under 10 px/s as settled.
var DefaultTolerance = Tolerance{Distance: 0.5, Velocity: 10}

// Simulation advances a value toward a target over time.
type Simulation interface {
	// Step advances the simulation by dt seconds and reports whether it is done.
	Step(dt float64) bool
	Position() float64
	Velocity() float64
	Target() float64
	IsDone() bool
}

// Integrator selects a Simulation implementation.
type Integrator string

const (
	// IntegratorEuler uses SpringSimulation.
	IntegratorEuler Integrator = "euler"
	// IntegratorHarmonic uses HarmonicSimulation.
	IntegratorHarmonic Integrator = "harmonic"
)

// Valid reports whether i names a known integrator. Empty means IntegratorEuler.
func (i Integrator) Valid() bool {
	switch i {
	case "", IntegratorEuler, IntegratorHarmonic:
		return true
	}
	return false
}

// NewSimulation creates a simulation using the chosen integrator.
func NewSimulation(integrator Integrator, spring SpringDescription, position, velocity, target float64) Simulation {
	switch integrator {
	case IntegratorHarmonic:
		return NewHarmonicSimulation(spring, position, velocity, target)
	case "", IntegratorEuler:
		return NewSpringSimulation(spring, position, velocity, target)
	default:
		panic(fmt.Sprintf("animation: unknown integrator %q", string(integrator)))
	}
}

// maxSubstep bounds the Euler step so stiff springs stay stable at low frame rates.
const maxSubstep = 1.0 / 240

// SpringSimulation integrates a damped spring with semi-implicit Euler.
type SpringSimulation struct {
	spring    SpringDescription
	position  float64
	velocity  float64
	target    float64
	tolerance Tolerance
	done      bool
}

// NewSpringSimulation creates a spring starting at position with the given
// initial velocity, settling at target.
func NewSpringSimulation(spring SpringDescription, position, velocity, target float64) *SpringSimulation {
	s := &SpringSimulation{
		spring:    spring,
		position:  position,
		velocity:  velocity,
		target:    target,
		tolerance: DefaultTolerance,
	}
	s.done = atRest(s.position, s.velocity, s.target, s.tolerance)
	if s.done {
		s.position = target
		s.velocity = 0
	}
	return s
}

// SetTolerance replaces the rest tolerance.
func (s *SpringSimulation) SetTolerance(t Tolerance) {
	s.tolerance = t
}

// Step advances the simulation by dt seconds.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done {
		return true
	}
	if dt <= 0 {
		return false
	}

	steps := int(math.Ceil(dt / maxSubstep))
	h := dt / float64(steps)
	for range steps {
		displacement := s.position - s.target
		accel := (-s.spring.Stiffness*displacement - s.spring.Damping*s.velocity) / s.spring.Mass
		s.velocity += accel * h
		s.position += s.velocity * h
	}

	if atRest(s.position, s.velocity, s.target, s.tolerance) {
		s.position = s.target
		s.velocity = 0
		s.done = true
	}
	return s.done
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current velocity in units per second.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// Target returns the rest position.
func (s *SpringSimulation) Target() float64 { return s.target }

// IsDone reports whether the spring has settled.
func (s *SpringSimulation) IsDone() bool { return s.done }

func atRest(position, velocity, target float64, t Tolerance) bool {
	return math.Abs(position-target) <= t.Distance && math.Abs(velocity) <= t.Velocity
}
