package carousel

import (
	"time"

	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/errors"
)

// Layout constants in logical pixels.
const (
	// Gap separates adjacent items on the track.
	Gap = 16.0
	// ContainerPadding is the inset between the viewport edge and the track.
	ContainerPadding = 16.0
)

// Defaults applied to zero-valued options.
const (
	DefaultBaseWidth         = 300.0
	DefaultAutoplayDelay     = 3000 * time.Millisecond
	DefaultDragBuffer        = 50.0
	DefaultVelocityThreshold = 500.0
	DefaultDragElastic       = 0.5
)

// Item is an opaque caller payload. The carousel never inspects it.
type Item = any

// Config holds the carousel options. The zero value is usable: zero fields
// take the defaults above.
type Config struct {
	Items []Item

	// BaseWidth is the viewport width; items are BaseWidth - 2*ContainerPadding wide.
	BaseWidth float64

	Autoplay      bool
	AutoplayDelay time.Duration
	PauseOnHover  bool
	Loop          bool
	// Round is visual only and passed through to the renderer.
	Round bool

	// DragBuffer is the drag distance that commits a step.
	DragBuffer float64
	// VelocityThreshold is the release speed (px/s) that commits a step.
	VelocityThreshold float64
	// DragElastic scales overshoot beyond the first and last item while
	// dragging. Negative disables overshoot.
	DragElastic float64

	Spring     animation.SpringDescription
	Integrator animation.Integrator
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.BaseWidth == 0 {
		c.BaseWidth = DefaultBaseWidth
	}
	if c.AutoplayDelay == 0 {
		c.AutoplayDelay = DefaultAutoplayDelay
	}
	if c.DragBuffer == 0 {
		c.DragBuffer = DefaultDragBuffer
	}
	if c.VelocityThreshold == 0 {
		c.VelocityThreshold = DefaultVelocityThreshold
	}
	if c.DragElastic == 0 {
		c.DragElastic = DefaultDragElastic
	}
	if c.Spring.IsZero() {
		c.Spring = animation.DefaultSpring()
	}
	if c.Integrator == "" {
		c.Integrator = animation.IntegratorEuler
	}
	return c
}

// Validate reports the first invalid option after defaults are applied.
func (c Config) Validate() error {
	c = c.withDefaults()
	const op = "carousel.Validate"
	switch {
	case c.BaseWidth <= 2*ContainerPadding:
		return errors.Config(op, "baseWidth", "must exceed %v, got %v", 2*ContainerPadding, c.BaseWidth)
	case c.AutoplayDelay < 0:
		return errors.Config(op, "autoplayDelay", "must not be negative, got %v", c.AutoplayDelay)
	case c.DragBuffer < 0:
		return errors.Config(op, "dragBuffer", "must not be negative, got %v", c.DragBuffer)
	case c.VelocityThreshold < 0:
		return errors.Config(op, "velocityThreshold", "must not be negative, got %v", c.VelocityThreshold)
	case c.Spring.Mass <= 0:
		return errors.Config(op, "spring.mass", "must be positive, got %v", c.Spring.Mass)
	case c.Spring.Stiffness <= 0:
		return errors.Config(op, "spring.stiffness", "must be positive, got %v", c.Spring.Stiffness)
	case c.Spring.Damping < 0:
		return errors.Config(op, "spring.damping", "must not be negative, got %v", c.Spring.Damping)
	case !c.Integrator.Valid():
		return errors.Config(op, "integrator", "unknown integrator %q", string(c.Integrator))
	}
	return nil
}

// ItemWidth returns the width of one item.
func (c Config) ItemWidth() float64 {
	return c.withDefaults().BaseWidth - 2*ContainerPadding
}

// Stride returns the distance between adjacent item origins.
func (c Config) Stride() float64 {
	return c.ItemWidth() + Gap
}
