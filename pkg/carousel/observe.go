package carousel

import stderrors "errors"

var errAlreadyAttached = stderrors.New("already attached")

// Position returns the authoritative index into the render sequence.
func (c *Carousel) Position() int { return c.m.position }

// Phase returns the current state machine phase.
func (c *Carousel) Phase() Phase { return c.m.phase }

// Flags returns a copy of the transient flags.
func (c *Carousel) Flags() Flags { return c.m.flags }

// Config returns the effective options, defaults applied.
func (c *Carousel) Config() Config { return c.cfg }

// Len returns the render sequence length.
func (c *Carousel) Len() int { return len(c.sequence) }

// Sequence returns a copy of the render sequence.
func (c *Carousel) Sequence() []Item {
	return append([]Item(nil), c.sequence...)
}

// ItemWidth returns the width of one item.
func (c *Carousel) ItemWidth() float64 { return c.cfg.ItemWidth() }

// Stride returns the distance between adjacent item origins.
func (c *Carousel) Stride() float64 { return c.cfg.Stride() }

// Target returns the rest offset for the current position.
func (c *Carousel) Target() float64 { return c.target() }

func (c *Carousel) target() float64 {
	return float64(-c.m.position) * c.Stride()
}

// Offset returns the live track offset. While detached it is the rest
// offset of the current position.
func (c *Carousel) Offset() float64 {
	if c.spring == nil {
		return c.target()
	}
	return c.spring.Value()
}

// RealIndex returns the index into the caller's items shown at Position.
func (c *Carousel) RealIndex() int {
	return c.ItemIndex(c.m.position)
}

// ItemIndex returns the index into the caller's items shown at render index i.
// Padding copies map to the item they copy.
func (c *Carousel) ItemIndex(i int) int {
	return realIndex(i, len(c.cfg.Items), c.cfg.Loop)
}

// PerspectiveOriginX returns the horizontal perspective origin of the track,
// centered on the current item.
func (c *Carousel) PerspectiveOriginX() float64 {
	return float64(c.m.position)*c.Stride() + c.ItemWidth()/2
}

// Project returns the transform of the item at render index for the live offset.
func (c *Carousel) Project(index int) ItemTransform {
	return Project(index, c.Offset(), c.Stride())
}

// Projections returns the transform of every rendered item, in sequence order.
func (c *Carousel) Projections() []ItemTransform {
	offset, stride := c.Offset(), c.Stride()
	out := make([]ItemTransform, len(c.sequence))
	for i := range c.sequence {
		out[i] = Project(i, offset, stride)
	}
	return out
}
