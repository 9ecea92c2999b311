package carousel

import (
	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/engine"
	"github.com/go-drift/carousel/pkg/errors"
	"github.com/go-drift/carousel/pkg/gestures"
)

// Carousel is the position state machine and loop illusion controller.
// See the package documentation for the state diagram.
type Carousel struct {
	cfg         Config
	sequence    []Item
	interpreter DragInterpreter
	m           machine

	eng        *engine.Engine
	mount      *engine.Surface
	spring     *animation.SpringController
	auto       autoplay
	recognizer *gestures.HorizontalDragRecognizer
	attached   bool

	pointerRemovers []func()
	hoverRemovers   []func()
	jumpFrame       engine.FrameID
	dragOrigin      float64

	listeners      []changeListener
	nextListenerID int
}

type changeListener struct {
	id int
	fn func()
}

// New validates cfg and builds a detached carousel at its initial position.
func New(cfg Config) (*Carousel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	c := &Carousel{}
	c.apply(cfg)
	c.m.resize(len(c.sequence), initialPosition(len(cfg.Items), cfg.Loop))
	c.auto.onTick = c.tick
	return c, nil
}

func (c *Carousel) apply(cfg Config) {
	c.cfg = cfg
	c.sequence = PadSequence(cfg.Items, cfg.Loop)
	c.interpreter = DragInterpreter{Buffer: cfg.DragBuffer, VelocityThreshold: cfg.VelocityThreshold}
}

// Attach acquires host resources: the spring ticker and autoplay timer on
// eng, and pointer and hover listeners on target. A nil target skips
// listener registration.
func (c *Carousel) Attach(eng *engine.Engine, target *engine.Surface) error {
	const op = "carousel.Attach"
	if eng == nil {
		return &errors.CarouselError{Op: op, Kind: errors.KindHost, Err: errors.ErrNoHost}
	}
	if c.attached {
		return &errors.CarouselError{Op: op, Kind: errors.KindState, Err: errAlreadyAttached}
	}

	c.eng = eng
	c.auto.eng = eng
	c.spring = animation.NewSpringController(eng, c.cfg.Spring)
	c.spring.Integrator = c.cfg.Integrator
	c.spring.Set(c.target())
	c.spring.AddListener(c.notify)
	c.spring.AddStatusListener(c.onSpringStatus)
	c.attached = true

	c.mount = target
	if target != nil {
		c.registerPointer()
		if c.cfg.PauseOnHover {
			c.registerHover()
		}
	}
	c.syncAutoplay()
	return nil
}

// Detach releases every host resource acquired by Attach: the autoplay
// timer, the pending jump frame, the spring ticker and all listeners.
// Position is kept; Offset rests on its target until the next Attach.
func (c *Carousel) Detach() {
	if !c.attached {
		return
	}
	c.attached = false
	c.auto.stop()
	c.auto.eng = nil
	if c.jumpFrame != 0 {
		c.eng.CancelFrame(c.jumpFrame)
		c.jumpFrame = 0
	}
	c.spring.Dispose()
	c.spring = nil
	for _, remove := range c.pointerRemovers {
		remove()
	}
	c.pointerRemovers = nil
	c.unregisterHover()
	c.recognizer = nil
	c.mount = nil
	c.eng = nil
	c.m.reset()
}

// IsAttached reports whether the carousel holds host resources.
func (c *Carousel) IsAttached() bool {
	return c.attached
}

func (c *Carousel) registerPointer() {
	r := gestures.NewHorizontalDragRecognizer(c.eng.Now)
	r.OnStart = func(gestures.DragStartDetails) { c.DragStart() }
	r.OnUpdate = func(d gestures.DragUpdateDetails) { c.DragUpdate(d.Total.X) }
	r.OnEnd = func(d gestures.DragEndDetails) { c.DragEnd(d.Total.X, d.PrimaryVelocity) }
	r.OnCancel = c.DragCancel
	c.recognizer = r

	c.pointerRemovers = []func(){
		c.mount.AddListener(gestures.PointerPhaseDown, r.AddPointer),
		c.mount.AddListener(gestures.PointerPhaseMove, r.HandleEvent),
		c.mount.AddListener(gestures.PointerPhaseUp, r.HandleEvent),
		c.mount.AddListener(gestures.PointerPhaseCancel, r.HandleEvent),
	}
}

func (c *Carousel) registerHover() {
	if c.mount == nil || len(c.hoverRemovers) > 0 {
		return
	}
	c.hoverRemovers = []func(){
		c.mount.AddListener(gestures.PointerPhaseEnter, func(gestures.PointerEvent) { c.PointerEnter() }),
		c.mount.AddListener(gestures.PointerPhaseLeave, func(gestures.PointerEvent) { c.PointerLeave() }),
	}
}

func (c *Carousel) unregisterHover() {
	for _, remove := range c.hoverRemovers {
		remove()
	}
	c.hoverRemovers = nil
	c.m.flags.Hovered = false
}

// Update applies new options. The render sequence is recomputed, Position
// is mapped to the same real item in the new sequence (clamped), and an
// active drag is cancelled. If the geometry changed, the offset snaps to the
// new target without animating. An invalid cfg leaves the carousel untouched.
func (c *Carousel) Update(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.withDefaults()
	old := c.cfg
	oldLen := len(c.sequence)
	oldStride := old.Stride()
	real := realIndex(c.m.position, len(old.Items), old.Loop)

	c.apply(cfg)
	newPosition := renderIndex(real, len(cfg.Items), cfg.Loop)
	geometryChanged := newPosition != c.m.position || len(c.sequence) != oldLen || cfg.Stride() != oldStride
	c.m.resize(len(c.sequence), newPosition)

	if !c.attached {
		return nil
	}
	c.spring.Spring = cfg.Spring
	c.spring.Integrator = cfg.Integrator

	if c.m.flags.Dragging {
		c.cancelDrag()
		geometryChanged = true
	}
	if geometryChanged {
		c.interruptJump()
		c.silentJump(c.m.position)
	}

	if cfg.PauseOnHover != old.PauseOnHover {
		if cfg.PauseOnHover {
			c.registerHover()
		} else {
			c.unregisterHover()
		}
	}
	c.syncAutoplay()
	c.notify()
	return nil
}

// DragStart begins tracking a drag. Any settle or pending jump is interrupted
// and the offset follows the pointer from where it is now.
func (c *Carousel) DragStart() {
	if !c.attached {
		return
	}
	c.interruptJump()
	c.spring.Stop()
	c.m.flags.Animating = false
	c.dragOrigin = c.spring.Value()
	c.m.beginDrag()
	c.notify()
}

// DragUpdate moves the offset by total, the pointer displacement since
// DragStart, within the drag constraints.
func (c *Carousel) DragUpdate(total float64) {
	if !c.attached || !c.m.flags.Dragging {
		return
	}
	lo := -float64(c.m.length-1) * c.Stride()
	x := dragOffset(c.dragOrigin+total, min(lo, 0), 0, c.cfg.DragElastic)
	c.spring.Set(x)
}

// DragEnd finishes a drag with its total offset and release velocity. The
// interpreted step is applied to Position and the spring settles toward the
// new target, starting at the release velocity. A zero step snaps back.
func (c *Carousel) DragEnd(offset, velocity float64) {
	if !c.attached {
		return
	}
	c.interruptJump()
	c.m.endDrag()
	if step := c.interpreter.Step(offset, velocity); step != 0 {
		c.m.stepBy(step)
	}
	c.settle(velocity)
}

// DragCancel abandons a drag and settles back to the current position.
func (c *Carousel) DragCancel() {
	if !c.attached || !c.m.flags.Dragging {
		return
	}
	c.m.endDrag()
	c.settle(0)
}

func (c *Carousel) cancelDrag() {
	if c.recognizer != nil {
		c.recognizer.Reset()
	}
	c.m.endDrag()
}

// Step moves Position by the sign of step (one item at most) and settles.
func (c *Carousel) Step(step int) {
	if !c.attached || c.m.length <= 1 {
		return
	}
	switch {
	case step > 0:
		step = 1
	case step < 0:
		step = -1
	default:
		return
	}
	if c.m.flags.Dragging {
		c.cancelDrag()
	}
	c.interruptJump()
	c.m.stepBy(step)
	c.settle(c.spring.Velocity())
}

// tick is the autoplay step: Position advances by one and the spring
// settles toward it. Without Loop there is nothing past the last item, so a
// tick there rewinds to the first item instead. With Loop the step lands on
// the trailing copy and the loop jump returns to the first real item.
func (c *Carousel) tick() {
	if !c.attached || c.m.length <= 1 {
		return
	}
	if c.cfg.PauseOnHover && c.m.flags.Hovered {
		return
	}
	if c.m.flags.Dragging {
		c.cancelDrag()
	}
	c.interruptJump()
	if !c.cfg.Loop && c.m.position >= c.m.length-1 {
		c.m.jumpTo(0)
	} else {
		c.m.stepBy(1)
	}
	c.settle(c.spring.Velocity())
}

// PointerEnter records hover and pauses autoplay when PauseOnHover is set.
func (c *Carousel) PointerEnter() {
	if !c.attached || c.m.flags.Hovered {
		return
	}
	c.m.flags.Hovered = true
	c.syncAutoplay()
	c.notify()
}

// PointerLeave clears hover and restarts autoplay if it was paused.
func (c *Carousel) PointerLeave() {
	if !c.attached || !c.m.flags.Hovered {
		return
	}
	c.m.flags.Hovered = false
	c.syncAutoplay()
	c.notify()
}

func (c *Carousel) syncAutoplay() {
	want := c.attached &&
		c.cfg.Autoplay &&
		len(c.sequence) > 1 &&
		!(c.cfg.PauseOnHover && c.m.flags.Hovered)
	c.auto.sync(want, autoplayKey{delay: c.cfg.AutoplayDelay, length: len(c.sequence)})
}

// settle starts the spring toward the current target. Callers clear any
// pending jump first.
func (c *Carousel) settle(velocity float64) {
	c.m.beginSettle()
	c.spring.AnimateTo(c.target(), velocity)
	c.notify()
}

func (c *Carousel) onSpringStatus(status animation.AnimationStatus) {
	switch status {
	case animation.AnimationRunning:
		c.m.flags.Animating = true
	case animation.AnimationCompleted:
		c.onSettleComplete()
		c.notify()
	case animation.AnimationStopped:
		c.m.flags.Animating = false
	}
}

// OnChange registers fn to run after any change to position, offset, phase
// or flags. Returns an unsubscribe function.
func (c *Carousel) OnChange(fn func()) func() {
	c.nextListenerID++
	id := c.nextListenerID
	c.listeners = append(c.listeners, changeListener{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Carousel) notify() {
	listeners := append([]changeListener(nil), c.listeners...)
	for _, l := range listeners {
		l.fn()
	}
}
