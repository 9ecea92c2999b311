package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/engine"
	"github.com/go-drift/carousel/pkg/gestures"
)

// DefaultFrameInterval is the frame period used by Pump (~60fps).
const DefaultFrameInterval = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: carousel did not settle")

// CarouselTester owns a fake clock, an engine, a surface and an attached
// carousel, and drives them deterministically.
type CarouselTester struct {
	// FrameInterval is the clock step between frames.
	FrameInterval time.Duration

	tb       testing.TB
	clock    *FakeClock
	engine   *engine.Engine
	surface  *engine.Surface
	carousel *carousel.Carousel
	pointer  int64
}

// NewCarouselTester builds and attaches a carousel for cfg. The surface
// covers a BaseWidth square at the origin. Detach and engine shutdown are
// registered with tb.Cleanup.
func NewCarouselTester(tb testing.TB, cfg carousel.Config) *CarouselTester {
	tb.Helper()
	c, err := carousel.New(cfg)
	if err != nil {
		tb.Fatalf("carousel.New: %v", err)
	}
	clk := NewFakeClock()
	eng := engine.New(clk)
	width := c.Config().BaseWidth
	surface := engine.NewSurface(engine.RectFromSize(0, 0, width, width))
	if err := c.Attach(eng, surface); err != nil {
		tb.Fatalf("Attach: %v", err)
	}
	ct := &CarouselTester{
		FrameInterval: DefaultFrameInterval,
		tb:            tb,
		clock:         clk,
		engine:        eng,
		surface:       surface,
		carousel:      c,
	}
	tb.Cleanup(func() {
		c.Detach()
		eng.Close()
	})
	return ct
}

// Carousel returns the carousel under test.
func (ct *CarouselTester) Carousel() *carousel.Carousel { return ct.carousel }

// Engine returns the engine driving the carousel.
func (ct *CarouselTester) Engine() *engine.Engine { return ct.engine }

// Surface returns the mount target.
func (ct *CarouselTester) Surface() *engine.Surface { return ct.surface }

// Clock returns the fake clock.
func (ct *CarouselTester) Clock() *FakeClock { return ct.clock }

// Frame advances the clock by one frame interval and runs one engine frame.
func (ct *CarouselTester) Frame() {
	ct.clock.Advance(ct.FrameInterval)
	ct.engine.Frame()
}

// PumpFrames runs n frames.
func (ct *CarouselTester) PumpFrames(n int) {
	for range n {
		ct.Frame()
	}
}

// Pump advances time by d in frame-sized steps, running a frame after each.
// The last step is shortened so exactly d elapses.
func (ct *CarouselTester) Pump(d time.Duration) {
	for d > 0 {
		step := min(ct.FrameInterval, d)
		ct.clock.Advance(step)
		ct.engine.Frame()
		d -= step
	}
}

// PumpAndSettle runs frames until no animation or frame callback is pending
// and the carousel is idle. Autoplay timers do not prevent settling.
func (ct *CarouselTester) PumpAndSettle(timeout time.Duration) error {
	deadline := ct.clock.Now().Add(timeout)
	for {
		if !ct.engine.HasPendingWork() && ct.carousel.Phase() == carousel.PhaseIdle {
			return nil
		}
		if !ct.clock.Now().Before(deadline) {
			return ErrSettleTimeout
		}
		ct.Frame()
	}
}

// MustSettle is PumpAndSettle with a five second timeout that fails the test.
func (ct *CarouselTester) MustSettle() {
	ct.tb.Helper()
	if err := ct.PumpAndSettle(5 * time.Second); err != nil {
		ct.tb.Fatalf("%v (phase %s, position %d, offset %v)",
			err, ct.carousel.Phase(), ct.carousel.Position(), ct.carousel.Offset())
	}
}

// Drag performs a complete drag through the carousel handlers: start, one
// update to offset, and release with velocity.
func (ct *CarouselTester) Drag(offset, velocity float64) {
	ct.carousel.DragStart()
	ct.carousel.DragUpdate(offset)
	ct.carousel.DragEnd(offset, velocity)
}

// Hover dispatches a pointer enter (true) or leave (false) on the surface.
func (ct *CarouselTester) Hover(inside bool) {
	phase := gestures.PointerPhaseLeave
	if inside {
		phase = gestures.PointerPhaseEnter
	}
	ct.surface.Dispatch(gestures.PointerEvent{PointerID: ct.pointer, Phase: phase})
}

// SendPointer hit-tests and dispatches a raw pointer event at (x, y).
func (ct *CarouselTester) SendPointer(phase gestures.PointerPhase, x, y float64) {
	ct.surface.HandlePointer(gestures.PointerEvent{
		PointerID: ct.pointer,
		Phase:     phase,
		Position:  gestures.Offset{X: x, Y: y},
	})
}

// DragPointer simulates a raw pointer drag of dx pixels from the surface
// center, split into steps moves one frame apart, followed by a release.
func (ct *CarouselTester) DragPointer(dx float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	ct.pointer++
	width := ct.carousel.Config().BaseWidth
	x, y := width/2, width/2
	ct.SendPointer(gestures.PointerPhaseDown, x, y)
	for i := 1; i <= steps; i++ {
		ct.Frame()
		ct.SendPointer(gestures.PointerPhaseMove, x+dx*float64(i)/float64(steps), y)
	}
	ct.SendPointer(gestures.PointerPhaseUp, x+dx, y)
}
