package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/engine"
	"github.com/go-drift/carousel/pkg/rendering"
)

// frameInterval is the host frame period (~60fps).
const frameInterval = 16 * time.Millisecond

// manualClock is advanced explicitly by headless hosts.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Unix(0, 0)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// headless is a carousel attached to an engine on a manual clock.
type headless struct {
	clock   *manualClock
	eng     *engine.Engine
	surface *engine.Surface
	c       *carousel.Carousel
}

func newHeadless(cfg carousel.Config) (*headless, error) {
	c, err := carousel.New(cfg)
	if err != nil {
		return nil, err
	}
	clock := newManualClock()
	eng := engine.New(clock)
	width := c.Config().BaseWidth
	surface := engine.NewSurface(engine.RectFromSize(0, 0, width, width))
	if err := c.Attach(eng, surface); err != nil {
		return nil, err
	}
	return &headless{clock: clock, eng: eng, surface: surface, c: c}, nil
}

// pump advances time by d in frame steps.
func (h *headless) pump(d time.Duration) {
	for d > 0 {
		step := min(frameInterval, d)
		h.clock.Advance(step)
		h.eng.Frame()
		d -= step
	}
}

// settle runs frames until the carousel is idle with no pending animation.
func (h *headless) settle(timeout time.Duration) error {
	for elapsed := time.Duration(0); ; elapsed += frameInterval {
		if h.c.Phase() == carousel.PhaseIdle && !h.eng.HasPendingWork() {
			return nil
		}
		if elapsed >= timeout {
			return fmt.Errorf("carousel did not settle within %v (phase %s)", timeout, h.c.Phase())
		}
		h.pump(frameInterval)
	}
}

func (h *headless) close() {
	h.c.Detach()
	h.eng.Close()
}

// currentLabel is the label of the item at the current position.
func currentLabel(c *carousel.Carousel) string {
	seq := c.Sequence()
	if len(seq) == 0 {
		return ""
	}
	return rendering.LabelOf(seq[c.Position()])
}
