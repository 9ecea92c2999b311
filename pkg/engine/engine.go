// Package engine is the cooperative host loop that carousels attach to.
//
// An Engine owns repeating timers, animation-frame callbacks and animation
// tickers. All of them run on the goroutine that calls [Engine.Frame];
// other goroutines hand work to that goroutine with [Engine.Post].
//
// Each Frame runs, in order: posted callbacks, due timers, frame callbacks
// requested before the frame began, then tickers. A frame callback requested
// while a frame is running therefore fires on the following frame.
package engine

import (
	"sync"
	"time"

	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/errors"
)

// TimerID identifies a repeating timer. The zero value is never issued.
type TimerID int

// FrameID identifies a pending frame callback. The zero value is never issued.
type FrameID int

type timer struct {
	id        TimerID
	period    time.Duration
	next      time.Time
	fn        func()
	cancelled bool
}

type frameRequest struct {
	id        FrameID
	fn        func()
	cancelled bool
}

// Engine drives timers, frame callbacks and tickers from a Clock.
type Engine struct {
	clock   animation.Clock
	tickers *animation.TickerRegistry

	timers []*timer
	frames []*frameRequest
	nextID int
	frame  uint64
	closed bool

	timings   *FrameTimingBuffer
	lastFrame time.Time

	dispatchMu    sync.Mutex
	dispatchQueue []func()
}

// New creates an engine reading time from clock. A nil clock uses the
// system clock.
func New(clock animation.Clock) *Engine {
	if clock == nil {
		clock = animation.SystemClock()
	}
	return &Engine{
		clock:   clock,
		tickers: animation.NewTickerRegistry(clock),
		timings: NewFrameTimingBuffer(0),
	}
}

// Now returns the engine clock's current time.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// FrameCount returns the number of frames run so far.
func (e *Engine) FrameCount() uint64 {
	return e.frame
}

func (e *Engine) allocID() int {
	e.nextID++
	return e.nextID
}

// SetInterval calls fn every period, first at Now()+period. Periods shorter
// than a millisecond are raised to one millisecond. Returns 0 on a closed engine.
func (e *Engine) SetInterval(period time.Duration, fn func()) TimerID {
	if e.closed || fn == nil {
		return 0
	}
	if period < time.Millisecond {
		period = time.Millisecond
	}
	t := &timer{
		id:     TimerID(e.allocID()),
		period: period,
		next:   e.clock.Now().Add(period),
		fn:     fn,
	}
	e.timers = append(e.timers, t)
	return t.id
}

// ClearInterval cancels a timer. Unknown or zero ids are ignored.
func (e *Engine) ClearInterval(id TimerID) {
	for _, t := range e.timers {
		if t.id == id {
			t.cancelled = true
			return
		}
	}
}

// RequestFrame schedules fn to run once at the start of the next frame.
func (e *Engine) RequestFrame(fn func()) FrameID {
	if e.closed || fn == nil {
		return 0
	}
	r := &frameRequest{id: FrameID(e.allocID()), fn: fn}
	e.frames = append(e.frames, r)
	return r.id
}

// CancelFrame cancels a pending frame callback.
func (e *Engine) CancelFrame(id FrameID) {
	for _, r := range e.frames {
		if r.id == id {
			r.cancelled = true
			return
		}
	}
}

// CreateTicker implements animation.TickerProvider.
func (e *Engine) CreateTicker(callback func(time.Duration)) *animation.Ticker {
	return e.tickers.CreateTicker(callback)
}

// Post queues fn to run at the start of the next frame. Safe to call from
// any goroutine.
func (e *Engine) Post(fn func()) {
	if fn == nil {
		return
	}
	e.dispatchMu.Lock()
	e.dispatchQueue = append(e.dispatchQueue, fn)
	e.dispatchMu.Unlock()
}

func (e *Engine) drainDispatchQueue() []func() {
	e.dispatchMu.Lock()
	callbacks := e.dispatchQueue
	e.dispatchQueue = nil
	e.dispatchMu.Unlock()
	return callbacks
}

// Frame runs one frame at the clock's current time.
func (e *Engine) Frame() {
	if e.closed {
		return
	}
	e.frame++
	now := e.clock.Now()
	if !e.lastFrame.IsZero() {
		e.timings.Add(now.Sub(e.lastFrame))
	}
	e.lastFrame = now

	for _, fn := range e.drainDispatchQueue() {
		guard("engine.post", fn)
	}

	e.runTimers(now)

	frames := e.frames
	e.frames = nil
	for _, r := range frames {
		if !r.cancelled && !e.closed {
			guard("engine.frameCallback", r.fn)
		}
	}

	if !e.closed {
		e.tickers.Step()
	}
}

// runTimers fires every due timer, catching up one period at a time so a
// long frame gap still delivers each interval in order.
func (e *Engine) runTimers(now time.Time) {
	timers := append([]*timer(nil), e.timers...)
	for _, t := range timers {
		for !t.cancelled && !e.closed && !t.next.After(now) {
			t.next = t.next.Add(t.period)
			guard("engine.timer", t.fn)
		}
	}

	live := e.timers[:0]
	for _, t := range e.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	e.timers = live
}

// HasPendingWork reports whether a frame callback or ticker is waiting.
// Repeating timers are not counted.
func (e *Engine) HasPendingWork() bool {
	for _, r := range e.frames {
		if !r.cancelled {
			return true
		}
	}
	return e.tickers.HasActive()
}

// PendingTimers returns the number of live repeating timers.
func (e *Engine) PendingTimers() int {
	n := 0
	for _, t := range e.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// PendingFrames returns the number of frame callbacks waiting to run.
func (e *Engine) PendingFrames() int {
	n := 0
	for _, r := range e.frames {
		if !r.cancelled {
			n++
		}
	}
	return n
}

// Close cancels every timer, frame callback and ticker. Later calls to
// Frame, SetInterval and RequestFrame do nothing.
func (e *Engine) Close() {
	e.closed = true
	e.timers = nil
	e.frames = nil
	e.tickers.StopAll()
	e.drainDispatchQueue()
}

func guard(op string, fn func()) {
	defer errors.Recover(op)
	fn()
}
