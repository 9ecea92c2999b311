// Package animation provides the timing and physics primitives used to
// settle a carousel track.
//
// # Core Components
//
//   - [Ticker]: a per-frame callback, owned by a [TickerRegistry] that the
//     host steps once per frame.
//
//   - [Simulation]: a damped spring advanced in fixed or variable steps.
//     [SpringSimulation] integrates the spring ODE with semi-implicit Euler;
//     [HarmonicSimulation] uses harmonica's closed-form stepper.
//
//   - [SpringController]: drives a value toward a target with a spring,
//     reports started/completed edges, and supports a zero-duration jump.
//
//   - [Interpolate]: piecewise-linear mapping used for projection channels.
//
// Nothing in this package is safe for concurrent use. Drive it from the
// goroutine that owns the host frame loop.
package animation

import "time"

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	registry *TickerRegistry
	isActive bool
	start    time.Time
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.registry.clock.Now()
	t.registry.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.registry.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.registry.clock.Now().Sub(t.start)
}

// TickerProvider creates tickers.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// TickerRegistry owns the active tickers of one host loop.
type TickerRegistry struct {
	clock  Clock
	active []*Ticker
}

// NewTickerRegistry creates a registry reading time from clock.
// A nil clock uses the system clock.
func NewTickerRegistry(clock Clock) *TickerRegistry {
	if clock == nil {
		clock = SystemClock()
	}
	return &TickerRegistry{clock: clock}
}

// CreateTicker returns an inactive ticker bound to this registry.
func (r *TickerRegistry) CreateTicker(callback func(time.Duration)) *Ticker {
	return &Ticker{callback: callback, registry: r}
}

func (r *TickerRegistry) add(t *Ticker) {
	r.active = append(r.active, t)
}

func (r *TickerRegistry) remove(t *Ticker) {
	for i, candidate := range r.active {
		if candidate == t {
			r.active = append(r.active[:i], r.active[i+1:]...)
			return
		}
	}
}

// Step advances all active tickers in start order.
// Tickers started during Step first run on the next call.
func (r *TickerRegistry) Step() {
	if len(r.active) == 0 {
		return
	}
	tickers := make([]*Ticker, len(r.active))
	copy(tickers, r.active)

	now := r.clock.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActive reports whether any ticker is running.
func (r *TickerRegistry) HasActive() bool {
	return len(r.active) > 0
}

// StopAll deactivates every ticker.
func (r *TickerRegistry) StopAll() {
	for _, t := range r.active {
		t.isActive = false
	}
	r.active = nil
}
