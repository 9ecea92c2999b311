package engine

import (
	"sync"
	"time"
)

// DefaultTimingSamples is the frame history kept by each engine.
const DefaultTimingSamples = 60

// FrameTimingBuffer is a ring buffer of frame intervals: the clock time
// between the starts of consecutive frames. It is safe for concurrent use.
type FrameTimingBuffer struct {
	mu      sync.RWMutex
	samples []time.Duration
	index   int
	count   int
}

// NewFrameTimingBuffer creates a buffer holding capacity samples, or
// DefaultTimingSamples when capacity is not positive.
func NewFrameTimingBuffer(capacity int) *FrameTimingBuffer {
	if capacity <= 0 {
		capacity = DefaultTimingSamples
	}
	return &FrameTimingBuffer{samples: make([]time.Duration, capacity)}
}

// Add records one frame interval, evicting the oldest when full.
func (b *FrameTimingBuffer) Add(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples[b.index] = d
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
}

// Samples returns a copy of the recorded intervals, oldest first.
func (b *FrameTimingBuffer) Samples() []time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.count == 0 {
		return nil
	}
	out := make([]time.Duration, b.count)
	if b.count < len(b.samples) {
		copy(out, b.samples[:b.count])
	} else {
		n := copy(out, b.samples[b.index:])
		copy(out[n:], b.samples[:b.index])
	}
	return out
}

// Count returns the number of recorded intervals.
func (b *FrameTimingBuffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Average returns the mean interval, or zero with no samples.
func (b *FrameTimingBuffer) Average() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.count == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range b.samples[:b.count] {
		sum += d
	}
	return sum / time.Duration(b.count)
}

// FrameTimings returns the engine's frame interval history.
func (e *Engine) FrameTimings() *FrameTimingBuffer {
	return e.timings
}

// FPS returns the frame rate implied by the recent frame intervals, or
// zero before the second frame.
func (e *Engine) FPS() float64 {
	avg := e.timings.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
