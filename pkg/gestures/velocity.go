package gestures

import "time"

const (
	// velocityHorizon is the age limit of samples used for the estimate.
	velocityHorizon = 100 * time.Millisecond
	// velocityStopAfter is the pause after which the pointer counts as still.
	velocityStopAfter = 40 * time.Millisecond
)

type velocitySample struct {
	at time.Time
	x  float64
}

// velocityTracker estimates horizontal pointer velocity from recent samples.
type velocityTracker struct {
	samples []velocitySample
}

func (v *velocityTracker) reset() {
	v.samples = v.samples[:0]
}

func (v *velocityTracker) add(at time.Time, x float64) {
	v.samples = append(v.samples, velocitySample{at: at, x: x})
	// Drop samples the horizon can no longer reach.
	cut := 0
	for cut < len(v.samples)-1 && at.Sub(v.samples[cut].at) > velocityHorizon {
		cut++
	}
	if cut > 0 {
		v.samples = append(v.samples[:0], v.samples[cut:]...)
	}
}

// velocity returns pixels/second over the samples within velocityHorizon
// of the newest one. It is zero when the newest sample is older than
// velocityStopAfter at now, or when a gap longer than that separates it
// from every earlier sample.
func (v *velocityTracker) velocity(now time.Time) float64 {
	n := len(v.samples)
	if n < 2 {
		return 0
	}
	newest := v.samples[n-1]
	if now.Sub(newest.at) > velocityStopAfter {
		return 0
	}
	oldest := newest
	for i := n - 2; i >= 0; i-- {
		s := v.samples[i]
		if newest.at.Sub(s.at) > velocityHorizon || oldest.at.Sub(s.at) > velocityStopAfter {
			break
		}
		oldest = s
	}
	dt := newest.at.Sub(oldest.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (newest.x - oldest.x) / dt
}
