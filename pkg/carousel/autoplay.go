package carousel

import (
	"time"

	"github.com/go-drift/carousel/pkg/engine"
)

// autoplayKey is the set of inputs whose change restarts the interval.
type autoplayKey struct {
	delay  time.Duration
	length int
}

// autoplay issues +1 steps on a fixed period through an engine timer.
//
// Any change to its inputs, including hover gating, stops the timer and
// starts a fresh one, so after hover ends the first tick comes exactly one
// delay later.
type autoplay struct {
	eng     *engine.Engine
	timer   engine.TimerID
	key     autoplayKey
	running bool
	onTick  func()
}

func (a *autoplay) sync(want bool, key autoplayKey) {
	if !want || a.eng == nil {
		a.stop()
		return
	}
	if a.running && a.key == key {
		return
	}
	a.stop()
	a.key = key
	a.timer = a.eng.SetInterval(key.delay, a.onTick)
	a.running = a.timer != 0
}

func (a *autoplay) stop() {
	if !a.running {
		return
	}
	a.eng.ClearInterval(a.timer)
	a.timer = 0
	a.running = false
}
