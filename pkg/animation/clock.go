package animation

import "time"

// Clock provides time for animations. Hosts pass a Clock to the engine;
// tests inject a fake clock to control timing deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return realClock{} }
