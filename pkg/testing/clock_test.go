package testing

import (
	"testing"
	"time"
)

func TestFakeClock_StartsAtEpoch(t *testing.T) {
	clock := NewFakeClock()
	if got := clock.Now(); !got.Equal(Epoch) {
		t.Errorf("Now() = %v, want %v", got, Epoch)
	}
}

func TestFakeClock_Advance(t *testing.T) {
	clock := NewFakeClock()
	clock.Advance(250 * time.Millisecond)
	clock.Advance(750 * time.Millisecond)
	if got := clock.Since(); got != time.Second {
		t.Errorf("Since() = %v, want %v", got, time.Second)
	}
}
