package gestures

import (
	"testing"
	"time"
)

type fakeNow struct{ t time.Time }

func (f *fakeNow) now() time.Time { return f.t }

func (f *fakeNow) advance(d time.Duration) { f.t = f.t.Add(d) }

func newFakeNow() *fakeNow {
	return &fakeNow{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestHorizontalDrag_RecognizesAndReportsTotal(t *testing.T) {
	clk := newFakeNow()
	r := NewHorizontalDragRecognizer(clk.now)

	var started bool
	var updates []float64
	var end DragEndDetails
	r.OnStart = func(DragStartDetails) { started = true }
	r.OnUpdate = func(d DragUpdateDetails) { updates = append(updates, d.Total.X) }
	r.OnEnd = func(d DragEndDetails) { end = d }

	r.AddPointer(PointerEvent{PointerID: 1, Phase: PointerPhaseDown, Position: Offset{X: 200, Y: 50}})
	for i := 1; i <= 4; i++ {
		clk.advance(16 * time.Millisecond)
		r.HandleEvent(PointerEvent{PointerID: 1, Phase: PointerPhaseMove, Position: Offset{X: 200 - float64(i)*20, Y: 50}})
	}
	r.HandleEvent(PointerEvent{PointerID: 1, Phase: PointerPhaseUp, Position: Offset{X: 120, Y: 50}})

	if !started {
		t.Fatal("expected drag to start")
	}
	if len(updates) != 4 || updates[3] != -80 {
		t.Errorf("updates = %v, want 4 updates ending at -80", updates)
	}
	if end.Total.X != -80 {
		t.Errorf("end.Total.X = %v, want -80", end.Total.X)
	}
	if end.PrimaryVelocity >= 0 {
		t.Errorf("end.PrimaryVelocity = %v, want negative", end.PrimaryVelocity)
	}
	if r.IsDragging() {
		t.Error("recognizer should be idle after pointer up")
	}
}

func TestHorizontalDrag_RejectsVertical(t *testing.T) {
	clk := newFakeNow()
	r := NewHorizontalDragRecognizer(clk.now)
	var started, ended bool
	r.OnStart = func(DragStartDetails) { started = true }
	r.OnEnd = func(DragEndDetails) { ended = true }

	r.AddPointer(PointerEvent{PointerID: 2, Phase: PointerPhaseDown, Position: Offset{X: 100, Y: 100}})
	clk.advance(16 * time.Millisecond)
	r.HandleEvent(PointerEvent{PointerID: 2, Phase: PointerPhaseMove, Position: Offset{X: 102, Y: 140}})
	clk.advance(16 * time.Millisecond)
	r.HandleEvent(PointerEvent{PointerID: 2, Phase: PointerPhaseMove, Position: Offset{X: 160, Y: 140}})
	r.HandleEvent(PointerEvent{PointerID: 2, Phase: PointerPhaseUp, Position: Offset{X: 160, Y: 140}})

	if started || ended {
		t.Errorf("vertical motion should reject the drag (started=%v ended=%v)", started, ended)
	}
}

func TestHorizontalDrag_BelowSlopIsNotADrag(t *testing.T) {
	clk := newFakeNow()
	r := NewHorizontalDragRecognizer(clk.now)
	var ended bool
	r.OnEnd = func(DragEndDetails) { ended = true }

	r.AddPointer(PointerEvent{PointerID: 3, Phase: PointerPhaseDown})
	clk.advance(16 * time.Millisecond)
	r.HandleEvent(PointerEvent{PointerID: 3, Phase: PointerPhaseMove, Position: Offset{X: 4}})
	r.HandleEvent(PointerEvent{PointerID: 3, Phase: PointerPhaseUp, Position: Offset{X: 4}})

	if ended {
		t.Error("a tap-sized motion should not end a drag")
	}
}

func TestHorizontalDrag_CancelFiresOnlyWhenAccepted(t *testing.T) {
	clk := newFakeNow()
	r := NewHorizontalDragRecognizer(clk.now)
	cancels := 0
	r.OnCancel = func() { cancels++ }

	r.AddPointer(PointerEvent{PointerID: 4, Phase: PointerPhaseDown})
	r.HandleEvent(PointerEvent{PointerID: 4, Phase: PointerPhaseCancel})
	if cancels != 0 {
		t.Errorf("cancels = %d before acceptance, want 0", cancels)
	}

	r.AddPointer(PointerEvent{PointerID: 5, Phase: PointerPhaseDown})
	clk.advance(16 * time.Millisecond)
	r.HandleEvent(PointerEvent{PointerID: 5, Phase: PointerPhaseMove, Position: Offset{X: 30}})
	r.HandleEvent(PointerEvent{PointerID: 5, Phase: PointerPhaseCancel})
	if cancels != 1 {
		t.Errorf("cancels = %d, want 1", cancels)
	}
}

func TestHorizontalDrag_IgnoresOtherPointers(t *testing.T) {
	clk := newFakeNow()
	r := NewHorizontalDragRecognizer(clk.now)
	var started bool
	r.OnStart = func(DragStartDetails) { started = true }

	r.AddPointer(PointerEvent{PointerID: 6, Phase: PointerPhaseDown})
	clk.advance(16 * time.Millisecond)
	r.HandleEvent(PointerEvent{PointerID: 7, Phase: PointerPhaseMove, Position: Offset{X: 90}})

	if started {
		t.Error("events for an untracked pointer should be ignored")
	}
}

func TestHorizontalDrag_ReleaseAfterHoldHasNoVelocity(t *testing.T) {
	clk := newFakeNow()
	r := NewHorizontalDragRecognizer(clk.now)
	var end DragEndDetails
	ended := false
	r.OnEnd = func(d DragEndDetails) { end, ended = d, true }

	r.AddPointer(PointerEvent{PointerID: 8, Phase: PointerPhaseDown, Position: Offset{X: 150}})
	for i := 1; i <= 12; i++ {
		clk.advance(4 * time.Millisecond)
		r.HandleEvent(PointerEvent{PointerID: 8, Phase: PointerPhaseMove, Position: Offset{X: 150 - float64(i)*4}})
	}
	clk.advance(2 * time.Second)
	r.HandleEvent(PointerEvent{PointerID: 8, Phase: PointerPhaseUp, Position: Offset{X: 102}})

	if !ended {
		t.Fatal("expected drag to end")
	}
	if end.PrimaryVelocity != 0 {
		t.Errorf("PrimaryVelocity = %v after a 2s hold, want 0", end.PrimaryVelocity)
	}
	if end.Total.X != -48 {
		t.Errorf("Total.X = %v, want -48", end.Total.X)
	}
}

func TestHorizontalDrag_VelocityUsesRecentSamples(t *testing.T) {
	clk := newFakeNow()
	r := NewHorizontalDragRecognizer(clk.now)
	var end DragEndDetails
	r.OnEnd = func(d DragEndDetails) { end = d }

	r.AddPointer(PointerEvent{PointerID: 9, Phase: PointerPhaseDown, Position: Offset{X: 300}})
	// A slow start followed by a fast flick; only the flick is recent.
	x := 300.0
	for range 10 {
		clk.advance(20 * time.Millisecond)
		x -= 2
		r.HandleEvent(PointerEvent{PointerID: 9, Phase: PointerPhaseMove, Position: Offset{X: x}})
	}
	for range 10 {
		clk.advance(10 * time.Millisecond)
		x -= 10
		r.HandleEvent(PointerEvent{PointerID: 9, Phase: PointerPhaseMove, Position: Offset{X: x}})
	}
	r.HandleEvent(PointerEvent{PointerID: 9, Phase: PointerPhaseUp, Position: Offset{X: x}})

	if got := end.PrimaryVelocity; got > -999 || got < -1001 {
		t.Errorf("PrimaryVelocity = %v, want about -1000", got)
	}
}

func TestVelocityTracker_StopsAtGap(t *testing.T) {
	clk := newFakeNow()
	var v velocityTracker
	v.add(clk.t, 0)
	clk.advance(10 * time.Millisecond)
	v.add(clk.t, -50)
	clk.advance(60 * time.Millisecond)
	v.add(clk.t, -50)
	clk.advance(10 * time.Millisecond)
	v.add(clk.t, -40)

	// Only the last two samples are contiguous: 10px in 10ms.
	if got := v.velocity(clk.t); got < 999 || got > 1001 {
		t.Errorf("velocity = %v, want about 1000", got)
	}
	clk.advance(41 * time.Millisecond)
	if got := v.velocity(clk.t); got != 0 {
		t.Errorf("velocity = %v after a pause, want 0", got)
	}
}
