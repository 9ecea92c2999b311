package animation

import (
	"math"
	"testing"
	"time"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// pump advances the clock frame by frame and steps the registry.
func pump(clk *stepClock, reg *TickerRegistry, frames int) {
	for range frames {
		clk.now = clk.now.Add(16 * time.Millisecond)
		reg.Step()
	}
}

func TestSpringSimulation_Converges(t *testing.T) {
	for _, integrator := range []Integrator{IntegratorEuler, IntegratorHarmonic} {
		t.Run(string(integrator), func(t *testing.T) {
			sim := NewSimulation(integrator, DefaultSpring(), 0, 0, -284)
			steps := 0
			for !sim.Step(1.0/60) && steps < 600 {
				steps++
			}
			if !sim.IsDone() {
				t.Fatalf("spring did not settle after %d steps, position %v", steps, sim.Position())
			}
			if sim.Position() != -284 {
				t.Errorf("Position() = %v, want -284", sim.Position())
			}
			if sim.Velocity() != 0 {
				t.Errorf("Velocity() = %v, want 0", sim.Velocity())
			}
			// Well-damped default spring settles in well under two seconds.
			if steps > 120 {
				t.Errorf("took %d steps to settle, want <= 120", steps)
			}
		})
	}
}

func TestSpringSimulation_AtRestIsDoneImmediately(t *testing.T) {
	sim := NewSpringSimulation(DefaultSpring(), 10.2, 0, 10)
	if !sim.IsDone() {
		t.Fatal("expected a spring within tolerance to start done")
	}
	if sim.Position() != 10 {
		t.Errorf("Position() = %v, want 10", sim.Position())
	}
}

func TestSpringSimulation_VelocityCarriesPastStart(t *testing.T) {
	sim := NewSpringSimulation(DefaultSpring(), 0, -2000, 0)
	sim.Step(0.016)
	if sim.Position() >= 0 {
		t.Errorf("Position() = %v, want negative after a negative fling", sim.Position())
	}
}

func TestSpringSimulation_LargeStepStaysStable(t *testing.T) {
	sim := NewSpringSimulation(SpringDescription{Mass: 1, Stiffness: 2000, Damping: 20}, 0, 0, 100)
	sim.Step(0.25)
	if math.IsNaN(sim.Position()) || math.Abs(sim.Position()) > 1000 {
		t.Errorf("Position() = %v after a long step, want bounded", sim.Position())
	}
}

func TestSpringDescription_DampingRatio(t *testing.T) {
	got := DefaultSpring().DampingRatio()
	if math.Abs(got-0.866) > 0.001 {
		t.Errorf("DampingRatio() = %v, want ~0.866", got)
	}
}

func TestIntegratorValid(t *testing.T) {
	tests := []struct {
		in   Integrator
		want bool
	}{
		{"", true},
		{IntegratorEuler, true},
		{IntegratorHarmonic, true},
		{"verlet", false},
	}
	for _, tt := range tests {
		if got := tt.in.Valid(); got != tt.want {
			t.Errorf("Integrator(%q).Valid() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInterpolate(t *testing.T) {
	in := []float64{-100, 0, 100}
	out := []float64{90, 0, -90}
	tests := []struct {
		x     float64
		clamp bool
		want  float64
	}{
		{-100, false, 90},
		{-50, false, 45},
		{0, false, 0},
		{50, false, -45},
		{200, false, -180},
		{200, true, -90},
		{-300, false, 270},
		{-300, true, 90},
	}
	for _, tt := range tests {
		if got := Interpolate(tt.x, in, out, tt.clamp); got != tt.want {
			t.Errorf("Interpolate(%v, clamp=%v) = %v, want %v", tt.x, tt.clamp, got, tt.want)
		}
	}
}

func TestInterpolate_Degenerate(t *testing.T) {
	if got := Interpolate(5, nil, nil, true); got != 0 {
		t.Errorf("empty Interpolate = %v, want 0", got)
	}
	if got := Interpolate(5, []float64{1}, []float64{7}, false); got != 7 {
		t.Errorf("single-point Interpolate = %v, want 7", got)
	}
}

func TestTickerRegistry_StepOrderAndStop(t *testing.T) {
	clk := newStepClock()
	reg := NewTickerRegistry(clk)

	var calls []string
	a := reg.CreateTicker(func(time.Duration) { calls = append(calls, "a") })
	b := reg.CreateTicker(func(time.Duration) { calls = append(calls, "b") })
	a.Start()
	b.Start()

	pump(clk, reg, 1)
	a.Stop()
	pump(clk, reg, 1)

	want := []string{"a", "b", "b"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}

	reg.StopAll()
	if reg.HasActive() || b.IsActive() {
		t.Error("StopAll should deactivate every ticker")
	}
}

func TestSpringController_Edges(t *testing.T) {
	clk := newStepClock()
	reg := NewTickerRegistry(clk)
	c := NewSpringController(reg, SpringDescription{})

	var edges []AnimationStatus
	c.AddStatusListener(func(s AnimationStatus) { edges = append(edges, s) })

	c.AnimateTo(-300, 0)
	if !c.IsAnimating() {
		t.Fatal("expected controller to be animating")
	}
	pump(clk, reg, 200)

	if c.Value() != -300 {
		t.Errorf("Value() = %v, want -300", c.Value())
	}
	if len(edges) != 2 || edges[0] != AnimationRunning || edges[1] != AnimationCompleted {
		t.Errorf("edges = %v, want [running completed]", edges)
	}
	if reg.HasActive() {
		t.Error("ticker should stop after completion")
	}
}

func TestSpringController_PreemptSkipsCompletion(t *testing.T) {
	clk := newStepClock()
	reg := NewTickerRegistry(clk)
	c := NewSpringController(reg, DefaultSpring())

	completed := 0
	started := 0
	c.AddStatusListener(func(s AnimationStatus) {
		switch s {
		case AnimationRunning:
			started++
		case AnimationCompleted:
			completed++
		}
	})

	c.AnimateTo(-300, 0)
	pump(clk, reg, 3)
	c.AnimateTo(-600, 0)
	pump(clk, reg, 300)

	if started != 2 {
		t.Errorf("started = %d, want 2", started)
	}
	if completed != 1 {
		t.Errorf("completed = %d, want 1", completed)
	}
	if c.Value() != -600 {
		t.Errorf("Value() = %v, want -600", c.Value())
	}
}

func TestSpringController_JumpToIsSynchronous(t *testing.T) {
	reg := NewTickerRegistry(newStepClock())
	c := NewSpringController(reg, DefaultSpring())

	var edges []AnimationStatus
	c.AddStatusListener(func(s AnimationStatus) { edges = append(edges, s) })
	c.JumpTo(-900)

	if c.Value() != -900 {
		t.Errorf("Value() = %v, want -900", c.Value())
	}
	if len(edges) != 2 || edges[1] != AnimationCompleted {
		t.Errorf("edges = %v, want [running completed]", edges)
	}
	if reg.HasActive() {
		t.Error("JumpTo must not start a ticker")
	}
}

func TestSpringController_DisposeFreezesValue(t *testing.T) {
	clk := newStepClock()
	reg := NewTickerRegistry(clk)
	c := NewSpringController(reg, DefaultSpring())

	c.AnimateTo(-300, 0)
	pump(clk, reg, 2)
	frozen := c.Value()
	c.Dispose()
	pump(clk, reg, 50)
	c.AnimateTo(0, 0)

	if c.Value() != frozen {
		t.Errorf("Value() = %v after Dispose, want %v", c.Value(), frozen)
	}
}
