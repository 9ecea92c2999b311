package carousel

import "testing"

func TestLoopTarget(t *testing.T) {
	tests := []struct {
		name     string
		position int
		length   int
		loop     bool
		want     int
		wantJump bool
	}{
		{"trailing copy", 4, 5, true, 1, true},
		{"leading copy", 0, 5, true, 3, true},
		{"real item", 2, 5, true, 2, false},
		{"no loop", 4, 5, false, 4, false},
		{"single padded", 2, 3, true, 1, true},
		{"too short", 0, 1, true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, jump := loopTarget(tt.position, tt.length, tt.loop)
			if got != tt.want || jump != tt.wantJump {
				t.Errorf("loopTarget(%d, %d) = (%d, %v), want (%d, %v)",
					tt.position, tt.length, got, jump, tt.want, tt.wantJump)
			}
		})
	}
}

func TestMachine_StepClamps(t *testing.T) {
	m := machine{length: 3}
	if got := m.stepBy(-1); got != 0 {
		t.Errorf("stepBy(-1) at 0 = %d, want 0", got)
	}
	m.stepBy(1)
	m.stepBy(1)
	if got := m.stepBy(1); got != 2 {
		t.Errorf("stepBy(1) at end = %d, want 2", got)
	}
}

func TestMachine_EmptyStaysAtZero(t *testing.T) {
	m := machine{}
	m.resize(0, 5)
	if m.position != 0 {
		t.Errorf("position = %d, want 0", m.position)
	}
	if got := m.stepBy(1); got != 0 {
		t.Errorf("stepBy(1) = %d, want 0", got)
	}
}

func TestMachine_JumpLifecycle(t *testing.T) {
	m := machine{length: 5, position: 4}
	m.beginSettle()
	if m.phase != PhaseSettling {
		t.Fatalf("phase = %s, want settling", m.phase)
	}
	m.settled()
	m.jumpTo(1)
	m.beginJump()
	if m.phase != PhaseJumping || !m.flags.Jumping {
		t.Fatalf("phase = %s jumping = %v, want jumping", m.phase, m.flags.Jumping)
	}
	m.endJump()
	if m.phase != PhaseIdle || m.flags.Jumping {
		t.Errorf("phase = %s jumping = %v, want idle", m.phase, m.flags.Jumping)
	}
}

func TestMachine_DragInterruptsJump(t *testing.T) {
	m := machine{length: 5}
	m.beginJump()
	m.beginDrag()
	m.endJump()
	if m.phase != PhaseDragging {
		t.Errorf("phase = %s, want dragging", m.phase)
	}
}

func TestPhaseString(t *testing.T) {
	if got := Phase(9).String(); got != "Phase(9)" {
		t.Errorf("String() = %q", got)
	}
	if got := PhaseJumping.String(); got != "jumping" {
		t.Errorf("String() = %q", got)
	}
}
