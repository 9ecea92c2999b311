package carousel

import (
	"math"
	"testing"
)

const testStride = 284.0

func TestProject_Centered(t *testing.T) {
	got := Project(2, -2*testStride, testStride)
	if got.RotateY != 0 || got.ZIndex != 100 {
		t.Errorf("Project centered = %+v, want rotate 0 z 100", got)
	}
	if got.Stack() != 100 {
		t.Errorf("Stack() = %d, want 100", got.Stack())
	}
}

func TestProject_Neighbours(t *testing.T) {
	// Track centered on item 1.
	offset := -testStride
	left := Project(0, offset, testStride)
	right := Project(2, offset, testStride)
	if left.RotateY != 90 || left.ZIndex != 0 {
		t.Errorf("left = %+v, want rotate 90 z 0", left)
	}
	if right.RotateY != -90 || right.ZIndex != 0 {
		t.Errorf("right = %+v, want rotate -90 z 0", right)
	}
}

func TestProject_HalfwayInterpolates(t *testing.T) {
	// Halfway back toward item 0: item 1 turns away to the right.
	got := Project(1, -testStride/2, testStride)
	if math.Abs(got.RotateY+45) > 1e-9 || math.Abs(got.ZIndex-50) > 1e-9 {
		t.Errorf("halfway = %+v, want rotate -45 z 50", got)
	}
}

func TestProject_RotationExtrapolatesStackingClamps(t *testing.T) {
	got := Project(3, -testStride, testStride)
	if got.RotateY != -180 {
		t.Errorf("RotateY = %v, want -180", got.RotateY)
	}
	if got.ZIndex != 0 {
		t.Errorf("ZIndex = %v, want 0", got.ZIndex)
	}
}
