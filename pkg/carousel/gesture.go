package carousel

// DragInterpreter converts a finished drag into a discrete step.
type DragInterpreter struct {
	// Buffer is the distance (px) beyond which the drag commits a step.
	Buffer float64
	// VelocityThreshold is the speed (px/s) beyond which the drag commits a step.
	VelocityThreshold float64
}

// Step returns +1, -1 or 0 for the drag's total offset and release velocity.
// Negative values move toward higher positions. Either distance or speed
// alone is enough to commit a step.
func (d DragInterpreter) Step(offset, velocity float64) int {
	return InterpretDrag(offset, velocity, d.Buffer, d.VelocityThreshold)
}

// InterpretDrag is DragInterpreter.Step with explicit thresholds.
func InterpretDrag(offset, velocity, buffer, threshold float64) int {
	switch {
	case offset < -buffer || velocity < -threshold:
		return 1
	case offset > buffer || velocity > threshold:
		return -1
	default:
		return 0
	}
}

// dragOffset applies the drag constraints [lo, hi] to an unconstrained
// track offset, scaling overshoot by elastic.
func dragOffset(x, lo, hi, elastic float64) float64 {
	switch {
	case x > hi:
		if elastic < 0 {
			return hi
		}
		return hi + (x-hi)*elastic
	case x < lo:
		if elastic < 0 {
			return lo
		}
		return lo + (x-lo)*elastic
	default:
		return x
	}
}
