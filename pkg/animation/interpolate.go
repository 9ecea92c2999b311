package animation

// Interpolate maps x through the piecewise-linear function defined by the
// breakpoints input (ascending) and their values output.
//
// Outside the input range the result is clamped to the end values when clamp
// is true, and extrapolated along the first or last segment otherwise.
func Interpolate(x float64, input, output []float64, clamp bool) float64 {
	n := min(len(input), len(output))
	switch n {
	case 0:
		return 0
	case 1:
		return output[0]
	}

	if x <= input[0] {
		if clamp {
			return output[0]
		}
		return lerpSegment(x, input[0], input[1], output[0], output[1])
	}
	if x >= input[n-1] {
		if clamp {
			return output[n-1]
		}
		return lerpSegment(x, input[n-2], input[n-1], output[n-2], output[n-1])
	}

	for i := 1; i < n; i++ {
		if x <= input[i] {
			return lerpSegment(x, input[i-1], input[i], output[i-1], output[i])
		}
	}
	return output[n-1]
}

func lerpSegment(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y1
	}
	t := (x - x0) / (x1 - x0)
	return y0 + (y1-y0)*t
}
