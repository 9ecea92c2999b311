package carousel

import (
	"math"

	"github.com/go-drift/carousel/pkg/animation"
)

// ItemTransform is the visual state of one rendered item.
type ItemTransform struct {
	Index int
	// RotateY is the rotation around the vertical axis in degrees. It is not
	// clamped: items beyond a neighbour keep turning.
	RotateY float64
	// ZIndex is the stacking value in [0, 100]; the centered item is 100.
	ZIndex float64
}

// Stack returns ZIndex rounded to an integer stacking order.
func (t ItemTransform) Stack() int {
	return int(math.Round(t.ZIndex))
}

var (
	rotationOutput = []float64{90, 0, -90}
	stackingOutput = []float64{0, 100, 0}
)

// Project computes the transform of the item at render index for the given
// live track offset and stride. The item is flat and frontmost when the
// offset equals -index*stride.
func Project(index int, offset, stride float64) ItemTransform {
	i := float64(index)
	input := []float64{-(i + 1) * stride, -i * stride, -(i - 1) * stride}
	return ItemTransform{
		Index:   index,
		RotateY: animation.Interpolate(offset, input, rotationOutput, false),
		ZIndex:  animation.Interpolate(offset, input, stackingOutput, true),
	}
}
