package animation_test

import (
	"fmt"

	"github.com/go-drift/carousel/pkg/animation"
)

// This example shows how to step a spring until it settles.
func ExampleSpringSimulation() {
	sim := animation.NewSpringSimulation(animation.DefaultSpring(), 0, 0, -284)
	for !sim.Step(1.0 / 60) {
	}
	fmt.Printf("Final position: %.0f\n", sim.Position())

	// Output:
	// Final position: -284
}

// This example maps a track offset to a rotation, the way carousel items
// turn away from the viewer as they leave the center.
func ExampleInterpolate() {
	stride := 284.0
	input := []float64{-stride, 0, stride}
	rotation := []float64{90, 0, -90}

	fmt.Printf("%.0f\n", animation.Interpolate(-142, input, rotation, false))
	fmt.Printf("%.0f\n", animation.Interpolate(568, input, rotation, false))
	fmt.Printf("%.0f\n", animation.Interpolate(568, input, rotation, true))

	// Output:
	// 45
	// -180
	// -90
}
