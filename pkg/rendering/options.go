package rendering

import "github.com/go-drift/carousel/pkg/errors"

// DefaultPerspective is the viewer distance used for card foreshortening.
const DefaultPerspective = 1000.0

// DefaultScale is the supersampling factor.
const DefaultScale = 2

// Options configures RenderFrame.
type Options struct {
	// Scale renders at Scale times the size and downsamples for antialiasing.
	// 1 disables supersampling.
	Scale int
	// Perspective is the distance from viewer to track, in pixels.
	Perspective float64
	// Indicators draws one dot per real item under the track.
	Indicators bool
	// Labels draws each item's label on the frontmost cards.
	Labels bool

	Background Color
	Card       Color
	Border     Color
	Text       Color
}

// DefaultOptions returns the standard dark theme with labels and indicators.
func DefaultOptions() Options {
	return Options{
		Scale:       DefaultScale,
		Perspective: DefaultPerspective,
		Indicators:  true,
		Labels:      true,
		Background:  ColorBackground,
		Card:        ColorCard,
		Border:      ColorCardBorder,
		Text:        ColorWhite,
	}
}

func (o Options) validate() error {
	const op = "rendering.RenderFrame"
	switch {
	case o.Scale < 1 || o.Scale > 8:
		return errors.Config(op, "scale", "must be in [1, 8], got %d", o.Scale)
	case o.Perspective <= 0:
		return errors.Config(op, "perspective", "must be positive, got %v", o.Perspective)
	}
	return nil
}
