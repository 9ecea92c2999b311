package rendering

import (
	"image"
	"math"
	"sort"

	"golang.org/x/image/draw"

	"github.com/go-drift/carousel/pkg/carousel"
)

const (
	indicatorBand   = 32.0
	indicatorRadius = 4.0
	indicatorGap    = 16.0
	borderWidth     = 1.0
	// minVisibleCos hides cards turned edge-on or away from the viewer.
	minVisibleCos = 1e-3
)

// FrameSize returns the output size in pixels for a carousel with cfg.
func FrameSize(cfg carousel.Config, opts Options) image.Point {
	w := int(math.Ceil(cfg.BaseWidth))
	h := w
	if opts.Indicators {
		h += int(indicatorBand)
	}
	return image.Pt(w, h)
}

// cardQuad is one card's projected outline.
type cardQuad struct {
	transform carousel.ItemTransform
	corners   [4]point
	centerX   float64
	centerY   float64
	halfW     float64
	halfH     float64
	shade     float64
}

// RenderFrame paints the carousel's current state.
func RenderFrame(c *carousel.Carousel, opts Options) (*image.RGBA, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	cfg := c.Config()
	size := FrameSize(cfg, opts)
	s := float64(opts.Scale)
	img := image.NewRGBA(image.Rect(0, 0, size.X*opts.Scale, size.Y*opts.Scale))

	view := float64(size.X) * s
	if cfg.Round {
		fillEllipse(img, view/2, view/2, view/2, view/2, opts.Background)
	} else {
		draw.Draw(img, image.Rect(0, 0, size.X*opts.Scale, size.X*opts.Scale), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	quads := projectCards(c, opts)
	sort.SliceStable(quads, func(i, j int) bool {
		return quads[i].transform.ZIndex < quads[j].transform.ZIndex
	})

	sequence := c.Sequence()
	face := faceForSize(defaultFontSize * s)
	for _, q := range quads {
		fill := opts.Card.Shade(q.shade)
		if cfg.Round {
			fillEllipse(img, q.centerX, q.centerY, q.halfW, q.halfH, opts.Border)
			fillEllipse(img, q.centerX, q.centerY, q.halfW-borderWidth*s, q.halfH-borderWidth*s, fill)
		} else {
			fillConvex(img, q.corners[:], opts.Border)
			inner := insetQuad(q.corners, borderWidth*s)
			fillConvex(img, inner[:], fill)
		}
		if opts.Labels && q.transform.ZIndex >= 50 {
			label := LabelOf(sequence[q.transform.Index])
			drawLabel(img, face, label, q.centerX, q.centerY, q.halfW*1.6, opts.Text)
		}
	}

	if cfg.Round {
		clipCircle(img, view/2, view/2, view/2)
	}
	if opts.Indicators {
		drawIndicators(img, c, opts, view)
	}

	if opts.Scale == 1 {
		return img, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out, nil
}

// projectCards computes the outline of every front-facing card in
// supersampled pixels.
func projectCards(c *carousel.Carousel, opts Options) []cardQuad {
	s := float64(opts.Scale)
	itemWidth := c.ItemWidth() * s
	stride := c.Stride() * s
	trackLeft := (carousel.ContainerPadding + c.Offset()) * s
	cardH := itemWidth
	originX := trackLeft + c.PerspectiveOriginX()*s
	originY := carousel.ContainerPadding*s + cardH/2
	p := opts.Perspective * s

	project := func(x, z float64) (float64, float64) {
		k := p / (p - z)
		return originX + (x-originX)*k, k
	}

	var quads []cardQuad
	for _, t := range c.Projections() {
		rad := t.RotateY * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		if cos < minVisibleCos {
			continue
		}
		cx := trackLeft + float64(t.Index)*stride + itemWidth/2
		half := itemWidth / 2
		// CSS rotateY: the left edge comes toward the viewer for positive angles.
		xl, kl := project(cx-half*cos, half*sin)
		xr, kr := project(cx+half*cos, -half*sin)
		hl, hr := cardH/2*kl, cardH/2*kr
		q := cardQuad{
			transform: t,
			corners: [4]point{
				{xl, originY - hl},
				{xr, originY - hr},
				{xr, originY + hr},
				{xl, originY + hl},
			},
			centerX: (xl + xr) / 2,
			centerY: originY,
			halfW:   (xr - xl) / 2,
			halfH:   (hl + hr) / 2,
			shade:   0.55 + 0.45*cos,
		}
		quads = append(quads, q)
	}
	return quads
}

// clipCircle clears every pixel outside the circle.
func clipCircle(img *image.RGBA, cx, cy, r float64) {
	b := img.Bounds()
	transparent := image.NewUniform(ColorTransparent)
	bottom := min(b.Max.Y, int(math.Ceil(cy+r)))
	for y := b.Min.Y; y < bottom; y++ {
		dy := float64(y) + 0.5 - cy
		half := 0.0
		if d := r*r - dy*dy; d > 0 {
			half = math.Sqrt(d)
		}
		left := int(math.Ceil(cx - half - 0.5))
		right := int(math.Floor(cx+half-0.5)) + 1
		draw.Draw(img, image.Rect(b.Min.X, y, left, y+1).Intersect(b), transparent, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(right, y, b.Max.X, y+1).Intersect(b), transparent, image.Point{}, draw.Src)
	}
}

// drawIndicators paints one dot per real item below the viewport, the
// current item highlighted.
func drawIndicators(img *image.RGBA, c *carousel.Carousel, opts Options, top float64) {
	n := len(c.Config().Items)
	if n == 0 {
		return
	}
	s := float64(opts.Scale)
	width := float64(img.Bounds().Dx())
	spacing := (2*indicatorRadius + indicatorGap) * s
	start := width/2 - spacing*float64(n-1)/2
	y := top + indicatorBand*s/2
	active := c.RealIndex()
	for i := range n {
		col := ColorIndicator
		if i == active {
			col = ColorActive
		}
		fillEllipse(img, start+spacing*float64(i), y, indicatorRadius*s, indicatorRadius*s, col)
	}
}
