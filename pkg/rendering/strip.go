package rendering

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/go-drift/carousel/pkg/errors"
)

// Strip lays frames out left to right with gap pixels between them on a
// background of bg. Frames may differ in size; the strip is as tall as the
// tallest.
func Strip(frames []*image.RGBA, gap int, bg Color) *image.RGBA {
	width, height := 0, 0
	for i, f := range frames {
		if i > 0 {
			width += gap
		}
		width += f.Bounds().Dx()
		height = max(height, f.Bounds().Dy())
	}
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	x := 0
	for _, f := range frames {
		b := f.Bounds()
		draw.Draw(out, image.Rect(x, 0, x+b.Dx(), b.Dy()), f, b.Min, draw.Over)
		x += b.Dx() + gap
	}
	return out
}

// Resize scales img by factor with Catmull-Rom resampling.
func Resize(img image.Image, factor float64) *image.RGBA {
	b := img.Bounds()
	return ResizeTo(img, int(float64(b.Dx())*factor+0.5), int(float64(b.Dy())*factor+0.5))
}

// ResizeTo scales img to w by h pixels with Catmull-Rom resampling.
func ResizeTo(img image.Image, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, max(1, w), max(1, h)))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return &errors.CarouselError{Op: "rendering.EncodePNG", Kind: errors.KindRender, Err: err}
	}
	return nil
}
