package rendering

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/carousel/pkg/errors"
)

// defaultFontSize is the label size in logical pixels.
const defaultFontSize = 16

// Labeler is implemented by items that provide their own card label.
type Labeler interface {
	Label() string
}

// LabelOf returns the label for an item: Label() for a Labeler, else its
// default formatting.
func LabelOf(item any) string {
	switch v := item.(type) {
	case nil:
		return ""
	case Labeler:
		return v.Label()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

var (
	regularFont     *opentype.Font
	regularFontErr  error
	regularFontOnce sync.Once

	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

// faceForSize returns a Go Regular face at size pixels. If the embedded
// font cannot be parsed the error is reported once and the fixed basic
// face is used instead.
func faceForSize(size float64) font.Face {
	regularFontOnce.Do(func() {
		regularFont, regularFontErr = opentype.Parse(goregular.TTF)
		if regularFontErr != nil {
			errors.Report(&errors.CarouselError{Op: "rendering.font", Kind: errors.KindRender, Err: regularFontErr})
		}
	})
	if regularFontErr != nil {
		return basicfont.Face7x13
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(regularFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		errors.Report(&errors.CarouselError{Op: "rendering.font", Kind: errors.KindRender, Err: err})
		return basicfont.Face7x13
	}
	faces[size] = f
	return f
}

// fitText shortens s with an ellipsis until it is at most width wide.
func fitText(face font.Face, s string, width fixed.Int26_6) string {
	if font.MeasureString(face, s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if font.MeasureString(face, candidate) <= width {
			return candidate
		}
	}
	return ""
}

// drawLabel draws s centered on (cx, cy), shortened to fit width.
func drawLabel(img *image.RGBA, face font.Face, s string, cx, cy, width float64, c Color) {
	s = fitText(face, s, fixed.Int26_6(width*64))
	if s == "" {
		return
	}
	metrics := face.Metrics()
	textWidth := font.MeasureString(face, s)
	baseline := fixed.Int26_6(cy*64) + (metrics.Ascent-metrics.Descent)/2
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(cx*64) - textWidth/2,
			Y: baseline,
		},
	}
	d.DrawString(s)
}
