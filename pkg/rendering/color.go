package rendering

// Color is a straight-alpha ARGB value (0xAARRGGBB). It implements
// color.Color, so it can be used directly as an image source.
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xff)
}

// channels splits c into its straight-alpha bytes.
func (c Color) channels() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBA returns alpha-premultiplied components in [0, 0xffff].
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.channels()
	premul := func(v uint8) uint32 { return uint32(v) * uint32(ca) / 0xff * 0x101 }
	return premul(cr), premul(cg), premul(cb), uint32(ca) * 0x101
}

// Shade scales the color channels by f in [0, 1], keeping alpha. Cards
// turned away from the viewer are shaded darker.
func (c Color) Shade(f float64) Color {
	f = max(0, min(1, f))
	scale := func(v uint8) uint8 { return uint8(float64(v)*f + 0.5) }
	r, g, b, a := c.channels()
	return RGBA(scale(r), scale(g), scale(b), a)
}

var (
	ColorTransparent = Color(0)
	ColorBlack       = RGB(0, 0, 0)
	ColorWhite       = RGB(0xff, 0xff, 0xff)
)

// Carousel palette.
var (
	ColorCard       = RGB(0x0d, 0x07, 0x16)
	ColorCardBorder = RGB(0x33, 0x33, 0x33)
	ColorBackground = RGB(0x06, 0x00, 0x10)
	ColorIndicator  = RGB(0x33, 0x33, 0x33)
	ColorActive     = ColorWhite
)
