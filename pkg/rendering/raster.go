package rendering

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

type point struct{ X, Y float64 }

// fillSpan paints pixels [x0, x1) of row y with c, blending over the image.
func fillSpan(img *image.RGBA, x0, x1, y int, c Color) {
	if x1 <= x0 {
		return
	}
	r := image.Rect(x0, y, x1, y+1).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// fillConvex fills a convex polygon, sampling at pixel centers.
func fillConvex(img *image.RGBA, pts []point, c Color) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	b := img.Bounds()
	y0 := max(int(math.Floor(minY)), b.Min.Y)
	y1 := min(int(math.Ceil(maxY)), b.Max.Y)
	for y := y0; y < y1; y++ {
		yc := float64(y) + 0.5
		left, right := math.Inf(1), math.Inf(-1)
		for i, a := range pts {
			e := pts[(i+1)%len(pts)]
			if (a.Y <= yc) == (e.Y <= yc) {
				continue
			}
			x := a.X + (yc-a.Y)*(e.X-a.X)/(e.Y-a.Y)
			left = math.Min(left, x)
			right = math.Max(right, x)
		}
		if left > right {
			continue
		}
		fillSpan(img, int(math.Ceil(left-0.5)), int(math.Floor(right-0.5))+1, y, c)
	}
}

// fillEllipse fills the axis-aligned ellipse centered at (cx, cy).
func fillEllipse(img *image.RGBA, cx, cy, rx, ry float64, c Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	b := img.Bounds()
	y0 := max(int(math.Floor(cy-ry)), b.Min.Y)
	y1 := min(int(math.Ceil(cy+ry)), b.Max.Y)
	for y := y0; y < y1; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		fillSpan(img, int(math.Ceil(cx-half-0.5)), int(math.Floor(cx+half-0.5))+1, y, c)
	}
}

// insetQuad shrinks a quad toward its center by d pixels on every side.
func insetQuad(q [4]point, d float64) [4]point {
	var cx, cy float64
	for _, p := range q {
		cx += p.X / 4
		cy += p.Y / 4
	}
	var out [4]point
	for i, p := range q {
		dx, dy := p.X-cx, p.Y-cy
		sx, sy := 1.0, 1.0
		if ax := math.Abs(dx); ax > d {
			sx = (ax - d) / ax
		}
		if ay := math.Abs(dy); ay > d {
			sy = (ay - d) / ay
		}
		out[i] = point{cx + dx*sx, cy + dy*sy}
	}
	return out
}
