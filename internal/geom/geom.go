// Package geom holds the rectangle arithmetic shared by the overlay, the
// renderer and the toolbar layout.
package geom

import (
	"image"
	"math"
)

// Point is a pixel coordinate. Depending on context it is screen-absolute or
// relative to the selection origin.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
}

// Image converts p to an image.Point.
func (p Point) Image() image.Point { return image.Pt(p.X, p.Y) }

// Size is a width and height pair, usually the screen.
type Size struct {
	W, H int
}

// Rect is an origin plus extent. W and H may be negative while the user is
// still dragging; Normalize fixes that before a rect is stored.
type Rect struct {
	X, Y, W, H int
}

// Span returns the rect with corner a extended to b. The result may have a
// negative extent.
func Span(a, b Point) Rect {
	return Rect{X: a.X, Y: a.Y, W: b.X - a.X, H: b.Y - a.Y}
}

// Right is X+W.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is Y+H.
func (r Rect) Bottom() int { return r.Y + r.H }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{r.X, r.Y} }

// Size returns the extent of r.
func (r Rect) Size() Size { return Size{r.W, r.H} }

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Image converts a normalized rect to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Translate moves r by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// FromImage converts an image.Rectangle.
func FromImage(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Flip turns negative extents positive by moving the origin.
func Flip(r Rect) Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Normalize flips r and clips it to [0,bounds.W]x[0,bounds.H]. The result
// always has W >= 0 and H >= 0 and Normalize(Normalize(r)) == Normalize(r).
func Normalize(r Rect, bounds Size) Rect {
	r = Flip(r)
	x0 := Clamp(r.X, 0, bounds.W)
	y0 := Clamp(r.Y, 0, bounds.H)
	x1 := Clamp(r.X+r.W, 0, bounds.W)
	y1 := Clamp(r.Y+r.H, 0, bounds.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// PointInRect reports whether p lies in r, edges included.
func PointInRect(p Point, r Rect) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ClampPoint keeps p inside [0,bounds.W]x[0,bounds.H].
func ClampPoint(p Point, bounds Size) Point {
	return Point{Clamp(p.X, 0, bounds.W), Clamp(p.Y, 0, bounds.H)}
}

// Clamp limits v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
