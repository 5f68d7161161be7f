package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

type fpt struct{ X, Y float64 }

func fp(x, y int) fpt { return fpt{float64(x), float64(y)} }

// pen accumulates filled polygons for a single colour and composites them
// in one pass. Every polygon is added with the same winding so overlapping
// pieces merge; holes are added with the opposite winding.
type pen struct {
	z      vector.Rasterizer
	bounds image.Rectangle
}

// newPen prepares a rasterizer covering bounds, in destination coordinates.
// Every point later added must lie inside bounds.
func newPen(bounds image.Rectangle) *pen {
	p := &pen{bounds: bounds}
	p.z.Reset(bounds.Dx(), bounds.Dy())
	return p
}

func area(pts []fpt) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

func (p *pen) path(pts []fpt, hole bool) {
	if len(pts) < 3 {
		return
	}
	if (area(pts) < 0) != hole {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	ox, oy := float64(p.bounds.Min.X), float64(p.bounds.Min.Y)
	p.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, q := range pts[1:] {
		p.z.LineTo(float32(q.X-ox), float32(q.Y-oy))
	}
	p.z.ClosePath()
}

func (p *pen) polygon(pts ...fpt) { p.path(pts, false) }

func (p *pen) disc(c fpt, r float64) {
	p.path(ellipsePoints(c, r, r), false)
}

// segment adds a quad of the given width from a to b.
func (p *pen) segment(a, b fpt, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	p.polygon(
		fpt{a.X + nx, a.Y + ny},
		fpt{b.X + nx, b.Y + ny},
		fpt{b.X - nx, b.Y - ny},
		fpt{a.X - nx, a.Y - ny},
	)
}

// polyline strokes pts with round caps and joins.
func (p *pen) polyline(pts []fpt, width float64) {
	for i := 1; i < len(pts); i++ {
		p.segment(pts[i-1], pts[i], width)
	}
	for _, q := range pts {
		p.disc(q, width/2)
	}
}

// ring strokes an ellipse centred on c.
func (p *pen) ring(c fpt, rx, ry, width float64) {
	h := width / 2
	p.path(ellipsePoints(c, rx+h, ry+h), false)
	if rx > h && ry > h {
		p.path(ellipsePoints(c, rx-h, ry-h), true)
	}
}

// frame strokes the outline of r centred on its edges.
func (p *pen) frame(r image.Rectangle, width float64) {
	h := width / 2
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)
	p.polygon(fpt{x0 - h, y0 - h}, fpt{x1 + h, y0 - h}, fpt{x1 + h, y1 + h}, fpt{x0 - h, y1 + h})
	if x1-x0 > width && y1-y0 > width {
		p.path([]fpt{{x0 + h, y0 + h}, {x1 - h, y0 + h}, {x1 - h, y1 - h}, {x0 + h, y1 - h}}, true)
	}
}

// paint composites the accumulated coverage onto dst in colour c, limited
// to clip.
func (p *pen) paint(dst draw.Image, clip image.Rectangle, c color.Color) {
	r := p.bounds.Intersect(clip).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	mask := image.NewAlpha(image.Rect(0, 0, p.bounds.Dx(), p.bounds.Dy()))
	p.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, mask, r.Min.Sub(p.bounds.Min), draw.Over)
}

func ellipsePoints(c fpt, rx, ry float64) []fpt {
	n := int(math.Max(rx, ry) * 2)
	if n < 12 {
		n = 12
	}
	if n > 360 {
		n = 360
	}
	pts := make([]fpt, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = fpt{c.X + rx*math.Cos(a), c.Y + ry*math.Sin(a)}
	}
	return pts
}

// padded returns the integer box around pts grown by pad on every side.
func padded(pad float64, pts ...fpt) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, q := range pts[1:] {
		minX = math.Min(minX, q.X)
		minY = math.Min(minY, q.Y)
		maxX = math.Max(maxX, q.X)
		maxY = math.Max(maxY, q.Y)
	}
	return image.Rect(
		int(math.Floor(minX-pad)), int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad))+1, int(math.Ceil(maxY+pad))+1,
	)
}
