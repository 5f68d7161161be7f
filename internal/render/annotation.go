package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/example/snipshot/internal/annotation"
	"github.com/example/snipshot/internal/geom"
)

// arrowHeadAngle is the half-angle of the arrow head.
const arrowHeadAngle = math.Pi / 7

// Annotations paints items in order onto dst. Coordinates in the items are
// relative to origin and nothing is drawn outside clip.
func Annotations(dst *image.RGBA, clip image.Rectangle, origin image.Point, items []annotation.Annotation) {
	for _, a := range items {
		Annotation(dst, clip, origin, a)
	}
}

// Annotation paints a single mark. See Annotations.
func Annotation(dst *image.RGBA, clip image.Rectangle, origin image.Point, a annotation.Annotation) {
	clip = clip.Intersect(dst.Bounds())
	if clip.Empty() || a == nil {
		return
	}
	at := func(p geom.Point) fpt { return fp(p.X+origin.X, p.Y+origin.Y) }
	switch v := a.(type) {
	case annotation.Freehand:
		if len(v.Points) < 2 {
			return
		}
		pts := make([]fpt, len(v.Points))
		for i, q := range v.Points {
			pts[i] = at(q)
		}
		w := float64(v.Width)
		p := newPen(padded(w/2+1, pts...))
		p.polyline(pts, w)
		p.paint(dst, clip, v.Color)
	case annotation.Rectangle:
		r := v.Rect.Image().Add(origin)
		w := float64(v.Width)
		p := newPen(r.Inset(-(v.Width/2 + 2)))
		p.frame(r, w)
		p.paint(dst, clip, v.Color)
	case annotation.Circle:
		if v.Rect.W <= 0 || v.Rect.H <= 0 {
			return
		}
		c := fpt{float64(v.Rect.X+origin.X) + float64(v.Rect.W)/2, float64(v.Rect.Y+origin.Y) + float64(v.Rect.H)/2}
		rx, ry := float64(v.Rect.W)/2, float64(v.Rect.H)/2
		w := float64(v.Width)
		p := newPen(v.Rect.Image().Add(origin).Inset(-(v.Width/2 + 2)))
		p.ring(c, rx, ry, w)
		p.paint(dst, clip, v.Color)
	case annotation.Arrow:
		start, end := at(v.Start), at(v.End)
		w := float64(v.Width)
		head := v.HeadLength()
		angle := math.Atan2(end.Y-start.Y, end.X-start.X)
		left := fpt{end.X - head*math.Cos(angle-arrowHeadAngle), end.Y - head*math.Sin(angle-arrowHeadAngle)}
		right := fpt{end.X - head*math.Cos(angle+arrowHeadAngle), end.Y - head*math.Sin(angle+arrowHeadAngle)}
		p := newPen(padded(w/2+1, start, end, left, right))
		p.polyline([]fpt{start, end}, w)
		p.polygon(end, left, right)
		p.paint(dst, clip, v.Color)
	case annotation.Highlighter:
		r := v.Rect.Image().Add(origin).Intersect(clip)
		draw.Draw(dst, r, image.NewUniform(v.Color), image.Point{}, draw.Over)
	case annotation.Text:
		face, err := Face(v.Font.Size)
		if err != nil {
			return
		}
		sub := dst.SubImage(clip).(*image.RGBA)
		x := v.Rect.X + origin.X + annotation.TextInset
		y := v.Rect.Y + origin.Y + annotation.TextInset
		DrawText(sub, face, x, y, v.Text, v.Color)
	}
}

// Composite crops sel out of bg at 1:1 and paints items over it. The result
// has bounds (0,0)-(sel.W,sel.H).
func Composite(bg image.Image, sel geom.Rect, items []annotation.Annotation) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, sel.W, sel.H))
	if bg != nil {
		draw.Draw(out, out.Bounds(), bg, bg.Bounds().Min.Add(image.Pt(sel.X, sel.Y)), draw.Src)
	}
	Annotations(out, out.Bounds(), image.Point{}, items)
	return out
}
