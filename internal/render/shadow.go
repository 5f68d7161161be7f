package render

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
)

// ShadowOptions configures the soft shadow cast by a floating panel.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions suits the toolbars.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{Radius: 6, Offset: image.Pt(0, 3), Opacity: 0.35}
}

type shadowKey struct {
	size   image.Point
	radius int
}

var shadowMasks sync.Map // map[shadowKey]*image.Alpha

// Shadow darkens dst around r as if a panel covering r floated above it.
// The panel itself is expected to be drawn afterwards.
func Shadow(dst *image.RGBA, r image.Rectangle, opts ShadowOptions) {
	if r.Empty() || opts.Opacity <= 0 {
		return
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := max(opts.Radius, 0)
	mask := shadowMask(r.Size(), radius)
	at := r.Inset(-radius).Add(opts.Offset)
	shade := image.NewUniform(color.RGBA{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(dst, at, shade, image.Point{}, mask, image.Point{}, draw.Over)
}

func shadowMask(size image.Point, radius int) *image.Alpha {
	key := shadowKey{size, radius}
	if m, ok := shadowMasks.Load(key); ok {
		return m.(*image.Alpha)
	}
	m := image.NewAlpha(image.Rect(0, 0, size.X+2*radius, size.Y+2*radius))
	draw.Draw(m, image.Rect(radius, radius, radius+size.X, radius+size.Y), image.Opaque, image.Point{}, draw.Src)
	m = blurAlpha(m, radius)
	shadowMasks.Store(key, m)
	return m
}

// blurAlpha runs a horizontal then a vertical box blur of the given radius.
func blurAlpha(src *image.Alpha, radius int) *image.Alpha {
	out := image.NewAlpha(src.Bounds())
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewAlpha(src.Bounds())
	prefix := make([]int, max(w, h)+1)

	box := func(n int, get func(int) uint8, set func(int, uint8)) {
		for i := 0; i < n; i++ {
			prefix[i+1] = prefix[i] + int(get(i))
		}
		for i := 0; i < n; i++ {
			lo := max(i-radius, 0)
			hi := min(i+radius, n-1)
			set(i, uint8((prefix[hi+1]-prefix[lo])/(hi-lo+1)))
		}
	}
	for y := 0; y < h; y++ {
		row := y * src.Stride
		box(w,
			func(x int) uint8 { return src.Pix[row+x] },
			func(x int, v uint8) { tmp.Pix[y*tmp.Stride+x] = v })
	}
	for x := 0; x < w; x++ {
		box(h,
			func(y int) uint8 { return tmp.Pix[y*tmp.Stride+x] },
			func(y int, v uint8) { out.Pix[y*out.Stride+x] = v })
	}
	return out
}
