package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/snipshot/internal/annotation"
	"github.com/example/snipshot/internal/geom"
)

// Placeholder text shown until the capture arrives.
const loadingText = "Loading screenshot..."

// TextBox is a text edit in progress.
type TextBox struct {
	Rect  geom.Rect
	Text  string
	Font  annotation.Font
	Color color.RGBA
	Caret bool
}

// Scene is everything Frame needs to draw one overlay pass. Rects inside
// the selection are relative to its origin.
type Scene struct {
	Screen      geom.Size
	Background  image.Image
	Selection   *geom.Rect
	Annotations []annotation.Annotation
	Draft       annotation.Annotation
	TextPreview *geom.Rect
	TextBox     *TextBox
	Toast       string
}

// Frame draws sc onto dst. It reports true when the background is still
// missing so the caller should ask for another frame.
func Frame(dst *image.RGBA, sc Scene, st Style) (pending bool) {
	b := dst.Bounds()
	draw.Draw(dst, b, image.Transparent, image.Point{}, draw.Src)

	if sc.Background == nil {
		drawPlaceholder(dst, st)
		return true
	}
	drawBackground(dst, sc.Background)

	sel := geom.Rect{}
	if sc.Selection != nil {
		sel = *sc.Selection
	}
	dimOutside(dst, sel.Image(), st.Dim)

	if !sel.Empty() {
		clip := sel.Image()
		origin := clip.Min
		Annotations(dst, clip, origin, sc.Annotations)
		if sc.Draft != nil {
			Annotation(dst, clip, origin, sc.Draft)
		}
		if sc.TextPreview != nil {
			r := sc.TextPreview.Image().Add(origin)
			dashedRect(dst.SubImage(clip).(*image.RGBA), r, 1, 3, 3, st.TextPreview)
		}
		if sc.TextBox != nil {
			drawTextBox(dst, clip, origin, *sc.TextBox, st)
		}
		dashedRect(dst, clip, st.BorderWidth, st.DashOn, st.DashOff, st.Border)
		drawHandles(dst, sel, st)
		drawLabel(dst, sel, sc.Screen, st)
	}
	if sc.Toast != "" {
		drawToast(dst, sc.Toast, st)
	}
	return false
}

func drawBackground(dst *image.RGBA, bg image.Image) {
	b := dst.Bounds()
	if bg.Bounds().Size() == b.Size() {
		draw.Draw(dst, b, bg, bg.Bounds().Min, draw.Src)
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, b, bg, bg.Bounds(), draw.Src, nil)
}

func drawPlaceholder(dst *image.RGBA, st Style) {
	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(st.Placeholder), image.Point{}, draw.Src)
	face, err := Face(20)
	if err != nil {
		return
	}
	w, h := MeasureText(face, loadingText)
	DrawText(dst, face, b.Min.X+(b.Dx()-w)/2, b.Min.Y+(b.Dy()-h)/2, loadingText, st.PlaceholderText)
}

// dimOutside covers everything but hole with c.
func dimOutside(dst *image.RGBA, hole image.Rectangle, c color.Color) {
	b := dst.Bounds()
	src := image.NewUniform(c)
	hole = hole.Intersect(b)
	if hole.Empty() {
		draw.Draw(dst, b, src, image.Point{}, draw.Over)
		return
	}
	bands := []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, hole.Min.Y),
		image.Rect(b.Min.X, hole.Max.Y, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, hole.Min.Y, hole.Min.X, hole.Max.Y),
		image.Rect(hole.Max.X, hole.Min.Y, b.Max.X, hole.Max.Y),
	}
	for _, r := range bands {
		if !r.Empty() {
			draw.Draw(dst, r, src, image.Point{}, draw.Over)
		}
	}
}

// dashedRect strokes r with a dash pattern, the stroke centred on the edges.
func dashedRect(dst *image.RGBA, r image.Rectangle, width, on, off int, c color.Color) {
	if width <= 0 {
		width = 1
	}
	if on <= 0 {
		on = 1
	}
	src := image.NewUniform(c)
	lo := width / 2
	hi := width - lo
	step := on + off
	for x := r.Min.X; x < r.Max.X; x += step {
		x1 := min(x+on, r.Max.X)
		draw.Draw(dst, image.Rect(x, r.Min.Y-lo, x1, r.Min.Y+hi), src, image.Point{}, draw.Over)
		draw.Draw(dst, image.Rect(x, r.Max.Y-lo, x1, r.Max.Y+hi), src, image.Point{}, draw.Over)
	}
	for y := r.Min.Y; y < r.Max.Y; y += step {
		y1 := min(y+on, r.Max.Y)
		draw.Draw(dst, image.Rect(r.Min.X-lo, y, r.Min.X+hi, y1), src, image.Point{}, draw.Over)
		draw.Draw(dst, image.Rect(r.Max.X-lo, y, r.Max.X+hi, y1), src, image.Point{}, draw.Over)
	}
}

// outline draws a 1px border just inside r.
func outline(dst *image.RGBA, r image.Rectangle, c color.Color) {
	src := image.NewUniform(c)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), src, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), src, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y+1, r.Min.X+1, r.Max.Y-1), src, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y+1, r.Max.X, r.Max.Y-1), src, image.Point{}, draw.Over)
}

func drawHandles(dst *image.RGBA, sel geom.Rect, st Style) {
	fill := image.NewUniform(st.HandleFill)
	for _, hb := range geom.ResizeHandles(sel, st.HandleSize) {
		r := hb.Rect.Image()
		draw.Draw(dst, r, fill, image.Point{}, draw.Over)
		outline(dst, r, st.HandleStroke)
	}
}

// LabelRect returns where the "W x H" label box goes for sel. The box
// stays on screen even when sel fills it.
func LabelRect(sel geom.Rect, screen geom.Size, textWidth int) image.Rectangle {
	const pad = 3
	x := sel.X + sel.W/2 - textWidth/2
	y := sel.Y - LabelSize - 7
	if y < 10 {
		y = sel.Bottom() + 5
	}
	x = geom.Clamp(x, pad, screen.W-textWidth-pad)
	y = geom.Clamp(y, pad, screen.H-LabelSize-pad)
	return image.Rect(x-pad, y-pad, x+textWidth+pad, y+LabelSize+pad)
}

func drawLabel(dst *image.RGBA, sel geom.Rect, screen geom.Size, st Style) {
	face, err := BoldFace(LabelSize)
	if err != nil {
		return
	}
	text := fmt.Sprintf("%d x %d", sel.W, sel.H)
	w, _ := MeasureText(face, text)
	box := LabelRect(sel, screen, w)
	draw.Draw(dst, box, image.NewUniform(st.LabelBackground), image.Point{}, draw.Over)
	DrawText(dst, face, box.Min.X+3, box.Min.Y+3, text, st.LabelText)
}

func drawTextBox(dst *image.RGBA, clip image.Rectangle, origin image.Point, tb TextBox, st Style) {
	sub := dst.SubImage(clip).(*image.RGBA)
	r := tb.Rect.Image().Add(origin)
	draw.Draw(sub, r, image.NewUniform(st.TextBackground), image.Point{}, draw.Over)
	outline(sub, r, tb.Color)
	face, err := Face(tb.Font.Size)
	if err != nil {
		return
	}
	x := r.Min.X + annotation.TextInset
	y := r.Min.Y + annotation.TextInset
	DrawText(sub, face, x, y, tb.Text, tb.Color)
	if tb.Caret {
		w, h := MeasureText(face, tb.Text)
		draw.Draw(sub, image.Rect(x+w+1, y, x+w+2, y+h), image.NewUniform(tb.Color), image.Point{}, draw.Over)
	}
}

func drawToast(dst *image.RGBA, msg string, st Style) {
	face, err := Face(16)
	if err != nil {
		return
	}
	w, h := MeasureText(face, msg)
	b := dst.Bounds()
	box := image.Rect(0, 0, w+24, h+12).Add(image.Pt(b.Min.X+(b.Dx()-w-24)/2, b.Max.Y-h-48))
	draw.Draw(dst, box, image.NewUniform(st.ToastBackground), image.Point{}, draw.Over)
	DrawText(dst, face, box.Min.X+12, box.Min.Y+6, msg, st.ToastText)
}
