package ui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/snipshot/internal/overlay"
	"github.com/example/snipshot/internal/theme"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive toolbar element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		img := image.NewRGBA(cb.Button.Rect())
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Over)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// labelButton is the shared look of text buttons.
type labelButton struct {
	label string
	rect  image.Rectangle
	theme *theme.Theme
}

func (lb *labelButton) Rect() image.Rectangle { return lb.rect }
func (lb *labelButton) SetRect(r image.Rectangle) { lb.rect = r }

func (lb *labelButton) Draw(dst *image.RGBA, state ButtonState) {
	bg := lb.theme.ButtonBackground
	switch state {
	case StateHover:
		bg = lb.theme.ButtonBackgroundHover
	case StatePressed:
		bg = lb.theme.ButtonBackgroundPress
	}
	draw.Draw(dst, lb.rect, image.NewUniform(bg), image.Point{}, draw.Src)
	strokeRect(dst, lb.rect, lb.theme.ButtonBorder, 1)
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(lb.theme.ButtonText), Face: face}
	w := d.MeasureString(lb.label).Ceil()
	m := face.Metrics()
	x := lb.rect.Min.X + (lb.rect.Dx()-w)/2
	y := lb.rect.Min.Y + (lb.rect.Dy()-m.Height.Ceil())/2 + m.Ascent.Ceil()
	d.Dot = fixed.P(x, y)
	d.DrawString(lb.label)
}

// ToolButton selects a drawing tool. It draws pressed while its tool is
// active.
type ToolButton struct {
	labelButton
	tool overlay.Tool
	// onSelect is called when the button is activated.
	onSelect func(overlay.Tool)
}

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect(tb.tool)
	}
}

// ActionButton runs a toolbar action such as save or cancel.
type ActionButton struct {
	labelButton
	action func()
}

func (ab *ActionButton) Activate() {
	if ab.action != nil {
		ab.action()
	}
}

// Swatch picks a pen colour.
type Swatch struct {
	color    color.RGBA
	name     string
	rect     image.Rectangle
	theme    *theme.Theme
	onSelect func(color.RGBA)
}

func (s *Swatch) Rect() image.Rectangle { return s.rect }
func (s *Swatch) SetRect(r image.Rectangle) { s.rect = r }

func (s *Swatch) Activate() {
	if s.onSelect != nil {
		s.onSelect(s.color)
	}
}

// Draw frames the active swatch with a border that contrasts with it.
func (s *Swatch) Draw(dst *image.RGBA, state ButtonState) {
	draw.Draw(dst, s.rect, image.NewUniform(s.color), image.Point{}, draw.Src)
	switch state {
	case StatePressed:
		strokeRect(dst, s.rect, overlay.IndicatorBorder(s.color), 2)
	case StateHover:
		strokeRect(dst, s.rect, s.theme.ButtonBackgroundHover, 1)
	default:
		strokeRect(dst, s.rect, s.theme.ButtonBorder, 1)
	}
}

func strokeRect(dst *image.RGBA, r image.Rectangle, c color.Color, thick int) {
	u := image.NewUniform(c)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+thick, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-thick, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
