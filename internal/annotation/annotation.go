// Package annotation defines the marks a user can place inside a selection.
// Every variant stores its coordinates relative to the selection origin.
package annotation

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/example/snipshot/internal/geom"
)

// Kind tags an annotation variant.
type Kind int

const (
	KindFreehand Kind = iota
	KindRectangle
	KindCircle
	KindArrow
	KindHighlighter
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindFreehand:
		return "freehand"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindArrow:
		return "arrow"
	case KindHighlighter:
		return "highlighter"
	case KindText:
		return "text"
	}
	return "unknown"
}

const (
	// HighlighterWidth is the nominal pen width of the highlighter.
	HighlighterWidth = 15
	// MinArrowLength is the endpoint distance an arrow must exceed.
	MinArrowLength = 5
)

// HighlighterColor is yellow at 40% opacity.
var HighlighterColor = color.NRGBA{R: 255, G: 255, B: 0, A: 102}

// Annotation is implemented only by the variants in this package.
type Annotation interface {
	Kind() Kind
	// Valid reports whether the mark is big enough to keep.
	Valid() bool
	sealed()
}

// Freehand is a pen stroke.
type Freehand struct {
	Color  color.RGBA
	Width  int
	Points []geom.Point
}

// NewFreehand starts a stroke at p.
func NewFreehand(c color.RGBA, width int, p geom.Point) Freehand {
	return Freehand{Color: c, Width: width, Points: []geom.Point{p}}
}

func (Freehand) Kind() Kind { return KindFreehand }
func (f Freehand) Valid() bool { return len(f.Points) > 1 }
func (Freehand) sealed() {}

// Rectangle is a stroked box.
type Rectangle struct {
	Color color.RGBA
	Width int
	Rect  geom.Rect
}

func NewRectangle(c color.RGBA, width int, r geom.Rect) Rectangle {
	return Rectangle{Color: c, Width: width, Rect: r}
}

func (Rectangle) Kind() Kind { return KindRectangle }
func (r Rectangle) Valid() bool { return r.Rect.W > 1 && r.Rect.H > 1 }
func (Rectangle) sealed() {}

// Circle is an ellipse inscribed in Rect.
type Circle struct {
	Color color.RGBA
	Width int
	Rect  geom.Rect
}

func NewCircle(c color.RGBA, width int, r geom.Rect) Circle {
	return Circle{Color: c, Width: width, Rect: r}
}

func (Circle) Kind() Kind { return KindCircle }
func (c Circle) Valid() bool { return c.Rect.W > 1 && c.Rect.H > 1 }
func (Circle) sealed() {}

// Arrow points from Start to End.
type Arrow struct {
	Color      color.RGBA
	Width      int
	Start, End geom.Point
}

func NewArrow(c color.RGBA, width int, start, end geom.Point) Arrow {
	return Arrow{Color: c, Width: width, Start: start, End: end}
}

func (Arrow) Kind() Kind { return KindArrow }
func (a Arrow) Valid() bool { return a.Start.Dist(a.End) > MinArrowLength }
func (Arrow) sealed() {}

// HeadLength is the length of the arrow head sides.
func (a Arrow) HeadLength() float64 {
	l := float64(a.Width) * 3.5
	if l < 8 {
		l = 8
	}
	return l
}

// Highlighter is a translucent filled box.
type Highlighter struct {
	Color color.NRGBA
	Width int
	Rect  geom.Rect
}

// NewHighlighter always uses HighlighterColor and HighlighterWidth.
func NewHighlighter(r geom.Rect) Highlighter {
	return Highlighter{Color: HighlighterColor, Width: HighlighterWidth, Rect: r}
}

func (Highlighter) Kind() Kind { return KindHighlighter }
func (h Highlighter) Valid() bool { return h.Rect.W > 1 && h.Rect.H > 1 }
func (Highlighter) sealed() {}

// Font describes the face used for a text annotation.
type Font struct {
	// Size is the pixel height of the face.
	Size   float64
	Family string
}

func (f Font) String() string {
	family := f.Family
	if family == "" {
		family = "sans-serif"
	}
	return fmt.Sprintf("%gpx %s", f.Size, family)
}

// Text is a single line of text positioned by Rect.
type Text struct {
	Color color.RGBA
	Font  Font
	Rect  geom.Rect
	Text  string
}

// TextInset is the gap between the box corner and the first glyph.
const TextInset = 2

// NewText trims s. The result is invalid when nothing but space was typed.
func NewText(c color.RGBA, f Font, r geom.Rect, s string) Text {
	return Text{Color: c, Font: f, Rect: r, Text: strings.TrimSpace(s)}
}

func (Text) Kind() Kind { return KindText }
func (t Text) Valid() bool { return strings.TrimSpace(t.Text) != "" && !t.Rect.Empty() }
func (Text) sealed() {}
