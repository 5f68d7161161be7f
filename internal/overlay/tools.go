package overlay

import "image/color"

// Tool selects what a drag inside the selection draws.
type Tool int

const (
	ToolNone Tool = iota
	ToolFreehand
	ToolRectangle
	ToolCircle
	ToolArrow
	ToolHighlighter
	ToolText
)

// Tools lists the selectable tools in palette order.
var Tools = []Tool{ToolFreehand, ToolRectangle, ToolCircle, ToolArrow, ToolHighlighter, ToolText}

func (t Tool) String() string {
	switch t {
	case ToolNone:
		return "none"
	case ToolFreehand:
		return "freehand"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	case ToolArrow:
		return "arrow"
	case ToolHighlighter:
		return "highlighter"
	case ToolText:
		return "text"
	}
	return "unknown"
}

// ToolState is the active tool and colour for the session.
type ToolState struct {
	Active Tool
	Color  color.RGBA
}

// DefaultColor is the starting pen colour.
var DefaultColor = color.RGBA{255, 0, 0, 255}

// PaletteColor is a named swatch.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

// Palette is the swatch grid offered by the colour picker.
var Palette = []PaletteColor{
	{"Black", color.RGBA{0, 0, 0, 255}},
	{"White", color.RGBA{255, 255, 255, 255}},
	{"Red", color.RGBA{255, 0, 0, 255}},
	{"Lime", color.RGBA{0, 255, 0, 255}},
	{"Blue", color.RGBA{0, 0, 255, 255}},
	{"Yellow", color.RGBA{255, 255, 0, 255}},
	{"Cyan", color.RGBA{0, 255, 255, 255}},
	{"Magenta", color.RGBA{255, 0, 255, 255}},
	{"Maroon", color.RGBA{128, 0, 0, 255}},
	{"Green", color.RGBA{0, 128, 0, 255}},
	{"Navy", color.RGBA{0, 0, 128, 255}},
	{"Olive", color.RGBA{128, 128, 0, 255}},
	{"Teal", color.RGBA{0, 128, 128, 255}},
	{"Purple", color.RGBA{128, 0, 128, 255}},
	{"Silver", color.RGBA{192, 192, 192, 255}},
	{"Gray", color.RGBA{128, 128, 128, 255}},
}

// IndicatorBorder picks black or white to frame a swatch of colour c.
func IndicatorBorder(c color.RGBA) color.RGBA {
	brightness := (int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000
	if brightness > 128 {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}

// SelectTool activates t, or deactivates it when it is already active. A
// pending text edit is finished first.
func (s *Session) SelectTool(t Tool) {
	if s.Ended() {
		return
	}
	if s.mode == ModeTextEditing {
		s.FinishText()
	}
	if s.tools.Active == t {
		t = ToolNone
	}
	s.tools.Active = t
	s.dirty = true
}

// SetColor changes the pen colour for new marks.
func (s *Session) SetColor(c color.RGBA) {
	if s.Ended() {
		return
	}
	s.tools.Color = c
	s.dirty = true
}

// ToolState returns the active tool and colour.
func (s *Session) ToolState() ToolState { return s.tools }
