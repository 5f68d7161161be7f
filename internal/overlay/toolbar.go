package overlay

import "github.com/example/snipshot/internal/geom"

// ToolbarMargin is the gap kept between toolbars, the selection and the
// screen edge.
const ToolbarMargin = 8

// ToolbarLayout is where the two floating toolbars go, in screen
// coordinates.
type ToolbarLayout struct {
	Palette geom.Rect
	Actions geom.Rect
}

// PlaceToolbars puts the tool palette beside sel and the action bar below
// it, flipping to the other side when there is no room and clamping both to
// the screen.
func PlaceToolbars(sel geom.Rect, screen, palette, actions geom.Size) ToolbarLayout {
	const m = ToolbarMargin

	px := sel.Right() + m
	if px+palette.W > screen.W-m {
		px = sel.X - palette.W - m
	}
	px = max(m, px)
	py := max(m, min(sel.Y, screen.H-palette.H-m))

	ax := sel.X + sel.W/2 - actions.W/2
	ay := sel.Bottom() + m
	if ay+actions.H > screen.H-m {
		ay = sel.Y - actions.H - m
	}
	ay = max(m, ay)
	ax = max(m, min(ax, screen.W-actions.W-m))

	return ToolbarLayout{
		Palette: geom.Rect{X: px, Y: py, W: palette.W, H: palette.H},
		Actions: geom.Rect{X: ax, Y: ay, W: actions.W, H: actions.H},
	}
}

// Toolbars returns the toolbar placement for the current selection. ok is
// false when the toolbars are hidden.
func (s *Session) Toolbars(palette, actions geom.Size) (layout ToolbarLayout, ok bool) {
	if !s.ToolbarsVisible() {
		return ToolbarLayout{}, false
	}
	return PlaceToolbars(*s.sel, s.screen, palette, actions), true
}
