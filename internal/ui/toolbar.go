package ui

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/snipshot/internal/geom"
	"github.com/example/snipshot/internal/overlay"
	"github.com/example/snipshot/internal/render"
	"github.com/example/snipshot/internal/theme"
)

const (
	barPad        = 6
	barGap        = 4
	toolButtonW   = 72
	toolButtonH   = 24
	swatchSize    = 18
	swatchCols    = 4
	actionButtonW = 64
	actionButtonH = 26
)

var toolLabels = map[overlay.Tool]string{
	overlay.ToolFreehand:    "P:Pen",
	overlay.ToolRectangle:   "R:Rect",
	overlay.ToolCircle:      "O:Oval",
	overlay.ToolArrow:       "A:Arrow",
	overlay.ToolHighlighter: "H:Mark",
	overlay.ToolText:        "T:Text",
}

// toolbars are the palette beside the selection and the action bar below
// it.
type toolbars struct {
	session *overlay.Session
	theme   *theme.Theme
	shadow  render.ShadowOptions

	tools    []*CacheButton
	swatches []*CacheButton
	actions  []*CacheButton

	palette, actionBar image.Rectangle
	visible            bool
}

func newToolbars(s *overlay.Session, th *theme.Theme, export func(overlay.Action)) *toolbars {
	tb := &toolbars{session: s, theme: th, shadow: render.DefaultShadowOptions()}
	for _, t := range overlay.Tools {
		tb.tools = append(tb.tools, &CacheButton{Button: &ToolButton{
			labelButton: labelButton{label: toolLabels[t], theme: th},
			tool:        t,
			onSelect:    s.SelectTool,
		}})
	}
	for _, pc := range overlay.Palette {
		tb.swatches = append(tb.swatches, &CacheButton{Button: &Swatch{
			color:    pc.Color,
			name:     pc.Name,
			theme:    th,
			onSelect: s.SetColor,
		}})
	}
	actions := []struct {
		label string
		fn    func()
	}{
		{"Save", func() { export(overlay.ActionSave) }},
		{"Copy", func() { export(overlay.ActionCopy) }},
		{"Cancel", s.Cancel},
	}
	for _, a := range actions {
		tb.actions = append(tb.actions, &CacheButton{Button: &ActionButton{
			labelButton: labelButton{label: a.label, theme: th},
			action:      a.fn,
		}})
	}
	return tb
}

func paletteSize() geom.Size {
	n := len(overlay.Tools)
	rows := (len(overlay.Palette) + swatchCols - 1) / swatchCols
	return geom.Size{
		W: 2*barPad + toolButtonW,
		H: 2*barPad + n*toolButtonH + n*barGap + rows*swatchSize,
	}
}

func actionBarSize() geom.Size {
	return geom.Size{W: 2*barPad + 3*actionButtonW + 2*barGap, H: 2*barPad + actionButtonH}
}

// update places the toolbars for the current selection and hides them when
// there is none.
func (tb *toolbars) update() {
	l, ok := tb.session.Toolbars(paletteSize(), actionBarSize())
	tb.visible = ok
	if !ok {
		return
	}
	tb.palette = l.Palette.Image()
	tb.actionBar = l.Actions.Image()

	y := tb.palette.Min.Y + barPad
	x := tb.palette.Min.X + barPad
	for _, b := range tb.tools {
		b.SetRect(image.Rect(x, y, x+toolButtonW, y+toolButtonH))
		y += toolButtonH + barGap
	}
	for i, b := range tb.swatches {
		sx := x + (i%swatchCols)*swatchSize
		sy := y + (i/swatchCols)*swatchSize
		b.SetRect(image.Rect(sx, sy, sx+swatchSize, sy+swatchSize))
	}
	x = tb.actionBar.Min.X + barPad
	y = tb.actionBar.Min.Y + barPad
	for _, b := range tb.actions {
		b.SetRect(image.Rect(x, y, x+actionButtonW, y+actionButtonH))
		x += actionButtonW + barGap
	}
}

func (tb *toolbars) buttons() []*CacheButton {
	all := make([]*CacheButton, 0, len(tb.tools)+len(tb.swatches)+len(tb.actions))
	all = append(all, tb.tools...)
	all = append(all, tb.swatches...)
	return append(all, tb.actions...)
}

// contains reports whether p is over either panel.
func (tb *toolbars) contains(p image.Point) bool {
	return tb.visible && (p.In(tb.palette) || p.In(tb.actionBar))
}

// hit returns the button under p.
func (tb *toolbars) hit(p image.Point) Button {
	if !tb.contains(p) {
		return nil
	}
	for _, b := range tb.buttons() {
		if p.In(b.Rect()) {
			return b
		}
	}
	return nil
}

func (tb *toolbars) active(b *CacheButton) bool {
	ts := tb.session.ToolState()
	switch inner := b.Button.(type) {
	case *ToolButton:
		return inner.tool == ts.Active
	case *Swatch:
		return inner.color == ts.Color
	}
	return false
}

func (tb *toolbars) draw(dst *image.RGBA, hover, pressed Button) {
	if !tb.visible {
		return
	}
	for _, panel := range []image.Rectangle{tb.palette, tb.actionBar} {
		render.Shadow(dst, panel, tb.shadow)
		draw.Draw(dst, panel, image.NewUniform(tb.theme.ToolbarBackground), image.Point{}, draw.Over)
		strokeRect(dst, panel, color.NRGBA{0, 0, 0, 60}, 1)
	}
	for _, b := range tb.buttons() {
		state := StateDefault
		switch {
		case Button(b) == pressed || tb.active(b):
			state = StatePressed
		case Button(b) == hover:
			state = StateHover
		}
		b.Draw(dst, state)
	}
}
