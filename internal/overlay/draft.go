package overlay

import (
	"image/color"

	"github.com/example/snipshot/internal/annotation"
	"github.com/example/snipshot/internal/geom"
)

// MinTextPreview is the extent a text box drag must exceed on both axes.
const MinTextPreview = 5

// draft is the shape being drawn between press and release. All points are
// relative to the selection.
type draft struct {
	tool   Tool
	color  color.RGBA
	width  int
	start  geom.Point
	points []geom.Point
	end    geom.Point
	rect   geom.Rect
}

func (s *Session) beginDraft(p geom.Point) {
	rel := s.relative(p)
	s.draft = &draft{
		tool:   s.tools.Active,
		color:  s.tools.Color,
		width:  s.strokeWidth,
		start:  rel,
		points: []geom.Point{rel},
		end:    rel,
		rect:   geom.Rect{X: rel.X, Y: rel.Y},
	}
	s.setMode(ModeDrawing)
}

// extend feeds the next pointer sample. Box tools keep their rect inside
// bounds.
func (d *draft) extend(p geom.Point, bounds geom.Size) {
	switch d.tool {
	case ToolFreehand:
		if last := d.points[len(d.points)-1]; last != p {
			d.points = append(d.points, p)
		}
	case ToolArrow:
		d.end = p
	case ToolRectangle, ToolCircle, ToolHighlighter, ToolText:
		d.rect = geom.Normalize(geom.Span(d.start, p), bounds)
	}
}

// annotation builds the mark the draft currently describes. Text drafts have
// no mark; their preview rect is shown instead.
func (d *draft) annotation() annotation.Annotation {
	switch d.tool {
	case ToolFreehand:
		pts := make([]geom.Point, len(d.points))
		copy(pts, d.points)
		return annotation.Freehand{Color: d.color, Width: d.width, Points: pts}
	case ToolRectangle:
		return annotation.NewRectangle(d.color, d.width, d.rect)
	case ToolCircle:
		return annotation.NewCircle(d.color, d.width, d.rect)
	case ToolArrow:
		return annotation.NewArrow(d.color, d.width, d.start, d.end)
	case ToolHighlighter:
		return annotation.NewHighlighter(d.rect)
	}
	return nil
}

// commitDraft stores the draft if it passes its size check, or opens a text
// edit for the text tool. Anything too small is dropped.
func (s *Session) commitDraft() {
	d := s.draft
	s.draft = nil
	s.setMode(ModeIdle)
	if d == nil {
		return
	}
	if d.tool == ToolText {
		if d.rect.W > MinTextPreview && d.rect.H > MinTextPreview {
			s.openText(d.rect)
		}
		return
	}
	s.annotations.Add(d.annotation())
}
