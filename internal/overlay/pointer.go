package overlay

import "github.com/example/snipshot/internal/geom"

// PointerDown handles a primary button press at screen point p. Toolbar
// clicks must be handled by the host before calling it.
func (s *Session) PointerDown(p geom.Point) {
	if s.Ended() {
		return
	}
	if s.mode == ModeTextEditing {
		if s.text != nil && s.sel != nil && geom.PointInRect(p, s.text.Rect.Translate(s.sel.Origin())) {
			return
		}
		s.FinishText()
		return
	}
	if s.sel != nil {
		if h := geom.HandleAt(p, *s.sel, s.handleSize); h != geom.HandleNone {
			s.handle = h
			s.setMode(ModeResizing)
			return
		}
		if geom.PointInRect(p, *s.sel) {
			if s.tools.Active != ToolNone {
				s.beginDraft(p)
				return
			}
			s.dragOffset = p.Sub(s.sel.Origin())
			s.setMode(ModeDragging)
			return
		}
	}
	s.reset()
	s.start = p
	s.setMode(ModeSelecting)
}

// PointerMove handles pointer motion. It is a no-op unless a press is in
// progress.
func (s *Session) PointerMove(p geom.Point) {
	if s.Ended() {
		return
	}
	switch s.mode {
	case ModeSelecting:
		r := geom.Normalize(geom.Span(s.start, p), s.screen)
		s.sel = &r
	case ModeDragging:
		r := geom.Drag(*s.sel, p, s.dragOffset, s.screen)
		s.sel = &r
	case ModeResizing:
		r := geom.Resize(*s.sel, s.handle, p, s.screen, s.minSel)
		s.sel = &r
	case ModeDrawing:
		s.draft.extend(s.relative(p), s.selBounds())
	default:
		return
	}
	s.dirty = true
}

// PointerUp handles the primary button release.
func (s *Session) PointerUp(p geom.Point) {
	if s.Ended() {
		return
	}
	switch s.mode {
	case ModeSelecting:
		r := geom.Normalize(geom.Span(s.start, p), s.screen)
		if r.W < s.minSel || r.H < s.minSel {
			s.sel = nil
			s.toolbars = false
		} else {
			s.sel = &r
			s.toolbars = true
		}
		s.setMode(ModeIdle)
	case ModeDragging, ModeResizing:
		s.PointerMove(p)
		s.handle = geom.HandleNone
		s.setMode(ModeIdle)
	case ModeDrawing:
		s.draft.extend(s.relative(p), s.selBounds())
		s.commitDraft()
	}
	s.dirty = true
}

// Escape cancels a pending text edit, or the whole session when there is
// none.
func (s *Session) Escape() {
	if s.Ended() {
		return
	}
	if s.mode == ModeTextEditing {
		s.CancelText()
		return
	}
	s.Cancel()
}

func (s *Session) relative(p geom.Point) geom.Point {
	if s.sel == nil {
		return p
	}
	return p.Sub(s.sel.Origin())
}

func (s *Session) selBounds() geom.Size {
	if s.sel == nil {
		return s.screen
	}
	return s.sel.Size()
}
