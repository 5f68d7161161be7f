package overlay

import (
	"math"

	"github.com/example/snipshot/internal/annotation"
	"github.com/example/snipshot/internal/geom"
)

const (
	minTextWidth  = 50
	minTextHeight = 25
	minFontSize   = 10
	maxFontSize   = 24
)

// TextEdit is the single pending text box. Rect is relative to the
// selection.
type TextEdit struct {
	Rect geom.Rect
	Font annotation.Font
	buf  []rune
}

// Text returns what has been typed so far.
func (t *TextEdit) Text() string { return string(t.buf) }

// FontSizeFor returns the face size used for a text box of height h.
func FontSizeFor(h int) float64 {
	size := int(math.Round(float64(h) * 0.6))
	return float64(geom.Clamp(size, minFontSize, maxFontSize))
}

func (s *Session) openText(preview geom.Rect) {
	if s.text != nil {
		s.FinishText()
	}
	r := geom.Rect{X: preview.X, Y: preview.Y, W: max(minTextWidth, preview.W), H: max(minTextHeight, preview.H)}
	s.text = &TextEdit{Rect: r, Font: annotation.Font{Size: FontSizeFor(r.H)}}
	s.setMode(ModeTextEditing)
}

// Editing returns the pending text box, or nil.
func (s *Session) Editing() *TextEdit { return s.text }

// TypeRune appends r to the pending text.
func (s *Session) TypeRune(r rune) {
	if s.text == nil || r < ' ' {
		return
	}
	s.text.buf = append(s.text.buf, r)
	s.dirty = true
}

// Backspace removes the last typed rune.
func (s *Session) Backspace() {
	if s.text == nil || len(s.text.buf) == 0 {
		return
	}
	s.text.buf = s.text.buf[:len(s.text.buf)-1]
	s.dirty = true
}

// Enter finishes the pending text unless shift is held. The box is a
// single line so shift+Enter does nothing.
func (s *Session) Enter(shift bool) {
	if s.text == nil || shift {
		return
	}
	s.FinishText()
}

// Blur finishes the pending text unless focus moved to a toolbar.
func (s *Session) Blur(toToolbar bool) {
	if s.text == nil || toToolbar {
		return
	}
	s.FinishText()
}

// FinishText commits the pending text if anything but space was typed, and
// closes the box either way.
func (s *Session) FinishText() {
	t := s.text
	if t == nil {
		return
	}
	s.text = nil
	s.setMode(ModeIdle)
	s.annotations.Add(annotation.NewText(s.tools.Color, t.Font, t.Rect, t.Text()))
	s.dirty = true
}

// CancelText discards the pending text.
func (s *Session) CancelText() {
	if s.text == nil {
		return
	}
	s.text = nil
	s.setMode(ModeIdle)
	s.dirty = true
}
