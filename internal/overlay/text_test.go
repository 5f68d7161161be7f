package overlay

import (
	"testing"

	"github.com/example/snipshot/internal/annotation"
	"github.com/example/snipshot/internal/geom"
)

// openTextBox draws a text box from (110,110) to (160,140) inside a
// 300x200 selection at (100,100).
func openTextBox(t *testing.T) *Session {
	t.Helper()
	s := selected(t, geom.Rect{X: 100, Y: 100, W: 300, H: 200})
	s.SelectTool(ToolText)
	drag(s, geom.Pt(110, 110), geom.Pt(160, 140))
	if s.Mode() != ModeTextEditing || s.Editing() == nil {
		t.Fatalf("mode = %v, editing = %v", s.Mode(), s.Editing())
	}
	return s
}

func typeString(s *Session, str string) {
	for _, r := range str {
		s.TypeRune(r)
	}
}

func TestTextBlurCommits(t *testing.T) {
	s := openTextBox(t)
	typeString(s, "Hi")
	s.Blur(false)
	items := s.Annotations()
	if len(items) != 1 {
		t.Fatalf("got %d annotations", len(items))
	}
	txt := items[0].(annotation.Text)
	if txt.Text != "Hi" {
		t.Fatalf("text = %q", txt.Text)
	}
	if txt.Rect != (geom.Rect{X: 10, Y: 10, W: 50, H: 30}) {
		t.Fatalf("rect = %v", txt.Rect)
	}
	if txt.Font.Size != 18 {
		t.Fatalf("font = %v", txt.Font)
	}
	if s.Mode() != ModeIdle {
		t.Fatalf("mode = %v", s.Mode())
	}
}

func TestTextWhitespaceDiscarded(t *testing.T) {
	s := openTextBox(t)
	typeString(s, "   ")
	s.Blur(false)
	if n := len(s.Annotations()); n != 0 {
		t.Fatalf("stored %d annotations", n)
	}
	if s.Editing() != nil {
		t.Fatal("text box still open")
	}
}

func TestTextBlurToToolbarKeepsEditing(t *testing.T) {
	s := openTextBox(t)
	typeString(s, "Hi")
	s.Blur(true)
	if s.Editing() == nil || len(s.Annotations()) != 0 {
		t.Fatal("blur to toolbar finished the text")
	}
}

func TestTextEnter(t *testing.T) {
	s := openTextBox(t)
	typeString(s, "ab")
	s.Enter(true)
	if s.Editing() == nil {
		t.Fatal("shift+Enter finished the text")
	}
	s.Backspace()
	s.Enter(false)
	items := s.Annotations()
	if len(items) != 1 || items[0].(annotation.Text).Text != "a" {
		t.Fatalf("annotations = %v", items)
	}
}

func TestTextEscapeDiscardsOnly(t *testing.T) {
	s := openTextBox(t)
	typeString(s, "keep me?")
	s.Escape()
	if s.Ended() {
		t.Fatal("Escape while editing ended the session")
	}
	if s.Editing() != nil || len(s.Annotations()) != 0 {
		t.Fatal("cancelled text was committed")
	}
	if _, ok := s.Selection(); !ok {
		t.Fatal("selection lost")
	}
}

func TestTextFinishedBySwitchingTools(t *testing.T) {
	s := openTextBox(t)
	typeString(s, "note")
	s.SelectTool(ToolArrow)
	if len(s.Annotations()) != 1 {
		t.Fatal("switching tools did not commit the text")
	}
	if s.ToolState().Active != ToolArrow {
		t.Fatalf("tool = %v", s.ToolState().Active)
	}
}

func TestTextFinishedByClickOutside(t *testing.T) {
	s := openTextBox(t)
	typeString(s, "x")
	s.PointerDown(geom.Pt(300, 250))
	if s.Mode() != ModeIdle {
		t.Fatalf("mode = %v", s.Mode())
	}
	if len(s.Annotations()) != 1 {
		t.Fatal("click outside did not commit the text")
	}
	s.PointerUp(geom.Pt(300, 250))
	if _, ok := s.Selection(); !ok {
		t.Fatal("the finishing click also changed the selection")
	}
}

func TestTextClickInsideBoxKeepsEditing(t *testing.T) {
	s := openTextBox(t)
	s.PointerDown(geom.Pt(120, 120))
	if s.Editing() == nil {
		t.Fatal("click inside the box finished the text")
	}
}

func TestSmallTextDragIgnored(t *testing.T) {
	s := selected(t, geom.Rect{X: 100, Y: 100, W: 300, H: 200})
	s.SelectTool(ToolText)
	drag(s, geom.Pt(110, 110), geom.Pt(115, 140))
	if s.Editing() != nil || s.Mode() != ModeIdle {
		t.Fatalf("mode = %v", s.Mode())
	}
}

func TestTextBoxMinimumSize(t *testing.T) {
	s := selected(t, geom.Rect{X: 100, Y: 100, W: 300, H: 200})
	s.SelectTool(ToolText)
	drag(s, geom.Pt(110, 110), geom.Pt(120, 120))
	e := s.Editing()
	if e == nil {
		t.Fatal("no text box")
	}
	if e.Rect != (geom.Rect{X: 10, Y: 10, W: 50, H: 25}) {
		t.Fatalf("rect = %v", e.Rect)
	}
	if e.Font.Size != 15 {
		t.Fatalf("font = %v", e.Font.Size)
	}
}

func TestFontSizeFor(t *testing.T) {
	tests := []struct {
		h    int
		want float64
	}{
		{10, 10}, {25, 15}, {30, 18}, {40, 24}, {200, 24},
	}
	for _, tt := range tests {
		if got := FontSizeFor(tt.h); got != tt.want {
			t.Errorf("FontSizeFor(%d) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestTextUsesColorAtFinish(t *testing.T) {
	s := openTextBox(t)
	typeString(s, "c")
	blue := Palette[4].Color
	s.SetColor(blue)
	s.FinishText()
	if got := s.Annotations()[0].(annotation.Text).Color; got != blue {
		t.Fatalf("colour = %v", got)
	}
}
