package ui

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/snipshot/internal/geom"
	"github.com/example/snipshot/internal/overlay"
	"github.com/example/snipshot/internal/theme"
)

var scr = geom.Size{W: 800, H: 600}

func selectedSession(t *testing.T) *overlay.Session {
	t.Helper()
	s := overlay.New(scr)
	s.SetBackground(image.NewRGBA(image.Rect(0, 0, scr.W, scr.H)))
	s.PointerDown(geom.Pt(100, 100))
	s.PointerMove(geom.Pt(400, 300))
	s.PointerUp(geom.Pt(400, 300))
	if _, ok := s.Selection(); !ok {
		t.Fatal("no selection")
	}
	return s
}

type chanSender chan interface{}

func (c chanSender) Send(e interface{}) { c <- e }

type fakeSink struct {
	saved, copied int
	name          string
	result        overlay.Result
}

func (f *fakeSink) Save(_ context.Context, _ image.Image, name string) overlay.Result {
	f.saved++
	f.name = name
	return f.result
}

func (f *fakeSink) Copy(context.Context, image.Image) overlay.Result {
	f.copied++
	return f.result
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name    string
		ev      key.Event
		editing bool
		want    keyAction
	}{
		{"escape", key.Event{Code: key.CodeEscape, Direction: key.DirPress}, false, keyAction{kind: keyEscape}},
		{"enter", key.Event{Code: key.CodeReturnEnter, Direction: key.DirPress}, true, keyAction{kind: keyEnter}},
		{"shift enter", key.Event{Code: key.CodeReturnEnter, Modifiers: key.ModShift, Direction: key.DirPress}, true, keyAction{kind: keyEnter, shift: true}},
		{"backspace", key.Event{Code: key.CodeDeleteBackspace, Direction: key.DirPress}, true, keyAction{kind: keyBackspace}},
		{"tool", key.Event{Rune: 'R', Code: key.CodeR, Direction: key.DirPress}, false, keyAction{kind: keyTool, tool: overlay.ToolRectangle}},
		{"typed while editing", key.Event{Rune: 'r', Code: key.CodeR, Direction: key.DirPress}, true, keyAction{kind: keyRune, r: 'r'}},
		{"unbound rune", key.Event{Rune: 'z', Code: key.CodeZ, Direction: key.DirPress}, false, keyAction{}},
		{"save", key.Event{Rune: 's', Code: key.CodeS, Modifiers: key.ModControl, Direction: key.DirPress}, true, keyAction{kind: keySave}},
		{"copy", key.Event{Rune: 'c', Code: key.CodeC, Modifiers: key.ModMeta, Direction: key.DirPress}, false, keyAction{kind: keyCopy}},
		{"release ignored", key.Event{Code: key.CodeEscape, Direction: key.DirRelease}, false, keyAction{}},
		{"control rune", key.Event{Rune: '\t', Code: key.CodeTab, Direction: key.DirPress}, true, keyAction{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateKey(tt.ev, tt.editing); got != tt.want {
				t.Fatalf("translateKey = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToolbarLayoutAndHits(t *testing.T) {
	s := selectedSession(t)
	var exported []overlay.Action
	tb := newToolbars(s, theme.Default(), func(a overlay.Action) { exported = append(exported, a) })
	tb.update()
	if !tb.visible {
		t.Fatal("toolbars hidden with a selection")
	}
	if got, want := tb.palette.Size(), paletteSize(); got != image.Pt(want.W, want.H) {
		t.Fatalf("palette size = %v", got)
	}
	for _, b := range tb.buttons() {
		r := b.Rect()
		if !r.In(tb.palette) && !r.In(tb.actionBar) {
			t.Fatalf("button %v outside its panel", r)
		}
	}

	tb.hit(tb.tools[1].Rect().Min).Activate()
	if got := s.ToolState().Active; got != overlay.ToolRectangle {
		t.Fatalf("tool = %v", got)
	}
	tb.hit(tb.swatches[4].Rect().Min).Activate()
	if got := s.ToolState().Color; got != overlay.Palette[4].Color {
		t.Fatalf("color = %v", got)
	}
	tb.hit(tb.actions[1].Rect().Min).Activate()
	if len(exported) != 1 || exported[0] != overlay.ActionCopy {
		t.Fatalf("exported = %v", exported)
	}
	if b := tb.hit(image.Pt(0, 0)); b != nil {
		t.Fatal("hit outside the toolbars")
	}
	tb.hit(tb.actions[2].Rect().Min).Activate()
	if s.Outcome() != overlay.OutcomeCancelled {
		t.Fatalf("outcome = %v", s.Outcome())
	}
}

func TestToolbarsHiddenWithoutSelection(t *testing.T) {
	tb := newToolbars(overlay.New(scr), theme.Default(), func(overlay.Action) {})
	tb.update()
	if tb.visible || tb.contains(image.Pt(10, 10)) {
		t.Fatal("toolbars visible without a selection")
	}
}

func TestToolbarDrawsActiveTool(t *testing.T) {
	s := selectedSession(t)
	th := theme.Default()
	tb := newToolbars(s, th, func(overlay.Action) {})
	s.SelectTool(overlay.ToolArrow)
	tb.update()
	dst := image.NewRGBA(image.Rect(0, 0, scr.W, scr.H))
	tb.draw(dst, nil, nil)

	at := func(b *CacheButton) color.RGBA {
		r := b.Rect()
		return dst.RGBAAt(r.Min.X+2, r.Max.Y-3)
	}
	press := color.RGBAModel.Convert(th.ButtonBackgroundPress).(color.RGBA)
	idle := color.RGBAModel.Convert(th.ButtonBackground).(color.RGBA)
	if got := at(tb.tools[3]); got != press {
		t.Fatalf("active tool pixel = %v, want %v", got, press)
	}
	if got := at(tb.tools[0]); got != idle {
		t.Fatalf("idle tool pixel = %v, want %v", got, idle)
	}
}

func TestMouseOnToolbarDoesNotReachSession(t *testing.T) {
	s := selectedSession(t)
	h := New(s, nil, &fakeSink{})
	h.bars.update()
	p := h.bars.tools[0].Rect().Min
	h.mouse(mouse.Event{X: float32(p.X), Y: float32(p.Y), Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	h.mouse(mouse.Event{X: float32(p.X), Y: float32(p.Y), Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	sel, ok := s.Selection()
	if !ok || sel != (geom.Rect{X: 100, Y: 100, W: 300, H: 200}) {
		t.Fatalf("selection = %v, %v", sel, ok)
	}
	if s.ToolState().Active != overlay.ToolFreehand {
		t.Fatalf("tool = %v", s.ToolState().Active)
	}
	// Right clicks are ignored.
	h.mouse(mouse.Event{X: 5, Y: 5, Button: mouse.ButtonRight, Direction: mouse.DirPress})
	if s.Mode() != overlay.ModeIdle {
		t.Fatalf("mode = %v", s.Mode())
	}
}

func TestKeysDriveSession(t *testing.T) {
	s := selectedSession(t)
	h := New(s, nil, &fakeSink{})
	h.key(key.Event{Rune: 't', Code: key.CodeT, Direction: key.DirPress})
	if s.ToolState().Active != overlay.ToolText {
		t.Fatalf("tool = %v", s.ToolState().Active)
	}
	h.key(key.Event{Code: key.CodeEscape, Direction: key.DirPress})
	if s.Outcome() != overlay.OutcomeCancelled {
		t.Fatalf("outcome = %v", s.Outcome())
	}
}

func TestExportRunsOffLoop(t *testing.T) {
	s := selectedSession(t)
	sink := &fakeSink{result: overlay.Result{Status: overlay.Succeeded, Path: "/tmp/x.png"}}
	h := New(s, nil, sink)
	h.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	events := make(chanSender, 1)
	h.w = events

	h.key(key.Event{Rune: 's', Code: key.CodeS, Modifiers: key.ModControl, Direction: key.DirPress})
	if !s.Exporting() {
		t.Fatal("export not started")
	}
	// A second request while the first is outstanding is dropped.
	h.export(overlay.ActionCopy)

	select {
	case e := <-events:
		ev, ok := e.(exportEvent)
		if !ok {
			t.Fatalf("event = %T", e)
		}
		s.CompleteExport(ev.action, ev.result)
	case <-time.After(5 * time.Second):
		t.Fatal("no export result")
	}
	if sink.saved != 1 || sink.copied != 0 {
		t.Fatalf("saved=%d copied=%d", sink.saved, sink.copied)
	}
	if sink.name != "screenshot_20240102030405.png" {
		t.Fatalf("suggested name = %q", sink.name)
	}
	if s.Outcome() != overlay.OutcomeSaved {
		t.Fatalf("outcome = %v", s.Outcome())
	}
}

func TestExportMidDragIsSilent(t *testing.T) {
	s := overlay.New(scr)
	h := New(s, nil, &fakeSink{})
	s.PointerDown(geom.Pt(50, 50))
	s.PointerMove(geom.Pt(55, 55))
	h.key(key.Event{Rune: 's', Code: key.CodeS, Modifiers: key.ModControl, Direction: key.DirPress})
	if s.Exporting() || s.ToastPending() {
		t.Fatalf("exporting=%v toast=%v during a drag", s.Exporting(), s.ToastPending())
	}
}

func TestExportWithoutSelectionShowsToast(t *testing.T) {
	s := overlay.New(scr)
	h := New(s, nil, &fakeSink{})
	h.export(overlay.ActionSave)
	if !s.ToastPending() {
		t.Fatal("no toast for a refused export")
	}
}
