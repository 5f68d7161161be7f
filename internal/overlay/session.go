// Package overlay is the interaction engine of the capture overlay. A
// Session owns the selection, the interaction mode, the annotations and the
// tool state, and turns pointer and key input into changes to them.
//
// A Session is not safe for concurrent use. The host feeds it events from a
// single goroutine and reads Scene to draw.
package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/example/snipshot/internal/annotation"
	"github.com/example/snipshot/internal/geom"
	"github.com/example/snipshot/internal/render"
)

// Mode is the current interaction. Exactly one is active.
type Mode int

const (
	ModeIdle Mode = iota
	ModeSelecting
	ModeDragging
	ModeResizing
	ModeDrawing
	ModeTextEditing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeSelecting:
		return "selecting"
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	case ModeDrawing:
		return "drawing"
	case ModeTextEditing:
		return "text-editing"
	}
	return "unknown"
}

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeSaved
	OutcomeCopied
	OutcomeCancelled
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeSaved:
		return "saved"
	case OutcomeCopied:
		return "copied"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

const (
	DefaultMinSelection = 20
	DefaultHandleSize   = 10
	DefaultStrokeWidth  = 2

	toastDuration = 4 * time.Second
)

// Session is the state of one capture overlay.
type Session struct {
	screen      geom.Size
	minSel      int
	handleSize  int
	strokeWidth int

	tools    ToolState
	mode     Mode
	sel      *geom.Rect
	toolbars bool

	start      geom.Point
	dragOffset geom.Point
	handle     geom.Handle

	annotations annotation.List
	draft       *draft
	text        *TextEdit

	background *image.RGBA
	exporting  bool

	toast      string
	toastUntil time.Time
	now        func() time.Time

	dirty   bool
	outcome Outcome
	err     error
	onEnd   func(Outcome, error)
}

// Option configures a Session.
type Option func(*Session)

// WithMinSelection sets the smallest selection extent kept on release.
func WithMinSelection(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.minSel = n
		}
	}
}

// WithHandleSize sets the resize handle size.
func WithHandleSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.handleSize = n
		}
	}
}

// WithStrokeWidth sets the pen width for stroked tools.
func WithStrokeWidth(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.strokeWidth = n
		}
	}
}

// WithColor sets the starting pen colour.
func WithColor(c color.RGBA) Option { return func(s *Session) { s.tools.Color = c } }

// WithEndHandler is called once when the session ends.
func WithEndHandler(fn func(Outcome, error)) Option { return func(s *Session) { s.onEnd = fn } }

// WithClock replaces time.Now for toast expiry.
func WithClock(now func() time.Time) Option { return func(s *Session) { s.now = now } }

// New returns an idle session for a screen of the given size.
func New(screen geom.Size, opts ...Option) *Session {
	s := &Session{
		screen:      screen,
		minSel:      DefaultMinSelection,
		handleSize:  DefaultHandleSize,
		strokeWidth: DefaultStrokeWidth,
		tools:       ToolState{Color: DefaultColor},
		now:         time.Now,
		dirty:       true,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Session) setMode(m Mode) {
	if s.mode != m {
		s.mode = m
		s.dirty = true
	}
}

// Mode returns the current interaction.
func (s *Session) Mode() Mode { return s.mode }

// Screen returns the screen size the session was created for.
func (s *Session) Screen() geom.Size { return s.screen }

// Selection returns the selection rect and whether one exists.
func (s *Session) Selection() (geom.Rect, bool) {
	if s.sel == nil {
		return geom.Rect{}, false
	}
	return *s.sel, true
}

// ToolbarsVisible reports whether the tool palette and action bar show.
func (s *Session) ToolbarsVisible() bool { return s.toolbars && s.sel != nil }

// Annotations returns the committed marks in paint order.
func (s *Session) Annotations() []annotation.Annotation { return s.annotations.Items() }

// TakeDirty reports whether anything visible changed since the last call.
func (s *Session) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// Ended reports whether the session is over.
func (s *Session) Ended() bool { return s.outcome != OutcomeRunning }

// Outcome returns how the session ended, or OutcomeRunning.
func (s *Session) Outcome() Outcome { return s.outcome }

// Err returns the failure that ended the session, if any.
func (s *Session) Err() error { return s.err }

// SetBackground installs the captured screen. An image of another size is
// resampled to the screen so selection coordinates address its pixels.
func (s *Session) SetBackground(img image.Image) {
	if s.Ended() || img == nil {
		return
	}
	b := img.Bounds()
	screen := image.Rect(0, 0, s.screen.W, s.screen.H)
	rgba, ok := img.(*image.RGBA)
	switch {
	case ok && b == screen:
	case b.Size() == screen.Size():
		rgba = image.NewRGBA(screen)
		draw.Draw(rgba, screen, img, b.Min, draw.Src)
	default:
		rgba = image.NewRGBA(screen)
		xdraw.ApproxBiLinear.Scale(rgba, screen, img, b, draw.Src, nil)
	}
	s.background = rgba
	s.dirty = true
}

// Background returns the captured screen, or nil while loading.
func (s *Session) Background() *image.RGBA { return s.background }

// BackgroundFailed ends the session because the screen could not be read.
func (s *Session) BackgroundFailed(err error) {
	s.end(OutcomeFailed, err)
}

// Cancel ends the session without output.
func (s *Session) Cancel() {
	s.end(OutcomeCancelled, nil)
}

// Notify shows msg over the overlay for a few seconds.
func (s *Session) Notify(msg string) {
	s.toast = msg
	s.toastUntil = s.now().Add(toastDuration)
	s.dirty = true
}

// reset discards the selection and everything attached to it.
func (s *Session) reset() {
	s.sel = nil
	s.annotations.Clear()
	s.tools.Active = ToolNone
	s.toolbars = false
	s.text = nil
	s.draft = nil
	s.handle = geom.HandleNone
	s.setMode(ModeIdle)
	s.dirty = true
}

func (s *Session) end(o Outcome, err error) {
	if s.Ended() {
		return
	}
	s.reset()
	s.background = nil
	s.outcome = o
	s.err = err
	if s.onEnd != nil {
		s.onEnd(o, err)
	}
}

// Scene snapshots what the overlay should show. caret toggles the text
// cursor so the host can blink it.
func (s *Session) Scene(caret bool) render.Scene {
	sc := render.Scene{Screen: s.screen, Annotations: s.annotations.Items()}
	if s.background != nil {
		sc.Background = s.background
	}
	if s.sel != nil {
		r := *s.sel
		sc.Selection = &r
	}
	if s.draft != nil {
		if s.draft.tool == ToolText {
			r := s.draft.rect
			sc.TextPreview = &r
		} else {
			sc.Draft = s.draft.annotation()
		}
	}
	if s.text != nil {
		sc.TextBox = &render.TextBox{
			Rect:  s.text.Rect,
			Text:  s.text.Text(),
			Font:  s.text.Font,
			Color: s.tools.Color,
			Caret: caret,
		}
	}
	if s.toast != "" {
		if s.now().Before(s.toastUntil) {
			sc.Toast = s.toast
		} else {
			s.toast = ""
		}
	}
	return sc
}

// ToastPending reports whether a toast is still on screen.
func (s *Session) ToastPending() bool { return s.toast != "" }
