// Package ui hosts an overlay session in a shiny window.
package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/snipshot/internal/capture"
	"github.com/example/snipshot/internal/geom"
	"github.com/example/snipshot/internal/output"
	"github.com/example/snipshot/internal/overlay"
	"github.com/example/snipshot/internal/render"
	"github.com/example/snipshot/internal/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	caretBlink   = 500 * time.Millisecond
)

// backgroundEvent carries the capture result onto the UI goroutine.
type backgroundEvent struct {
	img *image.RGBA
	err error
}

// exportEvent carries a save or copy result onto the UI goroutine.
type exportEvent struct {
	action overlay.Action
	result overlay.Result
}

type tickEvent struct{}

// sender is the part of screen.Window the handlers post events through.
type sender interface {
	Send(event interface{})
}

// Host owns the window for one session.
type Host struct {
	session *overlay.Session
	source  capture.Source
	sink    overlay.Sink
	theme   *theme.Theme
	style   *render.Style
	title   string
	now     func() time.Time

	bars    *toolbars
	w       sender
	ctx     context.Context
	hover   Button
	pressed Button
	caret   bool
	pending bool
	redraw  bool
	err     error
}

// Option configures a Host.
type Option func(*Host)

// WithTheme sets the chrome colours.
func WithTheme(t *theme.Theme) Option { return func(h *Host) { h.theme = t } }

// WithStyle overrides the renderer style derived from the theme.
func WithStyle(st render.Style) Option { return func(h *Host) { h.style = &st } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(h *Host) { h.title = title } }

// New creates a Host that fills s from src and hands exports to sink.
func New(s *overlay.Session, src capture.Source, sink overlay.Sink, opts ...Option) *Host {
	h := &Host{
		session: s,
		source:  src,
		sink:    sink,
		title:   "snipshot",
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.theme == nil {
		h.theme = theme.Default()
	}
	if h.style == nil {
		st := h.theme.Style(0)
		h.style = &st
	}
	h.bars = newToolbars(s, h.theme, h.export)
	return h
}

// Run opens the window and blocks until the session ends.
func (h *Host) Run(ctx context.Context) (overlay.Outcome, error) {
	driver.Main(func(s screen.Screen) { h.main(ctx, s) })
	if h.err != nil {
		return overlay.OutcomeFailed, h.err
	}
	if !h.session.Ended() {
		h.session.Cancel()
	}
	return h.session.Outcome(), h.session.Err()
}

func (h *Host) main(parent context.Context, s screen.Screen) {
	scr := h.session.Screen()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: scr.W, Height: scr.H, Title: h.title})
	if err != nil {
		h.err = fmt.Errorf("new window: %w", err)
		return
	}
	defer w.Release()
	buf, err := s.NewBuffer(image.Pt(scr.W, scr.H))
	if err != nil {
		h.err = fmt.Errorf("new buffer: %w", err)
		return
	}
	defer buf.Release()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	h.ctx = ctx
	h.w = w

	go func() {
		img, err := h.source.Acquire(ctx)
		w.Send(backgroundEvent{img: img, err: err})
	}()
	go func() {
		t := time.NewTicker(tickInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				w.Send(tickEvent{})
			}
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				h.session.Cancel()
				return
			}
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
				h.session.Blur(false)
			}
		case size.Event:
			h.redraw = true
		case paint.Event:
			h.paint(w, buf)
		case mouse.Event:
			h.mouse(e)
		case key.Event:
			h.key(e)
		case backgroundEvent:
			h.background(e)
		case exportEvent:
			h.session.CompleteExport(e.action, e.result)
		case tickEvent:
			h.tick()
		case error:
			log.Printf("ui: %v", e)
		}
		if h.session.Ended() {
			return
		}
		if h.session.TakeDirty() || h.redraw {
			h.redraw = false
			w.Send(paint.Event{})
		}
	}
}

func (h *Host) paint(w screen.Window, buf screen.Buffer) {
	dst := buf.RGBA()
	h.pending = render.Frame(dst, h.session.Scene(h.caret), *h.style)
	if !h.pending {
		h.bars.update()
		h.bars.draw(dst, h.hover, h.pressed)
	}
	w.Upload(image.Point{}, buf, buf.Bounds())
	w.Publish()
}

func (h *Host) background(e backgroundEvent) {
	if e.err != nil {
		log.Printf("capture: %v", e.err)
		h.session.BackgroundFailed(e.err)
		return
	}
	h.session.SetBackground(e.img)
}

func (h *Host) tick() {
	if h.session.Editing() != nil {
		caret := h.now().UnixMilli()/caretBlink.Milliseconds()%2 == 0
		if caret != h.caret {
			h.caret = caret
			h.redraw = true
		}
	}
	if h.pending || h.session.ToastPending() {
		h.redraw = true
	}
}

func (h *Host) mouse(e mouse.Event) {
	p := image.Pt(int(e.X), int(e.Y))
	gp := geom.Pt(p.X, p.Y)
	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return
		}
		if h.bars.contains(p) {
			h.session.Blur(true)
			if b := h.bars.hit(p); b != nil {
				h.pressed = b
				b.Activate()
			}
			h.redraw = true
			return
		}
		h.session.PointerDown(gp)
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft {
			return
		}
		if h.pressed != nil {
			h.pressed = nil
			h.redraw = true
			return
		}
		h.session.PointerUp(gp)
	case mouse.DirNone:
		if hover := h.bars.hit(p); hover != h.hover {
			h.hover = hover
			h.redraw = true
		}
		if h.pressed == nil {
			h.session.PointerMove(gp)
		}
	}
}

func (h *Host) key(e key.Event) {
	a := translateKey(e, h.session.Editing() != nil)
	switch a.kind {
	case keyEscape:
		h.session.Escape()
	case keyEnter:
		h.session.Enter(a.shift)
	case keyBackspace:
		h.session.Backspace()
	case keyRune:
		h.session.TypeRune(a.r)
	case keyTool:
		if h.session.ToolbarsVisible() {
			h.session.SelectTool(a.tool)
		}
	case keySave:
		h.export(overlay.ActionSave)
	case keyCopy:
		h.export(overlay.ActionCopy)
	}
}

// export composites the selection and hands it to the sink off the UI
// goroutine.
func (h *Host) export(a overlay.Action) {
	img, err := h.session.StartExport(a)
	if err != nil {
		if !errors.Is(err, overlay.ErrExportBusy) && !errors.Is(err, overlay.ErrEnded) && !errors.Is(err, overlay.ErrGestureActive) {
			h.session.Notify(fmt.Sprintf("%s: %v", a, err))
		}
		return
	}
	ctx, w, sink := h.ctx, h.w, h.sink
	if ctx == nil {
		ctx = context.Background()
	}
	name := output.SuggestedName(h.now())
	go func() {
		var r overlay.Result
		if a == overlay.ActionCopy {
			r = sink.Copy(ctx, img)
		} else {
			r = sink.Save(ctx, img, name)
		}
		w.Send(exportEvent{action: a, result: r})
	}()
}
