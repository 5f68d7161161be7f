package overlay

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/example/snipshot/internal/render"
)

var (
	// ErrNoSelection is returned when exporting without a selection.
	ErrNoSelection = errors.New("no selection")
	// ErrNoBackground is returned when exporting before the capture arrived.
	ErrNoBackground = errors.New("screenshot not loaded yet")
	// ErrExportBusy is returned while a previous export is outstanding.
	ErrExportBusy = errors.New("export already in progress")
	// ErrGestureActive is returned while a press is still being dragged.
	ErrGestureActive = errors.New("pointer gesture in progress")
	// ErrEnded is returned once the session is over.
	ErrEnded = errors.New("session ended")
)

// Action is an export destination.
type Action int

const (
	ActionSave Action = iota
	ActionCopy
)

func (a Action) String() string {
	if a == ActionCopy {
		return "copy"
	}
	return "save"
}

// Status is the kind of result a collaborator reports.
type Status int

const (
	Succeeded Status = iota
	Cancelled
	Failed
)

// Result is what a save or copy hand-off produced.
type Result struct {
	Status Status
	// Path is where a save landed.
	Path string
	Err  error
}

// Sink receives finished images. Both calls may block on user interaction
// and run off the UI goroutine.
type Sink interface {
	Save(ctx context.Context, img image.Image, suggestedName string) Result
	Copy(ctx context.Context, img image.Image) Result
}

// StartExport finishes any pending text and returns the selection
// composited with its annotations. Only a released selection can be
// exported, never one mid-gesture. Until CompleteExport is called further
// exports are refused.
func (s *Session) StartExport(a Action) (*image.RGBA, error) {
	if s.Ended() {
		return nil, ErrEnded
	}
	if s.exporting {
		return nil, ErrExportBusy
	}
	if s.mode != ModeIdle && s.mode != ModeTextEditing {
		return nil, ErrGestureActive
	}
	if !s.ToolbarsVisible() || s.sel.Empty() {
		return nil, ErrNoSelection
	}
	s.FinishText()
	if s.background == nil {
		return nil, ErrNoBackground
	}
	s.exporting = true
	return render.Composite(s.background, *s.sel, s.annotations.Items()), nil
}

// Exporting reports whether an export is outstanding.
func (s *Session) Exporting() bool { return s.exporting }

// CompleteExport records the outcome of the hand-off started by
// StartExport. Success ends the session; a failure is shown and the session
// stays open so the user can try another action.
func (s *Session) CompleteExport(a Action, r Result) {
	s.exporting = false
	if s.Ended() {
		return
	}
	switch r.Status {
	case Succeeded:
		if a == ActionCopy {
			s.end(OutcomeCopied, nil)
		} else {
			s.end(OutcomeSaved, nil)
		}
	case Cancelled:
		s.dirty = true
	case Failed:
		err := r.Err
		if err == nil {
			err = errors.New("unknown error")
		}
		s.Notify(fmt.Sprintf("%s failed: %v", a, err))
	}
}
