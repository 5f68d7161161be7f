package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/example/snipshot/internal/capture"
	"github.com/example/snipshot/internal/clipboard"
	"github.com/example/snipshot/internal/geom"
	"github.com/example/snipshot/internal/notify"
	"github.com/example/snipshot/internal/output"
	"github.com/example/snipshot/internal/overlay"
	"github.com/example/snipshot/internal/theme"
	"github.com/example/snipshot/internal/ui"
)

type captureCmd struct {
	*root
	fs      *flag.FlagSet
	program string
	file    string
	output  string
	color   string
	stroke  int
}

func (c *captureCmd) Program() string        { return c.program }
func (c *captureCmd) FlagSet() *flag.FlagSet { return c.fs }

func parseCaptureCmd(args []string, r *root) (*captureCmd, error) {
	fs := flag.NewFlagSet("capture", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c := &captureCmd{root: r, fs: fs, program: r.subcommand("capture")}
	fs.StringVar(&c.file, "file", "", "annotate this image instead of the screen")
	fs.StringVar(&c.output, "output", "", "save here without asking (.png or .jpg)")
	fs.StringVar(&c.color, "color", r.config.DefaultColor, "initial drawing colour (name or #rrggbb)")
	fs.IntVar(&c.stroke, "stroke", r.config.StrokeWidth, "stroke width in pixels")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &UsageError{of: c}
		}
		return nil, &UsageError{of: c, err: err}
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: c, err: fmt.Errorf("unexpected argument %q", fs.Arg(0))}
	}
	if c.stroke < 1 {
		return nil, &UsageError{of: c, err: fmt.Errorf("stroke must be at least 1, got %d", c.stroke)}
	}
	if _, err := theme.ParseColor(c.color); err != nil {
		return nil, &UsageError{of: c, err: err}
	}
	return c, nil
}

// runOverlay shows the overlay and blocks until it ends.
var runOverlay = func(ctx context.Context, s *overlay.Session, src capture.Source, sink overlay.Sink, opts ...ui.Option) (overlay.Outcome, error) {
	return ui.New(s, src, sink, opts...).Run(ctx)
}

// showError is the last-resort dialog for failures the overlay cannot show.
var showError = output.ShowError

func (c *captureCmd) source() capture.Source {
	if c.file != "" {
		return capture.File{Path: c.file}
	}
	return capture.Primary{}
}

func (c *captureCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src := c.source()
	bounds, err := src.Bounds()
	if err != nil {
		return c.fail(fmt.Errorf("failed to capture screen: %w", err))
	}
	nc, err := theme.ParseColor(c.color)
	if err != nil {
		return err
	}

	cfg := c.root.config
	session := overlay.New(geom.Size{W: bounds.Dx(), H: bounds.Dy()},
		overlay.WithMinSelection(cfg.MinSelection),
		overlay.WithHandleSize(cfg.HandleSize),
		overlay.WithStrokeWidth(c.stroke),
		overlay.WithColor(toRGBA(nc)),
	)

	sink := newExportSink(c.root, c.output)
	outcome, err := runOverlay(ctx, session, src, sink,
		ui.WithTheme(c.root.activeTheme),
		ui.WithStyle(c.root.activeTheme.Style(cfg.HandleSize)),
		ui.WithTitle(c.root.program),
	)
	sink.wait()
	log.Printf("session ended: %s", outcome)
	if outcome == overlay.OutcomeFailed || err != nil {
		if err == nil {
			err = errors.New("capture failed")
		}
		return c.fail(err)
	}
	if sink.lastPath != "" {
		fmt.Fprintln(c.root.stdout, sink.lastPath)
	}
	return nil
}

func (c *captureCmd) fail(err error) error {
	c.root.notifier.Error(err)
	showError(c.root.program, err.Error())
	return err
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// copier places an image on the clipboard.
type copier interface {
	Publish(ctx context.Context, img image.Image) error
}

// exportSink hands finished captures to the file system and clipboard and
// announces the results.
type exportSink struct {
	saver    *output.Saver
	clip     copier
	wait     func()
	notifier *notify.Notifier
	lastPath string
}

func newExportSink(r *root, path string) *exportSink {
	var picker output.Picker = output.DialogPicker{}
	if path != "" {
		picker = output.FixedPath(path)
	}
	pub := &clipboard.Publisher{Hold: r.config.ClipboardHold}
	return &exportSink{
		saver:    &output.Saver{Picker: picker, Dir: r.config.SaveDir},
		clip:     pub,
		wait:     pub.Wait,
		notifier: r.notifier,
	}
}

func (s *exportSink) Save(ctx context.Context, img image.Image, suggestedName string) overlay.Result {
	path, err := s.saver.Save(ctx, img, suggestedName)
	switch {
	case errors.Is(err, output.ErrCancelled):
		return overlay.Result{Status: overlay.Cancelled}
	case err != nil:
		return overlay.Result{Status: overlay.Failed, Err: err}
	}
	s.lastPath = path
	s.notifier.Save(path)
	return overlay.Result{Status: overlay.Succeeded, Path: path}
}

func (s *exportSink) Copy(ctx context.Context, img image.Image) overlay.Result {
	if err := s.clip.Publish(ctx, img); err != nil {
		if errors.Is(err, context.Canceled) {
			return overlay.Result{Status: overlay.Cancelled}
		}
		return overlay.Result{Status: overlay.Failed, Err: err}
	}
	s.notifier.Copy()
	return overlay.Result{Status: overlay.Succeeded}
}
