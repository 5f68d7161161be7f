package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/snipshot/internal/capture"
	"github.com/example/snipshot/internal/geom"
	"github.com/example/snipshot/internal/notify"
	"github.com/example/snipshot/internal/output"
	"github.com/example/snipshot/internal/overlay"
	"github.com/example/snipshot/internal/ui"
	"github.com/google/go-cmp/cmp"
)

const quietRC = "[notify]\nsave = false\ncopy = false\nerror = false\n"

// testEnv isolates the config lookup and returns an rc file holding rc.
func testEnv(t *testing.T, rc string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, k := range []string{"SNIPSHOT_THEME", "SNIPSHOT_SAVE_DIR", "SNIPSHOT_COLOR"} {
		t.Setenv(k, "")
	}
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })
	path := filepath.Join(home, "config.rc")
	if err := os.WriteFile(path, []byte(rc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	r := newRoot(&out)
	err := r.Run(args)
	return out.String(), err
}

func stubShowError(t *testing.T) *[]string {
	t.Helper()
	var got []string
	prev := showError
	showError = func(title, msg string) { got = append(got, title+": "+msg) }
	t.Cleanup(func() { showError = prev })
	return &got
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCaptureRunCaptureError(t *testing.T) {
	rc := testEnv(t, quietRC)
	dialogs := stubShowError(t)
	prev := runOverlay
	runOverlay = func(context.Context, *overlay.Session, capture.Source, overlay.Sink, ...ui.Option) (overlay.Outcome, error) {
		t.Fatal("overlay started without a capture")
		return overlay.OutcomeFailed, nil
	}
	t.Cleanup(func() { runOverlay = prev })

	_, err := run(t, "-config", rc, "capture", "-file", filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
	if want := "failed to capture screen"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to contain %q, got %v", want, err)
	}
	if len(*dialogs) != 1 || !strings.HasPrefix((*dialogs)[0], "snipshot:") {
		t.Fatalf("error dialogs = %q", *dialogs)
	}
	if got := exitCode(err); got != exitFailure {
		t.Fatalf("exit code = %d", got)
	}
}

func TestCaptureSavesThroughSink(t *testing.T) {
	rc := testEnv(t, quietRC)
	stubShowError(t)
	in := writePNG(t, 40, 30)
	out := filepath.Join(t.TempDir(), "shot.png")

	var (
		screen geom.Size
		tools  overlay.ToolState
	)
	prev := runOverlay
	runOverlay = func(ctx context.Context, s *overlay.Session, src capture.Source, sink overlay.Sink, _ ...ui.Option) (overlay.Outcome, error) {
		screen = s.Screen()
		tools = s.ToolState()
		img, err := src.Acquire(ctx)
		if err != nil {
			return overlay.OutcomeFailed, err
		}
		r := sink.Save(ctx, img, "ignored.png")
		if r.Status != overlay.Succeeded {
			return overlay.OutcomeFailed, r.Err
		}
		return overlay.OutcomeSaved, nil
	}
	t.Cleanup(func() { runOverlay = prev })

	stdout, err := run(t, "-config", rc, "capture", "-file", in, "-output", out, "-color", "blue")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff(geom.Size{W: 40, H: 30}, screen); diff != "" {
		t.Fatalf("screen mismatch (-want +got):\n%s", diff)
	}
	if tools.Color != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("colour = %v", tools.Color)
	}
	if strings.TrimSpace(stdout) != out {
		t.Fatalf("stdout = %q, want %q", stdout, out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output not written: %v", err)
	}
}

func TestCaptureDefaultsToPrimaryDisplay(t *testing.T) {
	rc := testEnv(t, quietRC)
	r := newRoot(&bytes.Buffer{})
	if err := r.fs.Parse([]string{"-config", rc}); err != nil {
		t.Fatal(err)
	}
	if err := r.loadConfig(); err != nil {
		t.Fatal(err)
	}
	r.loadTheme()
	cmd, err := parseCaptureCmd(nil, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := cmd.source().(capture.Primary); !ok {
		t.Fatalf("source = %T, want capture.Primary", cmd.source())
	}
	if cmd.color != "#ff0000" || cmd.stroke != 2 {
		t.Fatalf("defaults = %q, %d", cmd.color, cmd.stroke)
	}
}

func TestCaptureFailedOutcomeIsReported(t *testing.T) {
	rc := testEnv(t, quietRC)
	dialogs := stubShowError(t)
	in := writePNG(t, 10, 10)
	sentinel := errors.New("denied")
	prev := runOverlay
	runOverlay = func(context.Context, *overlay.Session, capture.Source, overlay.Sink, ...ui.Option) (overlay.Outcome, error) {
		return overlay.OutcomeFailed, sentinel
	}
	t.Cleanup(func() { runOverlay = prev })

	_, err := run(t, "-config", rc, "capture", "-file", in)
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want %v", err, sentinel)
	}
	if len(*dialogs) != 1 {
		t.Fatalf("error dialogs = %q", *dialogs)
	}
}

func TestCaptureCancelledIsNotAnError(t *testing.T) {
	rc := testEnv(t, quietRC)
	stubShowError(t)
	in := writePNG(t, 10, 10)
	prev := runOverlay
	runOverlay = func(context.Context, *overlay.Session, capture.Source, overlay.Sink, ...ui.Option) (overlay.Outcome, error) {
		return overlay.OutcomeCancelled, nil
	}
	t.Cleanup(func() { runOverlay = prev })

	stdout, err := run(t, "-config", rc, "capture", "-file", in)
	if err != nil || stdout != "" {
		t.Fatalf("Run = %q, %v", stdout, err)
	}
}

func TestUsageErrors(t *testing.T) {
	rc := testEnv(t, quietRC)
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"help", []string{"help"}, exitOK, "Commands:"},
		{"dash h", []string{"-h"}, exitOK, "Commands:"},
		{"unknown command", []string{"frobnicate"}, exitUsage, `unknown command "frobnicate"`},
		{"bad colour", []string{"capture", "-color", "nope"}, exitUsage, "-color"},
		{"bad stroke", []string{"capture", "-stroke", "0"}, exitUsage, "stroke must be at least 1"},
		{"stray argument", []string{"capture", "extra"}, exitUsage, `unexpected argument "extra"`},
		{"config without command", []string{"config"}, exitUsage, "print|save"},
		{"unknown flag", []string{"-bogus"}, exitUsage, "-bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"-config", rc}, tt.args...)...)
			var uerr *UsageError
			if !errors.As(err, &uerr) {
				t.Fatalf("err = %v, want UsageError", err)
			}
			if got := exitCode(err); got != tt.code {
				t.Fatalf("exit code = %d, want %d", got, tt.code)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestNotifyFlagsOverrideConfig(t *testing.T) {
	rc := testEnv(t, quietRC)
	r := newRoot(&bytes.Buffer{})
	if err := r.fs.Parse([]string{"-config", rc, "-notify-copy", "-notify-error=true"}); err != nil {
		t.Fatal(err)
	}
	if err := r.loadConfig(); err != nil {
		t.Fatal(err)
	}
	got := [3]bool{r.saveAlerts, r.copyAlerts, r.errorAlerts}
	if want := [3]bool{false, true, true}; got != want {
		t.Fatalf("alerts = %v, want %v", got, want)
	}
}

func TestThemeFlagWins(t *testing.T) {
	rc := testEnv(t, quietRC+"\n[theme.mine]\nDim: #00000010\n")
	t.Setenv("SNIPSHOT_THEME", "dark")
	r := newRoot(&bytes.Buffer{})
	if err := r.fs.Parse([]string{"-config", rc, "-theme", "mine"}); err != nil {
		t.Fatal(err)
	}
	if err := r.loadConfig(); err != nil {
		t.Fatal(err)
	}
	r.loadTheme()
	if r.activeTheme.Dim != (color.NRGBA{0, 0, 0, 0x10}) {
		t.Fatalf("theme dim = %v", r.activeTheme.Dim)
	}
}

func TestConfigPrintAndSave(t *testing.T) {
	rc := testEnv(t, "stroke_width = 5\n"+quietRC)
	stdout, err := run(t, "-config", rc, "config", "print")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(stdout, "stroke_width = 5\n") {
		t.Fatalf("print output:\n%s", stdout)
	}

	target := filepath.Join(t.TempDir(), "nested", "saved.rc")
	stdout, err = run(t, "-config", target, "config", "save")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if strings.TrimSpace(stdout) != target {
		t.Fatalf("save reported %q", stdout)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if !strings.Contains(string(data), "[notify]") {
		t.Fatalf("saved config:\n%s", data)
	}
}

func TestVersion(t *testing.T) {
	rc := testEnv(t, quietRC)
	stdout, err := run(t, "-config", rc, "version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "snipshot version " + version + "\n"; stdout != want {
		t.Fatalf("version = %q, want %q", stdout, want)
	}
}

type fakeCopier struct{ err error }

func (f fakeCopier) Publish(context.Context, image.Image) error { return f.err }

func TestExportSinkResults(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	dir := t.TempDir()
	tests := []struct {
		name string
		sink *exportSink
		copy bool
		want overlay.Status
	}{
		{"save", &exportSink{saver: &output.Saver{Picker: output.FixedPath(filepath.Join(dir, "a.png"))}}, false, overlay.Succeeded},
		{"save cancelled", &exportSink{saver: &output.Saver{Picker: output.FixedPath("")}}, false, overlay.Cancelled},
		{"save failed", &exportSink{saver: &output.Saver{Picker: output.FixedPath(filepath.Join(writePNG(t, 1, 1), "x.png"))}}, false, overlay.Failed},
		{"copy", &exportSink{clip: fakeCopier{}}, true, overlay.Succeeded},
		{"copy unavailable", &exportSink{clip: fakeCopier{err: errors.New("no clipboard")}}, true, overlay.Failed},
		{"copy interrupted", &exportSink{clip: fakeCopier{err: context.Canceled}}, true, overlay.Cancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.sink.notifier = notify.New()
			var r overlay.Result
			if tt.copy {
				r = tt.sink.Copy(context.Background(), img)
			} else {
				r = tt.sink.Save(context.Background(), img, "suggested.png")
			}
			if r.Status != tt.want {
				t.Fatalf("status = %v, want %v (err %v)", r.Status, tt.want, r.Err)
			}
			if r.Status == overlay.Failed && r.Err == nil {
				t.Fatal("failure without an error")
			}
		})
	}
}
