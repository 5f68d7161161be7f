package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/example/snipshot/internal/config"
	"github.com/example/snipshot/internal/notify"
	"github.com/example/snipshot/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	stdout      io.Writer
	notifier    *notify.Notifier
	config      *config.Config
	configPath  string
	saveAlerts  bool
	copyAlerts  bool
	errorAlerts bool
	verbose     bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) string {
	return strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
}

func newRoot(stdout io.Writer) *root {
	r := &root{
		fs:       flag.NewFlagSet("snipshot", flag.ContinueOnError),
		program:  "snipshot",
		stdout:   stdout,
		notifier: notify.New(),
	}
	r.fs.SetOutput(io.Discard)
	r.fs.StringVar(&r.configPath, "config", configPathOverride, "path to the rc file")
	r.fs.StringVar(&r.themeName, "theme", "", "colour theme to use ("+strings.Join(theme.Names(), ", ")+" or a file path)")
	r.fs.BoolVar(&r.verbose, "verbose", false, "log diagnostics to stderr")
	r.fs.Var(&optionalBool{}, "notify-save", "show a desktop notification after saving an image")
	r.fs.Var(&optionalBool{}, "notify-copy", "show a desktop notification after copying to the clipboard")
	r.fs.Var(&optionalBool{}, "notify-error", "show a desktop notification when a capture fails")
	return r
}

// loadConfig reads the rc file and lets explicit flags override it.
func (r *root) loadConfig() error {
	cfg, err := config.NewLoader(version, r.configPath).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	r.config = cfg
	r.saveAlerts, r.copyAlerts, r.errorAlerts = cfg.Notify.Save, cfg.Notify.Copy, cfg.Notify.Error
	r.fs.Visit(func(f *flag.Flag) {
		b, ok := f.Value.(*optionalBool)
		if !ok {
			return
		}
		switch f.Name {
		case "notify-save":
			r.saveAlerts = b.value
		case "notify-copy":
			r.copyAlerts = b.value
		case "notify-error":
			r.errorAlerts = b.value
		}
	})
	r.notifier.Enable(notify.EventSave, r.saveAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	r.notifier.Enable(notify.EventError, r.errorAlerts)
	return nil
}

// loadTheme resolves the theme named on the command line, then the
// environment and rc file. A missing theme falls back to the default.
func (r *root) loadTheme() {
	name := r.themeName
	if name == "" {
		name = r.config.Theme
	}
	t, err := r.config.ResolveTheme(theme.NewLoader(), name)
	if err != nil {
		log.Printf("warning: failed to load theme %q: %v; using default", name, err)
		t = theme.Default()
	}
	r.activeTheme = t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &UsageError{of: r}
		}
		return &UsageError{of: r, err: err}
	}
	if !r.verbose {
		log.SetOutput(io.Discard)
	}
	if err := r.loadConfig(); err != nil {
		return err
	}
	r.loadTheme()

	cmdName := "capture"
	var subArgs []string
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "capture":
		cmd, err = parseCaptureCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	case "help":
		return &UsageError{of: r}
	default:
		err = &UsageError{of: r, err: fmt.Errorf("unknown command %q", cmdName)}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// exitCode maps the result of Run to the process status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var uerr *UsageError
	if errors.As(err, &uerr) && uerr.err != nil {
		return exitUsage
	}
	if errors.As(err, &uerr) {
		return exitOK
	}
	return exitFailure
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("snipshot: ")
	r := newRoot(os.Stdout)
	err := r.Run(os.Args[1:])
	if err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	os.Exit(exitCode(err))
}

// optionalBool is a boolean flag that remembers whether it was set, so an
// absent flag leaves the rc file value alone.
type optionalBool struct {
	value bool
}

func (b *optionalBool) String() string {
	if b == nil {
		return "false"
	}
	return fmt.Sprint(b.value)
}

func (b *optionalBool) Set(s string) error {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		b.value = true
	case "false", "0", "no", "off":
		b.value = false
	default:
		return fmt.Errorf("invalid boolean %q", s)
	}
	return nil
}

func (b *optionalBool) IsBoolFlag() bool { return true }
