package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/example/snipshot/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save  bool
	Copy  bool
	Error bool
}

// Config holds the application configuration.
type Config struct {
	Theme         string
	SaveDir       string
	DefaultColor  string
	StrokeWidth   int
	MinSelection  int
	HandleSize    int
	ClipboardHold time.Duration
	Notify        Notify
	Themes        map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		DefaultColor:  "#ff0000",
		StrokeWidth:   2,
		MinSelection:  20,
		HandleSize:    10,
		ClipboardHold: 30 * time.Second,
		Notify: Notify{
			Save:  true,
			Copy:  true,
			Error: true,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// ResolveTheme returns the inline theme called name, or asks l.
func (c *Config) ResolveTheme(l *theme.Loader, name string) (*theme.Theme, error) {
	if t, ok := c.Themes[name]; ok {
		return t, nil
	}
	return l.Load(name)
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "default_color = %s\n", c.DefaultColor)
	fmt.Fprintf(&sb, "stroke_width = %d\n", c.StrokeWidth)
	fmt.Fprintf(&sb, "min_selection = %d\n", c.MinSelection)
	fmt.Fprintf(&sb, "handle_size = %d\n", c.HandleSize)
	fmt.Fprintf(&sb, "clipboard_hold = %s\n", c.ClipboardHold)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "error = %v\n", c.Notify.Error)

	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "\n[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, kv := range t.Fields() {
			fmt.Fprintf(&sb, "%s: %s\n", kv[0], kv[1])
		}
	}
	return sb.String()
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.String()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
