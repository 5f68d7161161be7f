package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/example/snipshot/internal/theme"
	"github.com/joho/godotenv"
)

// Environment overrides, applied over the rc file.
const (
	EnvTheme   = "SNIPSHOT_THEME"
	EnvSaveDir = "SNIPSHOT_SAVE_DIR"
	EnvColor   = "SNIPSHOT_COLOR"
)

// Loader handles loading the configuration.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // From -config
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load reads the rc file, then a .env beside it, then applies the
// environment overrides.
func (l *Loader) Load() (*Config, error) {
	cfg := New()
	path := l.GetConfigPath()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		parsed, err := Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cfg = parsed
	}
	if err := loadDotEnv(l.envDir(path)); err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv copies any SNIPSHOT_* variables into cfg.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvSaveDir); v != "" {
		cfg.SaveDir = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		if _, err := theme.ParseColor(v); err != nil {
			return fmt.Errorf("%s: %w", EnvColor, err)
		}
		cfg.DefaultColor = v
	}
	return nil
}

// loadDotEnv reads dir/.env into the process environment without
// replacing variables that are already set.
func loadDotEnv(dir string) error {
	if dir == "" {
		return nil
	}
	path := filepath.Join(dir, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (l *Loader) envDir(configPath string) string {
	if configPath != "" {
		return filepath.Dir(configPath)
	}
	if l.Version == "dev" {
		wd, _ := os.Getwd()
		return wd
	}
	return ""
}

// DefaultPath is where `config save` writes when no file exists yet.
func (l *Loader) DefaultPath() string {
	if l.OverridePath != "" {
		return l.OverridePath
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "snipshot", "config.rc")
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	// 1. Explicit path
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	// 2. Local run directory (dev mode)
	if l.Version == "dev" {
		wd, _ := os.Getwd()
		localPath := filepath.Join(wd, ".snipshotrc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	// 3. User config dir
	if l.OverridePath == "" {
		if p := l.DefaultPath(); fileExists(p) {
			return p
		}
	}
	return ""
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
