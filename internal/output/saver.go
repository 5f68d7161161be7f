package output

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// ErrCancelled is returned when the user dismisses the destination picker.
var ErrCancelled = errors.New("save cancelled")

// Picker asks the user where to save.
type Picker interface {
	// Pick returns the chosen path or ErrCancelled.
	Pick(ctx context.Context, dir, suggested string) (string, error)
}

// FixedPath is a Picker that always answers with one path, for
// non-interactive saves.
type FixedPath string

// Pick implements Picker.
func (f FixedPath) Pick(context.Context, string, string) (string, error) {
	return string(f), nil
}

// Saver writes captures to a user-chosen file.
type Saver struct {
	Picker Picker
	// Dir is where the picker starts.
	Dir string
}

// Save asks for a destination, encodes img to match its extension and
// writes it. It returns the path actually written.
func (s *Saver) Save(ctx context.Context, img image.Image, suggested string) (string, error) {
	path, err := s.Picker.Pick(ctx, s.Dir, suggested)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", ErrCancelled
	}
	format, path := FormatForPath(path)
	data, err := EncodeBytes(img, format)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
