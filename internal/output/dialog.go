//go:build cgo

package output

import (
	"context"
	"errors"
	"fmt"

	"github.com/sqweek/dialog"
)

// DialogPicker uses the native file dialog.
type DialogPicker struct {
	Title string
}

// Pick implements Picker.
func (p DialogPicker) Pick(ctx context.Context, dir, suggested string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	title := p.Title
	if title == "" {
		title = "Save Screenshot"
	}
	b := dialog.File().
		Title(title).
		Filter("PNG Image", "png").
		Filter("JPEG Image", "jpg", "jpeg").
		SetStartFile(suggested)
	if dir != "" {
		b = b.SetStartDir(dir)
	}
	path, err := b.Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("file dialog: %w", err)
	}
	return path, nil
}

// ShowError pops up a native error box.
func ShowError(title, msg string) {
	dialog.Message("%s", msg).Title(title).Error()
}
