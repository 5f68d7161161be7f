//go:build !cgo

package output

import (
	"context"
	"errors"
	"log"
)

// DialogPicker needs cgo for the native file dialog. Without it every pick
// fails so callers fall back to an explicit output path.
type DialogPicker struct {
	Title string
}

// Pick implements Picker.
func (DialogPicker) Pick(context.Context, string, string) (string, error) {
	return "", errors.New("file dialog unavailable: built without cgo")
}

// ShowError logs msg since no native message box is available.
func ShowError(title, msg string) {
	log.Printf("%s: %s", title, msg)
}
