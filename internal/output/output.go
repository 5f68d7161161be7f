// Package output encodes finished captures and writes them to disk.
package output

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Format is an image encoding.
type Format int

const (
	PNG Format = iota
	JPEG
)

// JPEGQuality is used for every JPEG save.
const JPEGQuality = 95

func (f Format) String() string {
	if f == JPEG {
		return "jpeg"
	}
	return "png"
}

// FormatForPath picks the encoding for path and returns the path to write.
// .jpg and .jpeg select JPEG; anything else is PNG and gains a .png
// extension unless it already has one.
func FormatForPath(path string) (Format, string) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jpg", ".jpeg":
		return JPEG, path
	case ".png":
		return PNG, path
	}
	return PNG, path + ".png"
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case JPEG:
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return fmt.Errorf("encode jpeg: %w", err)
		}
	default:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	}
	return nil
}

// EncodeBytes returns img encoded in format f.
func EncodeBytes(img image.Image, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SuggestedName is the default file name offered for a capture taken at t.
func SuggestedName(t time.Time) string {
	return "screenshot_" + t.Format("20060102150405") + ".png"
}
