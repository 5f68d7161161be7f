package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LabelSize is the pixel size of the dimension label.
const LabelSize = 11

var (
	fontsOnce   sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontsErr    error

	regularFaces sync.Map // map[float64]font.Face
	boldFaces    sync.Map // map[float64]font.Face
)

func loadFonts() error {
	fontsOnce.Do(func() {
		regularFont, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("parse regular font: %w", fontsErr)
			return
		}
		boldFont, fontsErr = opentype.Parse(gobold.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("parse bold font: %w", fontsErr)
		}
	})
	return fontsErr
}

func cachedFace(cache *sync.Map, f **opentype.Font, size float64) (font.Face, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	size = math.Round(size*4) / 4
	if face, ok := cache.Load(size); ok {
		return face.(font.Face), nil
	}
	face, err := opentype.NewFace(*f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	actual, _ := cache.LoadOrStore(size, face)
	return actual.(font.Face), nil
}

// Face returns the regular face at size pixels.
func Face(size float64) (font.Face, error) {
	if size <= 0 {
		size = 16
	}
	return cachedFace(&regularFaces, &regularFont, size)
}

// BoldFace returns the bold face at size pixels.
func BoldFace(size float64) (font.Face, error) {
	return cachedFace(&boldFaces, &boldFont, size)
}

// MeasureText returns the advance width and line height of s in face.
func MeasureText(face font.Face, s string) (width, height int) {
	m := face.Metrics()
	return font.MeasureString(face, s).Ceil(), m.Ascent.Ceil() + m.Descent.Ceil()
}

// DrawText draws s with the top of the line box at (x, y).
func DrawText(dst draw.Image, face font.Face, x, y int, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
