// Package capture acquires the pixels the overlay annotates.
package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/kbinani/screenshot"
)

// ErrNoDisplay is returned when no active display can be found.
var ErrNoDisplay = errors.New("no active display")

// Source produces the background image for one session.
type Source interface {
	// Bounds is the size the host window should take.
	Bounds() (image.Rectangle, error)
	// Acquire blocks until the image is ready.
	Acquire(ctx context.Context) (*image.RGBA, error)
}

var (
	displayCount  = screenshot.NumActiveDisplays
	displayBounds = screenshot.GetDisplayBounds
	captureRect   = screenshot.CaptureRect

	portalScreenshotFn = portalScreenshot
	waylandSession     = runningOnWayland
)

// Primary captures the primary display.
type Primary struct{}

// Bounds implements Source.
func (Primary) Bounds() (image.Rectangle, error) {
	if displayCount() < 1 {
		return image.Rectangle{}, ErrNoDisplay
	}
	r := displayBounds(0)
	if r.Empty() {
		return image.Rectangle{}, ErrNoDisplay
	}
	return r, nil
}

// Acquire implements Source. Under Wayland the desktop portal is asked
// first since direct reads are usually refused there; elsewhere the portal
// is only a fallback.
func (p Primary) Acquire(ctx context.Context) (*image.RGBA, error) {
	bounds, err := p.Bounds()
	if err != nil {
		return nil, err
	}
	if waylandSession() {
		img, perr := p.viaPortal(ctx, bounds)
		if perr == nil {
			return img, nil
		}
		img, err := p.direct(bounds)
		if err != nil {
			return nil, fmt.Errorf("portal: %v; direct capture: %w", perr, err)
		}
		return img, nil
	}
	img, err := p.direct(bounds)
	if err == nil {
		return img, nil
	}
	log.Printf("capture: direct read failed, trying portal: %v", err)
	img, perr := p.viaPortal(ctx, bounds)
	if perr != nil {
		return nil, fmt.Errorf("direct capture: %v; portal fallback: %w", err, perr)
	}
	return img, nil
}

func (Primary) direct(bounds image.Rectangle) (*image.RGBA, error) {
	img, err := captureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("capture display: %w", err)
	}
	return rebase(img), nil
}

func (Primary) viaPortal(ctx context.Context, bounds image.Rectangle) (*image.RGBA, error) {
	shot, err := portalScreenshotFn(ctx)
	if err != nil {
		return nil, err
	}
	// The portal returns the whole desktop in layout coordinates.
	return cropToRect(shot, bounds)
}

// File loads an existing PNG or JPEG instead of reading the screen.
type File struct {
	Path string
}

// Bounds implements Source by reading the image header.
func (f File) Bounds() (image.Rectangle, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer fh.Close()
	cfg, _, err := image.DecodeConfig(fh)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("decode %s: %w", f.Path, err)
	}
	return image.Rect(0, 0, cfg.Width, cfg.Height), nil
}

// Acquire implements Source.
func (f File) Acquire(ctx context.Context) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return loadImage(f.Path)
}

func loadImage(path string) (*image.RGBA, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()
	img, _, err := image.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return toRGBA(img), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rebase(rgba)
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// rebase moves img to a zero origin without copying pixels.
func rebase(img *image.RGBA) *image.RGBA {
	if img.Rect.Min == (image.Point{}) {
		return img
	}
	out := *img
	out.Rect = image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy())
	return &out
}

func cropToRect(src *image.RGBA, rect image.Rectangle) (*image.RGBA, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("requested region outside captured image")
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}
