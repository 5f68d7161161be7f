// Package theme holds the overlay chrome colours.
package theme

import (
	"embed"
	"image/color"

	"github.com/example/snipshot/internal/render"
)

// EmbeddedThemes holds the themes shipped with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the colours of everything drawn around the capture.
type Theme struct {
	Name string

	// Selection overlay
	Dim             color.NRGBA // Layer over the unselected screen
	Border          color.NRGBA // Dashed selection outline
	HandleFill      color.NRGBA
	HandleStroke    color.NRGBA
	LabelBackground color.NRGBA // Dimension label
	LabelText       color.NRGBA
	Placeholder     color.NRGBA // Shown until the capture arrives
	PlaceholderText color.NRGBA
	TextPreview     color.NRGBA // Outline while dragging out a text box
	TextBackground  color.NRGBA
	ToastBackground color.NRGBA
	ToastText       color.NRGBA

	// Toolbars
	ToolbarBackground     color.NRGBA
	ButtonBackground      color.NRGBA
	ButtonBackgroundHover color.NRGBA
	ButtonBackgroundPress color.NRGBA
	ButtonText            color.NRGBA
	ButtonBorder          color.NRGBA
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Dim:                   color.NRGBA{0, 0, 0, 102},
		Border:                color.NRGBA{255, 255, 255, 230},
		HandleFill:            color.NRGBA{255, 255, 255, 230},
		HandleStroke:          color.NRGBA{0, 0, 0, 153},
		LabelBackground:       color.NRGBA{0, 0, 0, 153},
		LabelText:             color.NRGBA{255, 255, 255, 230},
		Placeholder:           color.NRGBA{0xcc, 0xcc, 0xcc, 255},
		PlaceholderText:       color.NRGBA{0, 0, 0, 255},
		TextPreview:           color.NRGBA{150, 150, 150, 179},
		TextBackground:        color.NRGBA{255, 255, 255, 64},
		ToastBackground:       color.NRGBA{0, 0, 0, 200},
		ToastText:             color.NRGBA{255, 255, 255, 255},
		ToolbarBackground:     color.NRGBA{245, 245, 245, 240},
		ButtonBackground:      color.NRGBA{230, 230, 230, 255},
		ButtonBackgroundHover: color.NRGBA{210, 210, 210, 255},
		ButtonBackgroundPress: color.NRGBA{170, 170, 170, 255},
		ButtonText:            color.NRGBA{0, 0, 0, 255},
		ButtonBorder:          color.NRGBA{120, 120, 120, 255},
	}
}

// Style converts t into the renderer's style with the given handle size.
func (t *Theme) Style(handleSize int) render.Style {
	st := render.DefaultStyle()
	st.Dim = t.Dim
	st.Border = t.Border
	st.HandleFill = t.HandleFill
	st.HandleStroke = t.HandleStroke
	st.LabelBackground = t.LabelBackground
	st.LabelText = t.LabelText
	st.Placeholder = t.Placeholder
	st.PlaceholderText = t.PlaceholderText
	st.TextPreview = t.TextPreview
	st.TextBackground = t.TextBackground
	st.ToastBackground = t.ToastBackground
	st.ToastText = t.ToastText
	if handleSize > 0 {
		st.HandleSize = handleSize
	}
	return st
}
