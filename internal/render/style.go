package render

import "image/color"

// Style holds the chrome colours and sizes used by Frame.
type Style struct {
	Dim             color.Color
	Border          color.Color
	HandleFill      color.Color
	HandleStroke    color.Color
	LabelBackground color.Color
	LabelText       color.Color
	Placeholder     color.Color
	PlaceholderText color.Color
	TextPreview     color.Color
	TextBackground  color.Color
	ToastBackground color.Color
	ToastText       color.Color

	BorderWidth int
	HandleSize  int
	// DashOn and DashOff describe the selection border pattern.
	DashOn, DashOff int
}

// DefaultStyle matches the stock theme.
func DefaultStyle() Style {
	return Style{
		Dim:             color.NRGBA{0, 0, 0, 102},
		Border:          color.NRGBA{255, 255, 255, 230},
		HandleFill:      color.NRGBA{255, 255, 255, 230},
		HandleStroke:    color.NRGBA{0, 0, 0, 153},
		LabelBackground: color.NRGBA{0, 0, 0, 153},
		LabelText:       color.NRGBA{255, 255, 255, 230},
		Placeholder:     color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
		PlaceholderText: color.Black,
		TextPreview:     color.NRGBA{150, 150, 150, 179},
		TextBackground:  color.NRGBA{255, 255, 255, 64},
		ToastBackground: color.NRGBA{0, 0, 0, 200},
		ToastText:       color.White,
		BorderWidth:     2,
		HandleSize:      10,
		DashOn:          6,
		DashOff:         4,
	}
}
