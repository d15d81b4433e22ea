package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	Background  = "#1e1e1e"
	SelectColor = "#3b82f6"
	GridColor   = "#444444"
	unknownFill = "#808080"
)

// parseFill reads a #RRGGBB or #RGB fill; anything else is drawn grey.
func parseFill(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(unknownFill)
	}
	return c
}

// blend composites fill at opacity over the hex color below.
func blend(below, fill string, opacity float64) string {
	opacity = min(max(opacity, 0), 1)
	return parseFill(below).BlendRgb(parseFill(fill), opacity).Clamped().Hex()
}

func rgba(hex string, opacity float64) color.NRGBA {
	r, g, b := parseFill(hex).Clamped().RGB255()
	opacity = min(max(opacity, 0), 1)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(opacity*255 + 0.5)}
}
