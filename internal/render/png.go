package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"figmini/internal/editor"
)

type PNGOptions struct {
	Padding    float64
	Background string
}

var DefaultPNGOptions = PNGOptions{Padding: 20, Background: Background}

// MaxImageSide bounds each side of an exported image in pixels.
const MaxImageSide = 16384

// Bounds is the document-space box around all elements.
func Bounds(elements []editor.Element) (minX, minY, maxX, maxY float64, ok bool) {
	for i, e := range elements {
		w, h := e.Width, e.Height
		if e.Kind == editor.KindText {
			w, h = max(w, 20), max(h, 20)
		}
		if i == 0 {
			minX, minY, maxX, maxY = e.X, e.Y, e.X+w, e.Y+h
			continue
		}
		minX = math.Min(minX, e.X)
		minY = math.Min(minY, e.Y)
		maxX = math.Max(maxX, e.X+w)
		maxY = math.Max(maxY, e.Y+h)
	}
	return minX, minY, maxX, maxY, len(elements) > 0
}

// ExportPNG draws the elements at scale 1 into a PNG file cropped to
// their bounds plus padding.
func ExportPNG(elements []editor.Element, filename string, opts PNGOptions) error {
	minX, minY, maxX, maxY, ok := Bounds(elements)
	if !ok {
		return fmt.Errorf("nothing to export")
	}
	minX -= opts.Padding
	minY -= opts.Padding
	maxX += opts.Padding
	maxY += opts.Padding

	w, h := math.Ceil(maxX-minX), math.Ceil(maxY-minY)
	if !(w <= MaxImageSide && h <= MaxImageSide) {
		return fmt.Errorf("image too large: %.0fx%.0f", w, h)
	}
	imageWidth := max(int(w), 1)
	imageHeight := max(int(h), 1)

	dc := gg.NewContext(imageWidth, imageHeight)
	if opts.Background != "" {
		dc.SetColor(rgba(opts.Background, 1))
		dc.Clear()
	}

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	faces := map[float64]font.Face{}
	faceFor := func(size float64) font.Face {
		if f, ok := faces[size]; ok {
			return f
		}
		f := truetype.NewFace(ttfFont, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		faces[size] = f
		return f
	}

	for _, e := range elements {
		x, y := e.X-minX, e.Y-minY
		dc.SetColor(rgba(e.Fill, e.Opacity))
		switch e.Kind {
		case editor.KindRectangle:
			drawRectanglePNG(dc, e, x, y)
		case editor.KindCircle:
			if e.Width > 0 && e.Height > 0 {
				dc.DrawEllipse(x+e.Width/2, y+e.Height/2, e.Width/2, e.Height/2)
				dc.Fill()
			}
		case editor.KindText:
			dc.SetFontFace(faceFor(e.EffectiveFontSize()))
			drawTextPNG(dc, e, x, y)
		}
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

func drawRectanglePNG(dc *gg.Context, e editor.Element, x, y float64) {
	if e.Width <= 0 || e.Height <= 0 {
		return
	}
	r := math.Min(e.BorderRadius, math.Min(e.Width, e.Height)/2)
	if r > 0 {
		dc.DrawRoundedRectangle(x, y, e.Width, e.Height, r)
	} else {
		dc.DrawRectangle(x, y, e.Width, e.Height)
	}
	dc.Fill()
}

// drawTextPNG centres the lines in the element box, as the editor does.
func drawTextPNG(dc *gg.Context, e editor.Element, x, y float64) {
	lines := strings.Split(e.Text, "\n")
	lineHeight := dc.FontHeight() * 1.2
	w := math.Max(e.Width, 20)
	h := math.Max(e.Height, 20)
	top := y + h/2 - lineHeight*float64(len(lines))/2
	for i, line := range lines {
		dc.DrawStringAnchored(line, x+w/2, top+lineHeight*(float64(i)+0.5), 0.5, 0.5)
	}
}
