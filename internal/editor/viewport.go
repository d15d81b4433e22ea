package editor

import (
	"fmt"
	"math"
)

const (
	MinScale  = 0.1
	MaxScale  = 5.0
	ZoomSpeed = 0.001
	GridSize  = 20.0
)

// Viewport maps between screen space and document space.
type Viewport struct {
	Pan    Point
	Scale  float64
	Origin Point // screen position of the canvas container
}

func NewViewport() Viewport {
	return Viewport{Scale: 1}
}

func (v Viewport) ToDocument(screen Point) Point {
	rel := screen.Sub(v.Origin).Sub(v.Pan)
	return Point{rel.X / v.Scale, rel.Y / v.Scale}
}

func (v Viewport) ToScreen(doc Point) Point {
	return Point{doc.X*v.Scale + v.Pan.X, doc.Y*v.Scale + v.Pan.Y}.Add(v.Origin)
}

func (v Viewport) PanBy(delta Point) Viewport {
	v.Pan = v.Pan.Add(delta)
	return v
}

// WheelEvent is a scroll gesture. Zoom is set when the zoom modifier
// (ctrl or cmd) is held.
type WheelEvent struct {
	DeltaX, DeltaY float64
	Zoom           bool
}

// Wheel zooms around the viewport origin when the modifier is held and
// pans otherwise.
func (v Viewport) Wheel(ev WheelEvent) Viewport {
	if ev.Zoom {
		v.Scale = clamp(v.Scale-ev.DeltaY*ZoomSpeed, MinScale, MaxScale)
		return v
	}
	return v.PanBy(Point{-ev.DeltaX, -ev.DeltaY})
}

type Grid struct {
	Spacing float64
	Offset  Point
}

// Grid describes the background grid; it is cosmetic only.
func (v Viewport) Grid() Grid {
	spacing := GridSize * v.Scale
	return Grid{
		Spacing: spacing,
		Offset:  Point{math.Mod(v.Pan.X, spacing), math.Mod(v.Pan.Y, spacing)},
	}
}

func (v Viewport) Status() string {
	return fmt.Sprintf("Zoom: %d%% | X: %d Y: %d",
		int(math.Round(v.Scale*100)), int(math.Round(-v.Pan.X)), int(math.Round(-v.Pan.Y)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
