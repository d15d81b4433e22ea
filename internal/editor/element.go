package editor

import "math"

type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindText      Kind = "text"
)

const (
	DefaultFontSize  = 16.0
	CreationFontSize = 24.0
	ShapeFill        = "#D9D9D9"
	TextFill         = "#ffffff"
	PlaceholderText  = "Text"
)

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Element is a shape or text box on the canvas. Values are never modified
// in place; Apply returns the merged copy.
type Element struct {
	ID           string
	Kind         Kind
	X            float64
	Y            float64
	Width        float64
	Height       float64
	Fill         string
	Opacity      float64
	Text         string
	FontSize     float64
	BorderRadius float64
}

func (e Element) Origin() Point { return Point{e.X, e.Y} }

// EffectiveFontSize is the font size readers should use; zero means unset.
func (e Element) EffectiveFontSize() float64 {
	if e.FontSize > 0 {
		return e.FontSize
	}
	return DefaultFontSize
}

// Contains reports whether the document point p lies inside the element.
// Text boxes render at least 20x20, so hits use that minimum.
func (e Element) Contains(p Point) bool {
	w, h := e.Width, e.Height
	if e.Kind == KindText {
		w = max(w, 20)
		h = max(h, 20)
	}
	if p.X < e.X || p.Y < e.Y || p.X > e.X+w || p.Y > e.Y+h {
		return false
	}
	if e.Kind != KindCircle {
		return true
	}
	if w == 0 || h == 0 {
		return false
	}
	rx, ry := w/2, h/2
	dx := (p.X - (e.X + rx)) / rx
	dy := (p.Y - (e.Y + ry)) / ry
	return dx*dx+dy*dy <= 1
}

// Label is the layer list caption.
func (e Element) Label() string {
	if e.Kind == KindText && e.Text != "" {
		r := []rune(e.Text)
		if len(r) > 15 {
			return string(r[:15]) + "..."
		}
		return e.Text
	}
	switch e.Kind {
	case KindRectangle:
		return "Rectangle"
	case KindCircle:
		return "Circle"
	case KindText:
		return "Text"
	}
	return string(e.Kind)
}

// Patch is a partial change set. Nil fields are left untouched.
type Patch struct {
	X            *float64
	Y            *float64
	Width        *float64
	Height       *float64
	Fill         *string
	Opacity      *float64
	Text         *string
	FontSize     *float64
	BorderRadius *float64
}

func ptr[T any](v T) *T { return &v }

func MovePatch(x, y float64) Patch { return Patch{X: ptr(x), Y: ptr(y)} }

func SizePatch(w, h float64) Patch { return Patch{Width: ptr(w), Height: ptr(h)} }

func BoundsPatch(x, y, w, h float64) Patch {
	return Patch{X: ptr(x), Y: ptr(y), Width: ptr(w), Height: ptr(h)}
}

func FillPatch(fill string) Patch { return Patch{Fill: ptr(fill)} }

func TextPatch(text string) Patch { return Patch{Text: ptr(text)} }

func OpacityPatch(o float64) Patch { return Patch{Opacity: ptr(o)} }

func FontSizePatch(size float64) Patch { return Patch{FontSize: ptr(size)} }

func RadiusPatch(r float64) Patch { return Patch{BorderRadius: ptr(r)} }

func (p Patch) Empty() bool {
	return p.X == nil && p.Y == nil && p.Width == nil && p.Height == nil &&
		p.Fill == nil && p.Opacity == nil && p.Text == nil &&
		p.FontSize == nil && p.BorderRadius == nil
}

// Apply merges p over e.
func (e Element) Apply(p Patch) Element {
	if p.X != nil {
		e.X = *p.X
	}
	if p.Y != nil {
		e.Y = *p.Y
	}
	if p.Width != nil {
		e.Width = *p.Width
	}
	if p.Height != nil {
		e.Height = *p.Height
	}
	if p.Fill != nil {
		e.Fill = *p.Fill
	}
	if p.Opacity != nil {
		e.Opacity = *p.Opacity
	}
	if p.Text != nil {
		e.Text = *p.Text
	}
	if p.FontSize != nil {
		e.FontSize = *p.FontSize
	}
	if p.BorderRadius != nil {
		e.BorderRadius = *p.BorderRadius
	}
	return e
}

// sanitize clamps inspector input into the element invariants. NaN and
// infinite values are dropped.
func (p Patch) sanitize() Patch {
	finite := func(v *float64) *float64 {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			return nil
		}
		return v
	}
	clampMin := func(v *float64) *float64 {
		if v = finite(v); v != nil && *v < 0 {
			return ptr(0.0)
		}
		return v
	}
	p.X = finite(p.X)
	p.Y = finite(p.Y)
	p.Width = clampMin(p.Width)
	p.Height = clampMin(p.Height)
	p.BorderRadius = clampMin(p.BorderRadius)
	if p.Opacity = finite(p.Opacity); p.Opacity != nil {
		p.Opacity = ptr(min(max(*p.Opacity, 0), 1))
	}
	if p.FontSize = finite(p.FontSize); p.FontSize != nil && *p.FontSize <= 0 {
		p.FontSize = nil
	}
	return p
}
