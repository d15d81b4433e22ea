package editor

import "math"

type Tool int

const (
	ToolSelect Tool = iota
	ToolHand
	ToolRectangle
	ToolCircle
	ToolText
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolHand:
		return "hand"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	case ToolText:
		return "text"
	default:
		return "unknown"
	}
}

// Kind returns the element kind a drawing tool creates.
func (t Tool) Kind() (Kind, bool) {
	switch t {
	case ToolRectangle:
		return KindRectangle, true
	case ToolCircle:
		return KindCircle, true
	case ToolText:
		return KindText, true
	}
	return "", false
}

// Interaction is the gesture in progress. Exactly one variant is active.
type Interaction interface {
	interaction()
}

type Idle struct{}

type Panning struct {
	Last Point // screen space
}

type Drawing struct {
	Anchor    Point // document space
	ElementID string
}

type DraggingElement struct {
	GrabOffset Point // document space
}

func (Idle) interaction()            {}
func (Panning) interaction()         {}
func (Drawing) interaction()         {}
func (DraggingElement) interaction() {}

type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
	PointerLeave
)

type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// PointerEvent is a pointer sample in screen space. Target names the
// element under the pointer, if any; the front end does the hit test.
type PointerEvent struct {
	Action PointerAction
	Button Button
	Screen Point
	Target string
}

// Command is a store, selection or viewport mutation produced by Step.
type Command interface {
	command()
}

type AddElement struct{ Element Element }

type PatchElement struct {
	ID    string
	Patch Patch
}

// SelectElement selects ID; an empty ID clears the selection.
type SelectElement struct{ ID string }

type PanViewport struct{ Delta Point }

func (AddElement) command()    {}
func (PatchElement) command()  {}
func (SelectElement) command() {}
func (PanViewport) command()   {}

// Env is the read-only context a transition is evaluated in.
type Env struct {
	Tool     Tool
	Viewport Viewport
	Store    Store
	Selected string
	IDs      IDGenerator
}

const (
	textDefaultWidth  = 100.0
	textDefaultHeight = 30.0
)

// Step is the interaction transition function. It never mutates env;
// the returned commands are to be applied in order.
func Step(state Interaction, ev PointerEvent, env Env) (Interaction, []Command) {
	if state == nil {
		state = Idle{}
	}
	doc := env.Viewport.ToDocument(ev.Screen)

	switch ev.Action {
	case PointerDown:
		return pointerDown(ev, doc, env)

	case PointerMove:
		switch s := state.(type) {
		case Panning:
			return Panning{Last: ev.Screen}, []Command{PanViewport{Delta: ev.Screen.Sub(s.Last)}}
		case Drawing:
			w := doc.X - s.Anchor.X
			h := doc.Y - s.Anchor.Y
			x, y := s.Anchor.X, s.Anchor.Y
			if w < 0 {
				x = doc.X
			}
			if h < 0 {
				y = doc.Y
			}
			return s, []Command{PatchElement{ID: s.ElementID, Patch: BoundsPatch(x, y, math.Abs(w), math.Abs(h))}}
		case DraggingElement:
			if env.Selected == "" {
				return s, nil
			}
			pos := doc.Sub(s.GrabOffset)
			return s, []Command{PatchElement{ID: env.Selected, Patch: MovePatch(pos.X, pos.Y)}}
		}
		return state, nil

	case PointerUp, PointerLeave:
		var cmds []Command
		if d, ok := state.(Drawing); ok && env.Tool == ToolText {
			if e, found := env.Store.Get(d.ElementID); found && e.Width == 0 {
				cmds = append(cmds, PatchElement{ID: d.ElementID, Patch: SizePatch(textDefaultWidth, textDefaultHeight)})
			}
		}
		return Idle{}, cmds
	}
	return state, nil
}

func pointerDown(ev PointerEvent, doc Point, env Env) (Interaction, []Command) {
	// Element presses win over the canvas handler while selecting.
	if env.Tool == ToolSelect && ev.Target != "" {
		if e, ok := env.Store.Get(ev.Target); ok {
			return DraggingElement{GrabOffset: doc.Sub(e.Origin())}, []Command{SelectElement{ID: e.ID}}
		}
	}

	if ev.Button == ButtonMiddle || env.Tool == ToolHand {
		return Panning{Last: ev.Screen}, nil
	}

	if kind, ok := env.Tool.Kind(); ok {
		e := newElement(env.IDs.NewID(), kind, doc)
		return Drawing{Anchor: doc, ElementID: e.ID}, []Command{
			AddElement{Element: e},
			SelectElement{ID: e.ID},
		}
	}

	if env.Tool == ToolSelect {
		return Idle{}, []Command{SelectElement{}}
	}
	return Idle{}, nil
}

func newElement(id string, kind Kind, at Point) Element {
	e := Element{
		ID:      id,
		Kind:    kind,
		X:       at.X,
		Y:       at.Y,
		Fill:    ShapeFill,
		Opacity: 1,
	}
	if kind == KindText {
		e.Fill = TextFill
		e.Text = PlaceholderText
		e.FontSize = CreationFontSize
	}
	return e
}
