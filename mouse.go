package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"figmini/internal/editor"
)

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	l := m.layout()
	screen := screenPoint(msg.X, msg.Y)

	if ev, ok := wheelEvent(msg); ok {
		if l.inCanvas(msg.X, msg.Y) {
			m.session.HandleWheel(ev)
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		button, ok := pointerButton(msg.Button)
		if !ok {
			return m, nil
		}
		switch {
		case l.inCanvas(msg.X, msg.Y):
			ev := editor.PointerEvent{Action: editor.PointerDown, Button: button, Screen: screen}
			if e, hit := m.session.ElementAt(screen); hit {
				ev.Target = e.ID
			}
			m.session.HandlePointer(ev)
			m.gesture = true
		case msg.Y < toolbarHeight:
			if tool, ok := toolAt(msg.X); ok {
				m.session.SetTool(tool)
			}
		case msg.X < layersWidth:
			if e, ok := m.layerAt(msg.Y); ok {
				m.session.Select(e.ID)
			}
		}

	case tea.MouseActionMotion:
		if !m.gesture {
			return m, nil
		}
		if l.inCanvas(msg.X, msg.Y) {
			m.session.HandlePointer(editor.PointerEvent{Action: editor.PointerMove, Screen: screen})
		} else {
			m.session.HandlePointer(editor.PointerEvent{Action: editor.PointerLeave, Screen: screen})
			m.gesture = false
		}

	case tea.MouseActionRelease:
		if m.gesture {
			m.session.HandlePointer(editor.PointerEvent{Action: editor.PointerUp, Screen: screen})
			m.gesture = false
		}
	}
	return m, nil
}

func pointerButton(b tea.MouseButton) (editor.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return editor.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return editor.ButtonMiddle, true
	case tea.MouseButtonRight:
		return editor.ButtonSecondary, true
	}
	return 0, false
}

// wheelEvent maps one wheel notch to wheelStep screen units. Ctrl zooms.
func wheelEvent(msg tea.MouseMsg) (editor.WheelEvent, bool) {
	ev := editor.WheelEvent{Zoom: msg.Ctrl}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ev.DeltaY = -wheelStep
	case tea.MouseButtonWheelDown:
		ev.DeltaY = wheelStep
	case tea.MouseButtonWheelLeft:
		ev.DeltaX = -wheelStep
	case tea.MouseButtonWheelRight:
		ev.DeltaX = wheelStep
	default:
		return editor.WheelEvent{}, false
	}
	return ev, true
}

// layerAt maps a row of the layer list to its element. Row 0 of the
// panel is the title.
func (m model) layerAt(y int) (editor.Element, bool) {
	i := y - toolbarHeight - 1
	layers := m.session.Store().Layers()
	if i < 0 || i >= len(layers) {
		return editor.Element{}, false
	}
	return layers[i], true
}
