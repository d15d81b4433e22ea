package editor

type Key int

const (
	KeyOther Key = iota
	KeyDelete
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyD
	KeyZ
	KeyY
)

// KeyEvent is a key press. Ctrl covers both ctrl and cmd/meta.
type KeyEvent struct {
	Key         Key
	Shift       bool
	Ctrl        bool
	InTextInput bool
}

// KeyResult tells the front end what happened to the key.
type KeyResult struct {
	Handled bool
	// PreventDefault asks the host to suppress its own handling, such as
	// scrolling on arrow keys.
	PreventDefault bool
}

const (
	nudgeStep      = 1.0
	nudgeShiftStep = 10.0
	duplicateShift = 20.0
)

func (ev KeyEvent) isUndo() bool { return ev.Ctrl && ev.Key == KeyZ && !ev.Shift }

func (ev KeyEvent) isRedo() bool {
	return ev.Ctrl && (ev.Key == KeyY || (ev.Key == KeyZ && ev.Shift))
}

// HandleKey runs the global shortcut table against the session.
func (s *Session) HandleKey(ev KeyEvent) KeyResult {
	if ev.InTextInput {
		return KeyResult{}
	}
	if s.selected == "" && ev.Key != KeyZ && ev.Key != KeyY {
		return KeyResult{}
	}

	switch {
	case ev.isUndo():
		return KeyResult{Handled: s.Undo(), PreventDefault: true}
	case ev.isRedo():
		return KeyResult{Handled: s.Redo(), PreventDefault: true}
	}
	if s.selected == "" {
		return KeyResult{}
	}

	switch ev.Key {
	case KeyDelete, KeyBackspace:
		s.Delete(s.selected)
		return KeyResult{Handled: true}
	case KeyEscape:
		s.selected = ""
		s.tool = ToolSelect
		return KeyResult{Handled: true}
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		step := nudgeStep
		if ev.Shift {
			step = nudgeShiftStep
		}
		var dx, dy float64
		switch ev.Key {
		case KeyLeft:
			dx = -step
		case KeyRight:
			dx = step
		case KeyUp:
			dy = -step
		case KeyDown:
			dy = step
		}
		s.Nudge(dx, dy)
		return KeyResult{Handled: true, PreventDefault: true}
	case KeyD:
		if !ev.Ctrl {
			return KeyResult{}
		}
		s.Duplicate()
		return KeyResult{Handled: true, PreventDefault: true}
	}
	return KeyResult{}
}
