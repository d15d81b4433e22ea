package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"figmini/internal/editor"
	"figmini/internal/render"
)

type layout struct {
	canvasX, canvasY int
	canvasW, canvasH int
}

// layout splits the screen into toolbar, layer list, canvas, inspector and
// status line. The canvas keeps a minimum size on tiny terminals.
func (m model) layout() layout {
	return layout{
		canvasX: layersWidth,
		canvasY: toolbarHeight,
		canvasW: max(m.width-layersWidth-inspectorWidth, minCanvasWidth),
		canvasH: max(m.height-toolbarHeight-statusHeight, minCanvasHeight),
	}
}

func (l layout) inCanvas(x, y int) bool {
	return x >= l.canvasX && x < l.canvasX+l.canvasW &&
		y >= l.canvasY && y < l.canvasY+l.canvasH
}

// screenPoint is the centre of terminal cell (x, y) in screen units.
func screenPoint(x, y int) editor.Point {
	cell := render.DefaultCell
	return editor.Point{
		X: float64(x)*cell.W + cell.W/2,
		Y: float64(y)*cell.H + cell.H/2,
	}
}

func (m model) handlePanKey(msg tea.KeyMsg) model {
	switch key := msg.String(); key {
	case "z", "esc", "enter", "q":
		m.mode = ModeNormal
	default:
		m.handlePan(key, getPanSpeed(key))
	}
	return m
}

func (m model) handlePan(key string, speed float64) {
	step := panStep * speed
	switch key {
	case "h", "left", "H", "shift+left":
		m.session.PanBy(editor.Point{X: step})
	case "l", "right", "L", "shift+right":
		m.session.PanBy(editor.Point{X: -step})
	case "k", "up", "K", "shift+up":
		m.session.PanBy(editor.Point{Y: step})
	case "j", "down", "J", "shift+down":
		m.session.PanBy(editor.Point{Y: -step})
	}
}

func getPanSpeed(key string) float64 {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 5
	default:
		return 1
	}
}
