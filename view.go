package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"figmini/internal/editor"
	"figmini/internal/render"
)

var (
	accent    = lipgloss.Color(render.SelectColor)
	dimFg     = lipgloss.Color("#8a8a8a")
	panelBg   = lipgloss.Color("#252526")
	borderCol = lipgloss.Color("#3c3c3c")

	titleStyle      = lipgloss.NewStyle().Bold(true)
	dimStyle        = lipgloss.NewStyle().Foreground(dimFg)
	activeToolStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(accent)
	selectedStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))

	layersStyle = lipgloss.NewStyle().
			Width(layersWidth-1).
			Background(panelBg).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(borderCol)
	inspectorStyle = lipgloss.NewStyle().
			Width(inspectorWidth-1).
			Background(panelBg).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(borderCol)
)

const toolbarTitle = " figmini "

var toolbarTools = []struct {
	key  string
	tool editor.Tool
}{
	{"v", editor.ToolSelect},
	{"h", editor.ToolHand},
	{"r", editor.ToolRectangle},
	{"o", editor.ToolCircle},
	{"t", editor.ToolText},
}

func toolbarLabel(key string, tool editor.Tool) string {
	return fmt.Sprintf(" %s %s ", key, tool)
}

// toolAt maps a toolbar column to the tool drawn there.
func toolAt(x int) (editor.Tool, bool) {
	pos := len(toolbarTitle)
	for _, item := range toolbarTools {
		w := len(toolbarLabel(item.key, item.tool))
		if x >= pos && x < pos+w {
			return item.tool, true
		}
		pos += w
	}
	return 0, false
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	l := m.layout()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.layersView(l.canvasH),
		m.canvasView(l),
		m.inspectorView(l.canvasH),
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.toolbarView(), body, m.statusView())
}

func (m model) toolbarView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(toolbarTitle))
	for _, item := range toolbarTools {
		label := toolbarLabel(item.key, item.tool)
		if item.tool == m.session.Tool() {
			b.WriteString(activeToolStyle.Render(label))
		} else {
			b.WriteString(label)
		}
	}
	if m.session.CanUndo() {
		b.WriteString(dimStyle.Render("  u undo"))
	}
	if m.session.CanRedo() {
		b.WriteString(dimStyle.Render("  U redo"))
	}
	return b.String()
}

func (m model) layersView(height int) string {
	lines := []string{titleStyle.Render("Layers")}
	for _, e := range m.session.Store().Layers() {
		label := kindIcon(e.Kind) + " " + e.Label()
		if e.ID == m.session.SelectedID() {
			label = selectedStyle.Render(label)
		}
		lines = append(lines, label)
	}
	if len(lines) == 1 {
		lines = append(lines, dimStyle.Render("empty"))
	}
	return layersStyle.Height(height).MaxHeight(height).Render(strings.Join(lines, "\n"))
}

func kindIcon(k editor.Kind) string {
	switch k {
	case editor.KindCircle:
		return "○"
	case editor.KindText:
		return "T"
	default:
		return "▢"
	}
}

func (m model) canvasView(l layout) string {
	frame := render.Raster(m.session.Elements(), m.session.Viewport(), l.canvasW, l.canvasH,
		render.DefaultCell, m.session.SelectedID())
	return renderFrame(frame)
}

// renderFrame styles runs of cells that share colours in one Render call.
func renderFrame(f render.Frame) string {
	lines := make([]string, f.Rows)
	for r := range lines {
		var line strings.Builder
		start := 0
		for c := 1; c <= f.Cols; c++ {
			first := f.At(start, r)
			if c < f.Cols {
				if next := f.At(c, r); next.Fg == first.Fg && next.Bg == first.Bg {
					continue
				}
			}
			runes := make([]rune, 0, c-start)
			for i := start; i < c; i++ {
				runes = append(runes, f.At(i, r).Rune)
			}
			line.WriteString(cellStyle(first).Render(string(runes)))
			start = c
		}
		lines[r] = line.String()
	}
	return strings.Join(lines, "\n")
}

func cellStyle(c render.Cell) lipgloss.Style {
	s := lipgloss.NewStyle().Background(lipgloss.Color(c.Bg))
	if c.Fg != "" {
		s = s.Foreground(lipgloss.Color(c.Fg))
	}
	return s
}

func (m model) inspectorView(height int) string {
	lines := []string{titleStyle.Render("Properties")}
	e, ok := m.session.Selected()
	if !ok {
		lines = append(lines, "", dimStyle.Render("Select an element to"), dimStyle.Render("edit its properties."))
		return inspectorStyle.Height(height).MaxHeight(height).Render(strings.Join(lines, "\n"))
	}

	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Fill)).Render("██")
	lines = append(lines,
		e.Label(),
		"",
		fmt.Sprintf("X %-8s Y %s", num(e.X), num(e.Y)),
		fmt.Sprintf("W %-8s H %s", num(e.Width), num(e.Height)),
		fmt.Sprintf("Fill %s %s", e.Fill, swatch),
		fmt.Sprintf("Opacity %.2f", e.Opacity),
	)
	switch e.Kind {
	case editor.KindRectangle:
		lines = append(lines, "Radius "+num(e.BorderRadius))
	case editor.KindText:
		lines = append(lines,
			"Font size "+num(e.EffectiveFontSize()),
			"Text "+truncate(escapeText(e.Text), inspectorWidth-7),
		)
	}

	lines = append(lines, "", titleStyle.Render("AI Assistant"))
	switch {
	case m.aiBusy:
		lines = append(lines, selectedStyle.Render("Generating..."))
	case !m.assistant.Configured():
		lines = append(lines, dimStyle.Render("No API key set"))
	case e.Kind == editor.KindText:
		lines = append(lines, dimStyle.Render("a  suggest text"))
	default:
		lines = append(lines, dimStyle.Render("a  suggest a color"))
	}
	lines = append(lines, "", dimStyle.Render("enter  edit fields"))
	if e.Kind == editor.KindText {
		lines = append(lines, dimStyle.Render("e  edit text"))
	}
	return inspectorStyle.Height(height).MaxHeight(height).Render(strings.Join(lines, "\n"))
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModePan:
		return "PAN"
	case ModeProperty:
		return "EDIT"
	case ModeAssist:
		return "ASSIST"
	case ModeExport:
		return "EXPORT"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) statusView() string {
	switch m.mode {
	case ModeProperty:
		return "Mode: EDIT | " + m.input.View()
	case ModeAssist:
		return "Mode: ASSIST | Prompt: " + m.input.View()
	case ModeExport:
		return "Mode: EXPORT | Save as: " + m.input.View()
	case ModeConfirm:
		switch m.confirmAction {
		case ConfirmOverwriteFile:
			return fmt.Sprintf("Mode: CONFIRM | File %s already exists. Overwrite? (y/n)", m.filename)
		default:
			return "Mode: CONFIRM | Quit Figmini? (y/n)"
		}
	}

	status := fmt.Sprintf("Mode: %s | Tool: %s | %s", m.modeString(), m.session.Tool(), m.session.Viewport().Status())
	if m.aiBusy {
		status += " | Generating..."
	}
	switch {
	case m.errorMessage != "":
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		status += " | " + m.successMessage
	default:
		status += " | ? for help | q to quit"
	}
	return status
}

var helpLines = []string{
	"Figmini Help",
	"============",
	"",
	"Tools:",
	"------",
	"  v                Select and move elements",
	"  h                Hand: drag to pan the canvas",
	"  r / o / t        Draw a rectangle, circle or text box",
	"                   Click the toolbar to pick a tool with the mouse",
	"",
	"Canvas:",
	"-------",
	"  Left drag        Draw with the active tool or move the selected element",
	"  Middle drag      Pan the canvas",
	"  Wheel            Scroll; Ctrl+wheel zooms",
	"  + / -            Zoom in / out",
	"  z                Toggle pan mode (h/j/k/l or arrows, Shift pans faster)",
	"",
	"Selection:",
	"----------",
	"  Click a layer    Select it",
	"  Arrows           Nudge by 1 (Shift: 10)",
	"  Ctrl+D           Duplicate at +20,+20",
	"  Delete/Backspace Delete the element",
	"  Esc              Clear selection and return to the select tool",
	"",
	"Properties:",
	"-----------",
	"  Enter            Edit fields, e.g. x=10 y=20 fill=#ff0000 opacity=0.5",
	"                   Fields: x y width height fill opacity radius fontsize text",
	"  e                Edit the text of a text element",
	"  a                Ask the assistant for text or a color",
	"  y                Copy fill (or text) to the clipboard",
	"  p / Ctrl+V       Paste clipboard text into a text element",
	"",
	"General:",
	"--------",
	"  u / Ctrl+Z       Undo",
	"  U / Ctrl+Y       Redo",
	"  S                Export as PNG",
	"  ?                Toggle this help screen",
	"  q / Ctrl+C       Quit",
}

func (m model) helpView() string {
	visibleHeight := max(m.height-1, 1)

	start := min(m.helpScroll, max(len(helpLines)-visibleHeight, 0))
	end := min(start+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[start:end], "\n")
	result += fmt.Sprintf("\nHelp (%d-%d of %d lines) | j/k to scroll, Esc to close",
		start+1, end, len(helpLines))
	return result
}
