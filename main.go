package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"figmini/internal/assistant"
	"figmini/internal/editor"
	"figmini/internal/render"
)

func main() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		fmt.Fprintln(os.Stderr, "figmini: stdout is not a terminal")
		os.Exit(1)
	}

	config := loadConfig()
	if config.LogFile != "" {
		f, err := tea.LogToFile(config.LogFile, "figmini")
		if err != nil {
			fmt.Fprintln(os.Stderr, "figmini:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ai, err := assistant.FromKey(context.Background(), config.APIKey, config.GeminiModel)
	if err != nil {
		log.Printf("assistant disabled: %v", err)
		ai = assistant.New(nil)
	}

	p := tea.NewProgram(
		initialModel(config, ai, editor.UUIDs{}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "figmini:", err)
		os.Exit(1)
	}
}

type model struct {
	width          int
	height         int
	config         *Config
	session        *editor.Session
	assistant      *assistant.Assistant
	mode           Mode
	input          textinput.Model
	gesture        bool
	aiBusy         bool
	help           bool
	helpScroll     int
	filename       string
	confirmAction  ConfirmAction
	successMessage string
	errorMessage   string
}

func initialModel(config *Config, ai *assistant.Assistant, ids editor.IDGenerator) model {
	opts := []editor.Option{
		editor.WithIDs(ids),
		editor.WithHistoryDepth(config.HistoryDepth),
	}
	if config.Welcome {
		opts = append(opts, editor.WithElements(welcomeElements(ids)...))
	}
	session := editor.NewSession(opts...)
	session.SetOrigin(editor.Point{
		X: layersWidth * render.DefaultCell.W,
		Y: toolbarHeight * render.DefaultCell.H,
	})

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 256

	return model{
		config:    config,
		session:   session,
		assistant: ai,
		input:     input,
	}
}

func welcomeElements(ids editor.IDGenerator) []editor.Element {
	return []editor.Element{
		{
			ID: ids.NewID(), Kind: editor.KindRectangle,
			X: 100, Y: 100, Width: 200, Height: 150,
			Fill: "#4f46e5", Opacity: 1, BorderRadius: 12,
		},
		{
			ID: ids.NewID(), Kind: editor.KindText,
			X: 120, Y: 140, Width: 160, Height: 40,
			Fill: editor.TextFill, Opacity: 1, Text: "Hello, Figmini!", FontSize: 24,
		},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		if m.help || (m.mode != ModeNormal && m.mode != ModePan) {
			return m, nil
		}
		return m.handleMouse(msg)

	case suggestionMsg:
		return m.applySuggestion(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.help {
			return m.handleHelpKey(msg), nil
		}
		switch m.mode {
		case ModePan:
			return m.handlePanKey(msg), nil
		case ModeProperty, ModeAssist, ModeExport:
			return m.handleInputKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.successMessage = ""
	m.errorMessage = ""

	switch msg.String() {
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
	case "z":
		m.mode = ModePan
	case "v", "h", "r", "o", "t":
		m.session.SetTool(toolForKey(msg.String()))
	case "+", "=":
		m.session.HandleWheel(editor.WheelEvent{DeltaY: -wheelStep, Zoom: true})
	case "-", "_":
		m.session.HandleWheel(editor.WheelEvent{DeltaY: wheelStep, Zoom: true})
	case "enter":
		return m.openPrompt(ModeProperty, "")
	case "e":
		if e, ok := m.session.Selected(); ok && e.Kind == editor.KindText {
			return m.openPrompt(ModeProperty, "text="+escapeText(e.Text))
		}
	case "a":
		return m.openAssist()
	case "y":
		m.copySelection()
	case "ctrl+v", "p":
		m.pasteText()
	case "S":
		name := m.filename
		if name == "" {
			name = "design.png"
		}
		return m.openPrompt(ModeExport, name)
	default:
		if ev, ok := keyEvent(msg); ok {
			m.session.HandleKey(ev)
		}
	}
	return m, nil
}

// keyEvent translates the editor shortcuts. u and U mirror ctrl+z and
// ctrl+y for terminals that swallow those.
func keyEvent(msg tea.KeyMsg) (editor.KeyEvent, bool) {
	switch msg.String() {
	case "delete":
		return editor.KeyEvent{Key: editor.KeyDelete}, true
	case "backspace":
		return editor.KeyEvent{Key: editor.KeyBackspace}, true
	case "esc":
		return editor.KeyEvent{Key: editor.KeyEscape}, true
	case "up":
		return editor.KeyEvent{Key: editor.KeyUp}, true
	case "down":
		return editor.KeyEvent{Key: editor.KeyDown}, true
	case "left":
		return editor.KeyEvent{Key: editor.KeyLeft}, true
	case "right":
		return editor.KeyEvent{Key: editor.KeyRight}, true
	case "shift+up":
		return editor.KeyEvent{Key: editor.KeyUp, Shift: true}, true
	case "shift+down":
		return editor.KeyEvent{Key: editor.KeyDown, Shift: true}, true
	case "shift+left":
		return editor.KeyEvent{Key: editor.KeyLeft, Shift: true}, true
	case "shift+right":
		return editor.KeyEvent{Key: editor.KeyRight, Shift: true}, true
	case "ctrl+d":
		return editor.KeyEvent{Key: editor.KeyD, Ctrl: true}, true
	case "ctrl+z", "u":
		return editor.KeyEvent{Key: editor.KeyZ, Ctrl: true}, true
	case "ctrl+y", "U":
		return editor.KeyEvent{Key: editor.KeyY, Ctrl: true}, true
	}
	return editor.KeyEvent{}, false
}

func toolForKey(key string) editor.Tool {
	switch key {
	case "h":
		return editor.ToolHand
	case "r":
		return editor.ToolRectangle
	case "o":
		return editor.ToolCircle
	case "t":
		return editor.ToolText
	default:
		return editor.ToolSelect
	}
}

func (m model) openPrompt(mode Mode, value string) (tea.Model, tea.Cmd) {
	if mode != ModeExport {
		if _, ok := m.session.Selected(); !ok {
			m.errorMessage = "Nothing selected"
			return m, nil
		}
	}
	m.mode = mode
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m model) closePrompt() model {
	m.mode = ModeNormal
	m.input.Blur()
	m.input.Reset()
	return m
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closePrompt(), nil
	case "enter":
		value := m.input.Value()
		mode := m.mode
		m = m.closePrompt()
		switch mode {
		case ModeProperty:
			m.applyProperties(value)
		case ModeAssist:
			return m.submitAssist(value)
		case ModeExport:
			return m.submitExport(value), nil
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			m.exportPNG(m.filename)
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleHelpKey(msg tea.KeyMsg) model {
	switch msg.String() {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return m
}
