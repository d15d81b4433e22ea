package main

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"figmini/internal/assistant"
	"figmini/internal/editor"
)

// suggestionMsg carries a finished assistant request back to Update.
type suggestionMsg struct {
	id    string
	patch editor.Patch
}

func (m model) openAssist() (tea.Model, tea.Cmd) {
	if m.aiBusy {
		m.errorMessage = "Assistant is busy"
		return m, nil
	}
	return m.openPrompt(ModeAssist, "")
}

func (m model) submitAssist(prompt string) (tea.Model, tea.Cmd) {
	e, ok := m.session.Selected()
	if !ok || m.aiBusy {
		return m, nil
	}
	if e.Kind == editor.KindText && strings.TrimSpace(prompt) == "" {
		m.errorMessage = "Describe the text you want"
		return m, nil
	}
	m.aiBusy = true
	return m, requestSuggestion(m.assistant, m.config.AITimeout, e, prompt)
}

// requestSuggestion runs off the update loop so the canvas stays live.
func requestSuggestion(ai *assistant.Assistant, timeout time.Duration, e editor.Element, prompt string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if e.Kind == editor.KindText {
			return suggestionMsg{id: e.ID, patch: editor.TextPatch(ai.ContentSuggestion(ctx, prompt, e.Text))}
		}
		return suggestionMsg{id: e.ID, patch: editor.FillPatch(ai.ColorSuggestion(ctx, prompt))}
	}
}

func (m model) applySuggestion(msg suggestionMsg) model {
	m.aiBusy = false
	if !m.session.Update(msg.id, msg.patch) {
		m.errorMessage = "Suggestion discarded"
		return m
	}
	m.successMessage = "Suggestion applied"
	return m
}
