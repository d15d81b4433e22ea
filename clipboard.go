package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"figmini/internal/editor"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// copySelection puts the selected element's text, or its fill for shapes,
// on the system clipboard.
func (m *model) copySelection() {
	e, ok := m.session.Selected()
	if !ok {
		m.errorMessage = "Nothing selected"
		return
	}
	value := e.Fill
	if e.Kind == editor.KindText {
		value = e.Text
	}
	if err := clipboard.WriteAll(value); err != nil {
		m.errorMessage = "Clipboard unavailable: " + err.Error()
		return
	}
	m.successMessage = "Copied " + value
}

func (m *model) pasteText() {
	e, ok := m.session.Selected()
	if !ok || e.Kind != editor.KindText {
		m.errorMessage = "Select a text element to paste into"
		return
	}
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = "Clipboard unavailable: " + err.Error()
		return
	}
	text = cleanClipboardText(text)
	if text == "" {
		m.errorMessage = "Clipboard is empty"
		return
	}
	if m.session.Update(e.ID, editor.TextPatch(text)) {
		m.successMessage = "Pasted text"
	}
}

func isHTML(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "<") &&
		(strings.Contains(text, "<html") || strings.Contains(text, "<body") || strings.Contains(text, "<div"))
}

func extractTextFromHTML(html string) string {
	var result strings.Builder
	result.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			result.WriteRune(r)
		}
	}
	return strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", "\"",
		"&#39;", "'",
		"&nbsp;", " ",
	).Replace(result.String())
}

// cleanClipboardText turns rich clipboard content into the plain text a
// text element holds: RTF and HTML markup is dropped, control characters
// other than newlines and tabs are removed, line endings become \n and
// surrounding blank space is trimmed.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	text = stripRTF(text)
	if isHTML(text) {
		text = extractTextFromHTML(text)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

func stripRTF(text string) string {
	if !strings.HasPrefix(text, "{\\rtf") && !strings.Contains(text, "\\rtf") {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '{' || r == '}':
			continue
		case r == '\\' && i+1 < len(runes):
			next := runes[i+1]
			if isASCIILetter(next) {
				i = skipControlWord(runes, i+1, &result)
				continue
			}
			if next == '\\' || next == '{' || next == '}' || next == '\n' || next == '\t' {
				result.WriteRune(next)
				i++
			}
		case r == '\\':
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

// skipControlWord consumes an RTF control word starting at runes[start]
// with its optional numeric argument and delimiting space, and returns the
// index of its last rune. \par and \line become newlines.
func skipControlWord(runes []rune, start int, out *strings.Builder) int {
	i := start
	for i < len(runes) && isASCIILetter(runes[i]) {
		i++
	}
	word := string(runes[start:i])
	for i < len(runes) && (runes[i] == '-' || (runes[i] >= '0' && runes[i] <= '9')) {
		i++
	}
	if word == "par" || word == "line" {
		out.WriteByte('\n')
	} else if word == "tab" {
		out.WriteByte('\t')
	}
	if i < len(runes) && runes[i] == ' ' {
		return i
	}
	return i - 1
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
