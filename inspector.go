package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"figmini/internal/editor"
)

// parseAssignments reads "field=value" pairs separated by spaces or
// commas, e.g. "x=10 y=20 fill=#ff0000". A text= pair swallows the rest of
// the line so the text may contain spaces; a literal \n is a line break.
func parseAssignments(input string) (editor.Patch, error) {
	var p editor.Patch

	head := input
	if i := strings.Index(input, "text="); i >= 0 && (i == 0 || strings.ContainsRune(" ,", rune(input[i-1]))) {
		head = input[:i]
		text := unescapeText(input[i+len("text="):])
		p.Text = &text
	}

	fields := strings.FieldsFunc(head, func(r rune) bool { return r == ' ' || r == ',' })
	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok || value == "" {
			return editor.Patch{}, fmt.Errorf("expected field=value, got %q", field)
		}
		key = strings.ToLower(key)

		if key == "fill" || key == "color" {
			c, err := colorful.Hex(value)
			if err != nil {
				return editor.Patch{}, fmt.Errorf("invalid color %q", value)
			}
			hex := c.Hex()
			p.Fill = &hex
			continue
		}

		n, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return editor.Patch{}, fmt.Errorf("invalid value for %s: %q", key, value)
		}
		switch key {
		case "x":
			p.X = &n
		case "y":
			p.Y = &n
		case "w", "width":
			p.Width = &n
		case "h", "height":
			p.Height = &n
		case "opacity":
			p.Opacity = &n
		case "radius", "r":
			p.BorderRadius = &n
		case "fontsize", "font", "size":
			p.FontSize = &n
		default:
			return editor.Patch{}, fmt.Errorf("unknown field %q", key)
		}
	}

	if p.Empty() {
		return editor.Patch{}, fmt.Errorf("no fields given")
	}
	return p, nil
}

func (m *model) applyProperties(input string) {
	e, ok := m.session.Selected()
	if !ok {
		m.errorMessage = "Nothing selected"
		return
	}
	p, err := parseAssignments(input)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	if m.session.Update(e.ID, p) {
		m.successMessage = "Updated " + e.Label()
	}
}

func escapeText(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

func unescapeText(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
