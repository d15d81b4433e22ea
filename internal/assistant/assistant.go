// Package assistant asks a generative model for text and color
// suggestions. Its functions always return a usable value: failures turn
// into fallbacks so the editor never sees an error.
package assistant

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
)

const (
	DefaultModel = "gemini-2.5-flash"

	// FallbackColor is returned when the model fails or answers with
	// something that is not a hex color.
	FallbackColor = "#3b82f6"
	// NoKeyColor is returned when no credential is configured.
	NoKeyColor = "#cccccc"

	NoKeyText   = "Error: API key not found."
	FailureText = "Error generating text."

	DefaultColorPrompt = "Modern UI Color"
)

var hexColor = regexp.MustCompile(`(?i)^#[0-9a-f]{6}$`)

// Generator sends one prompt to a model and returns its raw text answer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Assistant struct {
	gen Generator
}

// New returns an assistant backed by gen. A nil gen means no credential
// is configured.
func New(gen Generator) *Assistant {
	return &Assistant{gen: gen}
}

func (a *Assistant) Configured() bool {
	return a != nil && a.gen != nil
}

// ContentSuggestion proposes replacement text for currentText.
func (a *Assistant) ContentSuggestion(ctx context.Context, prompt, currentText string) string {
	if !a.Configured() {
		return NoKeyText
	}
	out, err := a.gen.Generate(ctx, contentPrompt(prompt, currentText))
	if err != nil {
		log.Printf("assistant: text suggestion: %v", err)
		return FailureText
	}
	if out = strings.TrimSpace(out); out == "" {
		return currentText
	}
	return out
}

// ColorSuggestion proposes a #RRGGBB fill for the prompt.
func (a *Assistant) ColorSuggestion(ctx context.Context, prompt string) string {
	if !a.Configured() {
		return NoKeyColor
	}
	if strings.TrimSpace(prompt) == "" {
		prompt = DefaultColorPrompt
	}
	out, err := a.gen.Generate(ctx, colorPrompt(prompt))
	if err != nil {
		log.Printf("assistant: color suggestion: %v", err)
		return FallbackColor
	}
	color := strings.TrimSpace(out)
	if !hexColor.MatchString(color) {
		return FallbackColor
	}
	return color
}

func contentPrompt(request, current string) string {
	return fmt.Sprintf(`You are a UX writer assistant. The user wants to improve or generate text for a design interface.
Context/Current Text: %q
User Request: %q

Return ONLY the suggested text string, no explanations, no quotes. Keep it concise and fit for UI.`, current, request)
}

func colorPrompt(request string) string {
	return fmt.Sprintf(`You are a UI Designer. Generate a hexadecimal color code based on this request: %q.
Return ONLY the hex code (e.g., #FF0000). Nothing else.`, request)
}
