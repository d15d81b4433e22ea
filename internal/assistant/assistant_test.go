package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGenerator struct {
	out     string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.out, f.err
}

func TestColorSuggestion(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		want string
	}{
		{"valid", "#FF0000", nil, "#FF0000"},
		{"lower case with whitespace", "  #00ff7a\n", nil, "#00ff7a"},
		{"named color", "lightblue", nil, FallbackColor},
		{"short hex", "#fff", nil, FallbackColor},
		{"extra text", "Try #112233", nil, FallbackColor},
		{"empty", "", nil, FallbackColor},
		{"failure", "", errors.New("boom"), FallbackColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(&fakeGenerator{out: tt.out, err: tt.err})
			if got := a.ColorSuggestion(context.Background(), "sky"); got != tt.want {
				t.Errorf("ColorSuggestion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorSuggestion_NoKey(t *testing.T) {
	if got := New(nil).ColorSuggestion(context.Background(), "sky"); got != NoKeyColor {
		t.Errorf("ColorSuggestion() = %q, want %q", got, NoKeyColor)
	}
}

func TestColorSuggestion_DefaultPrompt(t *testing.T) {
	gen := &fakeGenerator{out: "#000000"}
	New(gen).ColorSuggestion(context.Background(), " ")
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], DefaultColorPrompt) {
		t.Errorf("prompts = %q, want one containing %q", gen.prompts, DefaultColorPrompt)
	}
}

func TestContentSuggestion(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		want string
	}{
		{"suggestion", "  Buy now  ", nil, "Buy now"},
		{"empty keeps current", "   ", nil, "Click here"},
		{"failure", "", errors.New("boom"), FailureText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{out: tt.out, err: tt.err}
			got := New(gen).ContentSuggestion(context.Background(), "make it punchy", "Click here")
			if got != tt.want {
				t.Errorf("ContentSuggestion() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(gen.prompts[0], "Click here") || !strings.Contains(gen.prompts[0], "make it punchy") {
				t.Errorf("prompt misses context: %q", gen.prompts[0])
			}
		})
	}
}

func TestContentSuggestion_NoKey(t *testing.T) {
	a, err := FromKey(context.Background(), "", "")
	if err != nil {
		t.Fatal(err)
	}
	if a.Configured() {
		t.Errorf("assistant without key reports configured")
	}
	if got := a.ContentSuggestion(context.Background(), "x", "y"); got != NoKeyText {
		t.Errorf("ContentSuggestion() = %q, want %q", got, NoKeyText)
	}
}
