package main

import "testing"

func TestCleanClipboardText(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "hello", "hello"},
		{"line endings", "a\r\nb\rc", "a\nb\nc"},
		{"control characters", "a\x00b\x07c\td", "abc\td"},
		{"surrounding space", "  \n hi \n", "hi"},
		{"rtf", `{\rtf1\ansi\deff0 {\fonttbl {\f0 Times;}}\f0\fs24 Hello\par World\}}`, "Times;Hello\nWorld}"},
		{"html", "<html><body><div>Fish &amp; chips</div></body></html>", "Fish & chips"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanClipboardText(tt.in); got != tt.want {
				t.Errorf("cleanClipboardText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
