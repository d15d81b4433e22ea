package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfig(t *testing.T) {
	rc := `# figmini settings
ExportDirectory = ~/designs
welcome=false
confirmations = false
gemini_model=gemini-2.0-flash
history_depth=25
history_depth=nope
ai_timeout=5s
log_file=/tmp/figmini.log
garbage line
unknown=1
`
	got := defaultConfig()
	parseConfig(strings.NewReader(rc), "/home/ada", got)

	want := defaultConfig()
	want.ExportDirectory = filepath.Join("/home/ada", "designs")
	want.Welcome = false
	want.Confirmations = false
	want.GeminiModel = "gemini-2.0-flash"
	want.HistoryDepth = 25
	want.AITimeout = 5 * time.Second
	want.LogFile = "/tmp/figmini.log"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfigAPIKeyFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "secret")
	if got := loadConfig().APIKey; got != "secret" {
		t.Errorf("APIKey = %q, want secret", got)
	}
}

func TestGetSavePath(t *testing.T) {
	dir := t.TempDir()
	c := &Config{ExportDirectory: filepath.Join(dir, "out")}
	if got, want := c.GetSavePath("a.png"), filepath.Join(dir, "out", "a.png"); got != want {
		t.Errorf("GetSavePath = %q, want %q", got, want)
	}
	if got := (&Config{}).GetSavePath("a.png"); got != "a.png" {
		t.Errorf("GetSavePath without directory = %q", got)
	}
}
