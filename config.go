package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"figmini/internal/assistant"
	"figmini/internal/editor"
)

type Config struct {
	ExportDirectory string
	Welcome         bool
	Confirmations   bool
	GeminiModel     string
	APIKey          string
	LogFile         string
	HistoryDepth    int
	AITimeout       time.Duration
}

func defaultConfig() *Config {
	return &Config{
		Welcome:       true,
		Confirmations: true,
		GeminiModel:   assistant.DefaultModel,
		HistoryDepth:  editor.DefaultHistoryDepth,
		AITimeout:     30 * time.Second,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	if homeDir, err := os.UserHomeDir(); err == nil {
		if file, err := os.Open(filepath.Join(homeDir, ".figminirc")); err == nil {
			parseConfig(file, homeDir, config)
			file.Close()
		}
	}

	for _, key := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if value := os.Getenv(key); value != "" {
			config.APIKey = value
			break
		}
	}
	return config
}

// parseConfig reads key=value lines; '#' starts a comment line and keys
// are case-insensitive. Unknown keys and bad values are skipped.
func parseConfig(r io.Reader, homeDir string, config *Config) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "exportdirectory", "export_directory", "exportdir":
			config.ExportDirectory = expandPath(value, homeDir)
		case "welcome":
			config.Welcome = strings.ToLower(value) == "true"
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "gemini_model", "model":
			config.GeminiModel = value
		case "api_key", "gemini_api_key":
			config.APIKey = value
		case "log_file", "logfile":
			config.LogFile = expandPath(value, homeDir)
		case "history_depth", "undo_depth":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.HistoryDepth = n
			}
		case "ai_timeout":
			if d, err := time.ParseDuration(value); err == nil && d > 0 {
				config.AITimeout = d
			}
		}
	}
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.ExportDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.ExportDirectory, 0755)
	return filepath.Join(c.ExportDirectory, filename)
}
