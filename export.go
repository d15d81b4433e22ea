package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"figmini/internal/render"
)

// submitExport resolves the file name against the export directory and
// asks before overwriting when confirmations are on.
func (m model) submitExport(name string) model {
	name = strings.TrimSpace(name)
	if name == "" {
		m.errorMessage = "No file name given"
		return m
	}
	if !strings.EqualFold(filepath.Ext(name), ".png") {
		name += ".png"
	}
	path := m.config.GetSavePath(name)
	m.filename = name

	if _, err := os.Stat(path); err == nil && m.config.Confirmations {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmOverwriteFile
		m.filename = path
		return m
	}
	m.exportPNG(path)
	return m
}

func (m *model) exportPNG(path string) {
	if err := render.ExportPNG(m.session.Elements(), path, render.DefaultPNGOptions); err != nil {
		log.Printf("export %s: %v", path, err)
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}
	m.successMessage = "Exported " + path
}
