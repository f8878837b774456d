// Package config provides configuration types, defaults, and persistence for monkeycmd.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Deetschoe/monkeycmd/internal/log"
)

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# monkeycmd configuration
#
# Practice keyboard shortcuts for text editing in your terminal.

# Platform whose shortcuts to train: mac, windows, or linux.
# Leave empty to autodetect from the current system.
os: ""

# Session length in seconds.
duration: 60

# Restrict training to specific commands. Empty trains everything.
# Run 'monkeycmd commands' for the full list of IDs.
# commands:
#   - DELETE_WORD
#   - SELECT_ALL

ui:
  show_status_bar: true
  # Reveal the key chord during a round instead of only on a miss.
  show_key_hint: false

# Color overrides, as hex values.
theme:
  highlight: "#10B981"
  subtle: "#6B7280"
  error: "#FF8787"
  success: "#73F59F"
  cursor: "#F59E0B"
  selection: "#3B4261"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist. Refuses to overwrite
// an existing file.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write to a temp file first so a crash never leaves a half-written
	// config behind.
	temp, err := os.CreateTemp(dir, ".monkeycmd.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.WriteString(DefaultConfigTemplate()); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
