// Package config provides configuration types and defaults for monkeycmd.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Deetschoe/monkeycmd/internal/command"
)

// ThemeConfig holds the color tokens the trainer UI uses. Values are
// hex colors; empty values fall back to the built-in theme.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"` // key caps and accents
	Subtle    string `mapstructure:"subtle"`    // help text and borders
	Error     string `mapstructure:"error"`     // failed rounds
	Success   string `mapstructure:"success"`   // passed rounds
	Cursor    string `mapstructure:"cursor"`    // cursor block in the edit view
	Selection string `mapstructure:"selection"` // selection background
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool `mapstructure:"show_status_bar"`
	ShowKeyHint   bool `mapstructure:"show_key_hint"` // reveal the chord during a round
}

// Config holds all configuration options for monkeycmd.
type Config struct {
	// OS overrides platform detection. Valid values: "mac", "windows",
	// "linux", or empty for autodetect.
	OS string `mapstructure:"os"`

	// Duration is the session length in seconds.
	Duration int `mapstructure:"duration"`

	// Commands restricts training to the listed command IDs.
	// Empty means every command is in rotation.
	Commands []string `mapstructure:"commands"`

	// DBPath overrides the score database location.
	DBPath string `mapstructure:"db_path"`

	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		OS:       "",
		Duration: 60,
		UI: UIConfig{
			ShowStatusBar: true,
			ShowKeyHint:   false,
		},
		Theme: ThemeConfig{
			Highlight: "#10B981",
			Subtle:    "#6B7280",
			Error:     "#FF8787",
			Success:   "#73F59F",
			Cursor:    "#F59E0B",
			Selection: "#3B4261",
		},
	}
}

// ResolveOS returns the command.OS to train for: the configured
// override when set, otherwise the detected platform.
func (c Config) ResolveOS() (command.OS, error) {
	if c.OS == "" {
		return command.DetectOS(), nil
	}
	return command.ParseOS(c.OS)
}

// EnabledCommands returns the command IDs in rotation. An empty list
// means all commands; unknown IDs are rejected rather than silently
// skipped so typos in the config surface immediately.
func (c Config) EnabledCommands() ([]command.ID, error) {
	if len(c.Commands) == 0 {
		return command.AllIDs(), nil
	}

	ids := make([]command.ID, 0, len(c.Commands))
	for _, raw := range c.Commands {
		cmd, err := command.Lookup(command.ID(raw))
		if err != nil {
			return nil, fmt.Errorf("config commands: %w", err)
		}
		ids = append(ids, cmd.ID)
	}
	return ids, nil
}

// SessionDuration returns the configured session length, falling back
// to the default for non-positive values.
func (c Config) SessionDuration() time.Duration {
	if c.Duration <= 0 {
		return time.Duration(Defaults().Duration) * time.Second
	}
	return time.Duration(c.Duration) * time.Second
}

// DatabasePath returns the score database location, defaulting to
// ~/.config/monkeycmd/scores.db.
func (c Config) DatabasePath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return DefaultDBPath()
}

// DefaultDBPath returns ~/.config/monkeycmd/scores.db, or a relative
// fallback when the home directory is unavailable.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".monkeycmd", "scores.db")
	}
	return filepath.Join(home, ".config", "monkeycmd", "scores.db")
}

// DefaultLogPath returns the debug log location next to the database.
func DefaultLogPath() string {
	return filepath.Join(filepath.Dir(DefaultDBPath()), "debug.log")
}
