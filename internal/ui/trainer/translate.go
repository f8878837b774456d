package trainer

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Deetschoe/monkeycmd/internal/command"
)

// translateKey converts a Bubble Tea key message into the normalized
// key press the dispatcher expects. Bubble Tea encodes modifiers into
// the key string ("ctrl+shift+left", "alt+backspace"), so this peels
// them off the front and maps terminal aliases onto canonical base key
// names.
func translateKey(msg tea.KeyMsg) command.KeyPress {
	var press command.KeyPress

	parts := strings.Split(msg.String(), "+")
	for _, part := range parts[:len(parts)-1] {
		switch part {
		case "ctrl":
			press.Ctrl = true
		case "alt":
			press.Alt = true
		case "shift":
			press.Shift = true
		case "super", "cmd", "meta":
			press.Meta = true
		}
	}

	base := parts[len(parts)-1]
	switch base {
	case " ":
		base = "space"
	case "esc":
		base = "escape"
	}
	press.Key = base

	return press
}
