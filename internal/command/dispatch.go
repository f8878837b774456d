package command

import (
	"unicode/utf8"

	"github.com/Deetschoe/monkeycmd/internal/editor"
)

// KeyPress is a raw physical key event as delivered by the host:
// a normalized base key name plus modifier flags.
type KeyPress struct {
	Key   string
	Alt   bool
	Ctrl  bool
	Meta  bool
	Shift bool
}

// DispatchResult reports what a key press did to the edit state.
type DispatchResult struct {
	// Handled is false when no chord or built-in editing key matched;
	// the host may then apply its own default behavior.
	Handled bool
	// State is the resulting edit state (unchanged when Handled is false).
	State editor.State
	// Command is the matched table entry, nil for built-in editing keys.
	Command *Command
}

// Dispatch resolves a key press against the command table for os and
// applies the matching operation to state. When several chords share a
// base key, the most specific modifier combination wins (Ctrl+Shift+Left
// beats Shift+Left). Presses that match nothing fall through to the
// built-in editing keys, then to Handled=false.
func Dispatch(os OS, press KeyPress, state editor.State) DispatchResult {
	if cmd := resolve(os, press); cmd != nil {
		return DispatchResult{
			Handled: true,
			State:   editor.Apply(state, cmd.Op),
			Command: cmd,
		}
	}
	if next, ok := applyBuiltin(press, state); ok {
		return DispatchResult{Handled: true, State: next}
	}
	return DispatchResult{Handled: false, State: state}
}

// resolve finds the most specific command chord matching the press.
// Ties go to table order.
func resolve(os OS, press KeyPress) *Command {
	var best *Command
	bestRank := -1
	for i := range commands {
		chord := commands[i].BindingFor(os).Chord
		if !chord.Matches(press) {
			continue
		}
		if rank := chord.ModifierCount(); rank > bestRank {
			best = &commands[i]
			bestRank = rank
		}
	}
	return best
}

// applyBuiltin handles the editing keys every platform shares and that
// are not themselves trained: plain character insertion, single-char
// deletion, and plain horizontal arrows.
func applyBuiltin(press KeyPress, state editor.State) (editor.State, bool) {
	if press.Alt || press.Ctrl || press.Meta {
		return state, false
	}
	switch press.Key {
	case "backspace":
		return state.DeleteChar(editor.Backward), true
	case "delete":
		return state.DeleteChar(editor.Forward), true
	case "left":
		if press.Shift {
			return state, false
		}
		return state.MoveTo(state.Cursor - 1), true
	case "right":
		if press.Shift {
			return state, false
		}
		return state.MoveTo(state.Cursor + 1), true
	case "space":
		return state.InsertText(" "), true
	case "enter":
		return state.InsertText("\n"), true
	}
	// A plain printable character inserts itself. Shift is irrelevant
	// here: the host already delivers the shifted rune.
	if utf8.RuneCountInString(press.Key) == 1 {
		return state.InsertText(press.Key), true
	}
	return state, false
}
