package command

import (
	"fmt"

	"github.com/Deetschoe/monkeycmd/internal/editor"
)

// ID identifies a trainable command.
type ID string

const (
	MoveWordLeft      ID = "MOVE_WORD_LEFT"
	MoveWordRight     ID = "MOVE_WORD_RIGHT"
	JumpLineStart     ID = "JUMP_LINE_START"
	JumpLineEnd       ID = "JUMP_LINE_END"
	DeleteWord        ID = "DELETE_WORD"
	DeleteWordForward ID = "DELETE_WORD_FORWARD"
	DeleteToLineStart ID = "DELETE_TO_LINE_START"
	DeleteToLineEnd   ID = "DELETE_TO_LINE_END"
	SelectWordLeft    ID = "SELECT_WORD_LEFT"
	SelectWordRight   ID = "SELECT_WORD_RIGHT"
	SelectToLineStart ID = "SELECT_TO_LINE_START"
	SelectToLineEnd   ID = "SELECT_TO_LINE_END"
	SelectCharLeft    ID = "SELECT_CHAR_LEFT"
	SelectCharRight   ID = "SELECT_CHAR_RIGHT"
	SelectAll         ID = "SELECT_ALL"
)

// Chord is a physical key plus the modifier flags that must accompany it.
type Chord struct {
	Key   string
	Alt   bool
	Ctrl  bool
	Meta  bool
	Shift bool
}

// ModifierCount returns how many modifier flags the chord requires.
// The dispatcher uses it to rank overlapping chords: more modifiers
// means more specific.
func (c Chord) ModifierCount() int {
	n := 0
	for _, set := range []bool{c.Alt, c.Ctrl, c.Meta, c.Shift} {
		if set {
			n++
		}
	}
	return n
}

// Matches reports whether a key press satisfies the chord: same base
// key and every required modifier held. Extra modifiers on the press do
// not disqualify; the dispatcher prefers the most specific match.
func (c Chord) Matches(press KeyPress) bool {
	if c.Key != press.Key {
		return false
	}
	if c.Alt && !press.Alt {
		return false
	}
	if c.Ctrl && !press.Ctrl {
		return false
	}
	if c.Meta && !press.Meta {
		return false
	}
	if c.Shift && !press.Shift {
		return false
	}
	return true
}

// Binding is one platform's way to invoke a command: the chord the
// dispatcher matches, plus the key cap labels the UI displays.
type Binding struct {
	Keys  []string
	Chord Chord
}

// Command is one trainable shortcut. Static and immutable: the table
// below is defined at process start and never mutated. Each command
// maps 1:1 to a single edit operation.
type Command struct {
	ID          ID
	Name        string
	Instruction string
	Op          editor.Op
	Bindings    map[OS]Binding
}

// BindingFor returns the command's binding for os, falling back to the
// mac binding when the table has no entry for os. The fallback is
// silent and deliberate: incomplete platform tables behave like mac
// rather than breaking.
func (c Command) BindingFor(os OS) Binding {
	if b, ok := c.Bindings[os]; ok {
		return b
	}
	return c.Bindings[OSMac]
}

// commands is the static command table, in display order.
var commands = []Command{
	{
		ID:          MoveWordLeft,
		Name:        "Word Left",
		Instruction: "Move the cursor one word to the left",
		Op:          editor.OpMoveWordLeft,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⌥", "←"}, Chord: Chord{Key: "left", Alt: true}},
			OSWindows: {Keys: []string{"Ctrl", "←"}, Chord: Chord{Key: "left", Ctrl: true}},
			OSLinux:   {Keys: []string{"Ctrl", "←"}, Chord: Chord{Key: "left", Ctrl: true}},
		},
	},
	{
		ID:          MoveWordRight,
		Name:        "Word Right",
		Instruction: "Move the cursor one word to the right",
		Op:          editor.OpMoveWordRight,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⌥", "→"}, Chord: Chord{Key: "right", Alt: true}},
			OSWindows: {Keys: []string{"Ctrl", "→"}, Chord: Chord{Key: "right", Ctrl: true}},
			OSLinux:   {Keys: []string{"Ctrl", "→"}, Chord: Chord{Key: "right", Ctrl: true}},
		},
	},
	{
		ID:          JumpLineStart,
		Name:        "Line Start",
		Instruction: "Jump to the beginning of the line",
		Op:          editor.OpMoveLineStart,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⌘", "←"}, Chord: Chord{Key: "left", Meta: true}},
			OSWindows: {Keys: []string{"Home"}, Chord: Chord{Key: "home"}},
			OSLinux:   {Keys: []string{"Home"}, Chord: Chord{Key: "home"}},
		},
	},
	{
		ID:          JumpLineEnd,
		Name:        "Line End",
		Instruction: "Jump to the end of the line",
		Op:          editor.OpMoveLineEnd,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⌘", "→"}, Chord: Chord{Key: "right", Meta: true}},
			OSWindows: {Keys: []string{"End"}, Chord: Chord{Key: "end"}},
			OSLinux:   {Keys: []string{"End"}, Chord: Chord{Key: "end"}},
		},
	},
	{
		ID:          DeleteWord,
		Name:        "Delete Word",
		Instruction: "Delete the previous word",
		Op:          editor.OpDeleteWord,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⌥", "⌫"}, Chord: Chord{Key: "backspace", Alt: true}},
			OSWindows: {Keys: []string{"Ctrl", "Backspace"}, Chord: Chord{Key: "backspace", Ctrl: true}},
			OSLinux:   {Keys: []string{"Ctrl", "Backspace"}, Chord: Chord{Key: "backspace", Ctrl: true}},
		},
	},
	{
		ID:          DeleteWordForward,
		Name:        "Delete Word Forward",
		Instruction: "Delete the next word",
		Op:          editor.OpDeleteWordForward,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⌥", "⌦"}, Chord: Chord{Key: "delete", Alt: true}},
			OSWindows: {Keys: []string{"Ctrl", "Delete"}, Chord: Chord{Key: "delete", Ctrl: true}},
			OSLinux:   {Keys: []string{"Ctrl", "Delete"}, Chord: Chord{Key: "delete", Ctrl: true}},
		},
	},
	{
		// No windows entry: windows users get the mac chord via fallback.
		ID:          DeleteToLineStart,
		Name:        "Delete to Line Start",
		Instruction: "Delete from the cursor to the beginning of the line",
		Op:          editor.OpDeleteToLineStart,
		Bindings: map[OS]Binding{
			OSMac:   {Keys: []string{"⌘", "⌫"}, Chord: Chord{Key: "backspace", Meta: true}},
			OSLinux: {Keys: []string{"Ctrl", "U"}, Chord: Chord{Key: "u", Ctrl: true}},
		},
	},
	{
		// No windows entry: windows users get the mac chord via fallback.
		ID:          DeleteToLineEnd,
		Name:        "Delete to Line End",
		Instruction: "Delete from the cursor to the end of the line",
		Op:          editor.OpDeleteToLineEnd,
		Bindings: map[OS]Binding{
			OSMac:   {Keys: []string{"Ctrl", "K"}, Chord: Chord{Key: "k", Ctrl: true}},
			OSLinux: {Keys: []string{"Ctrl", "K"}, Chord: Chord{Key: "k", Ctrl: true}},
		},
	},
	{
		ID:          SelectWordLeft,
		Name:        "Select Word Left",
		Instruction: "Select the previous word",
		Op:          editor.OpSelectWordLeft,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⌥", "⇧", "←"}, Chord: Chord{Key: "left", Alt: true, Shift: true}},
			OSWindows: {Keys: []string{"Ctrl", "Shift", "←"}, Chord: Chord{Key: "left", Ctrl: true, Shift: true}},
			OSLinux:   {Keys: []string{"Ctrl", "Shift", "←"}, Chord: Chord{Key: "left", Ctrl: true, Shift: true}},
		},
	},
	{
		ID:          SelectWordRight,
		Name:        "Select Word Right",
		Instruction: "Select the next word",
		Op:          editor.OpSelectWordRight,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⌥", "⇧", "→"}, Chord: Chord{Key: "right", Alt: true, Shift: true}},
			OSWindows: {Keys: []string{"Ctrl", "Shift", "→"}, Chord: Chord{Key: "right", Ctrl: true, Shift: true}},
			OSLinux:   {Keys: []string{"Ctrl", "Shift", "→"}, Chord: Chord{Key: "right", Ctrl: true, Shift: true}},
		},
	},
	{
		ID:          SelectToLineStart,
		Name:        "Select to Line Start",
		Instruction: "Select from the cursor to the beginning of the line",
		Op:          editor.OpSelectToLineStart,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⌘", "⇧", "←"}, Chord: Chord{Key: "left", Meta: true, Shift: true}},
			OSWindows: {Keys: []string{"Shift", "Home"}, Chord: Chord{Key: "home", Shift: true}},
			OSLinux:   {Keys: []string{"Shift", "Home"}, Chord: Chord{Key: "home", Shift: true}},
		},
	},
	{
		ID:          SelectToLineEnd,
		Name:        "Select to Line End",
		Instruction: "Select from the cursor to the end of the line",
		Op:          editor.OpSelectToLineEnd,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⌘", "⇧", "→"}, Chord: Chord{Key: "right", Meta: true, Shift: true}},
			OSWindows: {Keys: []string{"Shift", "End"}, Chord: Chord{Key: "end", Shift: true}},
			OSLinux:   {Keys: []string{"Shift", "End"}, Chord: Chord{Key: "end", Shift: true}},
		},
	},
	{
		ID:          SelectCharLeft,
		Name:        "Select Character Left",
		Instruction: "Extend the selection one character to the left",
		Op:          editor.OpSelectCharLeft,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⇧", "←"}, Chord: Chord{Key: "left", Shift: true}},
			OSWindows: {Keys: []string{"Shift", "←"}, Chord: Chord{Key: "left", Shift: true}},
			OSLinux:   {Keys: []string{"Shift", "←"}, Chord: Chord{Key: "left", Shift: true}},
		},
	},
	{
		ID:          SelectCharRight,
		Name:        "Select Character Right",
		Instruction: "Extend the selection one character to the right",
		Op:          editor.OpSelectCharRight,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⇧", "→"}, Chord: Chord{Key: "right", Shift: true}},
			OSWindows: {Keys: []string{"Shift", "→"}, Chord: Chord{Key: "right", Shift: true}},
			OSLinux:   {Keys: []string{"Shift", "→"}, Chord: Chord{Key: "right", Shift: true}},
		},
	},
	{
		ID:          SelectAll,
		Name:        "Select All",
		Instruction: "Select the entire text",
		Op:          editor.OpSelectAll,
		Bindings: map[OS]Binding{
			OSMac:     {Keys: []string{"⌘", "A"}, Chord: Chord{Key: "a", Meta: true}},
			OSWindows: {Keys: []string{"Ctrl", "A"}, Chord: Chord{Key: "a", Ctrl: true}},
			OSLinux:   {Keys: []string{"Ctrl", "A"}, Chord: Chord{Key: "a", Ctrl: true}},
		},
	},
}

var commandIndex = buildIndex()

func buildIndex() map[ID]int {
	idx := make(map[ID]int, len(commands))
	for i, c := range commands {
		idx[c.ID] = i
	}
	return idx
}

// All returns the full command table in display order.
func All() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	return out
}

// AllIDs returns every command id in display order.
func AllIDs() []ID {
	ids := make([]ID, len(commands))
	for i, c := range commands {
		ids[i] = c.ID
	}
	return ids
}

// Lookup resolves a command id. Requesting an unknown id is a
// programmer error and fails loudly rather than silently no-opping.
func Lookup(id ID) (Command, error) {
	i, ok := commandIndex[id]
	if !ok {
		return Command{}, fmt.Errorf("unknown command id %q", id)
	}
	return commands[i], nil
}
