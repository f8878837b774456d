package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Deetschoe/monkeycmd/internal/editor"
)

func TestDispatch_CommandChord(t *testing.T) {
	state := editor.NewState("let counter = 0", 11)
	res := Dispatch(OSMac, KeyPress{Key: "backspace", Alt: true}, state)

	require.True(t, res.Handled)
	require.NotNil(t, res.Command)
	require.Equal(t, DeleteWord, res.Command.ID)
	require.Equal(t, "let  = 0", res.State.Text)
	require.Equal(t, 4, res.State.Cursor)
}

func TestDispatch_OSDistinguishesChords(t *testing.T) {
	state := editor.NewState("ab cd", 0)

	// Ctrl+Right is word-right on linux, nothing on mac.
	linux := Dispatch(OSLinux, KeyPress{Key: "right", Ctrl: true}, state)
	require.True(t, linux.Handled)
	require.Equal(t, MoveWordRight, linux.Command.ID)
	require.Equal(t, 3, linux.State.Cursor)

	mac := Dispatch(OSMac, KeyPress{Key: "right", Ctrl: true}, state)
	require.False(t, mac.Handled)
	require.Equal(t, state, mac.State)
}

func TestDispatch_MostSpecificChordWins(t *testing.T) {
	// On linux both Shift+Left (select char) and Ctrl+Shift+Left
	// (select word) share the base key; Ctrl+Shift must win.
	state := editor.NewState("one two", 7)
	res := Dispatch(OSLinux, KeyPress{Key: "left", Ctrl: true, Shift: true}, state)

	require.True(t, res.Handled)
	require.Equal(t, SelectWordLeft, res.Command.ID)
	require.Equal(t, 4, res.State.Cursor)
	require.NotNil(t, res.State.Selection)
	require.Equal(t, 4, res.State.Selection.Start)
	require.Equal(t, 7, res.State.Selection.End)
}

func TestDispatch_ShiftAloneSelectsChar(t *testing.T) {
	state := editor.NewState("abc", 2)
	res := Dispatch(OSLinux, KeyPress{Key: "left", Shift: true}, state)

	require.True(t, res.Handled)
	require.Equal(t, SelectCharLeft, res.Command.ID)
	require.Equal(t, 1, res.State.Cursor)
}

func TestDispatch_MacFallbackChordWorksOnWindows(t *testing.T) {
	// DELETE_TO_LINE_END falls back to the mac chord Ctrl+K on windows.
	state := editor.NewState("hello world", 5)
	res := Dispatch(OSWindows, KeyPress{Key: "k", Ctrl: true}, state)

	require.True(t, res.Handled)
	require.Equal(t, DeleteToLineEnd, res.Command.ID)
	require.Equal(t, "hello", res.State.Text)
}

func TestDispatch_PlainPrintableInserts(t *testing.T) {
	state := editor.NewState("ab", 1)
	res := Dispatch(OSLinux, KeyPress{Key: "x"}, state)

	require.True(t, res.Handled)
	require.Nil(t, res.Command)
	require.Equal(t, "axb", res.State.Text)
	require.Equal(t, 2, res.State.Cursor)
}

func TestDispatch_CtrlPrintableIsNotInsertion(t *testing.T) {
	state := editor.NewState("ab", 1)
	res := Dispatch(OSMac, KeyPress{Key: "x", Ctrl: true}, state)

	require.False(t, res.Handled)
	require.Equal(t, state, res.State)
}

func TestDispatch_PlainBackspaceDeletesChar(t *testing.T) {
	state := editor.NewState("abc", 2)
	res := Dispatch(OSMac, KeyPress{Key: "backspace"}, state)

	require.True(t, res.Handled)
	require.Nil(t, res.Command)
	require.Equal(t, "ac", res.State.Text)
}

func TestDispatch_PlainArrowsMoveCursor(t *testing.T) {
	state := editor.NewState("abc", 1)

	left := Dispatch(OSLinux, KeyPress{Key: "left"}, state)
	require.True(t, left.Handled)
	require.Equal(t, 0, left.State.Cursor)

	right := Dispatch(OSLinux, KeyPress{Key: "right"}, state)
	require.True(t, right.Handled)
	require.Equal(t, 2, right.State.Cursor)
}

func TestDispatch_SelectAllPerOS(t *testing.T) {
	state := editor.NewState("npm install lodash --save", 5)

	mac := Dispatch(OSMac, KeyPress{Key: "a", Meta: true}, state)
	require.True(t, mac.Handled)
	require.Equal(t, SelectAll, mac.Command.ID)
	require.Equal(t, 25, mac.State.Cursor)
	require.Equal(t, &editor.Selection{Anchor: 0, Start: 0, End: 25}, mac.State.Selection)

	// Plain Ctrl+A inserts nothing and selects everything on linux.
	linux := Dispatch(OSLinux, KeyPress{Key: "a", Ctrl: true}, state)
	require.True(t, linux.Handled)
	require.Equal(t, SelectAll, linux.Command.ID)
}

func TestDispatch_UnknownChordPassesThrough(t *testing.T) {
	state := editor.NewState("abc", 1)
	res := Dispatch(OSLinux, KeyPress{Key: "f5", Ctrl: true}, state)

	require.False(t, res.Handled)
	require.Equal(t, state, res.State)
}

func TestDispatch_HomeIsCommandOnLinuxOnly(t *testing.T) {
	state := editor.NewState("hello world", 7)

	linux := Dispatch(OSLinux, KeyPress{Key: "home"}, state)
	require.True(t, linux.Handled)
	require.Equal(t, JumpLineStart, linux.Command.ID)
	require.Equal(t, 0, linux.State.Cursor)

	// Mac binds line-start to Cmd+Left; a bare Home key is unhandled.
	mac := Dispatch(OSMac, KeyPress{Key: "home"}, state)
	require.False(t, mac.Handled)
}
