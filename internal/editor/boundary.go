// Package editor implements the single-buffer text editing engine behind
// the trainer: word and line boundary search, and the cursor/selection
// state machine that shortcut commands operate on.
//
// All positions are rune indices into the buffer, clamped to [0, len].
// The buffer is a plain string and may contain embedded newlines.
package editor

import "unicode"

// isSpace is the single whitespace predicate used by every boundary
// function, in both directions. Word motions treat any run of
// whitespace as one gap.
func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// WordLeft returns the start of the nearest word at or before pos.
// Consecutive whitespace is treated as a single gap, so calling it at a
// word start jumps to the previous word's start.
func WordLeft(text string, pos int) int {
	runes := []rune(text)
	pos = clamp(pos, 0, len(runes))
	if pos == 0 {
		return 0
	}

	i := pos - 1
	for i > 0 && isSpace(runes[i]) {
		i--
	}
	for i > 0 && !isSpace(runes[i-1]) {
		i--
	}
	return i
}

// WordRight returns the position just past the whitespace gap following
// the word at pos, i.e. the start of the next word (or the end of text).
func WordRight(text string, pos int) int {
	runes := []rune(text)
	pos = clamp(pos, 0, len(runes))
	if pos >= len(runes) {
		return len(runes)
	}

	i := pos
	for i < len(runes) && !isSpace(runes[i]) {
		i++
	}
	for i < len(runes) && isSpace(runes[i]) {
		i++
	}
	return i
}

// LineStart returns the index of the first character after the nearest
// preceding newline, or 0.
func LineStart(text string, pos int) int {
	runes := []rune(text)
	pos = clamp(pos, 0, len(runes))

	i := pos
	for i > 0 && runes[i-1] != '\n' {
		i--
	}
	return i
}

// LineEnd returns the index of the nearest following newline, or the
// text length.
func LineEnd(text string, pos int) int {
	runes := []rune(text)
	pos = clamp(pos, 0, len(runes))

	i := pos
	for i < len(runes) && runes[i] != '\n' {
		i++
	}
	return i
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
