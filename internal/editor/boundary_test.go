package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ============================================================================
// WordLeft Tests
// ============================================================================

func TestWordLeft_AtStart(t *testing.T) {
	require.Equal(t, 0, WordLeft("hello world", 0))
}

func TestWordLeft_EmptyText(t *testing.T) {
	require.Equal(t, 0, WordLeft("", 0))
	require.Equal(t, 0, WordLeft("", 5))
}

func TestWordLeft_FromWordEnd(t *testing.T) {
	// "let counter = 0" - "counter" spans [4, 11)
	require.Equal(t, 4, WordLeft("let counter = 0", 11))
}

func TestWordLeft_FromMidWord(t *testing.T) {
	require.Equal(t, 4, WordLeft("let counter = 0", 7))
}

func TestWordLeft_AtWordStartJumpsToPreviousWord(t *testing.T) {
	// Calling at a word start is not idempotent: it jumps to the
	// previous word's start.
	require.Equal(t, 0, WordLeft("let counter = 0", 4))
}

func TestWordLeft_SkipsConsecutiveWhitespace(t *testing.T) {
	require.Equal(t, 0, WordLeft("ab   cd", 5))
}

func TestWordLeft_ClampsOutOfRange(t *testing.T) {
	require.Equal(t, 3, WordLeft("ab cd", 99))
}

func TestWordLeft_CrossesNewline(t *testing.T) {
	// Newlines are whitespace to word motion.
	require.Equal(t, 0, WordLeft("cd\nef", 3))
}

// ============================================================================
// WordRight Tests
// ============================================================================

func TestWordRight_AtEnd(t *testing.T) {
	require.Equal(t, 11, WordRight("hello world", 11))
}

func TestWordRight_EmptyText(t *testing.T) {
	require.Equal(t, 0, WordRight("", 0))
}

func TestWordRight_SkipsWordThenGap(t *testing.T) {
	// "ab cd" from 0: skip "ab" to 2, skip the space to 3.
	require.Equal(t, 3, WordRight("ab cd", 0))
}

func TestWordRight_FromMidWord(t *testing.T) {
	require.Equal(t, 4, WordRight("let counter = 0", 1))
}

func TestWordRight_OnWhitespaceLandsAtNextWord(t *testing.T) {
	require.Equal(t, 5, WordRight("ab   cd", 2))
}

func TestWordRight_LastWordStopsAtEnd(t *testing.T) {
	require.Equal(t, 5, WordRight("ab cd", 3))
}

func TestWordRight_ClampsOutOfRange(t *testing.T) {
	require.Equal(t, 3, WordRight("ab cd", -3))
}

// ============================================================================
// LineStart / LineEnd Tests
// ============================================================================

func TestLineStart_SingleLine(t *testing.T) {
	require.Equal(t, 0, LineStart("cd /var/www/html", 9))
}

func TestLineStart_AfterNewline(t *testing.T) {
	require.Equal(t, 6, LineStart("hello\nworld", 9))
}

func TestLineStart_AtNewlineBoundary(t *testing.T) {
	// Position 6 is the first char of the second line.
	require.Equal(t, 6, LineStart("hello\nworld", 6))
	// Position 5 is the newline itself, which belongs to the first line.
	require.Equal(t, 0, LineStart("hello\nworld", 5))
}

func TestLineEnd_SingleLine(t *testing.T) {
	require.Equal(t, 16, LineEnd("cd /var/www/html", 2))
}

func TestLineEnd_BeforeNewline(t *testing.T) {
	require.Equal(t, 5, LineEnd("hello\nworld", 2))
}

func TestLineEnd_SecondLine(t *testing.T) {
	require.Equal(t, 11, LineEnd("hello\nworld", 7))
}

func TestLineBoundaries_EmptyText(t *testing.T) {
	require.Equal(t, 0, LineStart("", 0))
	require.Equal(t, 0, LineEnd("", 0))
}

// ============================================================================
// Property Tests
// ============================================================================

func TestBoundary_EdgeIdempotence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z \n]{0,40}`).Draw(t, "text")
		n := len([]rune(text))

		require.Equal(t, 0, WordLeft(text, 0))
		require.Equal(t, n, WordRight(text, n))
		require.Equal(t, 0, LineStart(text, LineStart(text, 0)))
		require.Equal(t, n, LineEnd(text, LineEnd(text, n)))
	})
}

func TestBoundary_AllResultsInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 \n./(),=-]{0,60}`).Draw(t, "text")
		pos := rapid.IntRange(-5, 70).Draw(t, "pos")
		n := len([]rune(text))

		for name, got := range map[string]int{
			"wordLeft":  WordLeft(text, pos),
			"wordRight": WordRight(text, pos),
			"lineStart": LineStart(text, pos),
			"lineEnd":   LineEnd(text, pos),
		} {
			require.GreaterOrEqual(t, got, 0, name)
			require.LessOrEqual(t, got, n, name)
		}
	})
}

func TestBoundary_RoundTripSymmetry(t *testing.T) {
	// Moving word-right from a word-left result lands at or past the
	// word-left result: the two directions agree on gap classification.
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z]+( [a-z]+){0,8}`).Draw(t, "text")
		pos := rapid.IntRange(0, len([]rune(text))).Draw(t, "pos")

		left := WordLeft(text, pos)
		require.GreaterOrEqual(t, WordRight(text, left), left)
	})
}

func TestBoundary_RoundTripConcrete(t *testing.T) {
	// Cursor at the end of "result" (index 12).
	text := "const result = calculateSum(a, b)"
	left := WordLeft(text, 12)
	require.Equal(t, 6, left)
	require.GreaterOrEqual(t, WordRight(text, left), left)
}

func TestBoundary_LineStartEndBracketPosition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z \n]{0,40}`).Draw(t, "text")
		pos := rapid.IntRange(0, len([]rune(text))).Draw(t, "pos")

		require.LessOrEqual(t, LineStart(text, pos), pos)
		require.GreaterOrEqual(t, LineEnd(text, pos), pos)
	})
}
