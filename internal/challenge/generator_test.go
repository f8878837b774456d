package challenge

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Deetschoe/monkeycmd/internal/command"
	"github.com/Deetschoe/monkeycmd/internal/editor"
)

// seqRand replays a fixed sequence of choices, reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// ============================================================================
// Generate
// ============================================================================

func TestGenerate_DeleteWordPlacesCursorAtWordEnd(t *testing.T) {
	g := NewGenerator(WithRand(&seqRand{vals: []int{0}}))

	ch, err := g.Generate("let counter = 0", command.DeleteWord, command.OSMac)
	require.NoError(t, err)
	require.NotNil(t, ch)

	// First choice picks word index 1 ("counter"), cursor at its end.
	require.Equal(t, 11, ch.Start.Cursor)
	require.Equal(t, "let counter = 0", ch.Start.Text)
	require.Equal(t, "let  = 0", ch.Expected.Text)
	require.Equal(t, 4, ch.Expected.Cursor)
	require.Equal(t, command.DeleteWord, ch.Command.ID)
	require.NotEmpty(t, ch.ID)
	require.NotEmpty(t, ch.Instruction)
}

func TestGenerate_WordRightPlacesCursorAtWordStart(t *testing.T) {
	g := NewGenerator(WithRand(&seqRand{vals: []int{1}}))

	ch, err := g.Generate("npm install lodash --save", command.MoveWordRight, command.OSLinux)
	require.NoError(t, err)
	require.NotNil(t, ch)

	// Word index 1 ("install") starts at 4.
	require.Equal(t, 4, ch.Start.Cursor)
	require.Equal(t, editor.Apply(ch.Start, editor.OpMoveWordRight), ch.Expected)
}

func TestGenerate_BindingMatchesRequestedOS(t *testing.T) {
	g := NewGenerator(WithRand(&seqRand{vals: []int{0}}))

	mac, err := g.Generate("ab cd ef", command.DeleteWord, command.OSMac)
	require.NoError(t, err)
	require.Equal(t, command.Chord{Key: "backspace", Alt: true}, mac.Binding.Chord)

	win, err := g.Generate("ab cd ef", command.DeleteWord, command.OSWindows)
	require.NoError(t, err)
	require.Equal(t, command.Chord{Key: "backspace", Ctrl: true}, win.Binding.Chord)
}

func TestGenerate_UnknownCommandFails(t *testing.T) {
	g := NewGenerator()
	_, err := g.Generate("ab cd", "NOT_A_COMMAND", command.OSMac)
	require.Error(t, err)
}

func TestGenerate_SingleWordCannotHostWordCommands(t *testing.T) {
	g := NewGenerator()

	for _, id := range []command.ID{
		command.MoveWordLeft, command.MoveWordRight,
		command.DeleteWord, command.DeleteWordForward,
		command.SelectWordLeft, command.SelectWordRight,
	} {
		ch, err := g.Generate("word", id, command.OSMac)
		require.NoError(t, err)
		require.Nil(t, ch, "command %s should not fit a one-word text", id)
	}
}

func TestGenerate_EmptyTextHostsNothing(t *testing.T) {
	g := NewGenerator()
	for _, id := range command.AllIDs() {
		ch, err := g.Generate("", id, command.OSMac)
		require.NoError(t, err)
		require.Nil(t, ch)
	}
}

// ============================================================================
// Self-consistency: expected state always equals replaying the command
// operation on the start state, for every command, text and OS.
// ============================================================================

func TestGenerate_ExpectedMatchesReplay(t *testing.T) {
	g := NewGenerator()

	for _, os := range command.AllOS() {
		for _, id := range command.AllIDs() {
			cmd, err := command.Lookup(id)
			require.NoError(t, err)

			for _, text := range SampleTexts() {
				ch, err := g.Generate(text, id, os)
				require.NoError(t, err)
				if ch == nil {
					continue
				}
				require.Equal(t, text, ch.Start.Text)
				require.Equal(t, editor.Apply(ch.Start, cmd.Op), ch.Expected,
					"command %s on %q from cursor %d", id, text, ch.Start.Cursor)
				require.Equal(t, cmd.BindingFor(os), ch.Binding)
			}
		}
	}
}

func TestGenerate_CursorAlwaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := NewGenerator()
		text := rapid.SampledFrom(SampleTexts()).Draw(t, "text")
		id := rapid.SampledFrom(command.AllIDs()).Draw(t, "id")

		ch, err := g.Generate(text, id, command.OSLinux)
		require.NoError(t, err)
		if ch == nil {
			return
		}
		n := ch.Start.Len()
		require.GreaterOrEqual(t, ch.Start.Cursor, 0)
		require.LessOrEqual(t, ch.Start.Cursor, n)
	})
}

func TestGenerate_LeftwardWordCursorSitsAtNonFirstWordEnd(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := NewGenerator()
		text := rapid.SampledFrom(SampleTexts()).Draw(t, "text")

		ch, err := g.Generate(text, command.DeleteWord, command.OSMac)
		require.NoError(t, err)
		require.NotNil(t, ch)

		spans := wordSpans(text)
		var ends []int
		for _, s := range spans[1:] {
			ends = append(ends, s.End)
		}
		require.Contains(t, ends, ch.Start.Cursor)
	})
}

// ============================================================================
// Pick
// ============================================================================

func TestPick_ReturnsChallengeFromGivenSet(t *testing.T) {
	g := NewGenerator(WithRand(&seqRand{vals: []int{2, 0, 0}}))

	ids := []command.ID{command.JumpLineStart, command.SelectAll, command.DeleteWord}
	ch, err := g.Pick(SampleTexts(), ids, command.OSLinux)
	require.NoError(t, err)
	require.NotNil(t, ch)
	require.Contains(t, ids, ch.Command.ID)
}

func TestPick_RetriesTextsThatCannotHost(t *testing.T) {
	g := NewGenerator(WithRand(&seqRand{vals: []int{0}}))

	texts := []string{"word", "two words"}
	ch, err := g.Pick(texts, []command.ID{command.DeleteWord}, command.OSMac)
	require.NoError(t, err)
	require.NotNil(t, ch)
	require.Equal(t, "two words", ch.Start.Text)
}

func TestPick_FailsWhenNothingFits(t *testing.T) {
	g := NewGenerator()

	_, err := g.Pick([]string{"word"}, []command.ID{command.DeleteWord}, command.OSMac)
	require.Error(t, err)

	_, err = g.Pick(nil, []command.ID{command.DeleteWord}, command.OSMac)
	require.Error(t, err)
}

// ============================================================================
// wordSpans
// ============================================================================

func TestWordSpans(t *testing.T) {
	spans := wordSpans("let counter = 0")
	require.Equal(t, []span{{0, 3}, {4, 11}, {12, 13}, {14, 15}}, spans)

	require.Empty(t, wordSpans(""))
	require.Empty(t, wordSpans("   "))
	require.Equal(t, []span{{0, 3}, {4, 7}}, wordSpans("abc\ndef"))
}
