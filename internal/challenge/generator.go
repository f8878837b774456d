// Package challenge produces and validates text-editing challenges:
// a starting edit state, the command to perform, and the exact state
// the command must produce.
package challenge

import (
	"fmt"
	"math/rand/v2"
	"unicode"

	"github.com/google/uuid"

	"github.com/Deetschoe/monkeycmd/internal/command"
	"github.com/Deetschoe/monkeycmd/internal/editor"
)

// Challenge is one round: start state, expected outcome, and the
// OS-resolved command that turns one into the other. Consumed once by
// the host and discarded; ID exists only for UI keys and logging.
type Challenge struct {
	ID          string
	Instruction string
	Start       editor.State
	Expected    editor.State
	Command     command.Command
	Binding     command.Binding
}

// Rand is the source of randomness for cursor placement. Injectable so
// tests can drive placement deterministically.
type Rand interface {
	// IntN returns a non-negative pseudo-random int in [0, n).
	IntN(n int) int
}

type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// Generator creates challenges from sample texts.
type Generator struct {
	rng Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the default randomness source.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// NewGenerator creates a Generator using the process-wide random source
// unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{rng: systemRand{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// span is one whitespace-delimited word, as rune indices [Start, End).
type span struct {
	Start int
	End   int
}

// wordSpans enumerates the whitespace-delimited words of text.
func wordSpans(text string) []span {
	var spans []span
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		for i < len(runes) && isSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}
		start := i
		for i < len(runes) && !isSpace(runes[i]) {
			i++
		}
		spans = append(spans, span{Start: start, End: i})
	}
	return spans
}

func isSpace(r rune) bool { return unicode.IsSpace(r) }

// Generate derives a challenge for the given command on the given text.
// It returns (nil, nil) when the text cannot host the command — too few
// words, or too short for a meaningful cursor range — in which case the
// caller retries with different sample text. An unknown command id is a
// programmer error and returns a non-nil error.
//
// The expected state is always computed by replaying the command's
// operation on the generated start state, never hand-derived, so the
// generator cannot drift from the operation semantics.
func (g *Generator) Generate(text string, id command.ID, os command.OS) (*Challenge, error) {
	cmd, err := command.Lookup(id)
	if err != nil {
		return nil, err
	}

	cursor, ok := g.placeCursor(text, cmd.Op)
	if !ok {
		return nil, nil
	}

	start := editor.NewState(text, cursor)
	return &Challenge{
		ID:          uuid.NewString(),
		Instruction: cmd.Instruction,
		Start:       start,
		Expected:    editor.Apply(start, cmd.Op),
		Command:     cmd,
		Binding:     cmd.BindingFor(os),
	}, nil
}

// placeCursor picks a starting cursor that guarantees the operation has
// a non-trivial effect. Returns ok=false when the text cannot support
// the operation.
func (g *Generator) placeCursor(text string, op editor.Op) (int, bool) {
	n := len([]rune(text))

	switch op {
	case editor.OpMoveWordLeft, editor.OpDeleteWord, editor.OpSelectWordLeft:
		// Pick a non-first word and start at its end, so there is
		// always a full word to the left.
		spans := wordSpans(text)
		if len(spans) < 2 {
			return 0, false
		}
		idx := 1 + g.rng.IntN(len(spans)-1)
		return spans[idx].End, true

	case editor.OpMoveWordRight, editor.OpDeleteWordForward, editor.OpSelectWordRight:
		// Pick a non-last word and start at its beginning.
		spans := wordSpans(text)
		if len(spans) < 2 {
			return 0, false
		}
		idx := g.rng.IntN(len(spans) - 1)
		return spans[idx].Start, true

	case editor.OpMoveLineStart, editor.OpDeleteToLineStart, editor.OpSelectToLineStart:
		// Far enough in that jumping to the line start does something.
		lo := min(5, n/4)
		if lo >= n {
			return 0, false
		}
		return lo + g.rng.IntN(n-lo), true

	case editor.OpMoveLineEnd, editor.OpDeleteToLineEnd, editor.OpSelectToLineEnd:
		hi := n - min(5, n/4)
		if hi <= 0 {
			return 0, false
		}
		return g.rng.IntN(hi), true

	case editor.OpSelectCharLeft:
		if n == 0 {
			return 0, false
		}
		return 1 + g.rng.IntN(n), true

	case editor.OpSelectCharRight:
		if n == 0 {
			return 0, false
		}
		return g.rng.IntN(n), true

	case editor.OpSelectAll:
		if n == 0 {
			return 0, false
		}
		return g.rng.IntN(n), true

	default:
		return 0, false
	}
}

// Pick generates a challenge from a random enabled command and a random
// sample text, retrying other texts when one cannot host the chosen
// command. It fails only when no text supports any enabled command.
func (g *Generator) Pick(texts []string, ids []command.ID, os command.OS) (*Challenge, error) {
	if len(texts) == 0 || len(ids) == 0 {
		return nil, fmt.Errorf("no sample texts or command ids to pick from")
	}

	id := ids[g.rng.IntN(len(ids))]
	offset := g.rng.IntN(len(texts))
	for i := range texts {
		text := texts[(offset+i)%len(texts)]
		ch, err := g.Generate(text, id, os)
		if err != nil {
			return nil, err
		}
		if ch != nil {
			return ch, nil
		}
	}
	return nil, fmt.Errorf("no sample text can host command %s", id)
}
