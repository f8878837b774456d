package challenge

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/Deetschoe/monkeycmd/internal/editor"
)

// TextMismatch describes a wrong buffer, with a character-level diff of
// expected versus actual for display.
type TextMismatch struct {
	Expected string
	Actual   string
	Diff     []diffmatchpatch.Diff
}

// CursorMismatch describes a wrong cursor position.
type CursorMismatch struct {
	Expected int
	Actual   int
}

// SelectionMismatch describes a wrong selection range. An absent actual
// selection is reported as a zero-width range at the actual cursor.
type SelectionMismatch struct {
	ExpectedStart int
	ExpectedEnd   int
	ActualStart   int
	ActualEnd     int
}

// Result is the outcome of checking an attempted state against a
// challenge. Success means every checked field matched; the mismatch
// fields are nil when their field matched.
type Result struct {
	Success   bool
	Text      *TextMismatch
	Cursor    *CursorMismatch
	Selection *SelectionMismatch
}

// Validate compares the attempted state against the challenge's
// expected state field by field. Text and cursor are always checked.
// The selection is checked only when the expected state has one:
// movement and deletion commands leave no expected selection, and any
// stray selection in the attempt is ignored for them.
func Validate(ch *Challenge, actual editor.State) Result {
	res := Result{Success: true}
	want := ch.Expected

	if want.Text != actual.Text {
		res.Success = false
		dmp := diffmatchpatch.New()
		res.Text = &TextMismatch{
			Expected: want.Text,
			Actual:   actual.Text,
			Diff:     dmp.DiffMain(want.Text, actual.Text, false),
		}
	}

	if want.Cursor != actual.Cursor {
		res.Success = false
		res.Cursor = &CursorMismatch{Expected: want.Cursor, Actual: actual.Cursor}
	}

	if want.Selection != nil {
		gotStart, gotEnd := actual.Cursor, actual.Cursor
		if actual.Selection != nil {
			gotStart, gotEnd = actual.Selection.Start, actual.Selection.End
		}
		if want.Selection.Start != gotStart || want.Selection.End != gotEnd {
			res.Success = false
			res.Selection = &SelectionMismatch{
				ExpectedStart: want.Selection.Start,
				ExpectedEnd:   want.Selection.End,
				ActualStart:   gotStart,
				ActualEnd:     gotEnd,
			}
		}
	}

	return res
}
