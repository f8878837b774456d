package editor

// Direction selects which way a character or word operation works.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// Selection is an anchored range over the buffer. Start and End are the
// normalized bounds (Start <= End); Anchor is the fixed endpoint the
// selection grew from and is not necessarily Start. A zero-width
// selection is never represented: it normalizes to nil.
type Selection struct {
	Anchor int
	Start  int
	End    int
}

// State is one snapshot of the edit buffer: text, cursor, and optional
// selection. States are value types; operations return a new State and
// never mutate the Selection through its pointer.
type State struct {
	Text      string
	Cursor    int
	Selection *Selection
}

// NewState creates a State with the cursor clamped into the text.
func NewState(text string, cursor int) State {
	return State{Text: text, Cursor: cursor}.normalized()
}

// Len returns the buffer length in runes.
func (s State) Len() int {
	return len([]rune(s.Text))
}

// Equal reports whether two states have identical text, cursor, and
// selection bounds. Anchors must match too: two selections covering the
// same range but grown from opposite ends are distinct states.
func (s State) Equal(other State) bool {
	if s.Text != other.Text || s.Cursor != other.Cursor {
		return false
	}
	if (s.Selection == nil) != (other.Selection == nil) {
		return false
	}
	if s.Selection == nil {
		return true
	}
	return *s.Selection == *other.Selection
}

// normalized clamps the cursor and selection into the current text and
// drops zero-width selections. Out-of-range inputs can arrive from host
// bugs; they degrade to a valid state instead of panicking.
func (s State) normalized() State {
	n := s.Len()
	s.Cursor = clamp(s.Cursor, 0, n)
	if s.Selection != nil {
		sel := *s.Selection
		sel.Anchor = clamp(sel.Anchor, 0, n)
		sel.Start = clamp(sel.Start, 0, n)
		sel.End = clamp(sel.End, 0, n)
		if sel.Start > sel.End {
			sel.Start, sel.End = sel.End, sel.Start
		}
		if sel.Start == sel.End {
			s.Selection = nil
		} else {
			s.Selection = &sel
		}
	}
	return s
}

// normalizeSelection builds a Selection from an anchor and a moving
// endpoint, or nil when they coincide.
func normalizeSelection(anchor, pos int) *Selection {
	if anchor == pos {
		return nil
	}
	return &Selection{Anchor: anchor, Start: min(anchor, pos), End: max(anchor, pos)}
}

// anchorOr returns the active selection's anchor, or fallback when no
// selection exists. Every selecting operation reads-or-initializes the
// anchor through this.
func (s State) anchorOr(fallback int) int {
	if s.Selection != nil {
		return s.Selection.Anchor
	}
	return fallback
}

// deleteRange removes [from, to) from the text, parks the cursor at the
// start of the removed span, and clears the selection. It is the single
// deletion primitive: every deleting operation bottoms out here.
func (s State) deleteRange(from, to int) State {
	runes := []rune(s.Text)
	from = clamp(from, 0, len(runes))
	to = clamp(to, 0, len(runes))
	if from > to {
		from, to = to, from
	}
	return State{
		Text:   string(runes[:from]) + string(runes[to:]),
		Cursor: from,
	}
}

// deleteSelection removes the selected range, collapsing to its start.
func (s State) deleteSelection() State {
	if s.Selection == nil {
		return s
	}
	return s.deleteRange(s.Selection.Start, s.Selection.End)
}

// InsertText inserts text at the cursor. An active selection is deleted
// first, the way a text field replaces selected text on typing.
func (s State) InsertText(text string) State {
	s = s.normalized()
	if s.Selection != nil {
		s = s.deleteSelection()
	}
	runes := []rune(s.Text)
	inserted := []rune(text)
	out := make([]rune, 0, len(runes)+len(inserted))
	out = append(out, runes[:s.Cursor]...)
	out = append(out, inserted...)
	out = append(out, runes[s.Cursor:]...)
	return State{Text: string(out), Cursor: s.Cursor + len(inserted)}
}

// DeleteChar removes one character next to the cursor, or the active
// selection if there is one.
func (s State) DeleteChar(dir Direction) State {
	s = s.normalized()
	if s.Selection != nil {
		return s.deleteSelection()
	}
	switch dir {
	case Backward:
		if s.Cursor > 0 {
			return s.deleteRange(s.Cursor-1, s.Cursor)
		}
	case Forward:
		if s.Cursor < s.Len() {
			return s.deleteRange(s.Cursor, s.Cursor+1)
		}
	}
	return s
}

// MoveTo places the cursor at pos (clamped) and clears the selection.
func (s State) MoveTo(pos int) State {
	s = s.normalized()
	return State{Text: s.Text, Cursor: clamp(pos, 0, s.Len())}
}

// MoveWord moves the cursor one word boundary in dir.
func (s State) MoveWord(dir Direction) State {
	s = s.normalized()
	if dir == Backward {
		return s.MoveTo(WordLeft(s.Text, s.Cursor))
	}
	return s.MoveTo(WordRight(s.Text, s.Cursor))
}

// MoveLineStart moves the cursor to the start of the current line.
func (s State) MoveLineStart() State {
	s = s.normalized()
	return s.MoveTo(LineStart(s.Text, s.Cursor))
}

// MoveLineEnd moves the cursor to the end of the current line.
func (s State) MoveLineEnd() State {
	s = s.normalized()
	return s.MoveTo(LineEnd(s.Text, s.Cursor))
}

// SelectWord extends (or starts) a selection by one word boundary.
func (s State) SelectWord(dir Direction) State {
	s = s.normalized()
	anchor := s.anchorOr(s.Cursor)
	var pos int
	if dir == Backward {
		pos = WordLeft(s.Text, s.Cursor)
	} else {
		pos = WordRight(s.Text, s.Cursor)
	}
	return State{Text: s.Text, Cursor: pos, Selection: normalizeSelection(anchor, pos)}
}

// SelectLineStart extends (or starts) a selection to the line start.
func (s State) SelectLineStart() State {
	s = s.normalized()
	anchor := s.anchorOr(s.Cursor)
	pos := LineStart(s.Text, s.Cursor)
	return State{Text: s.Text, Cursor: pos, Selection: normalizeSelection(anchor, pos)}
}

// SelectLineEnd extends (or starts) a selection to the line end.
func (s State) SelectLineEnd() State {
	s = s.normalized()
	anchor := s.anchorOr(s.Cursor)
	pos := LineEnd(s.Text, s.Cursor)
	return State{Text: s.Text, Cursor: pos, Selection: normalizeSelection(anchor, pos)}
}

// ExtendSelection grows (or starts) a selection by one character.
func (s State) ExtendSelection(dir Direction) State {
	s = s.normalized()
	anchor := s.anchorOr(s.Cursor)
	pos := s.Cursor
	if dir == Backward {
		pos--
	} else {
		pos++
	}
	pos = clamp(pos, 0, s.Len())
	return State{Text: s.Text, Cursor: pos, Selection: normalizeSelection(anchor, pos)}
}

// SelectAll selects the entire buffer with the cursor at the end.
// Empty text yields no selection.
func (s State) SelectAll() State {
	s = s.normalized()
	n := s.Len()
	if n == 0 {
		return State{Text: s.Text}
	}
	return State{
		Text:      s.Text,
		Cursor:    n,
		Selection: &Selection{Anchor: 0, Start: 0, End: n},
	}
}

// DeleteWord removes from the previous word start to the cursor, or the
// active selection.
func (s State) DeleteWord() State {
	s = s.normalized()
	if s.Selection != nil {
		return s.deleteSelection()
	}
	return s.deleteRange(WordLeft(s.Text, s.Cursor), s.Cursor)
}

// DeleteWordForward removes from the cursor to the next word boundary,
// or the active selection.
func (s State) DeleteWordForward() State {
	s = s.normalized()
	if s.Selection != nil {
		return s.deleteSelection()
	}
	return s.deleteRange(s.Cursor, WordRight(s.Text, s.Cursor))
}

// DeleteToLineStart removes from the line start to the cursor, or the
// active selection.
func (s State) DeleteToLineStart() State {
	s = s.normalized()
	if s.Selection != nil {
		return s.deleteSelection()
	}
	return s.deleteRange(LineStart(s.Text, s.Cursor), s.Cursor)
}

// DeleteToLineEnd removes from the cursor to the line end, or the
// active selection.
func (s State) DeleteToLineEnd() State {
	s = s.normalized()
	if s.Selection != nil {
		return s.deleteSelection()
	}
	return s.deleteRange(s.Cursor, LineEnd(s.Text, s.Cursor))
}
