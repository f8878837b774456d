package editor

// Op identifies one of the edit operations a shortcut command can
// trigger. The command table maps every command id to exactly one Op.
type Op int

const (
	OpNone Op = iota
	OpMoveWordLeft
	OpMoveWordRight
	OpMoveLineStart
	OpMoveLineEnd
	OpDeleteWord
	OpDeleteWordForward
	OpDeleteToLineStart
	OpDeleteToLineEnd
	OpSelectWordLeft
	OpSelectWordRight
	OpSelectToLineStart
	OpSelectToLineEnd
	OpSelectCharLeft
	OpSelectCharRight
	OpSelectAll
)

var opNames = map[Op]string{
	OpNone:              "none",
	OpMoveWordLeft:      "move.word_left",
	OpMoveWordRight:     "move.word_right",
	OpMoveLineStart:     "move.line_start",
	OpMoveLineEnd:       "move.line_end",
	OpDeleteWord:        "delete.word",
	OpDeleteWordForward: "delete.word_forward",
	OpDeleteToLineStart: "delete.to_line_start",
	OpDeleteToLineEnd:   "delete.to_line_end",
	OpSelectWordLeft:    "select.word_left",
	OpSelectWordRight:   "select.word_right",
	OpSelectToLineStart: "select.to_line_start",
	OpSelectToLineEnd:   "select.to_line_end",
	OpSelectCharLeft:    "select.char_left",
	OpSelectCharRight:   "select.char_right",
	OpSelectAll:         "select.all",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "unknown"
}

// Apply runs op against s and returns the resulting state. It is total:
// OpNone and unknown values return s unchanged. The challenge generator
// derives expected states exclusively through Apply, so generator and
// dispatcher can never disagree about an operation's semantics.
func Apply(s State, op Op) State {
	switch op {
	case OpMoveWordLeft:
		return s.MoveWord(Backward)
	case OpMoveWordRight:
		return s.MoveWord(Forward)
	case OpMoveLineStart:
		return s.MoveLineStart()
	case OpMoveLineEnd:
		return s.MoveLineEnd()
	case OpDeleteWord:
		return s.DeleteWord()
	case OpDeleteWordForward:
		return s.DeleteWordForward()
	case OpDeleteToLineStart:
		return s.DeleteToLineStart()
	case OpDeleteToLineEnd:
		return s.DeleteToLineEnd()
	case OpSelectWordLeft:
		return s.SelectWord(Backward)
	case OpSelectWordRight:
		return s.SelectWord(Forward)
	case OpSelectToLineStart:
		return s.SelectLineStart()
	case OpSelectToLineEnd:
		return s.SelectLineEnd()
	case OpSelectCharLeft:
		return s.ExtendSelection(Backward)
	case OpSelectCharRight:
		return s.ExtendSelection(Forward)
	case OpSelectAll:
		return s.SelectAll()
	default:
		return s.normalized()
	}
}
