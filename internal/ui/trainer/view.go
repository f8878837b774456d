package trainer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/Deetschoe/monkeycmd/internal/editor"
	"github.com/Deetschoe/monkeycmd/internal/ui/styles"
)

// View renders the trainer.
func (m *Model) View() string {
	if m.current == nil {
		return styles.ErrorStyle.Render("no challenges available")
	}

	switch m.phase {
	case PhaseSummary:
		return m.summaryView()
	case PhaseFail:
		return m.failView()
	default:
		return m.playingView()
	}
}

func (m *Model) playingView() string {
	var b strings.Builder

	instruction := m.current.Instruction
	if m.width > 4 {
		instruction = wordwrap.String(instruction, m.width-4)
	}
	b.WriteString(styles.InstructionStyle.Render(instruction))
	b.WriteString("\n")

	if m.cfg.UI.ShowKeyHint {
		b.WriteString(styles.KeyCapStyle.Render(strings.Join(m.current.Binding.Keys, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.BufferStyle.Render(renderBuffer(m.state)))
	b.WriteString("\n")

	if m.flash != "" {
		b.WriteString(styles.SuccessStyle.Render("✓ " + m.flash))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.cfg.UI.ShowStatusBar {
		b.WriteString(m.statusBar())
		b.WriteString("\n")
	}
	b.WriteString(styles.HelpStyle.Render("tab skip · ctrl+c quit"))

	return b.String()
}

func (m *Model) failView() string {
	var b strings.Builder

	b.WriteString(styles.FailStyle.Render("✗ " + m.current.Instruction))
	b.WriteString("\n\n")
	b.WriteString("The shortcut was ")
	b.WriteString(styles.KeyCapStyle.Render(strings.Join(m.current.Binding.Keys, " ")))
	b.WriteString("\n\n")

	if res := m.lastResult; res != nil {
		if res.Text != nil {
			b.WriteString(renderTextDiff(res.Text.Diff))
			b.WriteString("\n")
		}
		if res.Cursor != nil {
			b.WriteString(styles.HelpStyle.Render(
				fmt.Sprintf("cursor at %d, wanted %d", res.Cursor.Actual, res.Cursor.Expected)))
			b.WriteString("\n")
		}
		if res.Selection != nil {
			b.WriteString(styles.HelpStyle.Render(
				fmt.Sprintf("selected [%d,%d), wanted [%d,%d)",
					res.Selection.ActualStart, res.Selection.ActualEnd,
					res.Selection.ExpectedStart, res.Selection.ExpectedEnd)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter continue · ctrl+c quit"))

	return b.String()
}

func (m *Model) summaryView() string {
	var b strings.Builder

	b.WriteString(styles.InstructionStyle.Render("Time!"))
	b.WriteString("\n\n")

	cpm := m.score.CommandsPerMinute(m.timer.Duration())
	b.WriteString(fmt.Sprintf("  commands/min   %.1f\n", cpm))
	b.WriteString(fmt.Sprintf("  accuracy       %.0f%%\n", m.score.Accuracy()*100))
	b.WriteString(fmt.Sprintf("  correct        %d/%d\n", m.score.Correct, m.score.Attempted))
	b.WriteString(fmt.Sprintf("  best streak    %d\n", m.score.BestStreak))
	if m.score.Skipped > 0 {
		b.WriteString(fmt.Sprintf("  skipped        %d\n", m.score.Skipped))
	}

	if m.best != nil {
		b.WriteString("\n")
		if cpm >= m.best.CPM {
			b.WriteString(styles.SuccessStyle.Render("  new personal best!"))
		} else {
			b.WriteString(styles.HelpStyle.Render(
				fmt.Sprintf("  personal best: %.1f commands/min", m.best.CPM)))
		}
		b.WriteString("\n")
	}

	if m.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(styles.FailStyle.Render("  score not saved: " + m.saveErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter go again · q quit"))

	return b.String()
}

// renderBuffer draws the edit state with the cursor as an inverted
// block and the selection on a contrasting background. Newlines render
// as a return symbol so a cursor or selection on one stays visible.
func renderBuffer(s editor.State) string {
	runes := []rune(s.Text)
	var b strings.Builder

	styleAt := func(i int) *lipgloss.Style {
		if i == s.Cursor {
			return &styles.CursorStyle
		}
		if sel := s.Selection; sel != nil && i >= sel.Start && i < sel.End {
			return &styles.SelectionStyle
		}
		return nil
	}

	for i, r := range runes {
		display := string(r)
		isNewline := r == '\n'
		if isNewline {
			display = "↵"
		}
		if st := styleAt(i); st != nil {
			b.WriteString(st.Render(display))
		} else if !isNewline {
			b.WriteString(display)
		}
		if isNewline {
			b.WriteString("\n")
		}
	}

	// Cursor past the last rune renders as a block on empty space.
	if s.Cursor == len(runes) {
		b.WriteString(styles.CursorStyle.Render(" "))
	}

	return b.String()
}

// renderTextDiff colors a character diff of expected versus typed text.
func renderTextDiff(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			// Missing from the attempt.
			b.WriteString(styles.SuccessStyle.Render(d.Text))
		case diffmatchpatch.DiffInsert:
			// Extra in the attempt.
			b.WriteString(styles.FailStyle.Strikethrough(true).Render(d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// statusBar renders the countdown and running score on one line,
// truncated to the terminal width.
func (m *Model) statusBar() string {
	snap := m.timer.Snapshot()

	left := fmt.Sprintf("%s · %d/%d · streak %d",
		m.os, m.score.Correct, m.score.Attempted, m.score.Streak)
	clock := fmt.Sprintf("%d:%02d",
		int(snap.Remaining.Minutes()), int(snap.Remaining.Seconds())%60)

	bar := left
	if m.width > 0 {
		gap := m.width - 2 - runewidth.StringWidth(left) - runewidth.StringWidth(clock)
		if gap > 0 {
			bar = left + strings.Repeat(" ", gap) + clock
		} else {
			bar = ansi.Truncate(left+" "+clock, m.width-2, "…")
		}
	} else {
		bar = left + "  " + clock
	}

	return styles.StatusBarStyle.Render(bar)
}
