package game

import "time"

// Score accumulates round outcomes for one training session.
type Score struct {
	Attempted  int
	Correct    int
	Skipped    int
	Streak     int
	BestStreak int
}

// RecordRound records one completed challenge. A correct round extends
// the current streak; a miss resets it.
func (s *Score) RecordRound(success bool) {
	s.Attempted++
	if success {
		s.Correct++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
		return
	}
	s.Streak = 0
}

// RecordSkip counts a challenge the user skipped without attempting.
// Skips break the streak but do not count against accuracy.
func (s *Score) RecordSkip() {
	s.Skipped++
	s.Streak = 0
}

// Accuracy returns the fraction of attempted rounds answered correctly,
// in [0, 1]. Zero attempts yields zero.
func (s *Score) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

// CommandsPerMinute returns the rate of correct commands over the given
// elapsed session time. Non-positive elapsed yields zero.
func (s *Score) CommandsPerMinute(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Correct) / elapsed.Minutes()
}
