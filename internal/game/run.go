package game

import (
	"fmt"
	"time"
)

// Run is one finished training session as persisted to the score
// database.
type Run struct {
	ID         int64
	OS         string
	Duration   time.Duration
	Attempted  int
	Correct    int
	Skipped    int
	BestStreak int
	CPM        float64
	Accuracy   float64
	CreatedAt  time.Time
}

// NewRun builds a Run from a finished session's score and timer.
func NewRun(os string, score Score, elapsed time.Duration, now time.Time) *Run {
	return &Run{
		OS:         os,
		Duration:   elapsed,
		Attempted:  score.Attempted,
		Correct:    score.Correct,
		Skipped:    score.Skipped,
		BestStreak: score.BestStreak,
		CPM:        score.CommandsPerMinute(elapsed),
		Accuracy:   score.Accuracy(),
		CreatedAt:  now,
	}
}

// RunNotFoundError indicates no run matched a query.
type RunNotFoundError struct {
	OS string
}

func (e *RunNotFoundError) Error() string {
	if e.OS == "" {
		return "no runs recorded"
	}
	return fmt.Sprintf("no runs recorded for os %q", e.OS)
}

// RunRepository persists finished runs and answers score queries.
type RunRepository interface {
	// Save inserts a new run and sets its ID.
	Save(run *Run) error
	// Best returns the highest-CPM run for an OS.
	// Returns RunNotFoundError when no run exists.
	Best(os string) (*Run, error)
	// Recent returns up to limit runs, newest first, across all OSes.
	Recent(limit int) ([]*Run, error)
	// Close releases repository resources.
	Close() error
}
