package sqlite

import (
	"time"

	"github.com/Deetschoe/monkeycmd/internal/game"
)

// RunModel represents the database row for the runs table.
// Durations are stored as milliseconds and timestamps as Unix seconds.
type RunModel struct {
	ID         int64
	OS         string
	DurationMS int64
	Attempted  int
	Correct    int
	Skipped    int
	BestStreak int
	CPM        float64
	Accuracy   float64
	CreatedAt  int64 // Unix timestamp
}

// toRunModel converts a domain Run to a database RunModel.
func toRunModel(r *game.Run) *RunModel {
	return &RunModel{
		ID:         r.ID,
		OS:         r.OS,
		DurationMS: r.Duration.Milliseconds(),
		Attempted:  r.Attempted,
		Correct:    r.Correct,
		Skipped:    r.Skipped,
		BestStreak: r.BestStreak,
		CPM:        r.CPM,
		Accuracy:   r.Accuracy,
		CreatedAt:  r.CreatedAt.Unix(),
	}
}

// toDomain converts a database RunModel to a domain Run.
func (m *RunModel) toDomain() *game.Run {
	return &game.Run{
		ID:         m.ID,
		OS:         m.OS,
		Duration:   time.Duration(m.DurationMS) * time.Millisecond,
		Attempted:  m.Attempted,
		Correct:    m.Correct,
		Skipped:    m.Skipped,
		BestStreak: m.BestStreak,
		CPM:        m.CPM,
		Accuracy:   m.Accuracy,
		CreatedAt:  time.Unix(m.CreatedAt, 0),
	}
}
