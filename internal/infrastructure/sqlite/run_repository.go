package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Deetschoe/monkeycmd/internal/cachemanager"
	"github.com/Deetschoe/monkeycmd/internal/game"
)

// runColumns is the list of columns to select for run queries.
const runColumns = `id, os, duration_ms, attempted, correct, skipped, best_streak, cpm, accuracy, created_at`

// runRepository implements game.RunRepository using SQLite. Best-run
// lookups are served from a read-through cache keyed by OS; saving a
// run invalidates the affected key.
type runRepository struct {
	db        *sql.DB
	bestCache *cachemanager.InMemoryCacheManager[string, *game.Run]
}

// newRunRepository creates a new runRepository instance.
func newRunRepository(db *sql.DB) *runRepository {
	return &runRepository{
		db: db,
		bestCache: cachemanager.NewInMemoryCacheManager[string, *game.Run](
			"best-run",
			cachemanager.DefaultExpiration,
			cachemanager.DefaultCleanupInterval,
		),
	}
}

// Ensure runRepository implements game.RunRepository.
var _ game.RunRepository = (*runRepository)(nil)

// scanRun scans a row into a RunModel.
func scanRun(scanner interface{ Scan(...any) error }) (*RunModel, error) {
	var model RunModel
	err := scanner.Scan(
		&model.ID, &model.OS, &model.DurationMS,
		&model.Attempted, &model.Correct, &model.Skipped, &model.BestStreak,
		&model.CPM, &model.Accuracy, &model.CreatedAt,
	)
	return &model, err
}

// Save inserts a finished run and sets its database ID.
func (r *runRepository) Save(run *game.Run) error {
	model := toRunModel(run)

	result, err := r.db.Exec(
		`INSERT INTO runs (os, duration_ms, attempted, correct, skipped, best_streak, cpm, accuracy, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		model.OS, model.DurationMS,
		model.Attempted, model.Correct, model.Skipped, model.BestStreak,
		model.CPM, model.Accuracy, model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	run.ID = id

	// The new run may displace the cached best.
	_ = r.bestCache.Delete(context.Background(), run.OS)
	return nil
}

// Best returns the highest-CPM run for an OS, with rounds attempted as
// a tiebreaker. Returns RunNotFoundError when no run exists.
func (r *runRepository) Best(os string) (*game.Run, error) {
	ctx := context.Background()
	if run, ok := r.bestCache.Get(ctx, os); ok {
		return run, nil
	}

	row := r.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE os = ? ORDER BY cpm DESC, attempted DESC LIMIT 1`,
		os,
	)
	model, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &game.RunNotFoundError{OS: os}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find best run: %w", err)
	}

	run := model.toDomain()
	r.bestCache.Set(ctx, os, run, cachemanager.DefaultExpiration)
	return run, nil
}

// Recent returns up to limit runs across all OSes, newest first.
func (r *runRepository) Recent(limit int) ([]*game.Run, error) {
	rows, err := r.db.Query(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*game.Run
	for rows.Next() {
		model, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run rows: %w", err)
	}

	return runs, nil
}

// Close releases any resources held by the repository.
// This is a no-op because the connection is owned by the DB struct.
func (r *runRepository) Close() error {
	return nil
}
