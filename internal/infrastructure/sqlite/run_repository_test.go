package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Deetschoe/monkeycmd/internal/game"
)

func newTestRepo(t *testing.T) *runRepository {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db.runs
}

func TestRunRepository_SaveSetsID(t *testing.T) {
	repo := newTestRepo(t)

	run := testRun("mac", 24.0, time.Now())
	require.NoError(t, repo.Save(run))
	require.Greater(t, run.ID, int64(0))

	second := testRun("mac", 30.0, time.Now())
	require.NoError(t, repo.Save(second))
	require.Greater(t, second.ID, run.ID)
}

func TestRunRepository_SaveRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	run := &game.Run{
		OS:         "linux",
		Duration:   90 * time.Second,
		Attempted:  12,
		Correct:    9,
		Skipped:    2,
		BestStreak: 6,
		CPM:        6.0,
		Accuracy:   0.75,
		CreatedAt:  created,
	}
	require.NoError(t, repo.Save(run))

	got, err := repo.Best("linux")
	require.NoError(t, err)
	require.Equal(t, run.ID, got.ID)
	require.Equal(t, "linux", got.OS)
	require.Equal(t, 90*time.Second, got.Duration)
	require.Equal(t, 12, got.Attempted)
	require.Equal(t, 9, got.Correct)
	require.Equal(t, 2, got.Skipped)
	require.Equal(t, 6, got.BestStreak)
	require.InDelta(t, 6.0, got.CPM, 1e-9)
	require.InDelta(t, 0.75, got.Accuracy, 1e-9)
	require.Equal(t, created.Unix(), got.CreatedAt.Unix())
}

func TestRunRepository_BestPicksHighestCPM(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Save(testRun("mac", 20.0, time.Now())))
	require.NoError(t, repo.Save(testRun("mac", 35.0, time.Now())))
	require.NoError(t, repo.Save(testRun("mac", 28.0, time.Now())))

	best, err := repo.Best("mac")
	require.NoError(t, err)
	require.InDelta(t, 35.0, best.CPM, 1e-9)
}

func TestRunRepository_BestIsScopedToOS(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Save(testRun("mac", 40.0, time.Now())))
	require.NoError(t, repo.Save(testRun("windows", 25.0, time.Now())))

	best, err := repo.Best("windows")
	require.NoError(t, err)
	require.Equal(t, "windows", best.OS)
	require.InDelta(t, 25.0, best.CPM, 1e-9)
}

func TestRunRepository_BestEmptyReturnsNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Best("mac")
	require.Error(t, err)

	var notFound *game.RunNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "mac", notFound.OS)
}

func TestRunRepository_SaveInvalidatesBestCache(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Save(testRun("mac", 20.0, time.Now())))

	// Prime the cache.
	best, err := repo.Best("mac")
	require.NoError(t, err)
	require.InDelta(t, 20.0, best.CPM, 1e-9)

	// A better run must displace the cached value.
	require.NoError(t, repo.Save(testRun("mac", 50.0, time.Now())))
	best, err = repo.Best("mac")
	require.NoError(t, err)
	require.InDelta(t, 50.0, best.CPM, 1e-9)
}

func TestRunRepository_RecentNewestFirst(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(testRun("mac", 20.0, base)))
	require.NoError(t, repo.Save(testRun("linux", 22.0, base.Add(time.Hour))))
	require.NoError(t, repo.Save(testRun("mac", 24.0, base.Add(2*time.Hour))))

	runs, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	require.InDelta(t, 24.0, runs[0].CPM, 1e-9)
	require.InDelta(t, 22.0, runs[1].CPM, 1e-9)
	require.InDelta(t, 20.0, runs[2].CPM, 1e-9)
}

func TestRunRepository_RecentHonorsLimit(t *testing.T) {
	repo := newTestRepo(t)

	now := time.Now()
	for i := range 5 {
		require.NoError(t, repo.Save(testRun("mac", float64(i), now.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
}

func TestRunRepository_RecentEmptyIsNotAnError(t *testing.T) {
	repo := newTestRepo(t)

	runs, err := repo.Recent(10)
	require.NoError(t, err)
	require.Empty(t, runs)
}
