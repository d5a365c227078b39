package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/goal-pulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()
	repo := NewRepository(testutil.NewTestDB(t))
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func TestRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	g := &Goal{Title: "Learn Spanish", Category: "Education"}
	require.NoError(t, repo.Create(ctx, g))
	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.Equal(t, GoalStatusActive, g.Status)

	found, err := repo.FindByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Learn Spanish", found.Title)
	assert.Equal(t, 0.0, found.ProgressPercentage)
	assert.Empty(t, found.ProgressEntries)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestRepository_UpdateFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	g := &Goal{Title: "Run a Half Marathon", Category: "Health", ProgressPercentage: 40}
	require.NoError(t, repo.Create(ctx, g))

	require.NoError(t, repo.UpdateFields(ctx, g.ID, map[string]any{"category": "Fitness"}))

	found, err := repo.FindByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fitness", found.Category)
	assert.Equal(t, "Run a Half Marathon", found.Title)
	assert.Equal(t, 40.0, found.ProgressPercentage)

	err = repo.UpdateFields(ctx, uuid.New(), map[string]any{"category": "Fitness"})
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestRepository_ProgressEntriesNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	g := &Goal{Title: "Read 24 Books This Year"}
	require.NoError(t, repo.Create(ctx, g))

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		entry := &ProgressEntry{
			GoalID:      g.ID,
			Text:        text,
			Sentiment:   "neutral",
			KeyInsights: []string{},
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.CreateProgressEntry(ctx, entry))
	}

	entries, err := repo.ListProgressEntries(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Text)
	assert.Equal(t, "first", entries[2].Text)

	found, err := repo.FindByID(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, found.ProgressEntries, 3)
	assert.Equal(t, "third", found.ProgressEntries[0].Text)
}

func TestRepository_DeleteRemovesEntries(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	g := &Goal{Title: "Launch Side Project"}
	require.NoError(t, repo.Create(ctx, g))
	require.NoError(t, repo.CreateProgressEntry(ctx, &ProgressEntry{GoalID: g.ID, Text: "started", Sentiment: "neutral"}))

	require.NoError(t, repo.Delete(ctx, g.ID))

	_, err := repo.FindByID(ctx, g.ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)
	entries, err := repo.ListProgressEntries(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, repo.Delete(ctx, g.ID), ErrGoalNotFound)
}

func TestRepository_Statistics(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	stats, err := repo.Statistics(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalGoals)
	assert.Zero(t, stats.AverageProgress)

	goals := []*Goal{
		{Title: "Learn Spanish", Category: "Education", ProgressPercentage: 35},
		{Title: "Read Books", Category: "Education", ProgressPercentage: 100, Status: GoalStatusCompleted},
		{Title: "Meditate", ProgressPercentage: 20, Status: GoalStatusPaused},
	}
	for _, g := range goals {
		require.NoError(t, repo.Create(ctx, g))
	}

	stats, err = repo.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalGoals)
	assert.Equal(t, int64(1), stats.CompletedGoals)
	assert.Equal(t, int64(1), stats.ActiveGoals)
	assert.Equal(t, 51.67, stats.AverageProgress)
	assert.Equal(t, map[string]int64{"Education": 2, "Uncategorized": 1}, stats.GoalsByCategory)
}

func TestRepository_TransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	g := &Goal{Title: "Save $10,000 Emergency Fund"}
	require.NoError(t, repo.Create(ctx, g))

	boom := errors.New("boom")
	err := repo.Transaction(ctx, func(tx Repository) error {
		require.NoError(t, tx.CreateProgressEntry(ctx, &ProgressEntry{GoalID: g.ID, Text: "saved $500", Sentiment: "neutral"}))
		require.NoError(t, tx.UpdateFields(ctx, g.ID, map[string]any{"progress_percentage": 5.0}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	found, err := repo.FindByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, found.ProgressPercentage)
	assert.Empty(t, found.ProgressEntries)
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	g := &Goal{Title: "Learn Spanish"}
	require.NoError(t, repo.Create(ctx, g))

	err := repo.Transaction(ctx, func(tx Repository) error {
		found, err := tx.FindByIDForUpdate(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, g.ID, found.ID)

		_, err = tx.FindByIDForUpdate(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrGoalNotFound)
		return nil
	})
	require.NoError(t, err)
}
