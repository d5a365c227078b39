package goal

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/goal-pulse/internal/realtime"
	"github.com/saulo-duarte/goal-pulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, Repository, *testutil.RecordingBroadcaster) {
	t.Helper()
	repo := newTestRepository(t)
	broadcaster := &testutil.RecordingBroadcaster{}
	return NewService(repo, broadcaster), repo, broadcaster
}

func ptr[T any](v T) *T { return &v }

func TestService_Create(t *testing.T) {
	svc, repo, broadcaster := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateGoalDTO{Title: "  Learn Spanish ", Category: "Education"})
	require.NoError(t, err)
	assert.Equal(t, "Learn Spanish", created.Title)
	assert.Equal(t, GoalStatusActive, created.Status)
	assert.Equal(t, 0.0, created.ProgressPercentage)

	_, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err, "goal is persisted before it is announced")

	events := broadcaster.Events()
	require.Len(t, events, 1)
	assert.Equal(t, realtime.EventGoalCreated, events[0].Type)
	assert.Equal(t, created.ID, events[0].Data.(Goal).ID)

	_, err = svc.Create(ctx, CreateGoalDTO{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Len(t, broadcaster.Events(), 1)
}

func TestService_Get(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestService_UpdateFieldsKeepsProgress(t *testing.T) {
	svc, repo, broadcaster := newTestService(t)
	ctx := context.Background()

	g := &Goal{Title: "Run a Half Marathon", ProgressPercentage: 65}
	require.NoError(t, repo.Create(ctx, g))

	updated, err := svc.UpdateFields(ctx, g.ID.String(), UpdateGoalDTO{
		Description: ptr("Spring race"),
		Status:      ptr(GoalStatusPaused),
	})
	require.NoError(t, err)
	assert.Equal(t, "Spring race", updated.Description)
	assert.Equal(t, GoalStatusPaused, updated.Status)
	assert.Equal(t, 65.0, updated.ProgressPercentage)

	events := broadcaster.Events()
	require.Len(t, events, 1)
	assert.Equal(t, realtime.EventGoalUpdated, events[0].Type)
}

func TestService_UpdateFieldsErrors(t *testing.T) {
	svc, repo, broadcaster := newTestService(t)
	ctx := context.Background()

	g := &Goal{Title: "Meditate Daily"}
	require.NoError(t, repo.Create(ctx, g))

	_, err := svc.UpdateFields(ctx, g.ID.String(), UpdateGoalDTO{Status: ptr(GoalStatus("archived"))})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateFields(ctx, g.ID.String(), UpdateGoalDTO{Title: ptr("")})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.UpdateFields(ctx, uuid.NewString(), UpdateGoalDTO{Category: ptr("Health")})
	assert.ErrorIs(t, err, ErrGoalNotFound)

	assert.Empty(t, broadcaster.Events())
}

func TestService_Delete(t *testing.T) {
	svc, repo, broadcaster := newTestService(t)
	ctx := context.Background()

	g := &Goal{Title: "Launch Side Project"}
	require.NoError(t, repo.Create(ctx, g))

	require.NoError(t, svc.Delete(ctx, g.ID.String()))

	events := broadcaster.Events()
	require.Len(t, events, 1)
	assert.Equal(t, realtime.EventGoalDeleted, events[0].Type)
	payload := events[0].Data.(DeletedGoalPayload)
	assert.Equal(t, g.ID.String(), payload.GoalID)
	assert.Equal(t, "Launch Side Project", payload.DeletedGoal.Title)

	assert.ErrorIs(t, svc.Delete(ctx, g.ID.String()), ErrGoalNotFound)
	assert.Len(t, broadcaster.Events(), 1)
}

func TestService_Dashboard(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, title := range []string{"Learn Spanish", "Read Books"} {
		_, err := svc.Create(ctx, CreateGoalDTO{Title: title, Category: "Education"})
		require.NoError(t, err)
	}

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, dash.Goals, 2)
	assert.Equal(t, int64(2), dash.Statistics.TotalGoals)
	assert.Equal(t, int64(2), dash.Statistics.ActiveGoals)
	assert.False(t, dash.LastUpdated.IsZero())
}

func TestService_ListProgress(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	g := &Goal{Title: "Learn Spanish"}
	require.NoError(t, repo.Create(ctx, g))

	entries, err := svc.ListProgress(ctx, g.ID.String())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	_, err = svc.ListProgress(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestService_CreateWithDateOnlyTarget(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	var dto CreateGoalDTO
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Run a Half Marathon","target_date":"2026-09-30"}`), &dto))

	created, err := svc.Create(ctx, dto)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.TargetDate)
	assert.True(t, found.TargetDate.Equal(time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)))
}
