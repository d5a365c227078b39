package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/saulo-duarte/goal-pulse/internal/analysis"
	"github.com/saulo-duarte/goal-pulse/internal/goal"
	"github.com/saulo-duarte/goal-pulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := goal.NewRepository(testutil.NewTestDB(t))
	require.NoError(t, repo.AutoMigrate())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n, err := seed(ctx, repo, analysis.NewAnalyzer(), now)
	require.NoError(t, err)
	assert.Equal(t, len(sampleGoals), n)

	goals, err := repo.FindAll(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, goals, len(sampleGoals))

	byTitle := map[string]goal.Goal{}
	for _, g := range goals {
		byTitle[g.Title] = g
		assert.Equal(t, goal.GoalStatusActive, g.Status)
		require.Len(t, g.ProgressEntries, 1)
		assert.True(t, g.ProgressEntries[0].CreatedAt.Before(now))
	}

	fund := byTitle["Save $10,000 Emergency Fund"]
	assert.Equal(t, 70.0, fund.ProgressPercentage)

	project := byTitle["Launch My Side Project"]
	assert.Equal(t, 60.0, project.ProgressEntries[0].ProgressPercentage)

	stats, err := repo.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalGoals)
	assert.Equal(t, 46.6, stats.AverageProgress)
}

func TestAnalyzeCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := analyzeCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--title", "Learn Spanish", "About", "45%", "through", "the", "course"})

	require.NoError(t, cmd.Execute())

	var got struct {
		Analysis analysis.Result `json:"analysis"`
		Feedback string          `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 45.0, got.Analysis.ProgressPercentage)
	assert.Equal(t, "percent", got.Analysis.Rule)
	assert.Equal(t, "You're making progress. Consider what's working well.", got.Feedback)
}

func TestWatchCommand_ReturnsWhenServerDrops(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"goal_created","data":{"title":"Learn Spanish"}}`))
		conn.Close()
	}))
	defer srv.Close()

	var out bytes.Buffer
	cmd := watchCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--server", srv.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.NoError(t, ctx.Err(), "command must return on its own, not on cancellation")
	assert.Contains(t, out.String(), `goal_created {"title":"Learn Spanish"}`)
}
