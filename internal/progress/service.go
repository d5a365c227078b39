package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saulo-duarte/goal-pulse/internal/analysis"
	"github.com/saulo-duarte/goal-pulse/internal/config"
	"github.com/saulo-duarte/goal-pulse/internal/goal"
	"github.com/saulo-duarte/goal-pulse/internal/realtime"
	"github.com/sirupsen/logrus"
)

type Analyzer interface {
	Analyze(text, goalTitle string) analysis.Result
}

type UpdateResult struct {
	Progress goal.ProgressEntry `json:"progress"`
	Feedback string             `json:"feedback"`
	Analysis analysis.Result    `json:"analysis"`
}

type UpdatedPayload struct {
	GoalID      string             `json:"goal_id"`
	Progress    goal.ProgressEntry `json:"progress"`
	Feedback    string             `json:"feedback"`
	UpdatedGoal goal.Goal          `json:"updated_goal"`
}

type Service interface {
	HandleUpdate(ctx context.Context, goalID string, text string) (*UpdateResult, error)
}

type service struct {
	repo        goal.Repository
	analyzer    Analyzer
	broadcaster realtime.Broadcaster
}

func NewService(repo goal.Repository, analyzer Analyzer, broadcaster realtime.Broadcaster) Service {
	return &service{
		repo:        repo,
		analyzer:    analyzer,
		broadcaster: broadcaster,
	}
}

// HandleUpdate records a free-text update against a goal. The entry and the goal's new
// progress are written in one transaction; the event is broadcast only after it commits.
func (s *service) HandleUpdate(ctx context.Context, goalID string, text string) (*UpdateResult, error) {
	log := config.WithContext(ctx)

	id, err := goal.ParseID(log, goalID)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrPersistence(log, err, "find goal")
	}

	result := s.analyzer.Analyze(text, current.Title)
	log.WithFields(logrus.Fields{
		"goal_id":   id,
		"progress":  result.ProgressPercentage,
		"sentiment": result.Sentiment,
		"rule":      result.Rule,
	}).Debug("Update analyzed")

	var (
		entry  goal.ProgressEntry
		before goal.Goal
		after  goal.Goal
	)
	err = s.repo.Transaction(ctx, func(tx goal.Repository) error {
		stored, err := tx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		before = stored.Snapshot()

		entry = goal.ProgressEntry{
			GoalID:             id,
			Text:               text,
			ProgressPercentage: result.ProgressPercentage,
			Sentiment:          string(result.Sentiment),
			KeyInsights:        result.Insights,
		}
		if err := tx.CreateProgressEntry(ctx, &entry); err != nil {
			return fmt.Errorf("create progress entry: %w", err)
		}

		after = goal.ApplyProgress(stored.Snapshot(), result.ProgressPercentage)
		after.UpdatedAt = time.Now().UTC()
		fields := map[string]any{
			"progress_percentage": after.ProgressPercentage,
			"updated_at":          after.UpdatedAt,
		}
		// Status is only ever promoted to completed here, never written back.
		if after.Status == goal.GoalStatusCompleted {
			fields["status"] = string(after.Status)
		}
		if err := tx.UpdateFields(ctx, id, fields); err != nil {
			return fmt.Errorf("save goal progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, notFoundOrPersistence(log, err, "record progress")
	}

	feedback := GenerateFeedback(before, result)

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to reload goal after update, broadcasting in-memory snapshot")
		after.ProgressEntries = append([]goal.ProgressEntry{entry}, after.ProgressEntries...)
		updated = &after
	}

	s.broadcaster.Broadcast(realtime.Event{
		Type: realtime.EventProgressUpdated,
		Data: UpdatedPayload{
			GoalID:      id.String(),
			Progress:    entry,
			Feedback:    feedback,
			UpdatedGoal: updated.Snapshot(),
		},
	})

	log.WithFields(logrus.Fields{
		"goal_id":  id,
		"entry_id": entry.ID,
		"status":   updated.Status,
	}).Info("Progress recorded successfully")

	return &UpdateResult{
		Progress: entry,
		Feedback: feedback,
		Analysis: result,
	}, nil
}

func notFoundOrPersistence(log logrus.FieldLogger, err error, action string) error {
	if errors.Is(err, goal.ErrGoalNotFound) {
		log.Warn("Goal not found for progress update")
		return goal.ErrGoalNotFound
	}
	log.WithError(err).Errorf("Failed to %s", action)
	return fmt.Errorf("%w: %s: %w", goal.ErrPersistence, action, err)
}
