package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/goal-pulse/internal/config"
	"github.com/saulo-duarte/goal-pulse/internal/realtime"
	util "github.com/saulo-duarte/goal-pulse/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrGoalNotFound  = errors.New("goal not found")
	ErrInvalidID     = errors.New("invalid id format")
	ErrInvalidStatus = errors.New("invalid goal status")
	ErrTitleRequired = errors.New("title is required")
	ErrPersistence   = errors.New("persistence failure")
)

const defaultListLimit = 100

type Service interface {
	Create(ctx context.Context, dto CreateGoalDTO) (*Goal, error)
	List(ctx context.Context) ([]Goal, error)
	Get(ctx context.Context, id string) (*Goal, error)
	UpdateFields(ctx context.Context, id string, dto UpdateGoalDTO) (*Goal, error)
	Delete(ctx context.Context, id string) error
	ListProgress(ctx context.Context, id string) ([]ProgressEntry, error)
	Dashboard(ctx context.Context) (*DashboardResponse, error)
}

type service struct {
	repo        Repository
	broadcaster realtime.Broadcaster
}

func NewService(repo Repository, broadcaster realtime.Broadcaster) Service {
	return &service{repo: repo, broadcaster: broadcaster}
}

// ParseID validates a goal id coming from a URL or a client message.
func ParseID(log logrus.FieldLogger, id string) (uuid.UUID, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warn("Invalid goal ID")
		return uuid.Nil, ErrInvalidID
	}
	return parsedID, nil
}

func (s *service) Create(ctx context.Context, dto CreateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)

	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	goal := Goal{
		Title:       title,
		Description: dto.Description,
		Category:    dto.Category,
		TargetDate:  util.ToTimePtr(dto.TargetDate),
		Status:      GoalStatusActive,
	}

	if err := s.repo.Create(ctx, &goal); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, fmt.Errorf("%w: create goal: %w", ErrPersistence, err)
	}
	goal.ProgressEntries = []ProgressEntry{}

	s.broadcaster.Broadcast(realtime.Event{Type: realtime.EventGoalCreated, Data: goal.Snapshot()})

	log.WithField("goal_id", goal.ID).Info("Goal created successfully")
	return &goal, nil
}

func (s *service) List(ctx context.Context) ([]Goal, error) {
	goals, err := s.repo.FindAll(ctx, defaultListLimit, 0)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list goals")
		return nil, fmt.Errorf("%w: list goals: %w", ErrPersistence, err)
	}
	if goals == nil {
		goals = []Goal{}
	}
	return goals, nil
}

func (s *service) Get(ctx context.Context, id string) (*Goal, error) {
	log := config.WithContext(ctx)
	goalID, err := ParseID(log, id)
	if err != nil {
		return nil, err
	}
	return s.find(ctx, log, goalID)
}

func (s *service) find(ctx context.Context, log logrus.FieldLogger, id uuid.UUID) (*Goal, error) {
	goal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			log.WithField("goal_id", id).Warn("Goal not found")
			return nil, ErrGoalNotFound
		}
		log.WithError(err).Error("Error finding goal by ID")
		return nil, fmt.Errorf("%w: find goal: %w", ErrPersistence, err)
	}
	return goal, nil
}

func (s *service) UpdateFields(ctx context.Context, id string, dto UpdateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)
	goalID, err := ParseID(log, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		fields["title"] = title
	}
	if dto.Description != nil {
		fields["description"] = *dto.Description
	}
	if dto.Category != nil {
		fields["category"] = *dto.Category
	}
	if target := util.ToTimePtr(dto.TargetDate); target != nil {
		fields["target_date"] = *target
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			log.WithField("status", *dto.Status).Warn("Rejected invalid goal status")
			return nil, ErrInvalidStatus
		}
		fields["status"] = string(*dto.Status)
	}

	if len(fields) == 0 {
		return s.find(ctx, log, goalID)
	}
	fields["updated_at"] = time.Now().UTC()

	if err := s.repo.UpdateFields(ctx, goalID, fields); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			log.WithField("goal_id", goalID).Warn("Goal not found for update")
			return nil, ErrGoalNotFound
		}
		log.WithError(err).Error("Failed to update goal")
		return nil, fmt.Errorf("%w: update goal: %w", ErrPersistence, err)
	}

	updated, err := s.find(ctx, log, goalID)
	if err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(realtime.Event{Type: realtime.EventGoalUpdated, Data: updated.Snapshot()})

	log.WithField("goal_id", goalID).Info("Goal updated successfully")
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	goalID, err := ParseID(log, id)
	if err != nil {
		return err
	}

	goal, err := s.find(ctx, log, goalID)
	if err != nil {
		return err
	}
	deleted := goal.Snapshot()

	if err := s.repo.Delete(ctx, goalID); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			return ErrGoalNotFound
		}
		log.WithError(err).Error("Failed to delete goal")
		return fmt.Errorf("%w: delete goal: %w", ErrPersistence, err)
	}

	s.broadcaster.Broadcast(realtime.Event{
		Type: realtime.EventGoalDeleted,
		Data: DeletedGoalPayload{GoalID: goalID.String(), DeletedGoal: deleted},
	})

	log.WithField("goal_id", goalID).Info("Goal deleted successfully")
	return nil
}

func (s *service) ListProgress(ctx context.Context, id string) ([]ProgressEntry, error) {
	log := config.WithContext(ctx)
	goalID, err := ParseID(log, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.find(ctx, log, goalID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListProgressEntries(ctx, goalID)
	if err != nil {
		log.WithError(err).Error("Failed to list progress entries")
		return nil, fmt.Errorf("%w: list progress: %w", ErrPersistence, err)
	}
	if entries == nil {
		entries = []ProgressEntry{}
	}
	return entries, nil
}

func (s *service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	goals, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to compute goal statistics")
		return nil, fmt.Errorf("%w: statistics: %w", ErrPersistence, err)
	}

	return &DashboardResponse{
		Goals:       goals,
		Statistics:  *stats,
		LastUpdated: time.Now().UTC(),
	}, nil
}
