package goal

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	FindAll(ctx context.Context, limit, offset int) ([]Goal, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	// FindByIDForUpdate locks the goal row until the surrounding transaction ends.
	// SQLite has no row locks and ignores the clause.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Goal, error)
	Save(ctx context.Context, goal *Goal) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateProgressEntry(ctx context.Context, entry *ProgressEntry) error
	ListProgressEntries(ctx context.Context, goalID uuid.UUID) ([]ProgressEntry, error)
	Statistics(ctx context.Context) (*DashboardStats, error)

	// Transaction runs fn against a repository bound to a single database transaction.
	// Returning an error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(repo Repository) error) error
	AutoMigrate() error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) AutoMigrate() error {
	return r.db.AutoMigrate(&Goal{}, &ProgressEntry{})
}

func (r *repository) Create(ctx context.Context, goal *Goal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(goal).Error
}

func (r *repository) FindAll(ctx context.Context, limit, offset int) ([]Goal, error) {
	var goals []Goal
	if err := r.db.WithContext(ctx).
		Preload("ProgressEntries", newestFirst).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Goal, error) {
	return r.findByID(r.db.WithContext(ctx).Preload("ProgressEntries", newestFirst), id)
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Goal, error) {
	return r.findByID(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *repository) findByID(db *gorm.DB, id uuid.UUID) (*Goal, error) {
	var goal Goal
	if err := db.First(&goal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *repository) Save(ctx context.Context, goal *Goal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(goal).Error
}

// UpdateFields writes only the given columns, leaving concurrent edits to other columns intact.
func (r *repository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&Goal{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ProgressEntry{}, "goal_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&Goal{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrGoalNotFound
		}
		return nil
	})
}

func (r *repository) CreateProgressEntry(ctx context.Context, entry *ProgressEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) ListProgressEntries(ctx context.Context, goalID uuid.UUID) ([]ProgressEntry, error) {
	var entries []ProgressEntry
	if err := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) Statistics(ctx context.Context) (*DashboardStats, error) {
	db := r.db.WithContext(ctx).Model(&Goal{})
	stats := &DashboardStats{GoalsByCategory: map[string]int64{}}

	if err := db.Session(&gorm.Session{}).Count(&stats.TotalGoals).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("status = ?", GoalStatusCompleted).Count(&stats.CompletedGoals).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("status = ?", GoalStatusActive).Count(&stats.ActiveGoals).Error; err != nil {
		return nil, err
	}

	var avg sql.NullFloat64
	if err := db.Session(&gorm.Session{}).Select("AVG(progress_percentage)").Row().Scan(&avg); err != nil {
		return nil, err
	}
	if avg.Valid {
		stats.AverageProgress = math.Round(avg.Float64*100) / 100
	}

	var rows []struct {
		Category string
		Count    int64
	}
	if err := db.Session(&gorm.Session{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		category := row.Category
		if category == "" {
			category = "Uncategorized"
		}
		stats.GoalsByCategory[category] += row.Count
	}

	return stats, nil
}

func (r *repository) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
