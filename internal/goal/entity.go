package goal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Goal struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title              string          `gorm:"not null;index" json:"title"`
	Description        string          `json:"description,omitempty"`
	Category           string          `gorm:"index" json:"category,omitempty"`
	TargetDate         *time.Time      `json:"target_date,omitempty"`
	ProgressPercentage float64         `gorm:"not null;default:0" json:"progress_percentage"`
	Status             GoalStatus      `gorm:"not null;default:'active';index" json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	ProgressEntries    []ProgressEntry `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"progress_entries"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Status == "" {
		g.Status = GoalStatusActive
	}
	return nil
}

// ProgressEntry is one recorded update. Entries are never edited after creation.
type ProgressEntry struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	GoalID             uuid.UUID                   `gorm:"type:uuid;not null;index" json:"goal_id"`
	Text               string                      `gorm:"type:text;not null" json:"text"`
	ProgressPercentage float64                     `json:"progress_percentage"`
	Sentiment          string                      `json:"sentiment"`
	KeyInsights        datatypes.JSONSlice[string] `json:"key_insights"`
	CreatedAt          time.Time                   `gorm:"index" json:"created_at"`
}

func (e *ProgressEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Snapshot returns a copy that shares no slices with g.
func (g *Goal) Snapshot() Goal {
	cp := *g
	if g.TargetDate != nil {
		td := *g.TargetDate
		cp.TargetDate = &td
	}
	if g.ProgressEntries != nil {
		cp.ProgressEntries = make([]ProgressEntry, len(g.ProgressEntries))
		copy(cp.ProgressEntries, g.ProgressEntries)
	}
	return cp
}
