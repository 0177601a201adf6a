package entity

import (
	"time"

	"github.com/google/uuid"
)

// RelaxationActivity is a guided exercise from the relaxation hub catalog
type RelaxationActivity struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	Category        string    `gorm:"type:varchar(50);not null;index" json:"category"`
	Difficulty      string    `gorm:"type:varchar(20);not null" json:"difficulty"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	AudioURL        string    `gorm:"type:varchar(500)" json:"audio_url,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RelaxationActivity) TableName() string {
	return "relaxation_activities"
}

// Activity categories
const (
	ActivityCategoryBreathing   = "breathing"
	ActivityCategoryMeditation  = "meditation"
	ActivityCategoryMindfulness = "mindfulness"
	ActivityCategorySleep       = "sleep"
)

// Difficulty levels
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)
