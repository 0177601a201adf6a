package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ListActivitiesRequest struct {
	Category   string `json:"-" validate:"omitempty,oneof=breathing meditation mindfulness sleep"`
	Difficulty string `json:"-" validate:"omitempty,oneof=beginner intermediate advanced"`
	Page       int    `json:"-" validate:"omitempty,min=1"`
	Limit      int    `json:"-" validate:"omitempty,min=1,max=100"`
}

// Response DTOs

type RelaxationActivityResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Difficulty      string    `json:"difficulty"`
	DurationMinutes int       `json:"duration_minutes"`
	AudioURL        string    `json:"audio_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RelaxationActivityListResponse struct {
	Activities []RelaxationActivityResponse `json:"activities"`
	Total      int64                        `json:"total"`
}
