package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mindsync-server/internal/service"
)

// Request DTOs

type ListDoctorsRequest struct {
	Specialty string  `json:"-" validate:"omitempty,max=100"`
	MinRating float64 `json:"-" validate:"omitempty,min=0,max=5"`
	Search    string  `json:"-" validate:"omitempty,max=100"`
	Page      int     `json:"-" validate:"omitempty,min=1"`
	Limit     int     `json:"-" validate:"omitempty,min=1,max=100"`
}

type GetDoctorSlotsRequest struct {
	DoctorID uuid.UUID `json:"-" validate:"required"`
	Date     string    `json:"-" validate:"omitempty,datetime=2006-01-02"`
	Days     int       `json:"-" validate:"omitempty,min=1,max=31"`
}

type AvailabilitySlotRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

type UpdateAvailabilityRequest struct {
	WorkingDays []int                     `json:"working_days" validate:"required,dive,min=0,max=6"`
	Slots       []AvailabilitySlotRequest `json:"slots" validate:"required,dive"`
}

// Response DTOs

type DoctorResponse struct {
	ID                     uuid.UUID       `json:"id"`
	FullName               string          `json:"full_name"`
	Avatar                 string          `json:"avatar,omitempty"`
	Specializations        []string        `json:"specializations"`
	YearsOfExperience      int             `json:"years_of_experience"`
	Biography              string          `json:"biography,omitempty"`
	ConsultationFee        decimal.Decimal `json:"consultation_fee"`
	Currency               string          `json:"currency"`
	SessionDurationMinutes int             `json:"session_duration_minutes"`
	RatingAverage          float64         `json:"rating_average"`
	RatingCount            int             `json:"rating_count"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
}

type DoctorSlotsResponse struct {
	DoctorID uuid.UUID              `json:"doctor_id"`
	From     string                 `json:"from"`
	Days     int                    `json:"days"`
	Slots    []service.SlotInstance `json:"slots"`
}

type AvailabilityResponse struct {
	WorkingDays []int                     `json:"working_days"`
	Slots       []AvailabilitySlotRequest `json:"slots"`
}
