package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs

type DoctorProfileResponse struct {
	LicenseNumber          string          `json:"license_number"`
	Specializations        []string        `json:"specializations"`
	YearsOfExperience      int             `json:"years_of_experience"`
	ConsultationFee        decimal.Decimal `json:"consultation_fee"`
	Currency               string          `json:"currency"`
	SessionDurationMinutes int             `json:"session_duration_minutes"`
	VerificationStatus     string          `json:"verification_status"`
	RatingAverage          float64         `json:"rating_average"`
	RatingCount            int             `json:"rating_count"`
}

type PatientProfileResponse struct {
	PhoneNumber      string `json:"phone_number,omitempty"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	FullName       string                  `json:"full_name"`
	Avatar         string                  `json:"avatar,omitempty"`
	Bio            string                  `json:"bio,omitempty"`
	Role           string                  `json:"role"`
	DoctorProfile  *DoctorProfileResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
