package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VerificationStatus is the admin review state of a doctor profile
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// DoctorProfile represents doctor-specific profile data. Only verified
// doctors are listed in the directory and accept bookings.
type DoctorProfile struct {
	UserID                 uuid.UUID          `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber          string             `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specializations        StringList         `gorm:"type:jsonb" json:"specializations"`
	YearsOfExperience      int                `gorm:"not null;default:0" json:"years_of_experience"`
	Biography              string             `gorm:"type:text" json:"biography,omitempty"`
	ConsultationFee        decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	Currency               string             `gorm:"type:varchar(10);not null;default:'INR'" json:"currency"`
	SessionDurationMinutes int                `gorm:"not null;default:45" json:"session_duration_minutes"`
	Availability           Availability       `gorm:"type:jsonb" json:"availability"`
	VerificationStatus     VerificationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"verification_status"`
	RatingAverage          float64            `gorm:"not null;default:0" json:"rating_average"`
	RatingCount            int                `gorm:"not null;default:0" json:"rating_count"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID;references:UserID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// IsVerified checks if the doctor has passed admin verification
func (d *DoctorProfile) IsVerified() bool {
	return d.VerificationStatus == VerificationStatusVerified
}
