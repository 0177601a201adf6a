package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending    AppointmentStatus = "pending"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "no-show"
	// AppointmentStatusRescheduled exists for wire compatibility; the engine
	// reschedules in place and sets the appointment back to confirmed.
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// ActiveStatuses are the statuses that block a doctor's calendar.
// Appointments in any of these states participate in conflict detection.
var ActiveStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusInProgress,
}

type AppointmentMode string

const (
	AppointmentModeVideo    AppointmentMode = "video"
	AppointmentModeAudio    AppointmentMode = "audio"
	AppointmentModeInPerson AppointmentMode = "in-person"
)

type CancelledBy string

const (
	CancelledByPatient CancelledBy = "patient"
	CancelledByDoctor  CancelledBy = "doctor"
	CancelledByAdmin   CancelledBy = "admin"
)

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusProcessed RefundStatus = "processed"
	RefundStatusFailed    RefundStatus = "failed"
)

// Appointment is a ledger entry for one booked consultation. Records are
// never deleted; cancellation and rescheduling are status/field mutations
// so the audit history survives.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_time" json:"doctor_id"`
	ScheduleTime    time.Time         `gorm:"not null;index:idx_appointments_doctor_time" json:"schedule_time"`
	EndTime         time.Time         `gorm:"not null" json:"end_time"`
	DurationMinutes int               `gorm:"not null;default:45" json:"duration_minutes"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	Reason   string          `gorm:"type:varchar(500);not null" json:"reason"`
	Mode     AppointmentMode `gorm:"type:varchar(20);not null;default:'video'" json:"mode"`
	Location string          `gorm:"type:varchar(255)" json:"location"`

	ConfirmationCode string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"confirmation_code"`
	Fee              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fee"`
	Currency         string          `gorm:"type:varchar(10);not null;default:'INR'" json:"currency"`

	PatientNotes         string `gorm:"type:text" json:"patient_notes,omitempty"`
	PreviousTreatment    string `gorm:"type:text" json:"previous_treatment,omitempty"`
	MedicationsCurrently string `gorm:"type:text" json:"medications_currently,omitempty"`
	DoctorNotes          string `gorm:"type:text" json:"doctor_notes,omitempty"`

	// Reschedule lineage
	OriginalAppointmentID *uuid.UUID `gorm:"type:uuid" json:"original_appointment_id,omitempty"`
	RescheduleCount       int        `gorm:"not null;default:0" json:"reschedule_count"`
	LastRescheduledAt     *time.Time `json:"last_rescheduled_at,omitempty"`
	RescheduleReason      string     `gorm:"type:varchar(500)" json:"reschedule_reason,omitempty"`

	// Cancellation & refunds
	CancelledAt        *time.Time       `json:"cancelled_at,omitempty"`
	CancellationReason string           `gorm:"type:varchar(500)" json:"cancellation_reason,omitempty"`
	CancelledBy        CancelledBy      `gorm:"type:varchar(20)" json:"cancelled_by,omitempty"`
	RefundStatus       RefundStatus     `gorm:"type:varchar(20)" json:"refund_status,omitempty"`
	RefundAmount       *decimal.Decimal `gorm:"type:decimal(10,2)" json:"refund_amount,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsActive reports whether the appointment blocks its doctor's calendar.
func (a *Appointment) IsActive() bool {
	for _, s := range ActiveStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Overlaps reports whether the half-open interval [ScheduleTime, EndTime)
// intersects [start, end). Touching endpoints do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.ScheduleTime.Before(end) && a.EndTime.After(start)
}
