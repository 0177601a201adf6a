package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID             uuid.UUID `json:"doctor_id" validate:"required"`
	SlotID               string    `json:"slot_id" validate:"required"`
	Reason               string    `json:"reason" validate:"required,max=500"`
	Mode                 string    `json:"mode" validate:"omitempty,oneof=video audio in-person"`
	PatientNotes         string    `json:"patient_notes" validate:"omitempty,max=2000"`
	PreviousTreatment    string    `json:"previous_treatment" validate:"omitempty,max=2000"`
	MedicationsCurrently string    `json:"medications_currently" validate:"omitempty,max=2000"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type RescheduleAppointmentRequest struct {
	SlotID string `json:"slot_id" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type ListAppointmentsRequest struct {
	Status   string `json:"-" validate:"omitempty,oneof=pending confirmed in-progress completed cancelled no-show"`
	Upcoming *bool  `json:"-"`
	Page     int    `json:"-" validate:"omitempty,min=1"`
	Limit    int    `json:"-" validate:"omitempty,min=1,max=100"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID       `json:"id"`
	PatientID        uuid.UUID       `json:"patient_id"`
	DoctorID         uuid.UUID       `json:"doctor_id"`
	DoctorName       string          `json:"doctor_name,omitempty"`
	ScheduleTime     time.Time       `json:"schedule_time"`
	EndTime          time.Time       `json:"end_time"`
	DurationMinutes  int             `json:"duration_minutes"`
	Status           string          `json:"status"`
	Reason           string          `json:"reason"`
	Mode             string          `json:"mode"`
	ConfirmationCode string          `json:"confirmation_code"`
	Fee              decimal.Decimal `json:"fee"`
	Currency         string          `json:"currency"`

	RescheduleCount   int        `json:"reschedule_count"`
	LastRescheduledAt *time.Time `json:"last_rescheduled_at,omitempty"`

	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledBy        string     `json:"cancelled_by,omitempty"`
	RefundStatus       string     `json:"refund_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}
