package repository

import (
	"time"

	"mindsync-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentFilter narrows ledger listings for a patient.
type AppointmentFilter struct {
	Status   entity.AppointmentStatus
	Upcoming *bool // true: schedule_time > now, false: schedule_time < now
	Now      time.Time
	Limit    int
	Offset   int
}

type AppointmentRepository interface {
	// CreateIfNoOverlap inserts the appointment inside a transaction that
	// first locks the doctor's active appointments and checks the half-open
	// interval [ScheduleTime, EndTime) for overlap. It returns the
	// conflicting appointment (and does not insert) when one exists.
	CreateIfNoOverlap(db *gorm.DB, appointment *entity.Appointment) (*entity.Appointment, error)

	// RescheduleIfNoOverlap moves an existing appointment to a new interval
	// under the same transactional overlap check, excluding the appointment
	// itself from conflict detection.
	RescheduleIfNoOverlap(db *gorm.DB, appointment *entity.Appointment, newStart, newEnd time.Time, reason string, now time.Time) (*entity.Appointment, error)

	// FindActiveOverlap returns an active appointment for the doctor whose
	// interval intersects [start, end), or nil. excludeID skips one record.
	FindActiveOverlap(db *gorm.DB, doctorID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (*entity.Appointment, error)

	// FindActiveInRange lists the doctor's calendar-blocking appointments
	// with schedule_time inside [from, to) for slot generation.
	FindActiveInRange(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)

	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter AppointmentFilter) ([]entity.Appointment, int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
