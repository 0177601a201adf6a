package repository

import (
	"errors"
	"time"

	"mindsync-server/internal/domain/entity"
	domainRepo "mindsync-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

// CreateIfNoOverlap runs the conflict check and the insert as one
// transaction. The doctor's active rows are locked with FOR UPDATE so two
// concurrent bookings for overlapping intervals cannot both pass the check;
// the partial unique index on (doctor_id, schedule_time) backs this up for
// identical start times, which also makes booking retries idempotent.
func (r *appointmentRepository) CreateIfNoOverlap(db *gorm.DB, appointment *entity.Appointment) (*entity.Appointment, error) {
	var conflict *entity.Appointment

	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := r.findActiveOverlapLocked(tx, appointment.DoctorID, appointment.ScheduleTime, appointment.EndTime, nil)
		if err != nil {
			return err
		}
		if existing != nil {
			conflict = existing
			return nil
		}
		return tx.Create(appointment).Error
	})
	if err != nil {
		return nil, err
	}
	return conflict, nil
}

// RescheduleIfNoOverlap moves the appointment in place: the superseded
// interval is freed simply because the conflict check only ever considers
// the record's current interval.
func (r *appointmentRepository) RescheduleIfNoOverlap(db *gorm.DB, appointment *entity.Appointment, newStart, newEnd time.Time, reason string, now time.Time) (*entity.Appointment, error) {
	var conflict *entity.Appointment

	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := r.findActiveOverlapLocked(tx, appointment.DoctorID, newStart, newEnd, &appointment.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			conflict = existing
			return nil
		}

		appointment.ScheduleTime = newStart
		appointment.EndTime = newEnd
		appointment.Status = entity.AppointmentStatusConfirmed
		appointment.RescheduleCount++
		appointment.LastRescheduledAt = &now
		appointment.RescheduleReason = reason
		return tx.Save(appointment).Error
	})
	if err != nil {
		return nil, err
	}
	return conflict, nil
}

func (r *appointmentRepository) FindActiveOverlap(db *gorm.DB, doctorID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (*entity.Appointment, error) {
	return r.findActiveOverlap(db, doctorID, start, end, excludeID, false)
}

func (r *appointmentRepository) findActiveOverlapLocked(db *gorm.DB, doctorID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (*entity.Appointment, error) {
	return r.findActiveOverlap(db, doctorID, start, end, excludeID, true)
}

// findActiveOverlap applies the half-open interval intersection test:
// existing.schedule_time < end AND existing.end_time > start. Touching
// endpoints do not conflict.
func (r *appointmentRepository) findActiveOverlap(db *gorm.DB, doctorID uuid.UUID, start, end time.Time, excludeID *uuid.UUID, forUpdate bool) (*entity.Appointment, error) {
	query := db.
		Where("doctor_id = ?", doctorID).
		Where("schedule_time < ? AND end_time > ?", end, start).
		Where("status IN ?", entity.ActiveStatuses)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var appointment entity.Appointment
	err := query.First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindActiveInRange(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("doctor_id = ?", doctorID).
		Where("schedule_time >= ? AND schedule_time < ?", from, to).
		Where("status IN ?", entity.ActiveStatuses).
		Order("schedule_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter domainRepo.AppointmentFilter) ([]entity.Appointment, int64, error) {
	query := db.Model(&entity.Appointment{}).Where("patient_id = ?", patientID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	order := "schedule_time DESC"
	if filter.Upcoming != nil {
		if *filter.Upcoming {
			query = query.Where("schedule_time > ?", filter.Now)
			order = "schedule_time ASC"
		} else {
			query = query.Where("schedule_time < ?", filter.Now)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []entity.Appointment
	err := query.
		Preload("Doctor").
		Order(order).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}
