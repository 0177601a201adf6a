package usecase

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"mindsync-server/config"
	"mindsync-server/internal/converter"
	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/delivery/http/middleware"
	"mindsync-server/internal/domain/entity"
	"mindsync-server/internal/domain/repository"
	"mindsync-server/internal/service"
	"mindsync-server/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrAppointmentNotOwned      = errors.New("appointment does not belong to you")
	ErrAppointmentNotActive     = errors.New("appointment is no longer active")
	ErrInvalidSlot              = errors.New("slot does not exist in the doctor's availability")
	ErrLeadTimeViolation        = errors.New("appointments must be booked at least 24 hours in advance")
	ErrHorizonViolation         = errors.New("appointments cannot be booked that far in advance")
	ErrSlotConflict             = errors.New("slot is already booked")
	ErrCancellationWindowClosed = errors.New("cancellation window has closed")
	ErrRescheduleWindowClosed   = errors.New("reschedule window has closed")
)

type AppointmentUsecase interface {
	GetMyAppointments(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error)
	RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	auditService    service.AuditService
	lockService     service.SlotLocker
	clock           clock.Clock
	booking         config.BookingConfig
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
	lockService service.SlotLocker,
	clk clock.Clock,
	booking config.BookingConfig,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
		lockService:     lockService,
		clock:           clk,
		booking:         booking,
	}
}

// GetMyAppointments returns the logged-in patient's appointments, optionally
// filtered by status and upcoming/past relative to now
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}

	filter := repository.AppointmentFilter{
		Status:   entity.AppointmentStatus(req.Status),
		Upcoming: req.Upcoming,
		Now:      u.clock.Now(),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	appointments, total, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), userID, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, nil
}

// GetAppointment returns a single appointment. Visible to the patient who
// booked it, the doctor it is with, and admins.
func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if appointment.PatientID != userID && appointment.DoctorID != userID && roleID != entity.RoleIDAdmin {
		return nil, ErrAppointmentNotOwned
	}

	return converter.AppointmentToResponse(appointment), nil
}

// BookAppointment books a slot for the logged-in patient.
//
// Flow:
// 1. Decode and validate the slot id against the doctor's availability template
// 2. Enforce the lead-time and horizon windows against the injected clock
// 3. Acquire the per-doctor Redis lock to serialize racing requests
// 4. Insert under a transactional overlap check (half-open intervals)
// 5. Any conflict, including a retry of an already-successful booking,
//    returns ErrSlotConflict; the earlier insert holds the interval
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	// Step 1: Resolve the doctor and validate the slot id against the template
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsVerified() {
		return nil, ErrInvalidSlot
	}

	start, err := service.DecodeSlotID(req.SlotID)
	if err != nil {
		return nil, ErrInvalidSlot
	}
	if !service.MatchesTemplate(doctor.Availability, start) {
		return nil, ErrInvalidSlot
	}

	// Step 2: Booking window checks. A slot starting exactly at the lead-time
	// or horizon boundary is still bookable.
	now := u.clock.Now()
	until := start.Sub(now)
	if until < u.booking.LeadTime {
		return nil, ErrLeadTimeViolation
	}
	if until > u.booking.Horizon {
		return nil, ErrHorizonViolation
	}

	end := start.Add(time.Duration(doctor.SessionDurationMinutes) * time.Minute)

	// Step 3: Serialize booking traffic for this doctor across instances.
	// The DB transaction below stays authoritative; a held lock just means
	// another request is mid-flight for the same calendar.
	token, err := u.lockService.Acquire(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, service.ErrDoctorLocked) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}
	defer u.releaseLock(req.DoctorID, token)

	mode := entity.AppointmentMode(req.Mode)
	if mode == "" {
		mode = entity.AppointmentModeVideo
	}

	appointment := &entity.Appointment{
		PatientID:            userID,
		DoctorID:             req.DoctorID,
		ScheduleTime:         start,
		EndTime:              end,
		DurationMinutes:      doctor.SessionDurationMinutes,
		Status:               entity.AppointmentStatusConfirmed,
		Reason:               req.Reason,
		Mode:                 mode,
		ConfirmationCode:     generateConfirmationCode(now),
		Fee:                  doctor.ConsultationFee,
		Currency:             doctor.Currency,
		PatientNotes:         req.PatientNotes,
		PreviousTreatment:    req.PreviousTreatment,
		MedicationsCurrently: req.MedicationsCurrently,
	}

	// Step 4: Transactional insert with row-locked overlap check
	conflict, err := u.appointmentRepo.CreateIfNoOverlap(u.db.WithContext(ctx), appointment)
	if err != nil {
		u.log.Warnf("Failed to create appointment for patient %s: %+v", userID, err)
		return nil, err
	}
	if conflict != nil {
		// Step 5: A retry of a successful booking lands here too. The
		// earlier insert already holds the interval, so the retry cannot
		// double-book; it just sees the conflict like anyone else.
		if conflict.PatientID == userID && conflict.ScheduleTime.Equal(start) {
			u.log.Infof("Booking retry for patient %s at %s, already booked as %s", userID, start, conflict.ID)
		}
		return nil, ErrSlotConflict
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), appointment); err != nil {
		u.log.Warnf("Failed to audit appointment booking %s: %+v", appointment.ID, err)
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, start=%s, code=%s", appointment.ID, req.DoctorID, start, appointment.ConfirmationCode)
	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment cancels an active appointment owned by the logged-in
// patient. The record is mutated, never deleted, so the slot frees up while
// the history stays queryable.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	// Step 1: Find appointment and verify ownership
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != userID {
		return nil, ErrAppointmentNotOwned
	}

	// Step 2: Only active appointments can be cancelled
	if !appointment.IsActive() {
		return nil, ErrAppointmentNotActive
	}

	// Step 3: Cancellation closes this long before the start. Exactly at the
	// boundary is still allowed.
	now := u.clock.Now()
	if appointment.ScheduleTime.Sub(now) < u.booking.CancelWindow {
		return nil, ErrCancellationWindowClosed
	}

	oldStatus := appointment.Status

	// Step 4: Mutate in place
	appointment.Status = entity.AppointmentStatusCancelled
	appointment.CancelledAt = &now
	appointment.CancellationReason = req.Reason
	appointment.CancelledBy = entity.CancelledByPatient
	appointment.RefundStatus = entity.RefundStatusPending
	refund := appointment.Fee
	appointment.RefundAmount = &refund

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionAppointmentCancel, "appointment", appointment.ID.String(),
		entity.JSON{"status": string(oldStatus)}, entity.JSON{"status": string(appointment.Status)}); err != nil {
		u.log.Warnf("Failed to audit appointment cancellation %s: %+v", appointmentID, err)
	}

	u.log.Infof("Appointment cancelled: id=%s, doctor=%s", appointmentID, appointment.DoctorID)
	return converter.AppointmentToResponse(appointment), nil
}

// RescheduleAppointment moves an active appointment to a new slot with the
// same doctor. The move is atomic: the old interval frees up and the new one
// is claimed inside one transaction, so a failure leaves the original
// booking untouched.
func (u *appointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	// Step 1: Find appointment and verify ownership
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != userID {
		return nil, ErrAppointmentNotOwned
	}
	if !appointment.IsActive() {
		return nil, ErrAppointmentNotActive
	}

	// Step 2: Rescheduling closes earlier than cancellation
	now := u.clock.Now()
	if appointment.ScheduleTime.Sub(now) < u.booking.RescheduleWindow {
		return nil, ErrRescheduleWindowClosed
	}

	// Step 3: Validate the target slot exactly like a fresh booking
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), appointment.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", appointment.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrInvalidSlot
	}

	newStart, err := service.DecodeSlotID(req.SlotID)
	if err != nil {
		return nil, ErrInvalidSlot
	}
	if !service.MatchesTemplate(doctor.Availability, newStart) {
		return nil, ErrInvalidSlot
	}

	until := newStart.Sub(now)
	if until < u.booking.LeadTime {
		return nil, ErrLeadTimeViolation
	}
	if until > u.booking.Horizon {
		return nil, ErrHorizonViolation
	}

	// Rescheduling onto the current slot is a retry, not a move
	if newStart.Equal(appointment.ScheduleTime) {
		return converter.AppointmentToResponse(appointment), nil
	}

	newEnd := newStart.Add(time.Duration(appointment.DurationMinutes) * time.Minute)
	oldStart := appointment.ScheduleTime

	// Step 4: Serialize with other booking traffic for this doctor
	token, err := u.lockService.Acquire(ctx, appointment.DoctorID)
	if err != nil {
		if errors.Is(err, service.ErrDoctorLocked) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}
	defer u.releaseLock(appointment.DoctorID, token)

	// Step 5: Atomic move under the same row-locked overlap check as booking
	conflict, err := u.appointmentRepo.RescheduleIfNoOverlap(u.db.WithContext(ctx), appointment, newStart, newEnd, req.Reason, now)
	if err != nil {
		u.log.Warnf("Failed to reschedule appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if conflict != nil {
		return nil, ErrSlotConflict
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionAppointmentReschedule, "appointment", appointment.ID.String(),
		entity.JSON{"schedule_time": oldStart}, entity.JSON{"schedule_time": newStart}); err != nil {
		u.log.Warnf("Failed to audit appointment reschedule %s: %+v", appointmentID, err)
	}

	u.log.Infof("Appointment rescheduled: id=%s, from=%s, to=%s", appointmentID, oldStart, newStart)
	return converter.AppointmentToResponse(appointment), nil
}

// releaseLock frees the doctor lock on a background context so a cancelled
// request context cannot leave the lock held until TTL expiry.
func (u *appointmentUsecase) releaseLock(doctorID uuid.UUID, token string) {
	releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := u.lockService.Release(releaseCtx, doctorID, token); err != nil {
		u.log.Warnf("Failed to release doctor lock %s (non-fatal): %+v", doctorID, err)
	}
}

// generateConfirmationCode generates a confirmation code: MS-YYYYMMDD-XXXXXXXXXX.
// The confirmation_code column is unique, so the random part carries ten
// digits to keep collisions off the booking path.
func generateConfirmationCode(now time.Time) string {
	var buf [8]byte
	rand.Read(buf[:])
	n := binary.BigEndian.Uint64(buf[:]) % 10_000_000_000
	return fmt.Sprintf("MS-%s-%010d", now.Format("20060102"), n)
}
