package usecase

import (
	"context"
	"errors"

	"mindsync-server/internal/converter"
	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/delivery/http/middleware"
	"mindsync-server/internal/domain/entity"
	"mindsync-server/internal/domain/repository"
	"mindsync-server/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorProfileMissing = errors.New("doctor profile not found for this account")

type AvailabilityUsecase interface {
	GetMyAvailability(ctx context.Context) (*dto.AvailabilityResponse, error)
	UpdateMyAvailability(ctx context.Context, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

// GetMyAvailability returns the logged-in doctor's weekly template
func (u *availabilityUsecase) GetMyAvailability(ctx context.Context) (*dto.AvailabilityResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileMissing
	}

	return converter.AvailabilityToResponse(doctor.Availability), nil
}

// UpdateMyAvailability replaces the doctor's weekly template. Template
// changes only affect future slot generation; appointments already booked
// against the old template stay in the ledger untouched.
func (u *availabilityUsecase) UpdateMyAvailability(ctx context.Context, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileMissing
	}

	availability := converter.AvailabilityFromRequest(req)
	if err := availability.Validate(); err != nil {
		return nil, err
	}

	oldAvailability := doctor.Availability
	doctor.Availability = availability

	if err := u.doctorRepo.Update(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to update availability for doctor %s: %+v", userID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionAvailabilityUpdate, "doctor_profile", userID.String(), oldAvailability, availability); err != nil {
		u.log.Warnf("Failed to audit availability update for doctor %s: %+v", userID, err)
	}

	u.log.Infof("Availability updated: doctor=%s, days=%d, slots=%d", userID, len(availability.WorkingDays), len(availability.Slots))
	return converter.AvailabilityToResponse(doctor.Availability), nil
}
