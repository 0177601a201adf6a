package usecase

import (
	"context"
	"errors"
	"time"

	"mindsync-server/config"
	"mindsync-server/internal/converter"
	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/domain/entity"
	"mindsync-server/internal/domain/repository"
	"mindsync-server/internal/service"
	"mindsync-server/pkg/clock"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, req *dto.ListDoctorsRequest) (*dto.DoctorListResponse, error)
	GetDoctorSlots(ctx context.Context, req *dto.GetDoctorSlotsRequest) (*dto.DoctorSlotsResponse, error)
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorProfileRepository
	appointmentRepo repository.AppointmentRepository
	clock           clock.Clock
	booking         config.BookingConfig
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	clk clock.Clock,
	booking config.BookingConfig,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		clock:           clk,
		booking:         booking,
	}
}

// ListDoctors returns the verified doctor directory, filterable by
// specialty, minimum rating and name search
func (u *doctorUsecase) ListDoctors(ctx context.Context, req *dto.ListDoctorsRequest) (*dto.DoctorListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}

	filter := entity.DoctorFilter{
		Specialty: req.Specialty,
		MinRating: req.MinRating,
		Search:    req.Search,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	doctors, total, err := u.doctorRepo.FindVerified(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   total,
	}, nil
}

// GetDoctorSlots expands the doctor's availability template into dated slot
// instances over the requested window, marking slots blocked by active
// appointments as booked.
func (u *doctorUsecase) GetDoctorSlots(ctx context.Context, req *dto.GetDoctorSlotsRequest) (*dto.DoctorSlotsResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsVerified() {
		return nil, ErrDoctorNotFound
	}

	from := u.clock.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		from = parsed
	}

	days := req.Days
	if days < 1 {
		days = u.booking.SlotHorizonDays
	}

	// One range query covers every slot the window can produce
	windowStart := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 0, days)
	booked, err := u.appointmentRepo.FindActiveInRange(u.db.WithContext(ctx), req.DoctorID, windowStart, windowEnd)
	if err != nil {
		u.log.Warnf("Failed to load appointments for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}

	slots := service.GenerateSlots(doctor.Availability, from, days, booked)

	return &dto.DoctorSlotsResponse{
		DoctorID: req.DoctorID,
		From:     windowStart.Format("2006-01-02"),
		Days:     days,
		Slots:    slots,
	}, nil
}
