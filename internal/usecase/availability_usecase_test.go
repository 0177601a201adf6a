package usecase

import (
	"context"
	"errors"
	"testing"

	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/delivery/http/middleware"
	"mindsync-server/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func newAvailabilityFixture(t *testing.T) (*bookingFixture, AvailabilityUsecase) {
	t.Helper()

	f := newBookingFixture(t)
	db := &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
	uc := NewAvailabilityUsecase(db, logrus.New(), f.doctors, f.audit)
	return f, uc
}

func doctorCtx(f *bookingFixture) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, f.doctorID)
	return context.WithValue(ctx, middleware.RoleIDKey, entity.RoleIDDoctor)
}

func TestGetMyAvailability(t *testing.T) {
	t.Run("ReturnsTemplate", func(t *testing.T) {
		f, uc := newAvailabilityFixture(t)

		resp, err := uc.GetMyAvailability(doctorCtx(f))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.WorkingDays) != 2 {
			t.Errorf("expected 2 working days, got %d", len(resp.WorkingDays))
		}
		if len(resp.Slots) != 3 {
			t.Errorf("expected 3 template slots, got %d", len(resp.Slots))
		}
	})

	t.Run("NoProfile", func(t *testing.T) {
		f, uc := newAvailabilityFixture(t)

		if _, err := uc.GetMyAvailability(f.ctx()); !errors.Is(err, ErrDoctorProfileMissing) {
			t.Fatalf("expected ErrDoctorProfileMissing, got %v", err)
		}
	})
}

func TestUpdateMyAvailability(t *testing.T) {
	t.Run("ReplacesTemplate", func(t *testing.T) {
		f, uc := newAvailabilityFixture(t)

		req := &dto.UpdateAvailabilityRequest{
			WorkingDays: []int{2, 4},
			Slots: []dto.AvailabilitySlotRequest{
				{DayOfWeek: 2, StartTime: "08:00", EndTime: "08:45"},
				{DayOfWeek: 4, StartTime: "16:00", EndTime: "16:45"},
			},
		}

		resp, err := uc.UpdateMyAvailability(doctorCtx(f), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Slots) != 2 {
			t.Errorf("expected 2 slots in response, got %d", len(resp.Slots))
		}

		stored := f.doctors.doctors[f.doctorID]
		if len(stored.Availability.WorkingDays) != 2 || stored.Availability.WorkingDays[0] != 2 {
			t.Errorf("template not persisted: %+v", stored.Availability)
		}
		if len(f.audit.actions) != 1 || f.audit.actions[0] != entity.AuditActionAvailabilityUpdate {
			t.Errorf("expected availability audit entry, got %v", f.audit.actions)
		}
	})

	t.Run("RejectsSlotOutsideWorkingDays", func(t *testing.T) {
		f, uc := newAvailabilityFixture(t)

		req := &dto.UpdateAvailabilityRequest{
			WorkingDays: []int{1},
			Slots: []dto.AvailabilitySlotRequest{
				{DayOfWeek: 5, StartTime: "09:00", EndTime: "09:45"},
			},
		}

		if _, err := uc.UpdateMyAvailability(doctorCtx(f), req); !errors.Is(err, entity.ErrSlotOutsideWorkDays) {
			t.Fatalf("expected ErrSlotOutsideWorkDays, got %v", err)
		}

		stored := f.doctors.doctors[f.doctorID]
		if len(stored.Availability.Slots) != 3 {
			t.Errorf("template should be unchanged on validation failure")
		}
	})

	t.Run("RejectsInvertedSlotTimes", func(t *testing.T) {
		f, uc := newAvailabilityFixture(t)

		req := &dto.UpdateAvailabilityRequest{
			WorkingDays: []int{1},
			Slots: []dto.AvailabilitySlotRequest{
				{DayOfWeek: 1, StartTime: "10:00", EndTime: "09:00"},
			},
		}

		if _, err := uc.UpdateMyAvailability(doctorCtx(f), req); !errors.Is(err, entity.ErrSlotTimeOrder) {
			t.Fatalf("expected ErrSlotTimeOrder, got %v", err)
		}
	})
}
