package usecase

import (
	"errors"
	"testing"
	"time"

	"mindsync-server/config"
	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func newDoctorFixture(t *testing.T) (*bookingFixture, DoctorUsecase) {
	t.Helper()

	f := newBookingFixture(t)
	db := &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
	booking := config.BookingConfig{
		LeadTime:        24 * time.Hour,
		Horizon:         30 * 24 * time.Hour,
		SlotHorizonDays: 7,
	}

	uc := NewDoctorUsecase(db, logrus.New(), f.doctors, f.appts, f.clock, booking)
	return f, uc
}

func TestGetDoctorSlots(t *testing.T) {
	t.Run("ExpandsTemplateWithBookedMarkers", func(t *testing.T) {
		f, uc := newDoctorFixture(t)

		if _, err := f.usecase.BookAppointment(f.ctx(), f.bookRequest()); err != nil {
			t.Fatalf("book: %v", err)
		}

		resp, err := uc.GetDoctorSlots(f.ctx(), &dto.GetDoctorSlotsRequest{
			DoctorID: f.doctorID,
			Date:     "2026-01-05",
			Days:     7,
		})
		if err != nil {
			t.Fatalf("GetDoctorSlots: %v", err)
		}

		// Monday (2 slots) + Wednesday (1 slot)
		if len(resp.Slots) != 3 {
			t.Fatalf("expected 3 slots, got %d", len(resp.Slots))
		}

		var booked, available int
		for _, slot := range resp.Slots {
			switch slot.Status {
			case service.SlotStatusBooked:
				booked++
			case service.SlotStatusAvailable:
				available++
			}
		}
		if booked != 1 || available != 2 {
			t.Errorf("expected 1 booked and 2 available, got booked=%d available=%d", booked, available)
		}
	})

	t.Run("DefaultWindowLength", func(t *testing.T) {
		f, uc := newDoctorFixture(t)

		resp, err := uc.GetDoctorSlots(f.ctx(), &dto.GetDoctorSlotsRequest{DoctorID: f.doctorID, Date: "2026-01-05"})
		if err != nil {
			t.Fatalf("GetDoctorSlots: %v", err)
		}
		if resp.Days != 7 {
			t.Errorf("expected default 7 day window, got %d", resp.Days)
		}
	})

	t.Run("UnknownDoctor", func(t *testing.T) {
		_, uc := newDoctorFixture(t)

		_, err := uc.GetDoctorSlots(t.Context(), &dto.GetDoctorSlotsRequest{DoctorID: uuid.New()})
		if !errors.Is(err, ErrDoctorNotFound) {
			t.Fatalf("expected ErrDoctorNotFound, got %v", err)
		}
	})

	t.Run("MalformedDate", func(t *testing.T) {
		f, uc := newDoctorFixture(t)

		_, err := uc.GetDoctorSlots(f.ctx(), &dto.GetDoctorSlotsRequest{DoctorID: f.doctorID, Date: "05/01/2026"})
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestListDoctors(t *testing.T) {
	f, uc := newDoctorFixture(t)

	resp, err := uc.ListDoctors(f.ctx(), &dto.ListDoctorsRequest{})
	if err != nil {
		t.Fatalf("ListDoctors: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected 1 verified doctor, got %d", resp.Total)
	}
	if resp.Doctors[0].SessionDurationMinutes != 45 {
		t.Errorf("expected 45 minute sessions, got %d", resp.Doctors[0].SessionDurationMinutes)
	}
}
