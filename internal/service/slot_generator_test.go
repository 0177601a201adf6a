package service

import (
	"testing"
	"time"

	"mindsync-server/internal/domain/entity"

	"github.com/google/uuid"
)

func weekdayTemplate() entity.Availability {
	return entity.Availability{
		WorkingDays: []int{1, 2, 3, 4, 5},
		Slots: []entity.TemplateSlot{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:45"},
			{DayOfWeek: 1, StartTime: "10:00", EndTime: "10:45"},
			{DayOfWeek: 3, StartTime: "14:00", EndTime: "14:45"},
		},
	}
}

func TestGenerateSlots(t *testing.T) {
	avail := weekdayTemplate()

	// Monday 2026-01-05
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("ExpandsTemplateOverWindow", func(t *testing.T) {
		slots := GenerateSlots(avail, monday, 7, nil)
		// one week: Monday (2 slots) + Wednesday (1 slot)
		if len(slots) != 3 {
			t.Fatalf("expected 3 slots, got %d", len(slots))
		}

		first := slots[0]
		wantStart := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
		if !first.StartTime.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, first.StartTime)
		}
		if !first.EndTime.Equal(wantStart.Add(45 * time.Minute)) {
			t.Errorf("expected 45 minute slot, got end %v", first.EndTime)
		}
		if first.DayOfWeek != "Monday" {
			t.Errorf("expected Monday, got %s", first.DayOfWeek)
		}
		if first.Status != SlotStatusAvailable {
			t.Errorf("expected available status, got %s", first.Status)
		}
	})

	t.Run("SkipsNonWorkingDays", func(t *testing.T) {
		// Saturday 2026-01-10
		saturday := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
		slots := GenerateSlots(avail, saturday, 1, nil)
		if len(slots) != 0 {
			t.Fatalf("expected no slots on Saturday, got %d", len(slots))
		}
	})

	t.Run("MarksOverlappingAppointmentsBooked", func(t *testing.T) {
		booked := []entity.Appointment{
			{
				DoctorID:     uuid.New(),
				ScheduleTime: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
				EndTime:      time.Date(2026, 1, 5, 9, 45, 0, 0, time.UTC),
				Status:       entity.AppointmentStatusConfirmed,
			},
		}

		slots := GenerateSlots(avail, monday, 1, booked)
		if len(slots) != 2 {
			t.Fatalf("expected 2 slots, got %d", len(slots))
		}
		if slots[0].Status != SlotStatusBooked {
			t.Errorf("expected 09:00 slot booked, got %s", slots[0].Status)
		}
		if slots[1].Status != SlotStatusAvailable {
			t.Errorf("expected 10:00 slot available, got %s", slots[1].Status)
		}
	})

	t.Run("TouchingAppointmentDoesNotBlock", func(t *testing.T) {
		// appointment ends exactly when the 10:00 slot starts
		booked := []entity.Appointment{
			{
				ScheduleTime: time.Date(2026, 1, 5, 9, 15, 0, 0, time.UTC),
				EndTime:      time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
				Status:       entity.AppointmentStatusConfirmed,
			},
		}

		slots := GenerateSlots(avail, monday, 1, booked)
		if slots[0].Status != SlotStatusBooked {
			t.Errorf("expected 09:00 slot booked, got %s", slots[0].Status)
		}
		if slots[1].Status != SlotStatusAvailable {
			t.Errorf("expected 10:00 slot untouched by adjacent appointment, got %s", slots[1].Status)
		}
	})

	t.Run("OverlappingTemplateEntriesStayDistinct", func(t *testing.T) {
		overlapping := entity.Availability{
			WorkingDays: []int{1},
			Slots: []entity.TemplateSlot{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
				{DayOfWeek: 1, StartTime: "09:30", EndTime: "10:30"},
			},
		}
		slots := GenerateSlots(overlapping, monday, 1, nil)
		if len(slots) != 2 {
			t.Fatalf("expected both overlapping entries, got %d", len(slots))
		}
	})
}

func TestSlotIDRoundTrip(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	id := EncodeSlotID(start)
	if id != "slot_1767603600000" {
		t.Fatalf("unexpected slot id %q", id)
	}

	decoded, err := DecodeSlotID(id)
	if err != nil {
		t.Fatalf("DecodeSlotID: %v", err)
	}
	if !decoded.Equal(start) {
		t.Errorf("round trip mismatch: %v != %v", decoded, start)
	}
}

func TestDecodeSlotIDRejectsMalformedIDs(t *testing.T) {
	cases := []string{
		"",
		"slot_",
		"slot_abc",
		"1767603600000",
		"slots_1767603600000",
		"slot_17676036.5",
		"slot_+1767603600000",
		"slot_01767603600000",
		"slot_ 1767603600000",
	}

	for _, id := range cases {
		if _, err := DecodeSlotID(id); err == nil {
			t.Errorf("expected error for %q", id)
		}
	}
}

func TestMatchesTemplate(t *testing.T) {
	avail := weekdayTemplate()

	t.Run("AcceptsTemplateStart", func(t *testing.T) {
		start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC) // Monday 09:00
		if !MatchesTemplate(avail, start) {
			t.Error("expected Monday 09:00 to match")
		}
	})

	t.Run("RejectsWrongTime", func(t *testing.T) {
		start := time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)
		if MatchesTemplate(avail, start) {
			t.Error("expected Monday 09:30 to be rejected")
		}
	})

	t.Run("RejectsNonWorkingDay", func(t *testing.T) {
		start := time.Date(2026, 1, 4, 9, 0, 0, 0, time.UTC) // Sunday
		if MatchesTemplate(avail, start) {
			t.Error("expected Sunday to be rejected")
		}
	})

	t.Run("RejectsSubMinutePrecision", func(t *testing.T) {
		start := time.Date(2026, 1, 5, 9, 0, 30, 0, time.UTC)
		if MatchesTemplate(avail, start) {
			t.Error("expected timestamp with seconds to be rejected")
		}
	})
}
