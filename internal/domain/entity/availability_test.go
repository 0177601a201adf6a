package entity

import (
	"errors"
	"testing"
	"time"
)

func TestAvailabilityValidate(t *testing.T) {
	t.Run("ValidTemplate", func(t *testing.T) {
		avail := Availability{
			WorkingDays: []int{1, 3},
			Slots: []TemplateSlot{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:45"},
				{DayOfWeek: 3, StartTime: "14:00", EndTime: "14:45"},
			},
		}
		if err := avail.Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
	})

	t.Run("WorkingDayOutOfRange", func(t *testing.T) {
		avail := Availability{WorkingDays: []int{7}}
		if err := avail.Validate(); !errors.Is(err, ErrInvalidWorkingDay) {
			t.Fatalf("expected ErrInvalidWorkingDay, got %v", err)
		}
	})

	t.Run("SlotOutsideWorkingDays", func(t *testing.T) {
		avail := Availability{
			WorkingDays: []int{1},
			Slots:       []TemplateSlot{{DayOfWeek: 2, StartTime: "09:00", EndTime: "09:45"}},
		}
		if err := avail.Validate(); !errors.Is(err, ErrSlotOutsideWorkDays) {
			t.Fatalf("expected ErrSlotOutsideWorkDays, got %v", err)
		}
	})

	t.Run("MalformedTime", func(t *testing.T) {
		avail := Availability{
			WorkingDays: []int{1},
			Slots:       []TemplateSlot{{DayOfWeek: 1, StartTime: "9am", EndTime: "09:45"}},
		}
		if err := avail.Validate(); !errors.Is(err, ErrInvalidSlotTime) {
			t.Fatalf("expected ErrInvalidSlotTime, got %v", err)
		}
	})

	t.Run("StartNotBeforeEnd", func(t *testing.T) {
		avail := Availability{
			WorkingDays: []int{1},
			Slots:       []TemplateSlot{{DayOfWeek: 1, StartTime: "10:00", EndTime: "10:00"}},
		}
		if err := avail.Validate(); !errors.Is(err, ErrSlotTimeOrder) {
			t.Fatalf("expected ErrSlotTimeOrder, got %v", err)
		}
	})
}

func TestAvailabilityJSONRoundTrip(t *testing.T) {
	avail := Availability{
		WorkingDays: []int{1, 2},
		Slots:       []TemplateSlot{{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:45"}},
	}

	value, err := avail.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var scanned Availability
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(scanned.WorkingDays) != 2 || len(scanned.Slots) != 1 {
		t.Errorf("round trip lost data: %+v", scanned)
	}
	if scanned.Slots[0].StartTime != "09:00" {
		t.Errorf("unexpected slot start %q", scanned.Slots[0].StartTime)
	}
}

func TestAppointmentOverlaps(t *testing.T) {
	appt := Appointment{
		ScheduleTime: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2026, 1, 5, 9, 45, 0, 0, time.UTC),
	}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"Identical", appt.ScheduleTime, appt.EndTime, true},
		{"PartialOverlap", appt.ScheduleTime.Add(30 * time.Minute), appt.EndTime.Add(30 * time.Minute), true},
		{"Contained", appt.ScheduleTime.Add(10 * time.Minute), appt.EndTime.Add(-10 * time.Minute), true},
		{"TouchingAfter", appt.EndTime, appt.EndTime.Add(45 * time.Minute), false},
		{"TouchingBefore", appt.ScheduleTime.Add(-45 * time.Minute), appt.ScheduleTime, false},
		{"Disjoint", appt.EndTime.Add(time.Hour), appt.EndTime.Add(2 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := appt.Overlaps(tc.start, tc.end); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestAppointmentIsActive(t *testing.T) {
	active := []AppointmentStatus{AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusInProgress}
	inactive := []AppointmentStatus{AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow}

	for _, s := range active {
		a := Appointment{Status: s}
		if !a.IsActive() {
			t.Errorf("expected %s to be active", s)
		}
	}
	for _, s := range inactive {
		a := Appointment{Status: s}
		if a.IsActive() {
			t.Errorf("expected %s to be inactive", s)
		}
	}
}
