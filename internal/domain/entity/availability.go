package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWorkingDay   = errors.New("working day must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidSlotTime     = errors.New("slot time must be in HH:MM 24-hour format")
	ErrSlotOutsideWorkDays = errors.New("slot day is not one of the working days")
	ErrSlotTimeOrder       = errors.New("slot start time must be before end time")
)

// TemplateSlot is one recurring weekly availability entry.
// Times are local wall-clock in HH:MM; slots crossing midnight are not allowed.
type TemplateSlot struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Availability is a doctor's recurring weekly schedule, stored as jsonb
// on the doctor profile.
type Availability struct {
	WorkingDays []int          `json:"working_days"`
	Slots       []TemplateSlot `json:"slots"`
}

// Value implements driver.Valuer for jsonb storage
func (a Availability) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner
func (a *Availability) Scan(value interface{}) error {
	if value == nil {
		*a = Availability{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal jsonb availability:", value))
	}
	return json.Unmarshal(bytes, a)
}

// Validate checks the template invariants: every working day index is 0-6,
// every slot day belongs to the working days, times parse as HH:MM and each
// slot starts before it ends on the same day.
func (a Availability) Validate() error {
	workdays := make(map[int]bool, len(a.WorkingDays))
	for _, day := range a.WorkingDays {
		if day < 0 || day > 6 {
			return ErrInvalidWorkingDay
		}
		workdays[day] = true
	}

	for _, slot := range a.Slots {
		if !workdays[slot.DayOfWeek] {
			return ErrSlotOutsideWorkDays
		}
		start, err := ParseClockTime(slot.StartTime)
		if err != nil {
			return err
		}
		end, err := ParseClockTime(slot.EndTime)
		if err != nil {
			return err
		}
		if !start.Before(end) {
			return ErrSlotTimeOrder
		}
	}

	return nil
}

// SlotsForDay returns the template entries for the given weekday.
// Overlapping entries are returned as-is; each one is a distinct
// bookable interval.
func (a Availability) SlotsForDay(day time.Weekday) []TemplateSlot {
	var slots []TemplateSlot
	for _, slot := range a.Slots {
		if slot.DayOfWeek == int(day) {
			slots = append(slots, slot)
		}
	}
	return slots
}

// IsWorkingDay reports whether the weekday is in the working set.
func (a Availability) IsWorkingDay(day time.Weekday) bool {
	for _, d := range a.WorkingDays {
		if d == int(day) {
			return true
		}
	}
	return false
}

// ParseClockTime parses an HH:MM 24-hour wall-clock string.
func ParseClockTime(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, ErrInvalidSlotTime
	}
	return t, nil
}
