package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mindsync-server/internal/domain/entity"
)

// ErrInvalidSlotID is returned when a slot identifier cannot be decoded
var ErrInvalidSlotID = errors.New("invalid slot id")

const slotIDPrefix = "slot_"

// SlotStatus marks a generated slot as bookable or taken
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
)

// SlotInstance is one concrete dated occurrence of a template entry.
// Instances are derived on every query and never persisted; the slot id is a
// pure function of the start instant so a client can hold on to an id from an
// earlier read and book it later without a lookup race.
type SlotInstance struct {
	SlotID    string     `json:"slot_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	DayOfWeek string     `json:"day_of_week"`
	Status    SlotStatus `json:"status"`
}

// GenerateSlots expands the availability template over the window starting at
// the beginning of fromDate's calendar day and spanning days calendar days.
// Each slot is marked booked when its half-open interval intersects any of
// the supplied calendar-blocking appointments.
//
// Overlapping template entries for the same weekday produce distinct
// overlapping instances; that mirrors the doctor's configuration and is not
// deduplicated here.
func GenerateSlots(avail entity.Availability, fromDate time.Time, days int, booked []entity.Appointment) []SlotInstance {
	slots := []SlotInstance{}
	dayStart := time.Date(fromDate.Year(), fromDate.Month(), fromDate.Day(), 0, 0, 0, 0, time.UTC)

	for i := 0; i < days; i++ {
		day := dayStart.AddDate(0, 0, i)
		weekday := day.Weekday()

		if !avail.IsWorkingDay(weekday) {
			continue
		}

		for _, tmpl := range avail.SlotsForDay(weekday) {
			start, err := anchorClockTime(day, tmpl.StartTime)
			if err != nil {
				continue
			}
			end, err := anchorClockTime(day, tmpl.EndTime)
			if err != nil {
				continue
			}

			status := SlotStatusAvailable
			for _, appt := range booked {
				if appt.Overlaps(start, end) {
					status = SlotStatusBooked
					break
				}
			}

			slots = append(slots, SlotInstance{
				SlotID:    EncodeSlotID(start),
				StartTime: start,
				EndTime:   end,
				DayOfWeek: weekday.String(),
				Status:    status,
			})
		}
	}

	return slots
}

// EncodeSlotID derives the opaque wire identifier for a slot start instant.
func EncodeSlotID(start time.Time) string {
	return fmt.Sprintf("%s%d", slotIDPrefix, start.UnixMilli())
}

// DecodeSlotID is the strict inverse of EncodeSlotID. Only the canonical
// encoding is accepted: ids with leading zeros or an explicit sign do not
// re-encode to themselves and are rejected.
func DecodeSlotID(slotID string) (time.Time, error) {
	if !strings.HasPrefix(slotID, slotIDPrefix) {
		return time.Time{}, ErrInvalidSlotID
	}
	millis, err := strconv.ParseInt(strings.TrimPrefix(slotID, slotIDPrefix), 10, 64)
	if err != nil {
		return time.Time{}, ErrInvalidSlotID
	}
	start := time.UnixMilli(millis).UTC()
	if EncodeSlotID(start) != slotID {
		return time.Time{}, ErrInvalidSlotID
	}
	return start, nil
}

// MatchesTemplate reports whether the instant is a valid slot start for the
// template. Slot ids encode raw timestamps, so a decoded instant must be
// checked against the doctor's availability before it is accepted for
// booking; otherwise a tampered id could reserve arbitrary intervals.
func MatchesTemplate(avail entity.Availability, start time.Time) bool {
	if !avail.IsWorkingDay(start.Weekday()) {
		return false
	}
	clock := start.Format("15:04")
	if start.Second() != 0 || start.Nanosecond() != 0 {
		return false
	}
	for _, tmpl := range avail.SlotsForDay(start.Weekday()) {
		if tmpl.StartTime == clock {
			return true
		}
	}
	return false
}

func anchorClockTime(day time.Time, clock string) (time.Time, error) {
	parsed, err := entity.ParseClockTime(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC), nil
}
