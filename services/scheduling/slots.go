package scheduling

import (
	"strings"
	"time"

	"medicitas/models"
)

// BookableSlots filters the slot list down to the slots that can still be
// booked.
func BookableSlots(slots []models.TimeSlot) []models.TimeSlot {
	var out []models.TimeSlot
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

// OccupiedSlots filters the slot list down to the slots already taken.
func OccupiedSlots(slots []models.TimeSlot) []models.TimeSlot {
	var out []models.TimeSlot
	for _, s := range slots {
		if !s.Available {
			out = append(out, s)
		}
	}
	return out
}

// IsTimeBookable reports whether the candidate time can be booked according
// to the slot list. A time with no matching slot is never bookable: the
// server did not offer it.
func IsTimeBookable(slots []models.TimeSlot, candidateTime string) bool {
	for _, s := range slots {
		if s.Time == candidateTime {
			return s.Available
		}
	}
	return false
}

// ValidateAppointmentTime reconciles the recurring weekly schedule with the
// date-specific slot list and decides whether the candidate date/time can be
// booked. Checks run in a fixed order and stop at the first failure, so the
// returned message is deterministic for a given input.
func ValidateAppointmentTime(
	schedule []models.WeeklySchedule,
	slots []models.TimeSlot,
	date string,
	timeOfDay string,
	referenceNow time.Time,
) models.ValidationResult {
	if strings.TrimSpace(date) == "" {
		return models.Invalid("select a date")
	}
	if strings.TrimSpace(timeOfDay) == "" {
		return models.Invalid("select a time")
	}

	if !IsDateInWorkingDays(date, schedule) {
		return models.Invalid("the doctor does not work on the selected day")
	}

	weekday, _ := WeekdayOf(date)
	entry := scheduleForWeekday(schedule, weekday)
	if entry != nil && !isTimeWithinSchedule(timeOfDay, entry.StartTime, entry.EndTime) {
		return models.Invalid("the selected time is outside working hours")
	}

	matched := false
	for _, s := range slots {
		if s.Time == timeOfDay {
			matched = true
			if !s.Available {
				return models.Invalid("the selected time is already taken")
			}
			break
		}
	}
	if !matched {
		return models.Invalid("the selected time is not available")
	}

	if isDateTimePast(date, timeOfDay, referenceNow) {
		return models.Invalid("appointments cannot be scheduled in the past")
	}

	return models.Valid()
}

// isTimeWithinSchedule checks a candidate against a schedule window given as
// "HH:mm" strings. Malformed windows fail closed.
func isTimeWithinSchedule(candidate, start, end string) bool {
	t, err := ParseClockTime(candidate)
	if err != nil {
		return false
	}
	s, err := ParseClockTime(start)
	if err != nil {
		return false
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return false
	}
	return IsTimeWithinWindow(t, s, e)
}

// isDateTimePast compares the composed date+time against referenceNow at
// minute granularity. Unparsable input is not treated as past; the format
// checks earlier in the chain own that failure.
func isDateTimePast(date, timeOfDay string, referenceNow time.Time) bool {
	day, err := ParseCalendarDate(date)
	if err != nil {
		return false
	}
	minutes, err := ParseClockTime(timeOfDay)
	if err != nil {
		return false
	}
	return CombineDateTime(day, minutes).Before(referenceNow)
}
