package scheduling

import (
	"fmt"
	"sort"
	"strings"

	"medicitas/models"
)

// NoWorkingDays is the display sentinel for a doctor with no active
// schedule entries.
const NoWorkingDays = "no working days"

// WorkingWeekdays returns the sorted set of weekdays (1=Monday .. 7=Sunday)
// with at least one active schedule entry.
func WorkingWeekdays(schedule []models.WeeklySchedule) []int {
	seen := make(map[int]bool)
	var days []int
	for _, entry := range schedule {
		if entry.Active && !seen[entry.Weekday] {
			seen[entry.Weekday] = true
			days = append(days, entry.Weekday)
		}
	}
	sort.Ints(days)
	return days
}

// WorkingDaysDisplayName builds the human-readable list of working day
// names, sorted by weekday and joined with commas, with the final item
// joined by "and" (e.g. "Monday, Tuesday and Friday").
func WorkingDaysDisplayName(schedule []models.WeeklySchedule) string {
	seen := make(map[int]bool)
	var active []models.WeeklySchedule
	for _, entry := range schedule {
		if entry.Active && !seen[entry.Weekday] {
			seen[entry.Weekday] = true
			active = append(active, entry)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Weekday < active[j].Weekday })

	names := make([]string, len(active))
	for i, entry := range active {
		names[i] = entry.WeekdayName
	}

	switch len(names) {
	case 0:
		return NoWorkingDays
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// CheckAvailability computes whether the doctor can be booked on the given
// date from the weekly recurring schedule alone. It never fails hard: every
// failure path resolves to IsAvailable=false with a message, because the
// answer feeds UI copy rather than control flow.
func CheckAvailability(schedule []models.WeeklySchedule, date string) models.AvailabilityInfo {
	workingDays := WorkingWeekdays(schedule)

	if strings.TrimSpace(date) == "" {
		return models.AvailabilityInfo{
			IsAvailable:     false,
			WorkingWeekdays: workingDays,
			Message:         "select a date to check availability",
		}
	}

	weekday, err := WeekdayOf(date)
	if err != nil {
		return models.AvailabilityInfo{
			IsAvailable:     false,
			WorkingWeekdays: workingDays,
			Message:         "invalid date format",
		}
	}

	entry := scheduleForWeekday(schedule, weekday)
	if entry == nil {
		return models.AvailabilityInfo{
			IsAvailable:     false,
			WorkingWeekdays: workingDays,
			Message: fmt.Sprintf("the doctor does not work on this day. working days: %s",
				WorkingDaysDisplayName(schedule)),
		}
	}

	return models.AvailabilityInfo{
		IsAvailable:     true,
		WorkingWeekdays: workingDays,
		ScheduleForDate: entry,
		Message:         fmt.Sprintf("doctor available from %s to %s", entry.StartTime, entry.EndTime),
	}
}

// IsDateInWorkingDays reports whether the date's weekday has an active
// schedule entry, independent of slot data.
func IsDateInWorkingDays(date string, schedule []models.WeeklySchedule) bool {
	weekday, err := WeekdayOf(date)
	if err != nil {
		return false
	}
	return scheduleForWeekday(schedule, weekday) != nil
}

// scheduleForWeekday returns the first active entry for the weekday, or nil.
func scheduleForWeekday(schedule []models.WeeklySchedule, weekday int) *models.WeeklySchedule {
	for i := range schedule {
		if schedule[i].Active && schedule[i].Weekday == weekday {
			return &schedule[i]
		}
	}
	return nil
}
