package models

// WeeklySchedule represents one recurring working window for a doctor,
// independent of any specific date. Weekday numbering is 1=Monday .. 7=Sunday
// across the whole module. The set of entries for a doctor is replaced
// wholesale on each fetch.
type WeeklySchedule struct {
	ID          int    `json:"id"`
	DoctorID    int    `json:"doctorId"`
	Weekday     int    `json:"weekday"`     // 1=Monday .. 7=Sunday
	WeekdayName string `json:"weekdayName"` // display string supplied by the server
	StartTime   string `json:"startTime"`   // "HH:mm"
	EndTime     string `json:"endTime"`     // "HH:mm"
	Active      bool   `json:"active"`
}

// AvailabilityInfo is the derived answer to "can this doctor be booked on
// this date". Computed fresh per query, never stored.
type AvailabilityInfo struct {
	IsAvailable     bool            `json:"isAvailable"`
	WorkingWeekdays []int           `json:"workingWeekdays"`
	ScheduleForDate *WeeklySchedule `json:"scheduleForDate,omitempty"`
	Message         string          `json:"message"`
}
