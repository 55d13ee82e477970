package models

// SlotStateAvailable is the single slot state the server reports for a
// bookable slot. Any other state means the slot is taken.
const SlotStateAvailable = "disponible"

// TimeSlot represents one discrete bookable unit for a specific date,
// supplied by the server for that date only. Available is authoritative
// when it disagrees with State.
type TimeSlot struct {
	Time      string `json:"time"`  // "HH:mm"
	State     string `json:"state"` // e.g. "disponible", "ocupado"
	Available bool   `json:"available"`
}

// SlotSummary carries aggregate counts for a slot list.
type SlotSummary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
}

// SummaryOf recomputes a summary that is guaranteed consistent with the
// given slot list (Available+Occupied == Total).
func SummaryOf(slots []TimeSlot) SlotSummary {
	s := SlotSummary{Total: len(slots)}
	for _, slot := range slots {
		if slot.Available {
			s.Available++
		} else {
			s.Occupied++
		}
	}
	return s
}

// AvailableSlotsForDate is the unit of "what can be booked on date X for
// doctor Y".
type AvailableSlotsForDate struct {
	Date     string      `json:"date"` // "yyyy-mm-dd"
	DoctorID int         `json:"doctorId"`
	Slots    []TimeSlot  `json:"slots"`
	Summary  SlotSummary `json:"summary"`
}
