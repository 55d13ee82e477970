package scheduling

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"medicitas/config"
	"medicitas/models"
)

// clockTimePattern matches the 24-hour times callers may submit. A
// single-digit hour is tolerated; it is padded during normalization.
var clockTimePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Rules carries every tunable bound the request validator applies. Keeping
// them on an explicit value rather than reading the global config inside the
// checks keeps validation deterministic under test.
type Rules struct {
	SlotHorizonMonths   int // slot lookups and create requests
	UpdateHorizonMonths int // appointment updates
	BusinessOpen        int // minutes from midnight, inclusive
	BusinessClose       int // minutes from midnight, inclusive as closing boundary
	ReasonMinLen        int
	ReasonMaxLen        int
	NotesMaxLen         int
}

// DefaultRules returns the stock business rules: 3/6 month horizons, an
// 08:00-18:00 business window and the 10..500/1000 text bounds.
func DefaultRules() Rules {
	return Rules{
		SlotHorizonMonths:   3,
		UpdateHorizonMonths: 6,
		BusinessOpen:        8 * 60,
		BusinessClose:       18 * 60,
		ReasonMinLen:        10,
		ReasonMaxLen:        500,
		NotesMaxLen:         1000,
	}
}

// RulesFromConfig builds Rules from the loaded application config. Knobs
// that fail to parse fall back to their defaults.
func RulesFromConfig() Rules {
	r := DefaultRules()
	cfg := config.AppConfig
	if cfg.SlotHorizonMonths > 0 {
		r.SlotHorizonMonths = cfg.SlotHorizonMonths
	}
	if cfg.UpdateHorizonMonths > 0 {
		r.UpdateHorizonMonths = cfg.UpdateHorizonMonths
	}
	if open, err := ParseClockTime(cfg.BusinessOpen); err == nil {
		r.BusinessOpen = open
	}
	if closing, err := ParseClockTime(cfg.BusinessClose); err == nil {
		r.BusinessClose = closing
	}
	if cfg.ReasonMinLen > 0 {
		r.ReasonMinLen = cfg.ReasonMinLen
	}
	if cfg.ReasonMaxLen > 0 {
		r.ReasonMaxLen = cfg.ReasonMaxLen
	}
	if cfg.NotesMaxLen > 0 {
		r.NotesMaxLen = cfg.NotesMaxLen
	}
	return r
}

// ValidateSlotQuery runs the local pre-checks for a slot lookup. A request
// that fails here must never reach the gateway.
func (r Rules) ValidateSlotQuery(doctorID int, date string, referenceNow time.Time) models.ValidationResult {
	if doctorID <= 0 {
		return models.Invalid("invalid doctor id")
	}
	if strings.TrimSpace(date) == "" {
		return models.Invalid("date is required")
	}
	day, err := ParseCalendarDate(strings.TrimSpace(date))
	if err != nil {
		return models.Invalid("invalid date format (use yyyy-mm-dd)")
	}
	if IsPast(day, referenceNow) {
		return models.Invalid("slots cannot be fetched for past dates")
	}
	if !IsWithinHorizon(day, referenceNow, r.SlotHorizonMonths) {
		return models.Invalid("slots cannot be fetched that far in advance")
	}
	return models.Valid()
}

// ValidateCreate validates a create request and returns a normalized copy
// ready for the gateway: strings trimmed, single-digit hours padded, blank
// notes coerced to absent. Checks stop at the first failure. Validation is
// idempotent on its own output.
func (r Rules) ValidateCreate(req models.CreateAppointmentRequest, referenceNow time.Time) (models.CreateAppointmentRequest, models.ValidationResult) {
	norm := models.CreateAppointmentRequest{
		DoctorID: req.DoctorID,
		Date:     strings.TrimSpace(req.Date),
		Time:     strings.TrimSpace(req.Time),
		Reason:   strings.TrimSpace(req.Reason),
	}

	if norm.DoctorID <= 0 {
		return req, models.Invalid("invalid doctor id")
	}

	if norm.Date == "" {
		return req, models.Invalid("select a date")
	}
	if res := r.checkDate(norm.Date, r.SlotHorizonMonths, referenceNow); !res.IsValid {
		return req, res
	}

	if norm.Time == "" {
		return req, models.Invalid("select a time")
	}
	normalizedTime, res := r.checkTime(norm.Time)
	if !res.IsValid {
		return req, res
	}
	norm.Time = normalizedTime

	if norm.Reason == "" {
		return req, models.Invalid("the reason for the visit is required")
	}
	if res := r.checkReason(norm.Reason); !res.IsValid {
		return req, res
	}

	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if len([]rune(notes)) > r.NotesMaxLen {
			return req, models.Invalid(fmt.Sprintf("the notes cannot exceed %d characters", r.NotesMaxLen))
		}
		if notes != "" {
			norm.Notes = &notes
		}
	}

	return norm, models.Valid()
}

// ValidateUpdate validates a partial update request. A nil field is left
// unchanged and skips its checks; a blank date, time or reason counts as
// absent. Notes are the exception: an empty present notes field clears the
// stored notes, so it is kept. Checks stop at the first failure, matching
// the create path.
func (r Rules) ValidateUpdate(req models.UpdateAppointmentRequest, referenceNow time.Time) (models.UpdateAppointmentRequest, models.ValidationResult) {
	date := trimmedOrNil(req.Date)
	timeOfDay := trimmedOrNil(req.Time)
	reason := trimmedOrNil(req.Reason)

	if date == nil && timeOfDay == nil && reason == nil && req.Notes == nil {
		return req, models.Invalid("must provide at least one field to update")
	}

	norm := models.UpdateAppointmentRequest{Date: date, Time: timeOfDay, Reason: reason}

	if date != nil {
		if res := r.checkDate(*date, r.UpdateHorizonMonths, referenceNow); !res.IsValid {
			return req, res
		}
	}

	if timeOfDay != nil {
		normalizedTime, res := r.checkTime(*timeOfDay)
		if !res.IsValid {
			return req, res
		}
		norm.Time = &normalizedTime
	}

	if reason != nil {
		if res := r.checkReason(*reason); !res.IsValid {
			return req, res
		}
	}

	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if len([]rune(notes)) > r.NotesMaxLen {
			return req, models.Invalid(fmt.Sprintf("the notes cannot exceed %d characters", r.NotesMaxLen))
		}
		norm.Notes = &notes
	}

	return norm, models.Valid()
}

func (r Rules) checkDate(date string, horizonMonths int, referenceNow time.Time) models.ValidationResult {
	day, err := ParseCalendarDate(date)
	if err != nil {
		return models.Invalid("invalid date format (use yyyy-mm-dd)")
	}
	if IsPast(day, referenceNow) {
		return models.Invalid("appointments cannot be scheduled on past dates")
	}
	if !IsWithinHorizon(day, referenceNow, horizonMonths) {
		return models.Invalid(fmt.Sprintf("appointments cannot be scheduled more than %d months in advance", horizonMonths))
	}
	return models.Valid()
}

// checkTime enforces the HH:mm format and the global business window. The
// closing boundary itself is allowed: 18:00 is a valid appointment time even
// though 18:01 is not. This window is deliberately stricter than any
// individual doctor's schedule window.
func (r Rules) checkTime(timeOfDay string) (string, models.ValidationResult) {
	if !clockTimePattern.MatchString(timeOfDay) {
		return timeOfDay, models.Invalid("invalid time format (use HH:mm, e.g. 14:30)")
	}
	minutes, err := ParseClockTime(timeOfDay)
	if err != nil {
		return timeOfDay, models.Invalid("invalid time format (use HH:mm, e.g. 14:30)")
	}
	if minutes < r.BusinessOpen || minutes > r.BusinessClose {
		return timeOfDay, models.Invalid(fmt.Sprintf("the time must be between %s and %s",
			FormatClockTime(r.BusinessOpen), FormatClockTime(r.BusinessClose)))
	}
	return FormatClockTime(minutes), models.Valid()
}

func (r Rules) checkReason(reason string) models.ValidationResult {
	length := len([]rune(reason))
	if length < r.ReasonMinLen {
		return models.Invalid(fmt.Sprintf("the reason must be at least %d characters", r.ReasonMinLen))
	}
	if length > r.ReasonMaxLen {
		return models.Invalid(fmt.Sprintf("the reason cannot exceed %d characters", r.ReasonMaxLen))
	}
	return models.Valid()
}

// trimmedOrNil treats a nil or blank optional string as absent.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
