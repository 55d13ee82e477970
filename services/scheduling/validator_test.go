package scheduling

import (
	"strings"
	"testing"
	"time"

	"medicitas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func validCreate() models.CreateAppointmentRequest {
	return models.CreateAppointmentRequest{
		DoctorID: 5,
		Date:     "2025-06-16",
		Time:     "10:00",
		Reason:   "persistent migraines for two weeks",
	}
}

func TestValidateCreateAccepts(t *testing.T) {
	norm, res := DefaultRules().ValidateCreate(validCreate(), testNow)
	require.True(t, res.IsValid, res.ErrorMessage)
	assert.Equal(t, validCreate(), norm)
}

func TestValidateCreateFirstFailureWins(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CreateAppointmentRequest)
		wantMsg string
	}{
		{"zero doctor id", func(r *models.CreateAppointmentRequest) { r.DoctorID = 0 }, "invalid doctor id"},
		{"negative doctor id", func(r *models.CreateAppointmentRequest) { r.DoctorID = -3 }, "invalid doctor id"},
		{"blank date", func(r *models.CreateAppointmentRequest) { r.Date = "  " }, "select a date"},
		{"bad date", func(r *models.CreateAppointmentRequest) { r.Date = "16/06/2025" }, "invalid date format (use yyyy-mm-dd)"},
		{"past date", func(r *models.CreateAppointmentRequest) { r.Date = "2025-06-09" }, "appointments cannot be scheduled on past dates"},
		{"beyond horizon", func(r *models.CreateAppointmentRequest) { r.Date = "2025-09-11" }, "appointments cannot be scheduled more than 3 months in advance"},
		{"blank time", func(r *models.CreateAppointmentRequest) { r.Time = "" }, "select a time"},
		{"bad time", func(r *models.CreateAppointmentRequest) { r.Time = "25:00" }, "invalid time format (use HH:mm, e.g. 14:30)"},
		{"before opening", func(r *models.CreateAppointmentRequest) { r.Time = "07:59" }, "the time must be between 08:00 and 18:00"},
		{"after closing", func(r *models.CreateAppointmentRequest) { r.Time = "18:01" }, "the time must be between 08:00 and 18:00"},
		{"blank reason", func(r *models.CreateAppointmentRequest) { r.Reason = "" }, "the reason for the visit is required"},
		{"short reason", func(r *models.CreateAppointmentRequest) { r.Reason = "too short" }, "the reason must be at least 10 characters"},
		{"long reason", func(r *models.CreateAppointmentRequest) { r.Reason = strings.Repeat("x", 501) }, "the reason cannot exceed 500 characters"},
		{"long notes", func(r *models.CreateAppointmentRequest) { r.Notes = strptr(strings.Repeat("x", 1001)) }, "the notes cannot exceed 1000 characters"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			tc.mutate(&req)
			_, res := DefaultRules().ValidateCreate(req, testNow)
			require.False(t, res.IsValid)
			assert.Equal(t, tc.wantMsg, res.ErrorMessage)
		})
	}
}

func TestValidateCreateReasonBoundary(t *testing.T) {
	req := validCreate()

	req.Reason = strings.Repeat("a", 9)
	_, res := DefaultRules().ValidateCreate(req, testNow)
	require.False(t, res.IsValid)
	assert.Equal(t, "the reason must be at least 10 characters", res.ErrorMessage)

	req.Reason = strings.Repeat("a", 10)
	_, res = DefaultRules().ValidateCreate(req, testNow)
	assert.True(t, res.IsValid)
}

func TestValidateCreateBusinessWindowClosingBoundary(t *testing.T) {
	req := validCreate()

	// 18:00 is allowed as the closing boundary itself.
	req.Time = "18:00"
	_, res := DefaultRules().ValidateCreate(req, testNow)
	assert.True(t, res.IsValid)

	req.Time = "08:00"
	_, res = DefaultRules().ValidateCreate(req, testNow)
	assert.True(t, res.IsValid)
}

func TestValidateCreateHorizonBoundary(t *testing.T) {
	req := validCreate()

	// Exactly three months out passes.
	req.Date = "2025-09-10"
	_, res := DefaultRules().ValidateCreate(req, testNow)
	assert.True(t, res.IsValid, res.ErrorMessage)

	req.Date = "2025-09-11"
	_, res = DefaultRules().ValidateCreate(req, testNow)
	assert.False(t, res.IsValid)
}

func TestValidateCreateNormalization(t *testing.T) {
	req := models.CreateAppointmentRequest{
		DoctorID: 5,
		Date:     " 2025-06-16 ",
		Time:     "9:05",
		Reason:   "  persistent migraines for two weeks  ",
		Notes:    strptr("   "),
	}
	norm, res := DefaultRules().ValidateCreate(req, testNow)
	require.True(t, res.IsValid, res.ErrorMessage)
	assert.Equal(t, "2025-06-16", norm.Date)
	assert.Equal(t, "09:05", norm.Time)
	assert.Equal(t, "persistent migraines for two weeks", norm.Reason)
	assert.Nil(t, norm.Notes, "blank optional notes are coerced to absent")

	// Re-validating the normalized request passes and leaves it unchanged.
	again, res := DefaultRules().ValidateCreate(norm, testNow)
	require.True(t, res.IsValid)
	assert.Equal(t, norm, again)
}

func TestValidateUpdateRequiresAtLeastOneField(t *testing.T) {
	_, res := DefaultRules().ValidateUpdate(models.UpdateAppointmentRequest{}, testNow)
	require.False(t, res.IsValid)
	assert.Equal(t, "must provide at least one field to update", res.ErrorMessage)

	// Blank strings count as absent.
	req := models.UpdateAppointmentRequest{Date: strptr("  "), Reason: strptr("")}
	_, res = DefaultRules().ValidateUpdate(req, testNow)
	require.False(t, res.IsValid)
	assert.Equal(t, "must provide at least one field to update", res.ErrorMessage)
}

func TestValidateUpdateEmptyNotesClearTheNotes(t *testing.T) {
	// Present-but-empty notes are a real change (clearing), not an absence.
	req := models.UpdateAppointmentRequest{Notes: strptr("")}
	norm, res := DefaultRules().ValidateUpdate(req, testNow)
	require.True(t, res.IsValid, res.ErrorMessage)
	require.NotNil(t, norm.Notes)
	assert.Equal(t, "", *norm.Notes)
}

func TestValidateUpdatePerFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateAppointmentRequest
		wantMsg string
	}{
		{"bad date", models.UpdateAppointmentRequest{Date: strptr("tomorrow")}, "invalid date format (use yyyy-mm-dd)"},
		{"past date", models.UpdateAppointmentRequest{Date: strptr("2025-06-01")}, "appointments cannot be scheduled on past dates"},
		{"beyond update horizon", models.UpdateAppointmentRequest{Date: strptr("2025-12-11")}, "appointments cannot be scheduled more than 6 months in advance"},
		{"bad time", models.UpdateAppointmentRequest{Time: strptr("99:99")}, "invalid time format (use HH:mm, e.g. 14:30)"},
		{"outside window", models.UpdateAppointmentRequest{Time: strptr("06:00")}, "the time must be between 08:00 and 18:00"},
		{"short reason", models.UpdateAppointmentRequest{Reason: strptr("short")}, "the reason must be at least 10 characters"},
		{"long notes", models.UpdateAppointmentRequest{Notes: strptr(strings.Repeat("n", 1001))}, "the notes cannot exceed 1000 characters"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, res := DefaultRules().ValidateUpdate(tc.req, testNow)
			require.False(t, res.IsValid)
			assert.Equal(t, tc.wantMsg, res.ErrorMessage)
		})
	}
}

func TestValidateUpdateUsesSixMonthHorizon(t *testing.T) {
	// 2025-12-10 is exactly six months out and passes; the create path's
	// three month horizon would reject it.
	req := models.UpdateAppointmentRequest{Date: strptr("2025-12-10")}
	_, res := DefaultRules().ValidateUpdate(req, testNow)
	assert.True(t, res.IsValid, res.ErrorMessage)
}

func TestValidateSlotQuery(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name     string
		doctorID int
		date     string
		wantMsg  string
	}{
		{"invalid id", 0, "2025-06-16", "invalid doctor id"},
		{"blank date", 3, "", "date is required"},
		{"bad format", 3, "June 16", "invalid date format (use yyyy-mm-dd)"},
		{"past", 3, "2025-06-09", "slots cannot be fetched for past dates"},
		{"too far", 3, "2026-01-01", "slots cannot be fetched that far in advance"},
		{"ok", 3, "2025-06-16", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := rules.ValidateSlotQuery(tc.doctorID, tc.date, testNow)
			if tc.wantMsg == "" {
				assert.True(t, res.IsValid)
				return
			}
			require.False(t, res.IsValid)
			assert.Equal(t, tc.wantMsg, res.ErrorMessage)
		})
	}
}

func TestRulesFromConfigFallsBackToDefaults(t *testing.T) {
	// With nothing loaded into the config, every knob keeps its default.
	assert.Equal(t, DefaultRules(), RulesFromConfig())
}
