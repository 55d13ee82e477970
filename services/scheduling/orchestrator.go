package scheduling

import (
	"context"
	"strings"
	"time"

	"medicitas/models"
	"medicitas/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OutcomeStatus names the terminal state of one orchestrated operation.
type OutcomeStatus string

const (
	// StatusLoaded means data was fetched through the gateway.
	StatusLoaded OutcomeStatus = "loaded"
	// StatusCreated means the gateway accepted a create request.
	StatusCreated OutcomeStatus = "created"
	// StatusUpdated means the gateway accepted an update request.
	StatusUpdated OutcomeStatus = "updated"
	// StatusRejected means local validation stopped the operation before any
	// network call.
	StatusRejected OutcomeStatus = "rejected"
	// StatusFailed means the gateway call itself failed.
	StatusFailed OutcomeStatus = "failed"
)

// ScheduleOutcome is the result of FetchSchedule.
type ScheduleOutcome struct {
	Status   OutcomeStatus
	Schedule []models.WeeklySchedule
	Reason   string
}

// SlotsOutcome is the result of FetchSlots.
type SlotsOutcome struct {
	Status OutcomeStatus
	Slots  *models.AvailableSlotsForDate
	Reason string
}

// CreateOutcome is the result of SubmitCreate.
type CreateOutcome struct {
	Status        OutcomeStatus
	AppointmentID int
	Message       string
	Reason        string
}

// UpdateOutcome is the result of SubmitUpdate.
type UpdateOutcome struct {
	Status      OutcomeStatus
	Appointment *models.AppointmentDetail
	Message     string
	Reason      string
}

// Orchestrator sequences the availability policy, slot reconciliation and
// request validation against data fetched through the gateway. Every
// operation is a fresh state machine: nothing is held between calls, so a
// retry simply runs the same operation again from the start.
type Orchestrator interface {
	FetchSchedule(ctx context.Context, doctorID int, token string) ScheduleOutcome
	FetchSlots(ctx context.Context, doctorID int, date string, token string) SlotsOutcome
	SubmitCreate(ctx context.Context, token string, req models.CreateAppointmentRequest) CreateOutcome
	SubmitUpdate(ctx context.Context, appointmentID int, token string, req models.UpdateAppointmentRequest, current *models.AppointmentDetail) UpdateOutcome
}

// DefaultOrchestrator implements Orchestrator.
type DefaultOrchestrator struct {
	Gateway AppointmentDataGateway
	Rules   Rules
	// Now supplies the reference instant for every time-sensitive check.
	// Nil means wall clock.
	Now func() time.Time
}

func (o *DefaultOrchestrator) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// FetchSchedule loads the doctor's weekly recurring schedule. The loaded
// entries feed CheckAvailability and ValidateAppointmentTime on the caller's
// side.
func (o *DefaultOrchestrator) FetchSchedule(ctx context.Context, doctorID int, token string) (out ScheduleOutcome) {
	logger := utils.GetLogger()
	opID := uuid.New().String()
	defer recoverToFailure(logger, opID, "FetchSchedule", func(reason string) {
		out = ScheduleOutcome{Status: StatusFailed, Reason: reason}
	})

	if doctorID <= 0 {
		return ScheduleOutcome{Status: StatusRejected, Reason: "invalid doctor id"}
	}

	logger.Debug("fetching weekly schedule",
		zap.String("opId", opID), zap.Int("doctorId", doctorID))

	schedule, err := o.Gateway.FetchWeeklySchedule(ctx, doctorID, token)
	if err != nil {
		logger.Warn("schedule fetch failed",
			zap.String("opId", opID), zap.Int("doctorId", doctorID), zap.Error(err))
		return ScheduleOutcome{Status: StatusFailed, Reason: failureReason(err)}
	}

	return ScheduleOutcome{Status: StatusLoaded, Schedule: schedule}
}

// FetchSlots loads the bookable slots for one date. Requests that are known
// to be invalid locally are rejected before the gateway is touched.
func (o *DefaultOrchestrator) FetchSlots(ctx context.Context, doctorID int, date string, token string) (out SlotsOutcome) {
	logger := utils.GetLogger()
	opID := uuid.New().String()
	defer recoverToFailure(logger, opID, "FetchSlots", func(reason string) {
		out = SlotsOutcome{Status: StatusFailed, Reason: reason}
	})

	if res := o.Rules.ValidateSlotQuery(doctorID, date, o.now()); !res.IsValid {
		return SlotsOutcome{Status: StatusRejected, Reason: res.ErrorMessage}
	}

	logger.Debug("fetching available slots",
		zap.String("opId", opID), zap.Int("doctorId", doctorID), zap.String("date", date))

	slots, err := o.Gateway.FetchAvailableSlots(ctx, doctorID, strings.TrimSpace(date), token)
	if err != nil {
		logger.Warn("slot fetch failed",
			zap.String("opId", opID), zap.Int("doctorId", doctorID), zap.Error(err))
		return SlotsOutcome{Status: StatusFailed, Reason: failureReason(err)}
	}
	if slots == nil {
		logger.Warn("slot fetch returned no payload", zap.String("opId", opID))
		return SlotsOutcome{Status: StatusFailed, Reason: "unexpected error"}
	}

	// The server's summary is not trusted to agree with the slot list.
	slots.Summary = models.SummaryOf(slots.Slots)

	return SlotsOutcome{Status: StatusLoaded, Slots: slots}
}

// SubmitCreate validates and normalizes a create request, then submits it.
func (o *DefaultOrchestrator) SubmitCreate(ctx context.Context, token string, req models.CreateAppointmentRequest) (out CreateOutcome) {
	logger := utils.GetLogger()
	opID := uuid.New().String()
	defer recoverToFailure(logger, opID, "SubmitCreate", func(reason string) {
		out = CreateOutcome{Status: StatusFailed, Reason: reason}
	})

	if strings.TrimSpace(token) == "" {
		return CreateOutcome{Status: StatusRejected, Reason: "authentication token required"}
	}

	normalized, res := o.Rules.ValidateCreate(req, o.now())
	if !res.IsValid {
		return CreateOutcome{Status: StatusRejected, Reason: res.ErrorMessage}
	}

	logger.Info("submitting appointment create",
		zap.String("opId", opID),
		zap.Int("doctorId", normalized.DoctorID),
		zap.String("date", normalized.Date),
		zap.String("time", normalized.Time))

	receipt, err := o.Gateway.SubmitCreate(ctx, token, normalized)
	if err != nil {
		logger.Warn("appointment create failed", zap.String("opId", opID), zap.Error(err))
		return CreateOutcome{Status: StatusFailed, Reason: failureReason(err)}
	}
	if receipt == nil {
		logger.Warn("appointment create returned no payload", zap.String("opId", opID))
		return CreateOutcome{Status: StatusFailed, Reason: "unexpected error"}
	}

	logger.Info("appointment created",
		zap.String("opId", opID), zap.Int("appointmentId", receipt.AppointmentID))
	return CreateOutcome{
		Status:        StatusCreated,
		AppointmentID: receipt.AppointmentID,
		Message:       receipt.Message,
	}
}

// SubmitUpdate validates a partial update, diffs it against the currently
// loaded appointment so unchanged fields are never sent, and submits the
// remainder. An update where nothing actually differs is rejected locally.
func (o *DefaultOrchestrator) SubmitUpdate(ctx context.Context, appointmentID int, token string, req models.UpdateAppointmentRequest, current *models.AppointmentDetail) (out UpdateOutcome) {
	logger := utils.GetLogger()
	opID := uuid.New().String()
	defer recoverToFailure(logger, opID, "SubmitUpdate", func(reason string) {
		out = UpdateOutcome{Status: StatusFailed, Reason: reason}
	})

	if appointmentID <= 0 {
		return UpdateOutcome{Status: StatusRejected, Reason: "invalid appointment id"}
	}
	if strings.TrimSpace(token) == "" {
		return UpdateOutcome{Status: StatusRejected, Reason: "authentication token required"}
	}

	normalized, res := o.Rules.ValidateUpdate(req, o.now())
	if !res.IsValid {
		return UpdateOutcome{Status: StatusRejected, Reason: res.ErrorMessage}
	}

	if current != nil {
		normalized = diffAgainstCurrent(normalized, *current)
		if normalized.Date == nil && normalized.Time == nil &&
			normalized.Reason == nil && normalized.Notes == nil {
			return UpdateOutcome{Status: StatusRejected, Reason: "no changes detected"}
		}
	}

	logger.Info("submitting appointment update",
		zap.String("opId", opID), zap.Int("appointmentId", appointmentID))

	receipt, err := o.Gateway.SubmitUpdate(ctx, appointmentID, token, normalized)
	if err != nil {
		logger.Warn("appointment update failed",
			zap.String("opId", opID), zap.Int("appointmentId", appointmentID), zap.Error(err))
		return UpdateOutcome{Status: StatusFailed, Reason: failureReason(err)}
	}
	if receipt == nil {
		logger.Warn("appointment update returned no payload", zap.String("opId", opID))
		return UpdateOutcome{Status: StatusFailed, Reason: "unexpected error"}
	}

	updated := receipt.Appointment
	return UpdateOutcome{
		Status:      StatusUpdated,
		Appointment: &updated,
		Message:     receipt.Message,
	}
}

// diffAgainstCurrent drops request fields whose value matches the loaded
// appointment, so the gateway only receives real changes.
func diffAgainstCurrent(req models.UpdateAppointmentRequest, current models.AppointmentDetail) models.UpdateAppointmentRequest {
	out := models.UpdateAppointmentRequest{}
	if req.Date != nil && *req.Date != current.Date {
		out.Date = req.Date
	}
	if req.Time != nil && *req.Time != current.Time {
		out.Time = req.Time
	}
	if req.Reason != nil && *req.Reason != current.Reason {
		out.Reason = req.Reason
	}
	if req.Notes != nil {
		currentNotes := ""
		if current.Notes != nil {
			currentNotes = *current.Notes
		}
		if *req.Notes != currentNotes {
			out.Notes = req.Notes
		}
	}
	return out
}

// recoverToFailure converts a panic inside an operation into the same
// failure shape as a gateway error, so callers never see a raw fault.
func recoverToFailure(logger *zap.Logger, opID, op string, set func(reason string)) {
	if r := recover(); r != nil {
		logger.Error("unexpected panic in scheduling operation",
			zap.String("opId", opID), zap.String("operation", op), zap.Any("panic", r))
		set("unexpected error")
	}
}
