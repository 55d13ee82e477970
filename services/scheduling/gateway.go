package scheduling

import (
	"context"

	"medicitas/models"
)

// CreateReceipt is the gateway's answer to a successful create.
type CreateReceipt struct {
	AppointmentID int    `json:"appointmentId"`
	Message       string `json:"message"`
}

// UpdateReceipt is the gateway's answer to a successful update.
type UpdateReceipt struct {
	Appointment models.AppointmentDetail `json:"appointment"`
	Message     string                   `json:"message"`
}

// AppointmentDataGateway is the abstract capability the scheduling core
// calls to fetch schedules/slots and submit requests. Implementations live
// with the surrounding I/O code; the core never sees a transport. The token
// is an opaque bearer string the core passes through untouched. Failed calls
// return a *Failure carrying the HTTP-like status code; mapping the code to
// a user message is the orchestrator's job.
type AppointmentDataGateway interface {
	FetchWeeklySchedule(ctx context.Context, doctorID int, token string) ([]models.WeeklySchedule, error)
	FetchAvailableSlots(ctx context.Context, doctorID int, date string, token string) (*models.AvailableSlotsForDate, error)
	SubmitCreate(ctx context.Context, token string, req models.CreateAppointmentRequest) (*CreateReceipt, error)
	SubmitUpdate(ctx context.Context, appointmentID int, token string, req models.UpdateAppointmentRequest) (*UpdateReceipt, error)
}
