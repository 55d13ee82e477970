// File: medicitas/main.go
package main

import (
	"context"
	"fmt"
	"time"

	"medicitas/config"
	"medicitas/models"
	"medicitas/services/scheduling"
	"medicitas/utils"

	"go.uber.org/zap"
)

// memoryGateway is a canned in-memory appointment data source used to walk
// the scheduling flow end to end without a network. Real deployments plug
// their HTTP-backed gateway into the same interface.
type memoryGateway struct {
	schedule []models.WeeklySchedule
	slots    map[string][]models.TimeSlot
	nextID   int
}

func (g *memoryGateway) FetchWeeklySchedule(_ context.Context, doctorID int, _ string) ([]models.WeeklySchedule, error) {
	if doctorID != g.schedule[0].DoctorID {
		return nil, scheduling.NewFailure(404, "doctor not found")
	}
	return g.schedule, nil
}

func (g *memoryGateway) FetchAvailableSlots(_ context.Context, doctorID int, date string, _ string) (*models.AvailableSlotsForDate, error) {
	slots, ok := g.slots[date]
	if !ok {
		return nil, scheduling.NewFailure(404, "no slots for date")
	}
	return &models.AvailableSlotsForDate{
		Date:     date,
		DoctorID: doctorID,
		Slots:    slots,
		Summary:  models.SummaryOf(slots),
	}, nil
}

func (g *memoryGateway) SubmitCreate(_ context.Context, _ string, req models.CreateAppointmentRequest) (*scheduling.CreateReceipt, error) {
	for i, s := range g.slots[req.Date] {
		if s.Time == req.Time {
			if !s.Available {
				return nil, scheduling.NewFailure(409, "slot already taken")
			}
			g.slots[req.Date][i].Available = false
			g.slots[req.Date][i].State = "ocupado"
		}
	}
	g.nextID++
	return &scheduling.CreateReceipt{
		AppointmentID: g.nextID,
		Message:       "appointment created",
	}, nil
}

func (g *memoryGateway) SubmitUpdate(_ context.Context, appointmentID int, _ string, req models.UpdateAppointmentRequest) (*scheduling.UpdateReceipt, error) {
	detail := models.AppointmentDetail{ID: appointmentID, Status: "confirmada"}
	if req.Date != nil {
		detail.Date = *req.Date
	}
	if req.Time != nil {
		detail.Time = *req.Time
	}
	if req.Reason != nil {
		detail.Reason = *req.Reason
	}
	detail.Notes = req.Notes
	return &scheduling.UpdateReceipt{Appointment: detail, Message: "appointment updated"}, nil
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	now := time.Now()
	nextMonday := now.AddDate(0, 0, (8-int(now.Weekday()))%7)
	if nextMonday.Equal(now) {
		nextMonday = now.AddDate(0, 0, 7)
	}
	monday := nextMonday.Format("2006-01-02")

	gateway := &memoryGateway{
		schedule: []models.WeeklySchedule{
			{ID: 1, DoctorID: 7, Weekday: 1, WeekdayName: "Monday", StartTime: "08:00", EndTime: "12:00", Active: true},
			{ID: 2, DoctorID: 7, Weekday: 3, WeekdayName: "Wednesday", StartTime: "14:00", EndTime: "18:00", Active: true},
			{ID: 3, DoctorID: 7, Weekday: 5, WeekdayName: "Friday", StartTime: "08:00", EndTime: "12:00", Active: false},
		},
		slots: map[string][]models.TimeSlot{
			monday: {
				{Time: "09:00", State: models.SlotStateAvailable, Available: true},
				{Time: "10:00", State: "ocupado", Available: false},
				{Time: "11:00", State: models.SlotStateAvailable, Available: true},
			},
		},
	}

	orch := &scheduling.DefaultOrchestrator{
		Gateway: gateway,
		Rules:   scheduling.RulesFromConfig(),
	}
	ctx := context.Background()
	token := "demo-token"

	scheduleOut := orch.FetchSchedule(ctx, 7, token)
	if scheduleOut.Status != scheduling.StatusLoaded {
		logger.Fatal("schedule fetch did not load", zap.String("reason", scheduleOut.Reason))
	}
	fmt.Printf("working days: %s\n", scheduling.WorkingDaysDisplayName(scheduleOut.Schedule))

	info := scheduling.CheckAvailability(scheduleOut.Schedule, monday)
	fmt.Printf("availability on %s: %s\n", monday, info.Message)

	slotsOut := orch.FetchSlots(ctx, 7, monday, token)
	if slotsOut.Status != scheduling.StatusLoaded {
		logger.Fatal("slot fetch did not load", zap.String("reason", slotsOut.Reason))
	}
	fmt.Printf("slots on %s: %d total, %d available\n",
		monday, slotsOut.Slots.Summary.Total, slotsOut.Slots.Summary.Available)

	res := scheduling.ValidateAppointmentTime(scheduleOut.Schedule, slotsOut.Slots.Slots, monday, "09:00", time.Now())
	fmt.Printf("can book 09:00: %v\n", res.IsValid)

	createOut := orch.SubmitCreate(ctx, token, models.CreateAppointmentRequest{
		DoctorID: 7,
		Date:     monday,
		Time:     "09:00",
		Reason:   "persistent migraines for two weeks",
	})
	fmt.Printf("create: %s %s%s\n", createOut.Status, createOut.Message, createOut.Reason)

	current := &models.AppointmentDetail{
		ID:     createOut.AppointmentID,
		Date:   monday,
		Time:   "09:00",
		Reason: "persistent migraines for two weeks",
	}
	updateOut := orch.SubmitUpdate(ctx, createOut.AppointmentID, token, models.UpdateAppointmentRequest{
		Time: strPtr("11:00"),
	}, current)
	fmt.Printf("update: %s %s%s\n", updateOut.Status, updateOut.Message, updateOut.Reason)
}

func strPtr(s string) *string { return &s }
