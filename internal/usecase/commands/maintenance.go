package commands

import (
	"context"
	"time"

	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrWatchRegistrationFailed = errs.New("calendar watch registration failed")

// maxRepairSamples caps the before/after sample list in the repair report.
const maxRepairSamples = 10

type DateRepairSample struct {
	BookingID uuid.UUID `json:"bookingId"`
	Before    time.Time `json:"before"`
	After     time.Time `json:"after"`
}

type DateRepairResult struct {
	Processed int                `json:"processed"`
	Fixed     int                `json:"fixed"`
	Errored   int                `json:"errored"`
	Samples   []DateRepairSample `json:"samples"`
}

type MaintenanceCommands interface {
	// ShiftBookingDates unconditionally adds one day to the start date of
	// every booking carrying a calendar event id. It is a one-time migration
	// hammer for the historical timezone drift and is deliberately NOT
	// idempotent: running it twice shifts dates by two days.
	ShiftBookingDates(ctx context.Context) (*DateRepairResult, error)
	// RegisterCalendarWatch opens a push channel with the calendar service
	// and persists it, superseding any previous registration.
	RegisterCalendarWatch(ctx context.Context) (*queries.WatchStatusView, error)
}

type maintenanceCommandsImpl struct {
	repo           BookingRepository
	watchRepo      WatchRepository
	calendar       CalendarGateway
	webhookAddress string
}

func NewMaintenanceCommands(
	repo BookingRepository,
	watchRepo WatchRepository,
	calendar CalendarGateway,
	webhookAddress string,
) MaintenanceCommands {
	return &maintenanceCommandsImpl{
		repo:           repo,
		watchRepo:      watchRepo,
		calendar:       calendar,
		webhookAddress: webhookAddress,
	}
}

func (c *maintenanceCommandsImpl) ShiftBookingDates(ctx context.Context) (*DateRepairResult, error) {
	rows, err := c.repo.ListCalendarLinked(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := &DateRepairResult{Processed: len(rows)}
	for _, row := range rows {
		newDate, shiftErr := c.repo.ShiftStartDate(ctx, row.ID, 1)
		if shiftErr != nil {
			result.Errored++
			continue
		}
		result.Fixed++
		if len(result.Samples) < maxRepairSamples {
			result.Samples = append(result.Samples, DateRepairSample{
				BookingID: row.ID,
				Before:    row.StartDate,
				After:     newDate,
			})
		}
	}

	return result, nil
}

func (c *maintenanceCommandsImpl) RegisterCalendarWatch(ctx context.Context) (*queries.WatchStatusView, error) {
	ch, err := c.calendar.Watch(ctx, uuid.New(), c.webhookAddress)
	if err != nil {
		return nil, errs.Mark(err, ErrWatchRegistrationFailed)
	}

	if err := c.watchRepo.Replace(ctx, *ch); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.WatchStatusView{
		Active:     true,
		ChannelID:  &ch.ChannelID,
		Expiration: &ch.Expiration,
	}, nil
}
