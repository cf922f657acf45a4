package gateway

import (
	"context"
	"time"

	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarGateway wraps the calendar service's event insert/delete and
// push-channel registration. Single remote call each, no internal retry;
// callers treat failures as advisory.
type GoogleCalendarGateway struct {
	service    *calendar.Service
	calendarID string
}

func NewGoogleCalendarGateway(ctx context.Context, cfg config.CalendarConfig) (*GoogleCalendarGateway, error) {
	service, err := calendar.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create calendar service")
	}

	return &GoogleCalendarGateway{
		service:    service,
		calendarID: cfg.CalendarID,
	}, nil
}

func (g *GoogleCalendarGateway) CreateEvent(ctx context.Context, data commands.EventData) (string, error) {
	event := &calendar.Event{
		Summary:     data.Summary,
		Description: data.Description,
		Start: &calendar.EventDateTime{
			DateTime: data.Start.Format(time.RFC3339),
			TimeZone: data.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: data.End.Format(time.RFC3339),
			TimeZone: data.TimeZone,
		},
	}

	created, err := g.service.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", errs.Wrap(err, "failed to insert calendar event")
	}

	return created.Id, nil
}

func (g *GoogleCalendarGateway) DeleteEvent(ctx context.Context, eventID string) error {
	if err := g.service.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		return errs.Wrap(err, "failed to delete calendar event")
	}
	return nil
}

func (g *GoogleCalendarGateway) Watch(ctx context.Context, channelID uuid.UUID, address string) (*commands.WatchChannel, error) {
	channel := &calendar.Channel{
		Id:      channelID.String(),
		Type:    "web_hook",
		Address: address,
	}

	registered, err := g.service.Events.Watch(g.calendarID, channel).Context(ctx).Do()
	if err != nil {
		return nil, errs.Wrap(err, "failed to register calendar watch channel")
	}

	return &commands.WatchChannel{
		ChannelID:  channelID,
		ResourceID: registered.ResourceId,
		Expiration: time.UnixMilli(registered.Expiration),
	}, nil
}
