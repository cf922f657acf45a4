package commands

import (
	"context"
	"time"

	"studio-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID, kind booking.Kind) error
	// MarkPaid transitions payment_status from pending to success; any other
	// starting state is left untouched.
	MarkPaid(ctx context.Context, id uuid.UUID) error
	// SetCalendarEventID records the event id only when none is recorded yet.
	// Returns false when another verification call already won the race.
	SetCalendarEventID(ctx context.Context, id uuid.UUID, eventID string) (bool, error)
	// ListCalendarLinked returns id and start date of every booking carrying
	// a calendar event id, for the administrative date repair.
	ListCalendarLinked(ctx context.Context) ([]CalendarLinkedRow, error)
	ShiftStartDate(ctx context.Context, id uuid.UUID, days int) (time.Time, error)
}

type CalendarLinkedRow struct {
	ID        uuid.UUID
	StartDate time.Time
}

type PaymentSession struct {
	ID          string
	Paid        bool
	Status      string
	BookingID   string
	BookingType string
	AmountTotal int64
}

type PaymentGateway interface {
	GetSession(ctx context.Context, sessionID string) (*PaymentSession, error)
}

type EventData struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
}

type WatchChannel struct {
	ChannelID  uuid.UUID
	ResourceID string
	Expiration time.Time
}

type CalendarGateway interface {
	CreateEvent(ctx context.Context, data EventData) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
	Watch(ctx context.Context, channelID uuid.UUID, address string) (*WatchChannel, error)
}

type WatchRepository interface {
	// Replace persists the active push channel, superseding any previous one.
	Replace(ctx context.Context, ch WatchChannel) error
}
