package commands

import (
	"context"
	"errors"
	"log/slog"

	"studio-booking/internal/domain/booking"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrTotalMismatch           = errs.New("estimated total does not match item list")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, kind booking.Kind, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	// CancelBooking removes the booking and, best effort, its calendar event.
	// A calendar-side failure is logged and never blocks the deletion.
	CancelBooking(ctx context.Context, kind booking.Kind, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	repo           BookingRepository
	calendar       CalendarGateway
	bookingQueries queries.BookingQueries
}

func NewBookingCommands(
	repo BookingRepository,
	calendar CalendarGateway,
	bookingQueries queries.BookingQueries,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:           repo,
		calendar:       calendar,
		bookingQueries: bookingQueries,
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	kind booking.Kind,
	req reqdto.CreateBookingRequest,
) (*queries.BookingView, error) {
	entity, err := req.ToDomain(kind)
	if err != nil {
		if errors.Is(err, booking.ErrTotalMismatch) {
			return nil, errs.Mark(err, ErrTotalMismatch)
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	bookingID, err := c.repo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the persisted view
	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, kind booking.Kind, id uuid.UUID) error {
	entity, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if entity.Kind() != kind {
		return ErrBookingNotFound
	}

	if eventID := entity.CalendarEventID(); eventID != nil {
		if delErr := c.calendar.DeleteEvent(ctx, *eventID); delErr != nil {
			// The stored booking is authoritative; the calendar event is not.
			slog.Warn("failed to delete calendar event during cancellation",
				"booking_id", id, "event_id", *eventID, "error", delErr)
		}
	}

	if err := c.repo.Delete(ctx, id, kind); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}
