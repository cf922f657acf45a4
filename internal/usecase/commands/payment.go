package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotCompleted    = errs.New("payment session is not fully paid")
	ErrMissingSessionMetadata = errs.New("payment session has no booking reference")
	ErrPaymentLookupFailed    = errs.New("payment session lookup failed")
)

type ConfirmPaymentResult struct {
	BookingID      uuid.UUID `json:"bookingId"`
	PaymentStatus  string    `json:"paymentStatus"`
	CalendarSynced bool      `json:"calendarSynced"`
	// Replayed is true when this session was already verified and the
	// calendar event already existed; nothing was created again.
	Replayed bool `json:"replayed"`
}

type PaymentCommands interface {
	// ConfirmPayment verifies the payment session, marks the referenced
	// booking paid and creates the calendar event. Payment truth is
	// authoritative: a calendar-side fault never rolls back confirmation.
	ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmPaymentResult, error)
}

type paymentCommandsImpl struct {
	repo     BookingRepository
	payments PaymentGateway
	calendar CalendarGateway
	location *time.Location
}

func NewPaymentCommands(
	repo BookingRepository,
	payments PaymentGateway,
	calendar CalendarGateway,
	location *time.Location,
) PaymentCommands {
	return &paymentCommandsImpl{
		repo:     repo,
		payments: payments,
		calendar: calendar,
		location: location,
	}
}

func (c *paymentCommandsImpl) ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmPaymentResult, error) {
	sess, err := c.payments.GetSession(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentLookupFailed)
	}
	if !sess.Paid {
		return nil, ErrPaymentNotCompleted
	}

	if sess.BookingID == "" {
		return nil, ErrMissingSessionMetadata
	}
	bookingID, err := uuid.Parse(sess.BookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrMissingSessionMetadata)
	}

	entity, err := c.repo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	status := entity.PaymentStatus()
	if status == booking.PaymentPending {
		if err := c.repo.MarkPaid(ctx, bookingID); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		status = booking.PaymentSuccess
	}

	result := &ConfirmPaymentResult{
		BookingID:     bookingID,
		PaymentStatus: status.String(),
	}

	// The only transition is pending to success. A failed booking stays
	// failed and never gains a calendar event.
	if status != booking.PaymentSuccess {
		slog.Warn("paid session references a non-confirmable booking",
			"booking_id", bookingID, "payment_status", status.String(), "session_id", sessionID)
		return result, nil
	}

	// Only create an event when none is recorded yet, so re-verifying the
	// same session cannot produce duplicate calendar entries.
	if !entity.NeedsCalendarSync() {
		result.CalendarSynced = true
		result.Replayed = true
		return result, nil
	}

	result.CalendarSynced = c.syncCalendar(ctx, entity)
	return result, nil
}

func (c *paymentCommandsImpl) syncCalendar(ctx context.Context, entity *booking.Booking) bool {
	window, err := entity.EventWindow(c.location)
	if err != nil {
		slog.Error("failed to resolve event window for paid booking",
			"booking_id", entity.ID(), "error", err)
		return false
	}

	eventID, err := c.calendar.CreateEvent(ctx, EventData{
		Summary:     fmt.Sprintf("%s - %s", entity.Resource(), entity.Customer().Name),
		Description: fmt.Sprintf("Booking %s (%s)", entity.ID(), entity.Customer().Email),
		Start:       window.Start(),
		End:         window.End(),
		TimeZone:    c.location.String(),
	})
	if err != nil {
		slog.Error("failed to create calendar event for paid booking",
			"booking_id", entity.ID(), "error", err)
		return false
	}

	stored, err := c.repo.SetCalendarEventID(ctx, entity.ID(), eventID)
	if err != nil {
		slog.Error("failed to store calendar event id",
			"booking_id", entity.ID(), "event_id", eventID, "error", err)
		return false
	}
	if !stored {
		// A concurrent verification already attached an event; this one is
		// now orphaned, remove it best effort.
		slog.Warn("calendar event id already set, removing duplicate event",
			"booking_id", entity.ID(), "event_id", eventID)
		if delErr := c.calendar.DeleteEvent(ctx, eventID); delErr != nil {
			slog.Warn("failed to remove duplicate calendar event",
				"event_id", eventID, "error", delErr)
		}
	}

	return true
}
