package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingContact    = errors.New("customer name, email and phone are required")
	ErrMissingResource   = errors.New("booking requires a studio or service reference")
	ErrCalendarEventSet  = errors.New("calendar event already recorded")
	ErrInvalidTransition = errors.New("payment status can only move from pending to success")
)

type Customer struct {
	Name  string
	Email string
	Phone string
}

func (c Customer) validate() error {
	if strings.TrimSpace(c.Name) == "" ||
		strings.TrimSpace(c.Email) == "" ||
		strings.TrimSpace(c.Phone) == "" {
		return ErrMissingContact
	}
	return nil
}

type Booking struct {
	id              uuid.UUID
	kind            Kind
	resource        string
	startDate       time.Time
	startTime       string
	endTime         string
	items           []LineItem
	subtotal        Money
	estimatedTotal  Money
	paymentStatus   PaymentStatus
	customer        Customer
	calendarEventID *string
	createdAt       time.Time
}

// NewBooking builds a pending booking. Totals are recomputed from the item
// list and a mismatched client value is rejected here, before anything is
// persisted.
func NewBooking(
	kind Kind,
	resource string,
	startDate time.Time,
	startTime, endTime string,
	items []LineItem,
	subtotal, estimatedTotal Money,
	customer Customer,
) (*Booking, error) {
	if strings.TrimSpace(resource) == "" {
		return nil, ErrMissingResource
	}
	if err := customer.validate(); err != nil {
		return nil, err
	}
	if err := ValidateTotals(items, subtotal, estimatedTotal); err != nil {
		return nil, err
	}
	if _, err := atWallClock(startDate, startTime, time.UTC); err != nil {
		return nil, err
	}
	if _, err := atWallClock(startDate, endTime, time.UTC); err != nil {
		return nil, err
	}

	return &Booking{
		id:             uuid.New(),
		kind:           kind,
		resource:       resource,
		startDate:      DateOnly(startDate),
		startTime:      startTime,
		endTime:        endTime,
		items:          items,
		subtotal:       RecomputeTotal(items),
		estimatedTotal: RecomputeTotal(items),
		paymentStatus:  PaymentPending,
		customer:       customer,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	kind Kind,
	resource string,
	startDate time.Time,
	startTime, endTime string,
	items []LineItem,
	subtotal, estimatedTotal Money,
	paymentStatus PaymentStatus,
	customer Customer,
	calendarEventID *string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		kind:            kind,
		resource:        resource,
		startDate:       startDate,
		startTime:       startTime,
		endTime:         endTime,
		items:           items,
		subtotal:        subtotal,
		estimatedTotal:  estimatedTotal,
		paymentStatus:   paymentStatus,
		customer:        customer,
		calendarEventID: calendarEventID,
		createdAt:       createdAt,
	}
}

// MarkPaid is the single legal status transition in this system.
func (b *Booking) MarkPaid() error {
	if b.paymentStatus != PaymentPending {
		return ErrInvalidTransition
	}
	b.paymentStatus = PaymentSuccess
	return nil
}

// AttachCalendarEvent records the externally created event id. At most once.
func (b *Booking) AttachCalendarEvent(eventID string) error {
	if b.calendarEventID != nil {
		return ErrCalendarEventSet
	}
	b.calendarEventID = &eventID
	return nil
}

// NeedsCalendarSync reports whether payment verification should still create
// a calendar event. Guarding on this makes repeated verification calls safe.
func (b *Booking) NeedsCalendarSync() bool {
	return b.calendarEventID == nil
}

// EventWindow resolves the session's absolute time span in the studio's zone.
func (b *Booking) EventWindow(loc *time.Location) (EventWindow, error) {
	return NewEventWindow(b.startDate, b.startTime, b.endTime, loc)
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Kind() Kind                   { return b.kind }
func (b *Booking) Resource() string             { return b.resource }
func (b *Booking) StartDate() time.Time         { return b.startDate }
func (b *Booking) StartTime() string            { return b.startTime }
func (b *Booking) EndTime() string              { return b.endTime }
func (b *Booking) Items() []LineItem            { return b.items }
func (b *Booking) Subtotal() Money              { return b.subtotal }
func (b *Booking) EstimatedTotal() Money        { return b.estimatedTotal }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Customer() Customer           { return b.customer }
func (b *Booking) CalendarEventID() *string     { return b.calendarEventID }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
