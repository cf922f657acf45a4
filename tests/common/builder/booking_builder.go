//go:build unit || e2e

package builder

import (
	"time"

	dombooking "studio-booking/internal/domain/booking"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	Kind                dombooking.Kind
	Resource            string
	StartDate           time.Time
	StartTime           string
	EndTime             string
	Items               []reqdto.LineItem
	SubtotalCents       int64
	EstimatedTotalCents int64
	PaymentStatus       dombooking.PaymentStatus
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	CalendarEventID     *string
	CreatedAt           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Kind:      dombooking.KindStudio,
		Resource:  "Studio A",
		StartDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "11:00 AM",
		EndTime:   "1:00 PM",
		Items: []reqdto.LineItem{
			{Name: "2 Hour Session", Quantity: 2, PriceCents: 10000},
		},
		SubtotalCents:       20000,
		EstimatedTotalCents: 20000,
		PaymentStatus:       dombooking.PaymentPending,
		CustomerName:        "Jordan Reyes",
		CustomerEmail:       "jordan@example.com",
		CustomerPhone:       "+1-555-0142",
		CreatedAt:           time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	items := make([]dombooking.LineItem, len(b.Items))
	for i, item := range b.Items {
		items[i] = dombooking.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    dombooking.NewMoney(item.PriceCents),
		}
	}
	return dombooking.NewBooking(
		b.Kind,
		b.Resource,
		b.StartDate,
		b.StartTime,
		b.EndTime,
		items,
		dombooking.NewMoney(b.SubtotalCents),
		dombooking.NewMoney(b.EstimatedTotalCents),
		dombooking.Customer{Name: b.CustomerName, Email: b.CustomerEmail, Phone: b.CustomerPhone},
	)
}

func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	items := make([]dombooking.LineItem, len(b.Items))
	for i, item := range b.Items {
		items[i] = dombooking.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    dombooking.NewMoney(item.PriceCents),
		}
	}
	return dombooking.ReconstructBooking(
		uuid.New(),
		b.Kind,
		b.Resource,
		b.StartDate,
		b.StartTime,
		b.EndTime,
		items,
		dombooking.NewMoney(b.SubtotalCents),
		dombooking.NewMoney(b.EstimatedTotalCents),
		b.PaymentStatus,
		dombooking.Customer{Name: b.CustomerName, Email: b.CustomerEmail, Phone: b.CustomerPhone},
		b.CalendarEventID,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Resource:            b.Resource,
		StartDate:           b.StartDate.Format(reqdto.DateLayout),
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		Items:               b.Items,
		SubtotalCents:       b.SubtotalCents,
		EstimatedTotalCents: b.EstimatedTotalCents,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
	}
}

func (b *BookingBuilder) BuildServiceRequestDTO() reqdto.CreateServiceBookingRequest {
	return reqdto.CreateServiceBookingRequest{
		Resource:            b.Resource,
		StartDate:           b.StartDate.Format(reqdto.DateLayout),
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		Services:            b.Items,
		SubtotalCents:       b.SubtotalCents,
		EstimatedTotalCents: b.EstimatedTotalCents,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	items := make([]queries.LineItemView, len(b.Items))
	for i, item := range b.Items {
		items[i] = queries.LineItemView{
			Name:       item.Name,
			Quantity:   item.Quantity,
			PriceCents: item.PriceCents,
		}
	}
	return &queries.BookingView{
		ID:                  uuid.New(),
		Kind:                b.Kind.String(),
		Resource:            b.Resource,
		StartDate:           b.StartDate,
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		Items:               items,
		SubtotalCents:       b.SubtotalCents,
		EstimatedTotalCents: b.EstimatedTotalCents,
		PaymentStatus:       b.PaymentStatus.String(),
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		CalendarEventID:     b.CalendarEventID,
		CreatedAt:           b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithKind(kind dombooking.Kind) *BookingBuilder {
	b.Kind = kind
	return b
}

func (b *BookingBuilder) WithResource(resource string) *BookingBuilder {
	b.Resource = resource
	return b
}

func (b *BookingBuilder) WithStartDate(startDate time.Time) *BookingBuilder {
	b.StartDate = startDate
	return b
}

func (b *BookingBuilder) WithWindow(startTime, endTime string) *BookingBuilder {
	b.StartTime = startTime
	b.EndTime = endTime
	return b
}

func (b *BookingBuilder) WithItems(items ...reqdto.LineItem) *BookingBuilder {
	b.Items = items
	return b
}

func (b *BookingBuilder) WithTotals(subtotalCents, estimatedTotalCents int64) *BookingBuilder {
	b.SubtotalCents = subtotalCents
	b.EstimatedTotalCents = estimatedTotalCents
	return b
}

func (b *BookingBuilder) WithPaymentStatus(status dombooking.PaymentStatus) *BookingBuilder {
	b.PaymentStatus = status
	return b
}

func (b *BookingBuilder) WithCustomer(name, email, phone string) *BookingBuilder {
	b.CustomerName = name
	b.CustomerEmail = email
	b.CustomerPhone = phone
	return b
}

func (b *BookingBuilder) WithCalendarEventID(eventID string) *BookingBuilder {
	b.CalendarEventID = &eventID
	return b
}

func (b *BookingBuilder) AsPaid() *BookingBuilder {
	b.PaymentStatus = dombooking.PaymentSuccess
	return b
}

func (b *BookingBuilder) AsService() *BookingBuilder {
	b.Kind = dombooking.KindService
	b.Resource = "Mixing & Mastering"
	return b
}
