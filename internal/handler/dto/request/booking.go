package request

import (
	"errors"
	"time"

	"studio-booking/internal/domain/booking"
)

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"

var ErrInvalidStartDate = errors.New("invalid start date")

type LineItem struct {
	Name       string `json:"name" binding:"required"`
	Quantity   int32  `json:"quantity" binding:"required,min=1"`
	PriceCents int64  `json:"priceCents" binding:"min=0"`
}

type CreateBookingRequest struct {
	Resource            string     `json:"studio" binding:"required"`
	StartDate           string     `json:"startDate" binding:"required"`
	StartTime           string     `json:"startTime" binding:"required"`
	EndTime             string     `json:"endTime" binding:"required"`
	Items               []LineItem `json:"items" binding:"required,min=1,dive"`
	SubtotalCents       int64      `json:"subtotalCents" binding:"min=0"`
	EstimatedTotalCents int64      `json:"estimatedTotalCents" binding:"min=0"`
	CustomerName        string     `json:"customerName" binding:"required"`
	CustomerEmail       string     `json:"customerEmail" binding:"required,email"`
	CustomerPhone       string     `json:"customerPhone" binding:"required"`
}

// CreateServiceBookingRequest is the service-booking wire shape: `service`
// and `services` replace `studio` and `items`, everything else matches.
type CreateServiceBookingRequest struct {
	Resource            string     `json:"service" binding:"required"`
	StartDate           string     `json:"startDate" binding:"required"`
	StartTime           string     `json:"startTime" binding:"required"`
	EndTime             string     `json:"endTime" binding:"required"`
	Services            []LineItem `json:"services" binding:"required,min=1,dive"`
	SubtotalCents       int64      `json:"subtotalCents" binding:"min=0"`
	EstimatedTotalCents int64      `json:"estimatedTotalCents" binding:"min=0"`
	CustomerName        string     `json:"customerName" binding:"required"`
	CustomerEmail       string     `json:"customerEmail" binding:"required,email"`
	CustomerPhone       string     `json:"customerPhone" binding:"required"`
}

func (r CreateServiceBookingRequest) ToCommon() CreateBookingRequest {
	return CreateBookingRequest{
		Resource:            r.Resource,
		StartDate:           r.StartDate,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		Items:               r.Services,
		SubtotalCents:       r.SubtotalCents,
		EstimatedTotalCents: r.EstimatedTotalCents,
		CustomerName:        r.CustomerName,
		CustomerEmail:       r.CustomerEmail,
		CustomerPhone:       r.CustomerPhone,
	}
}

func (r CreateBookingRequest) ToDomain(kind booking.Kind) (*booking.Booking, error) {
	startDate, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return nil, ErrInvalidStartDate
	}

	items := make([]booking.LineItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = booking.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    booking.NewMoney(item.PriceCents),
		}
	}

	return booking.NewBooking(
		kind,
		r.Resource,
		startDate,
		r.StartTime,
		r.EndTime,
		items,
		booking.NewMoney(r.SubtotalCents),
		booking.NewMoney(r.EstimatedTotalCents),
		booking.Customer{
			Name:  r.CustomerName,
			Email: r.CustomerEmail,
			Phone: r.CustomerPhone,
		},
	)
}
