package response

import (
	"time"

	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                  uuid.UUID          `json:"id"`
	BookingType         string             `json:"bookingType"`
	Resource            string             `json:"resource"`
	StartDate           string             `json:"startDate"`
	StartTime           string             `json:"startTime"`
	EndTime             string             `json:"endTime"`
	Items               []LineItemResponse `json:"items"`
	SubtotalCents       int64              `json:"subtotalCents"`
	EstimatedTotalCents int64              `json:"estimatedTotalCents"`
	PaymentStatus       string             `json:"paymentStatus"`
	CustomerName        string             `json:"customerName"`
	CustomerEmail       string             `json:"customerEmail"`
	CustomerPhone       string             `json:"customerPhone"`
	CalendarEventID     *string            `json:"calendarEventId,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
}

type LineItemResponse struct {
	Name       string `json:"name"`
	Quantity   int32  `json:"quantity"`
	PriceCents int64  `json:"priceCents"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	items := make([]LineItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = LineItemResponse{
			Name:       item.Name,
			Quantity:   item.Quantity,
			PriceCents: item.PriceCents,
		}
	}

	return &BookingResponse{
		ID:                  view.ID,
		BookingType:         view.Kind,
		Resource:            view.Resource,
		StartDate:           view.StartDate.Format(reqdto.DateLayout),
		StartTime:           view.StartTime,
		EndTime:             view.EndTime,
		Items:               items,
		SubtotalCents:       view.SubtotalCents,
		EstimatedTotalCents: view.EstimatedTotalCents,
		PaymentStatus:       view.PaymentStatus,
		CustomerName:        view.CustomerName,
		CustomerEmail:       view.CustomerEmail,
		CustomerPhone:       view.CustomerPhone,
		CalendarEventID:     view.CalendarEventID,
		CreatedAt:           view.CreatedAt,
	}
}

type SessionTypeResponse struct {
	BookingType string `json:"bookingType"`
}

type WatchStatusResponse struct {
	Active     bool       `json:"active"`
	ChannelID  *uuid.UUID `json:"channelId,omitempty"`
	Expiration *time.Time `json:"expiration,omitempty"`
}

func FromWatchStatusView(view *queries.WatchStatusView) *WatchStatusResponse {
	return &WatchStatusResponse{
		Active:     view.Active,
		ChannelID:  view.ChannelID,
		Expiration: view.Expiration,
	}
}
