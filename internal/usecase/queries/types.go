package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                  uuid.UUID      `json:"id"`
	Kind                string         `json:"kind"`
	Resource            string         `json:"resource"`
	StartDate           time.Time      `json:"start_date"`
	StartTime           string         `json:"start_time"`
	EndTime             string         `json:"end_time"`
	Items               []LineItemView `json:"items"`
	SubtotalCents       int64          `json:"subtotal_cents"`
	EstimatedTotalCents int64          `json:"estimated_total_cents"`
	PaymentStatus       string         `json:"payment_status"`
	CustomerName        string         `json:"customer_name"`
	CustomerEmail       string         `json:"customer_email"`
	CustomerPhone       string         `json:"customer_phone"`
	CalendarEventID     *string        `json:"calendar_event_id,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
}

type LineItemView struct {
	Name       string `json:"name"`
	Quantity   int32  `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

type WatchStatusView struct {
	Active     bool       `json:"active"`
	ChannelID  *uuid.UUID `json:"channel_id,omitempty"`
	Expiration *time.Time `json:"expiration,omitempty"`
}
