package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db infra.DBTX
}

func NewBookingRepository(db infra.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// itemRecord is the JSONB shape of one line item.
type itemRecord struct {
	Name       string `json:"name"`
	Quantity   int32  `json:"quantity"`
	PriceCents int64  `json:"priceCents"`
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	items, err := marshalItems(b.Items())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode booking items", err)
	}

	const q = `
		INSERT INTO bookings (
			id, kind, resource, start_date, start_time, end_time,
			items, subtotal_cents, estimated_total_cents, payment_status,
			customer_name, customer_email, customer_phone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	var id uuid.UUID
	err = r.db.QueryRow(ctx, q,
		b.ID(), b.Kind().String(), b.Resource(), b.StartDate(), b.StartTime(), b.EndTime(),
		items, b.Subtotal().Cents(), b.EstimatedTotal().Cents(), b.PaymentStatus().String(),
		b.Customer().Name, b.Customer().Email, b.Customer().Phone,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const q = `
		SELECT id, kind, resource, start_date, start_time, end_time,
		       items, subtotal_cents, estimated_total_cents, payment_status,
		       customer_name, customer_email, customer_phone,
		       calendar_event_id, created_at
		FROM bookings
		WHERE id = $1`

	var (
		rowID           uuid.UUID
		kind            string
		resource        string
		startDate       time.Time
		startTime       string
		endTime         string
		itemsRaw        []byte
		subtotal        int64
		estimatedTotal  int64
		paymentStatus   string
		name            string
		email           string
		phone           string
		calendarEventID pgtype.Text
		createdAt       time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&rowID, &kind, &resource, &startDate, &startTime, &endTime,
		&itemsRaw, &subtotal, &estimatedTotal, &paymentStatus,
		&name, &email, &phone, &calendarEventID, &createdAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	items, err := unmarshalItems(itemsRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking items", err)
	}

	var eventID *string
	if calendarEventID.Valid {
		eventID = &calendarEventID.String
	}

	return booking.ReconstructBooking(
		rowID,
		booking.Kind(kind),
		resource,
		startDate,
		startTime,
		endTime,
		items,
		booking.NewMoney(subtotal),
		booking.NewMoney(estimatedTotal),
		booking.PaymentStatus(paymentStatus),
		booking.Customer{Name: name, Email: email, Phone: phone},
		eventID,
		createdAt,
	), nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID, kind booking.Kind) error {
	const q = `DELETE FROM bookings WHERE id = $1 AND kind = $2`

	tag, err := r.db.Exec(ctx, q, id, kind.String())
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE bookings
		SET payment_status = 'success'
		WHERE id = $1 AND payment_status = 'pending'`

	if _, err := r.db.Exec(ctx, q, id); err != nil {
		return infra.WrapRepoErr("failed to mark booking paid", err)
	}

	return nil
}

func (r *BookingRepository) SetCalendarEventID(ctx context.Context, id uuid.UUID, eventID string) (bool, error) {
	// Guarded on IS NULL: the event id is set at most once per booking.
	const q = `
		UPDATE bookings
		SET calendar_event_id = $2
		WHERE id = $1 AND calendar_event_id IS NULL`

	tag, err := r.db.Exec(ctx, q, id, eventID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to set calendar event id", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *BookingRepository) ListCalendarLinked(ctx context.Context) ([]commands.CalendarLinkedRow, error) {
	const q = `
		SELECT id, start_date
		FROM bookings
		WHERE calendar_event_id IS NOT NULL
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar-linked bookings", err)
	}
	defer rows.Close()

	var result []commands.CalendarLinkedRow
	for rows.Next() {
		var row commands.CalendarLinkedRow
		if err := rows.Scan(&row.ID, &row.StartDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar-linked booking", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read calendar-linked bookings", err)
	}

	return result, nil
}

func (r *BookingRepository) ShiftStartDate(ctx context.Context, id uuid.UUID, days int) (time.Time, error) {
	const q = `
		UPDATE bookings
		SET start_date = start_date + $2 * INTERVAL '1 day'
		WHERE id = $1
		RETURNING start_date`

	var newDate time.Time
	if err := r.db.QueryRow(ctx, q, id, days).Scan(&newDate); err != nil {
		if isNoRows(err) {
			return time.Time{}, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return time.Time{}, infra.WrapRepoErr("failed to shift booking start date", err)
	}

	return newDate, nil
}

func marshalItems(items []booking.LineItem) ([]byte, error) {
	records := make([]itemRecord, len(items))
	for i, item := range items {
		records[i] = itemRecord{
			Name:       item.Name,
			Quantity:   item.Quantity,
			PriceCents: item.Price.Cents(),
		}
	}
	return json.Marshal(records)
}

func unmarshalItems(raw []byte) ([]booking.LineItem, error) {
	var records []itemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	items := make([]booking.LineItem, len(records))
	for i, rec := range records {
		items[i] = booking.LineItem{
			Name:     rec.Name,
			Quantity: rec.Quantity,
			Price:    booking.NewMoney(rec.PriceCents),
		}
	}
	return items, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
