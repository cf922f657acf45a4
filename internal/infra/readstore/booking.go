package readstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `
	id, kind, resource, start_date, start_time, end_time,
	items, subtotal_cents, estimated_total_cents, payment_status,
	customer_name, customer_email, customer_phone,
	calendar_event_id, created_at`

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT`+bookingColumns+` FROM bookings WHERE id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

func (r *BookingReadStore) ListByKind(ctx context.Context, kind booking.Kind) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+bookingColumns+` FROM bookings WHERE kind = $1 ORDER BY created_at DESC`,
		kind.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, scanErr := scanBookingView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}

	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view            queries.BookingView
		startDate       time.Time
		itemsRaw        []byte
		calendarEventID pgtype.Text
	)
	err := row.Scan(
		&view.ID, &view.Kind, &view.Resource, &startDate, &view.StartTime, &view.EndTime,
		&itemsRaw, &view.SubtotalCents, &view.EstimatedTotalCents, &view.PaymentStatus,
		&view.CustomerName, &view.CustomerEmail, &view.CustomerPhone,
		&calendarEventID, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(itemsRaw)
	if err != nil {
		return nil, err
	}

	view.StartDate = startDate
	view.Items = items
	if calendarEventID.Valid {
		view.CalendarEventID = &calendarEventID.String
	}

	return &view, nil
}

func decodeItems(raw []byte) ([]queries.LineItemView, error) {
	var records []struct {
		Name       string `json:"name"`
		Quantity   int32  `json:"quantity"`
		PriceCents int64  `json:"priceCents"`
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	items := make([]queries.LineItemView, len(records))
	for i, rec := range records {
		items[i] = queries.LineItemView{
			Name:       rec.Name,
			Quantity:   rec.Quantity,
			PriceCents: rec.PriceCents,
		}
	}
	return items, nil
}
