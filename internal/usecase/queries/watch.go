package queries

import (
	"context"
	"time"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type WatchRow struct {
	ChannelID  uuid.UUID
	ResourceID string
	Expiration time.Time
	CreatedAt  time.Time
}

type WatchReadStore interface {
	FindLatest(ctx context.Context) (*WatchRow, error)
}

type WatchQueries interface {
	// Status reports whether a calendar push channel is currently registered
	// and unexpired.
	Status(ctx context.Context) (*WatchStatusView, error)
}

type watchQueriesImpl struct {
	store WatchReadStore
	clock clock.Clock
}

func NewWatchQueries(store WatchReadStore, clock clock.Clock) WatchQueries {
	return &watchQueriesImpl{store: store, clock: clock}
}

func (q *watchQueriesImpl) Status(ctx context.Context) (*WatchStatusView, error) {
	row, err := q.store.FindLatest(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &WatchStatusView{Active: false}, nil
		}
		return nil, err
	}

	return &WatchStatusView{
		Active:     row.Expiration.After(q.clock.Now()),
		ChannelID:  &row.ChannelID,
		Expiration: &row.Expiration,
	}, nil
}
