package readstore

import (
	"context"
	"errors"

	"studio-booking/internal/infra"
	"studio-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type WatchReadStore struct {
	db infra.DBTX
}

func NewWatchReadStore(db infra.DBTX) *WatchReadStore {
	return &WatchReadStore{db: db}
}

func (r *WatchReadStore) FindLatest(ctx context.Context) (*queries.WatchRow, error) {
	const q = `
		SELECT channel_id, resource_id, expiration, created_at
		FROM calendar_watches
		ORDER BY created_at DESC
		LIMIT 1`

	var row queries.WatchRow
	err := r.db.QueryRow(ctx, q).Scan(&row.ChannelID, &row.ResourceID, &row.Expiration, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no watch registration", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find watch registration", err)
	}

	return &row, nil
}
