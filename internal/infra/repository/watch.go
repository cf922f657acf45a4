package repository

import (
	"context"

	"studio-booking/internal/infra"
	"studio-booking/internal/usecase/commands"
)

type WatchRepository struct {
	db infra.DBTX
}

func NewWatchRepository(db infra.DBTX) *WatchRepository {
	return &WatchRepository{db: db}
}

// Replace supersedes any previous push-channel registration. Watch state is
// advisory; last writer wins.
func (r *WatchRepository) Replace(ctx context.Context, ch commands.WatchChannel) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM calendar_watches`); err != nil {
		return infra.WrapRepoErr("failed to clear previous watch registrations", err)
	}

	const q = `
		INSERT INTO calendar_watches (channel_id, resource_id, expiration)
		VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, q, ch.ChannelID, ch.ResourceID, ch.Expiration); err != nil {
		return infra.WrapRepoErr("failed to persist watch registration", err)
	}

	return nil
}
