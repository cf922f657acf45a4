//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/usecase/queries"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWatchQueriesStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	newQueries := func(t *testing.T) (*queriesmock.MockWatchReadStore, *clock.MockClock, queries.WatchQueries) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockWatchReadStore(ctrl)
		mockClock := clock.NewMockClock(now)
		return store, mockClock, queries.NewWatchQueries(store, mockClock)
	}

	t.Run("unexpired registration is active", func(t *testing.T) {
		store, _, q := newQueries(t)
		row := &queries.WatchRow{
			ChannelID:  uuid.New(),
			ResourceID: "res_abc",
			Expiration: now.Add(24 * time.Hour),
			CreatedAt:  now.Add(-time.Hour),
		}
		store.EXPECT().FindLatest(gomock.Any()).Return(row, nil)

		view, err := q.Status(ctx)
		require.NoError(t, err)
		assert.True(t, view.Active)
		assert.Equal(t, row.ChannelID, *view.ChannelID)
	})

	t.Run("expired registration is inactive but still reported", func(t *testing.T) {
		store, mockClock, q := newQueries(t)
		row := &queries.WatchRow{
			ChannelID:  uuid.New(),
			ResourceID: "res_abc",
			Expiration: now.Add(24 * time.Hour),
			CreatedAt:  now.Add(-time.Hour),
		}
		mockClock.Add(48 * time.Hour)
		store.EXPECT().FindLatest(gomock.Any()).Return(row, nil)

		view, err := q.Status(ctx)
		require.NoError(t, err)
		assert.False(t, view.Active)
		assert.NotNil(t, view.Expiration)
	})

	t.Run("no registration yields inactive status, not an error", func(t *testing.T) {
		store, _, q := newQueries(t)
		store.EXPECT().FindLatest(gomock.Any()).
			Return(nil, infra.WrapRepoErr("no rows", context.Canceled, infra.KindNotFound))

		view, err := q.Status(ctx)
		require.NoError(t, err)
		assert.False(t, view.Active)
		assert.Nil(t, view.ChannelID)
	})
}
