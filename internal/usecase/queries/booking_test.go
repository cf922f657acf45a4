//go:build unit

package queries_test

import (
	"context"
	"testing"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/builder"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueriesGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		view := builder.NewBookingBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(ctx, view.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(view, got); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not found maps to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("no rows", context.Canceled, infra.KindNotFound))

		got, err := q.GetByID(ctx, id)
		require.Nil(t, got)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestBookingQueriesListByKind(t *testing.T) {
	ctx := context.Background()

	t.Run("passes kind through to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		views := []*queries.BookingView{
			builder.NewBookingBuilder().AsService().BuildView(),
		}
		store.EXPECT().ListByKind(gomock.Any(), booking.KindService).Return(views, nil)

		got, err := q.ListByKind(ctx, booking.KindService)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})
}
