//go:build unit

package queries_test

import (
	"context"
	"testing"

	"studio-booking/internal/usecase/queries"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentQueriesSessionKind(t *testing.T) {
	ctx := context.Background()

	t.Run("returns recorded booking type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := queriesmock.NewMockSessionTypeReader(ctrl)
		q := queries.NewPaymentQueries(sessions)

		sessions.EXPECT().GetSessionType(gomock.Any(), "cs_test_123").Return("service", nil)

		kind, err := q.SessionKind(ctx, "cs_test_123")
		require.NoError(t, err)
		assert.Equal(t, "service", kind)
	})

	t.Run("empty metadata is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := queriesmock.NewMockSessionTypeReader(ctrl)
		q := queries.NewPaymentQueries(sessions)

		sessions.EXPECT().GetSessionType(gomock.Any(), "cs_test_123").Return("", nil)

		kind, err := q.SessionKind(ctx, "cs_test_123")
		require.ErrorIs(t, err, queries.ErrMissingSessionType)
		assert.Empty(t, kind)
	})

	t.Run("lookup failure is marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := queriesmock.NewMockSessionTypeReader(ctrl)
		q := queries.NewPaymentQueries(sessions)

		sessions.EXPECT().GetSessionType(gomock.Any(), "cs_test_123").Return("", context.DeadlineExceeded)

		_, err := q.SessionKind(ctx, "cs_test_123")
		require.ErrorIs(t, err, queries.ErrSessionLookupFailed)
	})
}
