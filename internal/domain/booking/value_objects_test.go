//go:build unit

package booking_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("cents and dollars", func(t *testing.T) {
		m := booking.NewMoney(19900)
		assert.Equal(t, int64(19900), m.Cents())
		assert.InDelta(t, 199.0, m.Dollars(), 0.001)
	})

	t.Run("add and equals", func(t *testing.T) {
		a := booking.NewMoney(10000)
		b := booking.NewMoney(5000)
		assert.True(t, a.Add(b).Equals(booking.NewMoney(15000)))
		assert.False(t, a.Equals(b))
	})
}

func TestLineItemTotal(t *testing.T) {
	item := booking.LineItem{Name: "Session", Quantity: 3, Price: booking.NewMoney(2500)}
	assert.Equal(t, int64(7500), item.Total().Cents())
}

func TestRecomputeTotal(t *testing.T) {
	items := []booking.LineItem{
		{Name: "Session", Quantity: 2, Price: booking.NewMoney(10000)},
		{Name: "Engineer", Quantity: 1, Price: booking.NewMoney(5000)},
	}
	assert.Equal(t, int64(25000), booking.RecomputeTotal(items).Cents())
}

func TestValidateTotals(t *testing.T) {
	items := []booking.LineItem{
		{Name: "Session", Quantity: 2, Price: booking.NewMoney(10000)},
	}

	t.Run("exact match passes", func(t *testing.T) {
		err := booking.ValidateTotals(items, booking.NewMoney(20000), booking.NewMoney(20000))
		require.NoError(t, err)
	})

	t.Run("no tolerance for near misses", func(t *testing.T) {
		err := booking.ValidateTotals(items, booking.NewMoney(20000), booking.NewMoney(19900))
		require.ErrorIs(t, err, booking.ErrTotalMismatch)

		err = booking.ValidateTotals(items, booking.NewMoney(20001), booking.NewMoney(20000))
		require.ErrorIs(t, err, booking.ErrTotalMismatch)
	})
}

func TestNewEventWindow(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("winter date resolves with standard offset", func(t *testing.T) {
		date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

		w, err := booking.NewEventWindow(date, "11:00 AM", "1:00 PM", newYork)
		require.NoError(t, err)

		// EST is UTC-5
		assert.Equal(t, time.Date(2026, 1, 15, 16, 0, 0, 0, time.UTC), w.Start().UTC())
		assert.Equal(t, time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC), w.End().UTC())
		assert.Equal(t, 2*time.Hour, w.Duration())
	})

	t.Run("summer date resolves with daylight offset", func(t *testing.T) {
		date := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

		w, err := booking.NewEventWindow(date, "11:00 AM", "1:00 PM", newYork)
		require.NoError(t, err)

		// EDT is UTC-4
		assert.Equal(t, time.Date(2026, 7, 15, 15, 0, 0, 0, time.UTC), w.Start().UTC())
	})

	t.Run("calendar date is preserved across the zone conversion", func(t *testing.T) {
		// The historical bug: converting through a fixed UTC offset pushed
		// late-evening bookings onto the previous or next day.
		date := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)

		w, err := booking.NewEventWindow(date, "10:00 PM", "11:30 PM", newYork)
		require.NoError(t, err)

		assert.Equal(t, 5, w.Start().In(newYork).Day())
		assert.Equal(t, 22, w.Start().In(newYork).Hour())
	})

	t.Run("end before start rejected", func(t *testing.T) {
		date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

		_, err := booking.NewEventWindow(date, "1:00 PM", "11:00 AM", newYork)
		require.ErrorIs(t, err, booking.ErrInvalidWindow)
	})

	t.Run("equal start and end rejected", func(t *testing.T) {
		date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

		_, err := booking.NewEventWindow(date, "1:00 PM", "1:00 PM", newYork)
		require.ErrorIs(t, err, booking.ErrInvalidWindow)
	})

	t.Run("unparseable wall clock rejected", func(t *testing.T) {
		date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

		_, err := booking.NewEventWindow(date, "25:00", "1:00 PM", newYork)
		require.ErrorIs(t, err, booking.ErrInvalidWallClock)
	})
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, 3, 14, 17, 45, 12, 999, time.FixedZone("X", -3600))
	d := booking.DateOnly(ts)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), d)
}
