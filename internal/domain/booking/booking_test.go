//go:build unit

package booking_test

import (
	"testing"
	"time"

	"pawbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := booking.ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", got)

	_, err = booking.ParseTimeOfDay("9:30am")
	assert.ErrorIs(t, err, booking.ErrInvalidTimeOfDay)

	_, err = booking.ParseTimeOfDay("25:00")
	assert.ErrorIs(t, err, booking.ErrInvalidTimeOfDay)
}

func TestExpandSeries(t *testing.T) {
	first := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("zero weeks yields only the first date", func(t *testing.T) {
		dates, err := booking.ExpandSeries(first, 0)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{first}, dates)
	})

	t.Run("n weeks yields n+1 dates seven days apart", func(t *testing.T) {
		dates, err := booking.ExpandSeries(first, 3)
		require.NoError(t, err)
		require.Len(t, dates, 4)
		for i := 1; i < len(dates); i++ {
			assert.Equal(t, 7*24*time.Hour, dates[i].Sub(dates[i-1]))
		}
	})

	t.Run("out of range rejected", func(t *testing.T) {
		_, err := booking.ExpandSeries(first, -1)
		assert.ErrorIs(t, err, booking.ErrRepeatOutOfRange)

		_, err = booking.ExpandSeries(first, booking.MaxRepeatWeeks+1)
		assert.ErrorIs(t, err, booking.ErrRepeatOutOfRange)
	})
}
