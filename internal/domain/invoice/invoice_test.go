//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"pawbook/internal/domain/invoice"
	"pawbook/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse(invoice.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestReference(t *testing.T) {
	customerID := uuid.MustParse("3f1f9f2c-8c1a-4a9d-9c6b-1a2b3c4d5e6f")
	start := date("2026-03-01")
	end := date("2026-03-31")

	t.Run("deterministic for equal inputs", func(t *testing.T) {
		a := invoice.Reference("W4LKIES", customerID, start, end)
		b := invoice.Reference("W4LKIES", customerID, start, end)
		assert.Equal(t, a, b)
	})

	t.Run("prefix and shape", func(t *testing.T) {
		ref := invoice.Reference("W4LKIES", customerID, start, end)
		assert.Regexp(t, `^W4LKIES-[0-9A-F]{8}$`, ref)
	})

	t.Run("changes with any input", func(t *testing.T) {
		base := invoice.Reference("W4LKIES", customerID, start, end)
		assert.NotEqual(t, base, invoice.Reference("W4LKIES", uuid.New(), start, end))
		assert.NotEqual(t, base, invoice.Reference("W4LKIES", customerID, start.AddDate(0, 0, 1), end))
		assert.NotEqual(t, base, invoice.Reference("W4LKIES", customerID, start, end.AddDate(0, 0, 1)))
	})
}

func TestGeneratorBuildDraft(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	gen := invoice.NewGenerator(clock.NewMockClock(now), "W4LKIES", 7)
	customerID := uuid.New()
	start := date("2026-03-01")
	end := date("2026-03-31")

	line := func(price int64) invoice.Line {
		return invoice.Line{
			BookingID:   uuid.New(),
			Date:        date("2026-03-10"),
			TimeOfDay:   "10:00",
			ServiceName: "Dog Walk",
			PricePence:  price,
		}
	}

	t.Run("sums lines and applies discount", func(t *testing.T) {
		lines := []invoice.Line{line(2500), line(2500), line(2500)}
		draft, err := gen.BuildDraft(customerID, start, end, lines, 500)
		require.NoError(t, err)

		assert.Equal(t, int64(7500), draft.SubtotalPence)
		assert.Equal(t, int64(500), draft.DiscountPence)
		assert.Equal(t, int64(7000), draft.TotalPence)
		assert.Equal(t, draft.SubtotalPence-draft.DiscountPence, draft.TotalPence)
	})

	t.Run("issue and due dates come from the clock", func(t *testing.T) {
		draft, err := gen.BuildDraft(customerID, start, end, nil, 0)
		require.NoError(t, err)

		assert.Equal(t, now, draft.DateIssued)
		assert.Equal(t, now.AddDate(0, 0, 7), draft.DateDue)
	})

	t.Run("zero bookings produce a valid zero-total draft", func(t *testing.T) {
		draft, err := gen.BuildDraft(customerID, start, end, nil, 0)
		require.NoError(t, err)

		assert.Empty(t, draft.Lines)
		assert.Zero(t, draft.SubtotalPence)
		assert.Zero(t, draft.TotalPence)
		assert.NotEmpty(t, draft.Reference)
	})

	t.Run("out-of-order lines come back chronological", func(t *testing.T) {
		lines := []invoice.Line{
			{BookingID: uuid.New(), Date: date("2026-03-20"), TimeOfDay: "09:00", PricePence: 2500},
			{BookingID: uuid.New(), Date: date("2026-03-10"), TimeOfDay: "14:00", PricePence: 2500},
			{BookingID: uuid.New(), Date: date("2026-03-10"), TimeOfDay: "08:30", PricePence: 2500},
		}
		draft, err := gen.BuildDraft(customerID, start, end, lines, 0)
		require.NoError(t, err)

		assert.Equal(t, "08:30", draft.Lines[0].TimeOfDay)
		assert.Equal(t, "14:00", draft.Lines[1].TimeOfDay)
		assert.Equal(t, date("2026-03-20"), draft.Lines[2].Date)
	})

	t.Run("negative discount rejected", func(t *testing.T) {
		_, err := gen.BuildDraft(customerID, start, end, nil, -1)
		assert.ErrorIs(t, err, invoice.ErrNegativeDiscount)
	})

	t.Run("inverted period rejected", func(t *testing.T) {
		_, err := gen.BuildDraft(customerID, end, start, nil, 0)
		assert.ErrorIs(t, err, invoice.ErrInvalidPeriod)
	})
}

func TestSortLinesChronological(t *testing.T) {
	lines := []invoice.Line{
		{Date: date("2026-03-20"), TimeOfDay: "09:00"},
		{Date: date("2026-03-10"), TimeOfDay: "14:00"},
		{Date: date("2026-03-10"), TimeOfDay: "08:30"},
	}
	invoice.SortLinesChronological(lines)

	assert.Equal(t, "08:30", lines[0].TimeOfDay)
	assert.Equal(t, "14:00", lines[1].TimeOfDay)
	assert.Equal(t, date("2026-03-20"), lines[2].Date)
}
