//go:build unit

package pdf

import (
	"bytes"
	"testing"
	"time"

	"pawbook/internal/pkg/config"
	"pawbook/internal/usecase/queries"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoice(lineCount int) *queries.InvoiceView {
	inv := &queries.InvoiceView{
		ID:            uuid.New(),
		Reference:     "W4LKIES-0A1B2C3D",
		CustomerID:    uuid.New(),
		CustomerName:  "Jane Smith",
		PeriodStart:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:     time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		DateIssued:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		DateDue:       time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
		SubtotalPence: int64(lineCount) * 2500,
		TotalPence:    int64(lineCount) * 2500,
	}
	for i := 0; i < lineCount; i++ {
		inv.Lines = append(inv.Lines, queries.InvoiceLineView{
			BookingID:   uuid.New(),
			Date:        inv.PeriodStart.AddDate(0, 0, i),
			TimeOfDay:   "10:00",
			ServiceName: "Dog Walk",
			PricePence:  2500,
		})
	}
	return inv
}

func TestChunkLines(t *testing.T) {
	lines := testInvoice(22).Lines

	t.Run("exactly one page at the row limit", func(t *testing.T) {
		chunks := chunkLines(lines[:21], 21)
		require.Len(t, chunks, 1)
		assert.Len(t, chunks[0], 21)
	})

	t.Run("one extra row spills to a second page", func(t *testing.T) {
		chunks := chunkLines(lines, 21)
		require.Len(t, chunks, 2)
		assert.Len(t, chunks[0], 21)
		assert.Len(t, chunks[1], 1)
	})

	t.Run("no rows still produce a single page", func(t *testing.T) {
		chunks := chunkLines(nil, 21)
		require.Len(t, chunks, 1)
		assert.Empty(t, chunks[0])
	})
}

func TestRendererFilename(t *testing.T) {
	// Named after the issue date, not the billing period.
	r := NewRenderer(config.NewTestConfig().Invoice)
	assert.Equal(t, "Jane Smith 2026 April.pdf", r.Filename(testInvoice(1)))
}

func TestRendererRender(t *testing.T) {
	r := NewRenderer(config.NewTestConfig().Invoice)

	t.Run("produces a PDF document", func(t *testing.T) {
		out, err := r.Render(testInvoice(3))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	})

	t.Run("zero-line invoice renders", func(t *testing.T) {
		out, err := r.Render(testInvoice(0))
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("22 rows render a two page document", func(t *testing.T) {
		out, err := r.Render(testInvoice(22))
		require.NoError(t, err)
		assert.True(t, bytes.Contains(out, []byte("/Count 2")))
	})

	t.Run("a full final page moves the totals to a continuation page", func(t *testing.T) {
		out, err := r.Render(testInvoice(21))
		require.NoError(t, err)
		assert.True(t, bytes.Contains(out, []byte("/Count 2")))
	})

	t.Run("a short invoice keeps the totals on its only page", func(t *testing.T) {
		out, err := r.Render(testInvoice(3))
		require.NoError(t, err)
		assert.True(t, bytes.Contains(out, []byte("/Count 1")))
	})
}

func footerHeight(r *Renderer) float64 {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetAutoPageBreak(false, 10)
	doc.AddPage()
	start := doc.GetY()
	r.writeFooter(doc)
	return doc.GetY() - start
}

func TestWriteFooterPaymentBlocks(t *testing.T) {
	cfg := config.NewTestConfig().Invoice
	cfg.PayPalNote = "request an invoice"
	cfg.BitcoinAddress = "pay@w4lkies.com"
	cfg.AcceptsCash = true
	withAlternates := footerHeight(NewRenderer(cfg))

	cfg.PayPalNote = ""
	cfg.BitcoinAddress = ""
	cfg.AcceptsCash = false
	bankOnly := footerHeight(NewRenderer(cfg))

	// Section title plus one line per configured method.
	assert.InDelta(t, 6+5+3*5, withAlternates-bankOnly, 0.01)
}
