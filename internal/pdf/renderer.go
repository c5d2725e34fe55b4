// Package pdf renders invoices into printable letter-size documents.
package pdf

import (
	"bytes"
	"fmt"
	"os"

	"pawbook/internal/pkg/config"
	"pawbook/internal/pkg/errs"
	"pawbook/internal/pkg/money"
	"pawbook/internal/usecase/queries"

	"github.com/go-pdf/fpdf"
)

var ErrRender = errs.New("failed to render invoice document")

const (
	rowHeight    = 8.0
	tableDateW   = 45.0
	tableTimeW   = 30.0
	tableSvcW    = 75.0
	tablePriceW  = 40.0
	rendererFont = "Helvetica"

	// totalsBreakY is the lowest point the table may end at and still
	// leave room for the totals and payment blocks on a letter page.
	totalsBreakY = 170.0
)

type Renderer struct {
	cfg config.InvoiceConfig
}

func NewRenderer(cfg config.InvoiceConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// Filename derives the download name from the customer and the issue date,
// e.g. "Jane Smith 2026 March.pdf".
func (r *Renderer) Filename(inv *queries.InvoiceView) string {
	return fmt.Sprintf("%s %d %s.pdf", inv.CustomerName, inv.DateIssued.Year(), inv.DateIssued.Month().String())
}

// Render lays the invoice out page by page. Long invoices repeat the header
// and table heading on every page; the totals and payment details appear
// once, after the final row chunk, moving to a continuation page when that
// chunk leaves no room for them.
func (r *Renderer) Render(inv *queries.InvoiceView) ([]byte, error) {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetAutoPageBreak(false, 10)

	chunks := chunkLines(inv.Lines, r.cfg.PDFRowsPerPage)
	for i, chunk := range chunks {
		doc.AddPage()
		r.writeHeader(doc, inv)
		r.writeTable(doc, chunk)

		if i == len(chunks)-1 {
			if doc.GetY() > totalsBreakY {
				doc.AddPage()
				r.writeHeader(doc, inv)
			}
			r.writeTotals(doc, inv)
			r.writeFooter(doc)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errs.Mark(err, ErrRender)
	}
	return buf.Bytes(), nil
}

// chunkLines splits rows into page-sized groups. A zero-line invoice still
// produces one page so the totals have somewhere to live.
func chunkLines(lines []queries.InvoiceLineView, perPage int) [][]queries.InvoiceLineView {
	if len(lines) == 0 {
		return [][]queries.InvoiceLineView{nil}
	}
	var chunks [][]queries.InvoiceLineView
	for start := 0; start < len(lines); start += perPage {
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, lines[start:end])
	}
	return chunks
}

func (r *Renderer) writeHeader(doc *fpdf.Fpdf, inv *queries.InvoiceView) {
	if r.cfg.LogoPath != "" {
		if _, err := os.Stat(r.cfg.LogoPath); err == nil {
			doc.ImageOptions(r.cfg.LogoPath, 160, 10, 35, 0, false, fpdf.ImageOptions{}, 0, "")
		}
	}

	doc.SetFont(rendererFont, "B", 20)
	doc.SetXY(10, 12)
	doc.CellFormat(0, 10, r.cfg.CompanyName, "", 1, "L", false, 0, "")

	doc.SetFont(rendererFont, "", 10)
	doc.CellFormat(0, 5, r.cfg.CompanyURL, "", 1, "L", false, 0, "")
	doc.Ln(6)

	doc.SetFont(rendererFont, "B", 12)
	doc.CellFormat(0, 6, "Invoice "+inv.Reference, "", 1, "L", false, 0, "")

	doc.SetFont(rendererFont, "", 10)
	doc.CellFormat(0, 5, "Billed to: "+inv.CustomerName, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, fmt.Sprintf("Period: %s to %s",
		inv.PeriodStart.Format("02 Jan 2006"), inv.PeriodEnd.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, "Issued: "+inv.DateIssued.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, "Due: "+inv.DateDue.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, "Need help? "+r.cfg.SupportEmail, "", 1, "L", false, 0, "")
	doc.Ln(4)
}

func (r *Renderer) writeTable(doc *fpdf.Fpdf, lines []queries.InvoiceLineView) {
	doc.SetFont(rendererFont, "B", 10)
	doc.SetFillColor(235, 235, 235)
	doc.CellFormat(tableDateW, rowHeight, "Date", "1", 0, "L", true, 0, "")
	doc.CellFormat(tableTimeW, rowHeight, "Time", "1", 0, "L", true, 0, "")
	doc.CellFormat(tableSvcW, rowHeight, "Service", "1", 0, "L", true, 0, "")
	doc.CellFormat(tablePriceW, rowHeight, "Price", "1", 1, "R", true, 0, "")

	doc.SetFont(rendererFont, "", 10)
	for _, l := range lines {
		doc.CellFormat(tableDateW, rowHeight, l.Date.Format("Mon 02 Jan 2006"), "1", 0, "L", false, 0, "")
		doc.CellFormat(tableTimeW, rowHeight, l.TimeOfDay, "1", 0, "L", false, 0, "")
		doc.CellFormat(tableSvcW, rowHeight, l.ServiceName, "1", 0, "L", false, 0, "")
		doc.CellFormat(tablePriceW, rowHeight, r.amount(l.PricePence), "1", 1, "R", false, 0, "")
	}
}

func (r *Renderer) writeTotals(doc *fpdf.Fpdf, inv *queries.InvoiceView) {
	doc.Ln(4)
	labelW := tableDateW + tableTimeW + tableSvcW

	doc.SetFont(rendererFont, "", 10)
	doc.CellFormat(labelW, rowHeight, "Subtotal", "", 0, "R", false, 0, "")
	doc.CellFormat(tablePriceW, rowHeight, r.amount(inv.SubtotalPence), "", 1, "R", false, 0, "")

	if inv.DiscountPence > 0 {
		doc.CellFormat(labelW, rowHeight, "Discount", "", 0, "R", false, 0, "")
		doc.CellFormat(tablePriceW, rowHeight, "-"+r.amount(inv.DiscountPence), "", 1, "R", false, 0, "")
	}

	doc.SetFont(rendererFont, "B", 12)
	doc.CellFormat(labelW, rowHeight, "Total due", "", 0, "R", false, 0, "")
	doc.CellFormat(tablePriceW, rowHeight, r.amount(inv.TotalPence), "", 1, "R", false, 0, "")
}

func (r *Renderer) writeFooter(doc *fpdf.Fpdf) {
	doc.Ln(8)
	doc.SetFont(rendererFont, "B", 10)
	doc.CellFormat(0, 5, "Payment details", "", 1, "L", false, 0, "")

	doc.SetFont(rendererFont, "", 10)
	if r.cfg.BankAccountName != "" {
		doc.CellFormat(0, 5, "Account name: "+r.cfg.BankAccountName, "", 1, "L", false, 0, "")
	}
	if r.cfg.BankSortCode != "" {
		doc.CellFormat(0, 5, "Sort code: "+r.cfg.BankSortCode, "", 1, "L", false, 0, "")
	}
	if r.cfg.BankAccountNumber != "" {
		doc.CellFormat(0, 5, "Account number: "+r.cfg.BankAccountNumber, "", 1, "L", false, 0, "")
	}

	if r.cfg.PayPalNote != "" || r.cfg.BitcoinAddress != "" || r.cfg.AcceptsCash {
		doc.Ln(6)
		doc.SetFont(rendererFont, "B", 10)
		doc.CellFormat(0, 5, "Other payment methods", "", 1, "L", false, 0, "")

		doc.SetFont(rendererFont, "", 10)
		if r.cfg.PayPalNote != "" {
			doc.CellFormat(0, 5, "PayPal (debit/credit): "+r.cfg.PayPalNote, "", 1, "L", false, 0, "")
		}
		if r.cfg.BitcoinAddress != "" {
			doc.CellFormat(0, 5, "Bitcoin: request a Lightning invoice or send to "+r.cfg.BitcoinAddress, "", 1, "L", false, 0, "")
		}
		if r.cfg.AcceptsCash {
			doc.CellFormat(0, 5, "Cash: pay in person.", "", 1, "L", false, 0, "")
		}
	}

	doc.Ln(6)
	doc.SetFont(rendererFont, "I", 10)
	doc.CellFormat(0, 5, "Thank you for your business!", "", 1, "L", false, 0, "")
}

func (r *Renderer) amount(pence int64) string {
	return r.cfg.CurrencySymbol + money.Format(pence)
}
