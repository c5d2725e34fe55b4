package invoice

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"pawbook/internal/pkg/clock"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

var (
	ErrNegativeDiscount = errors.New("discount cannot be negative")
	ErrInvalidPeriod    = errors.New("period end before period start")
)

// Line is one billable booking as it appears on an invoice.
type Line struct {
	BookingID   uuid.UUID
	Date        time.Time
	TimeOfDay   string // "15:04"
	ServiceName string
	PricePence  int64
}

// Draft is the computed-but-not-yet-persisted invoice: reference, period,
// dates, totals and the matched booking lines.
type Draft struct {
	Reference     string
	CustomerID    uuid.UUID
	PeriodStart   time.Time
	PeriodEnd     time.Time
	DateIssued    time.Time
	DateDue       time.Time
	SubtotalPence int64
	DiscountPence int64
	TotalPence    int64
	Lines         []Line
}

// Reference derives the stable human-facing identifier from the customer and
// billing period. Regenerating for the same triple always yields the same
// reference, so customer-facing identifiers survive corrections.
func Reference(prefix string, customerID uuid.UUID, periodStart, periodEnd time.Time) string {
	seed := fmt.Sprintf("%s-%s-%s", customerID, periodStart.Format(DateLayout), periodEnd.Format(DateLayout))
	sum := sha256.Sum256([]byte(seed))
	return prefix + "-" + strings.ToUpper(hex.EncodeToString(sum[:]))[:8]
}

type Generator struct {
	clock     clock.Clock
	prefix    string
	dueInDays int
}

func NewGenerator(clock clock.Clock, prefix string, dueInDays int) *Generator {
	return &Generator{
		clock:     clock,
		prefix:    prefix,
		dueInDays: dueInDays,
	}
}

// BuildDraft aggregates the given booking lines into an invoice draft.
// An empty line list is valid and produces a zero-total statement. Lines
// are reordered chronologically whatever order they arrive in.
func (g *Generator) BuildDraft(customerID uuid.UUID, periodStart, periodEnd time.Time, lines []Line, discountPence int64) (Draft, error) {
	if periodEnd.Before(periodStart) {
		return Draft{}, ErrInvalidPeriod
	}
	if discountPence < 0 {
		return Draft{}, ErrNegativeDiscount
	}
	SortLinesChronological(lines)

	var subtotal int64
	for _, l := range lines {
		subtotal += l.PricePence
	}

	issued := g.clock.Now()
	return Draft{
		Reference:     Reference(g.prefix, customerID, periodStart, periodEnd),
		CustomerID:    customerID,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		DateIssued:    issued,
		DateDue:       issued.AddDate(0, 0, g.dueInDays),
		SubtotalPence: subtotal,
		DiscountPence: discountPence,
		TotalPence:    subtotal - discountPence,
		Lines:         lines,
	}, nil
}

// SortLinesChronological orders lines date ascending, time ascending, the
// order the rendered document uses. Listing endpoints keep their own
// most-recent-first order.
func SortLinesChronological(lines []Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].Date.Equal(lines[j].Date) {
			return lines[i].Date.Before(lines[j].Date)
		}
		return lines[i].TimeOfDay < lines[j].TimeOfDay
	})
}
