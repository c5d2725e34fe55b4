package readstore

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/pgconv"
	"pawbook/internal/usecase/queries"
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(db db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: db}
}

// InvoicedIncome sums invoice totals issued inside the range, plus a per
// month breakdown.
func (r *ReportReadStore) InvoicedIncome(ctx context.Context, from, to time.Time) (int64, []queries.MonthlyIncomeTotal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT EXTRACT(YEAR FROM date_issued)::int, EXTRACT(MONTH FROM date_issued)::int,
		       COALESCE(SUM(total_pence), 0)
		FROM invoices
		WHERE date_issued >= $1 AND date_issued <= $2
		GROUP BY 1, 2
		ORDER BY 1, 2`,
		pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return 0, nil, infra.WrapRepoErr("failed to aggregate invoiced income", err)
	}
	defer rows.Close()

	var total int64
	var byMonth []queries.MonthlyIncomeTotal
	for rows.Next() {
		var m queries.MonthlyIncomeTotal
		if err := rows.Scan(&m.Year, &m.Month, &m.AmountPence); err != nil {
			return 0, nil, infra.WrapRepoErr("failed to scan income row", err)
		}
		total += m.AmountPence
		byMonth = append(byMonth, m)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, infra.WrapRepoErr("failed to read income rows", err)
	}
	return total, byMonth, nil
}

func (r *ReportReadStore) ExpenseTotals(ctx context.Context, from, to time.Time) (int64, []queries.CategoryTotal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ec.name, COALESCE(SUM(e.amount_pence), 0)
		FROM expenses e
		JOIN expense_categories ec ON ec.id = e.category_id
		WHERE e.date >= $1 AND e.date <= $2
		GROUP BY ec.name
		ORDER BY ec.name`,
		pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return 0, nil, infra.WrapRepoErr("failed to aggregate expenses", err)
	}
	defer rows.Close()

	var total int64
	var byCategory []queries.CategoryTotal
	for rows.Next() {
		var c queries.CategoryTotal
		if err := rows.Scan(&c.CategoryName, &c.AmountPence); err != nil {
			return 0, nil, infra.WrapRepoErr("failed to scan expense total row", err)
		}
		total += c.AmountPence
		byCategory = append(byCategory, c)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, infra.WrapRepoErr("failed to read expense total rows", err)
	}
	return total, byCategory, nil
}
