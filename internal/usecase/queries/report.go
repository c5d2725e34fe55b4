package queries

import (
	"context"
	"time"
)

// IncomeStatement aggregates invoiced income against recorded expenses
// for a date range.
type IncomeStatement struct {
	From             time.Time            `json:"from"`
	To               time.Time            `json:"to"`
	IncomePence      int64                `json:"income_pence"`
	ExpensePence     int64                `json:"expense_pence"`
	NetPence         int64                `json:"net_pence"`
	ExpenseBreakdown []CategoryTotal      `json:"expense_breakdown"`
	IncomeByMonth    []MonthlyIncomeTotal `json:"income_by_month"`
}

type CategoryTotal struct {
	CategoryName string `json:"category_name"`
	AmountPence  int64  `json:"amount_pence"`
}

type MonthlyIncomeTotal struct {
	Year        int   `json:"year"`
	Month       int   `json:"month"`
	AmountPence int64 `json:"amount_pence"`
}

type ReportReadStore interface {
	InvoicedIncome(ctx context.Context, from, to time.Time) (int64, []MonthlyIncomeTotal, error)
	ExpenseTotals(ctx context.Context, from, to time.Time) (int64, []CategoryTotal, error)
}

type ReportQueries interface {
	IncomeStatement(ctx context.Context, from, to time.Time) (*IncomeStatement, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
}

func NewReportQueries(readStore ReportReadStore) ReportQueries {
	return &reportQueriesImpl{readStore: readStore}
}

func (q *reportQueriesImpl) IncomeStatement(ctx context.Context, from, to time.Time) (*IncomeStatement, error) {
	income, byMonth, err := q.readStore.InvoicedIncome(ctx, from, to)
	if err != nil {
		return nil, err
	}

	expenses, byCategory, err := q.readStore.ExpenseTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &IncomeStatement{
		From:             from,
		To:               to,
		IncomePence:      income,
		ExpensePence:     expenses,
		NetPence:         income - expenses,
		ExpenseBreakdown: byCategory,
		IncomeByMonth:    byMonth,
	}, nil
}
