package response

import (
	"pawbook/internal/pkg/money"
	"pawbook/internal/usecase/queries"
)

type CategoryTotalResponse struct {
	CategoryName string `json:"categoryName"`
	AmountPence  int64  `json:"amountPence"`
	Amount       string `json:"amount"`
}

type MonthlyIncomeResponse struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	AmountPence int64  `json:"amountPence"`
	Amount      string `json:"amount"`
}

type IncomeStatementResponse struct {
	From             string                  `json:"from"`
	To               string                  `json:"to"`
	IncomePence      int64                   `json:"incomePence"`
	Income           string                  `json:"income"`
	ExpensePence     int64                   `json:"expensePence"`
	Expense          string                  `json:"expense"`
	NetPence         int64                   `json:"netPence"`
	Net              string                  `json:"net"`
	ExpenseBreakdown []CategoryTotalResponse `json:"expenseBreakdown"`
	IncomeByMonth    []MonthlyIncomeResponse `json:"incomeByMonth"`
}

func FromIncomeStatement(stmt *queries.IncomeStatement) *IncomeStatementResponse {
	breakdown := make([]CategoryTotalResponse, len(stmt.ExpenseBreakdown))
	for i, c := range stmt.ExpenseBreakdown {
		breakdown[i] = CategoryTotalResponse{
			CategoryName: c.CategoryName,
			AmountPence:  c.AmountPence,
			Amount:       money.Format(c.AmountPence),
		}
	}

	byMonth := make([]MonthlyIncomeResponse, len(stmt.IncomeByMonth))
	for i, m := range stmt.IncomeByMonth {
		byMonth[i] = MonthlyIncomeResponse{
			Year:        m.Year,
			Month:       m.Month,
			AmountPence: m.AmountPence,
			Amount:      money.Format(m.AmountPence),
		}
	}

	return &IncomeStatementResponse{
		From:             stmt.From.Format("2006-01-02"),
		To:               stmt.To.Format("2006-01-02"),
		IncomePence:      stmt.IncomePence,
		Income:           money.Format(stmt.IncomePence),
		ExpensePence:     stmt.ExpensePence,
		Expense:          money.Format(stmt.ExpensePence),
		NetPence:         stmt.NetPence,
		Net:              money.Format(stmt.NetPence),
		ExpenseBreakdown: breakdown,
		IncomeByMonth:    byMonth,
	}
}
