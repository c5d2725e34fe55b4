package response

import (
	"time"

	"pawbook/internal/pkg/money"
	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ExpenseResponse struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Date         string    `json:"date"`
	Description  string    `json:"description"`
	AmountPence  int64     `json:"amountPence"`
	Amount       string    `json:"amount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ExpenseCategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromExpenseView(view *queries.ExpenseView) *ExpenseResponse {
	var resp ExpenseResponse
	_ = copier.Copy(&resp, view)
	resp.Date = view.Date.Format("2006-01-02")
	resp.Amount = money.Format(view.AmountPence)
	return &resp
}

func FromExpenseViews(views []*queries.ExpenseView) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(views))
	for i, v := range views {
		result[i] = FromExpenseView(v)
	}
	return result
}

func FromExpenseCategoryView(view *queries.ExpenseCategoryView) *ExpenseCategoryResponse {
	var resp ExpenseCategoryResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromExpenseCategoryViews(views []*queries.ExpenseCategoryView) []*ExpenseCategoryResponse {
	result := make([]*ExpenseCategoryResponse, len(views))
	for i, v := range views {
		result[i] = FromExpenseCategoryView(v)
	}
	return result
}
