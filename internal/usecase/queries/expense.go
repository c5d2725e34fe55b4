package queries

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrExpenseNotFound         = errs.New("expense not found")
	ErrExpenseCategoryNotFound = errs.New("expense category not found")
)

type ExpenseView struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	AmountPence  int64     `json:"amount_pence"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ExpenseCategoryView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ExpenseFilters struct {
	CategoryID *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
}

type ExpenseReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExpenseView, error)
	List(ctx context.Context, filters ExpenseFilters) ([]*ExpenseView, error)
	ListCategories(ctx context.Context) ([]*ExpenseCategoryView, error)
}

type ExpenseQueries interface {
	GetExpense(ctx context.Context, id uuid.UUID) (*ExpenseView, error)
	ListExpenses(ctx context.Context, filters ExpenseFilters) ([]*ExpenseView, error)
	ListCategories(ctx context.Context) ([]*ExpenseCategoryView, error)
}

type expenseQueriesImpl struct {
	readStore ExpenseReadStore
}

func NewExpenseQueries(readStore ExpenseReadStore) ExpenseQueries {
	return &expenseQueriesImpl{readStore: readStore}
}

func (q *expenseQueriesImpl) GetExpense(ctx context.Context, id uuid.UUID) (*ExpenseView, error) {
	exp, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return exp, nil
}

func (q *expenseQueriesImpl) ListExpenses(ctx context.Context, filters ExpenseFilters) ([]*ExpenseView, error) {
	return q.readStore.List(ctx, filters)
}

func (q *expenseQueriesImpl) ListCategories(ctx context.Context) ([]*ExpenseCategoryView, error) {
	return q.readStore.ListCategories(ctx)
}
