package readstore

import (
	"context"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/pgconv"
	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const expenseSelect = `
	SELECT e.id, e.category_id, ec.name, e.date, e.description, e.amount_pence,
	       e.created_at, e.updated_at
	FROM expenses e
	JOIN expense_categories ec ON ec.id = e.category_id`

type ExpenseReadStore struct {
	db db.DBTX
}

func NewExpenseReadStore(db db.DBTX) *ExpenseReadStore {
	return &ExpenseReadStore{db: db}
}

func (r *ExpenseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExpenseView, error) {
	row := r.db.QueryRow(ctx, expenseSelect+` WHERE e.id = $1`, id)

	view, err := scanExpense(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("expense not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find expense by ID", err)
	}
	return view, nil
}

func (r *ExpenseReadStore) List(ctx context.Context, filters queries.ExpenseFilters) ([]*queries.ExpenseView, error) {
	query := expenseSelect + ` WHERE 1=1`
	args := []any{}

	if filters.CategoryID != nil {
		args = append(args, *filters.CategoryID)
		query += ` AND e.category_id = $` + argn(len(args))
	}
	if filters.DateFrom != nil {
		args = append(args, pgconv.DateToPgtype(*filters.DateFrom))
		query += ` AND e.date >= $` + argn(len(args))
	}
	if filters.DateTo != nil {
		args = append(args, pgconv.DateToPgtype(*filters.DateTo))
		query += ` AND e.date <= $` + argn(len(args))
	}
	query += ` ORDER BY e.date DESC, e.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expenses", err)
	}
	defer rows.Close()

	var result []*queries.ExpenseView
	for rows.Next() {
		view, err := scanExpense(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan expense row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expense rows", err)
	}
	return result, nil
}

func (r *ExpenseReadStore) ListCategories(ctx context.Context) ([]*queries.ExpenseCategoryView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at FROM expense_categories ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expense categories", err)
	}
	defer rows.Close()

	var result []*queries.ExpenseCategoryView
	for rows.Next() {
		var v queries.ExpenseCategoryView
		var createdAt pgtype.Timestamptz

		if err := rows.Scan(&v.ID, &v.Name, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expense category row", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expense category rows", err)
	}
	return result, nil
}

func scanExpense(row rowScanner) (*queries.ExpenseView, error) {
	var v queries.ExpenseView
	var date pgtype.Date
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&v.ID, &v.CategoryID, &v.CategoryName, &date, &v.Description,
		&v.AmountPence, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	v.Date = pgconv.DateFromPgtype(date)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
