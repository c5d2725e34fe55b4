package repository

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ExpenseRecord struct {
	CategoryID  uuid.UUID
	Date        time.Time
	Description string
	AmountPence int64
}

type ExpenseRepository struct{}

func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{}
}

func (r *ExpenseRepository) Create(ctx context.Context, tx db.DBTX, rec ExpenseRecord, createdBy uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO expenses (category_id, date, description, amount_pence, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id`,
		rec.CategoryID, pgconv.DateToPgtype(rec.Date), rec.Description, rec.AmountPence, createdBy,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create expense", err)
	}
	return id, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec ExpenseRecord, updatedBy uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE expenses
		SET category_id = $2, date = $3, description = $4, amount_pence = $5,
		    updated_by = $6, updated_at = now()
		WHERE id = $1`,
		id, rec.CategoryID, pgconv.DateToPgtype(rec.Date), rec.Description, rec.AmountPence, updatedBy)
	if err != nil {
		return infra.WrapRepoErr("failed to update expense", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete expense", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ExpenseRepository) CreateCategory(ctx context.Context, tx db.DBTX, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `INSERT INTO expense_categories (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create expense category", err)
	}
	return id, nil
}

func (r *ExpenseRepository) DeleteCategory(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM expense_categories WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete expense category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("expense category not found", nil, infra.KindNotFound)
	}
	return nil
}
