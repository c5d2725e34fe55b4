package commands

import (
	"context"

	reqdto "pawbook/internal/handler/dto/request"
	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/infra/repository"
	"pawbook/internal/pkg/errs"
	"pawbook/internal/pkg/patch"
	"pawbook/internal/usecase/queries"
	"pawbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrExpenseNotFound          = errs.New("expense not found")
	ErrExpenseCategoryNotFound  = errs.New("expense category not found")
	ErrExpenseCategoryInUse     = errs.New("expense category has expenses")
	ErrDuplicateExpenseCategory = errs.New("expense category already exists")
)

type ExpenseRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec repository.ExpenseRecord, createdBy uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec repository.ExpenseRecord, updatedBy uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	CreateCategory(ctx context.Context, tx db.DBTX, name string) (uuid.UUID, error)
	DeleteCategory(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ExpenseCommands interface {
	CreateExpense(ctx context.Context, req reqdto.CreateExpenseRequest, actorID uuid.UUID) (*queries.ExpenseView, error)
	UpdateExpense(ctx context.Context, id uuid.UUID, req reqdto.UpdateExpenseRequest, actorID uuid.UUID) (*queries.ExpenseView, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	CreateCategory(ctx context.Context, req reqdto.CreateExpenseCategoryRequest) (uuid.UUID, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type expenseCommandsImpl struct {
	repo      ExpenseRepository
	readStore queries.ExpenseReadStore
	pool      *pgxpool.Pool
}

func NewExpenseCommands(repo ExpenseRepository, readStore queries.ExpenseReadStore, pool *pgxpool.Pool) ExpenseCommands {
	return &expenseCommandsImpl{
		repo:      repo,
		readStore: readStore,
		pool:      pool,
	}
}

func (c *expenseCommandsImpl) CreateExpense(ctx context.Context, req reqdto.CreateExpenseRequest, actorID uuid.UUID) (*queries.ExpenseView, error) {
	date, err := reqdto.ParseDate(req.Date)
	if err != nil {
		return nil, errs.Wrap(err, "invalid expense date")
	}

	rec := repository.ExpenseRecord{
		CategoryID:  req.CategoryID,
		Date:        date,
		Description: req.Description,
		AmountPence: req.AmountPence,
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return c.repo.Create(ctx, tx, rec, actorID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrExpenseCategoryNotFound
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *expenseCommandsImpl) UpdateExpense(ctx context.Context, id uuid.UUID, req reqdto.UpdateExpenseRequest, actorID uuid.UUID) (*queries.ExpenseView, error) {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}

	date := current.Date
	if req.Date != nil {
		date, err = reqdto.ParseDate(*req.Date)
		if err != nil {
			return nil, errs.Wrap(err, "invalid expense date")
		}
	}

	rec := repository.ExpenseRecord{
		CategoryID:  patch.Coalesce(req.CategoryID, current.CategoryID),
		Date:        date,
		Description: patch.Coalesce(req.Description, current.Description),
		AmountPence: patch.Coalesce(req.AmountPence, current.AmountPence),
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Update(ctx, tx, id, rec, actorID)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrExpenseNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrExpenseCategoryNotFound
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *expenseCommandsImpl) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrExpenseNotFound
		}
		return err
	}
	return nil
}

func (c *expenseCommandsImpl) CreateCategory(ctx context.Context, req reqdto.CreateExpenseCategoryRequest) (uuid.UUID, error) {
	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return c.repo.CreateCategory(ctx, tx, req.Name)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateExpenseCategory
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *expenseCommandsImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.DeleteCategory(ctx, tx, id)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrExpenseCategoryNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrExpenseCategoryInUse
		}
		return err
	}
	return nil
}
