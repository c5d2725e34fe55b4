package repository

import (
	"context"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"

	"github.com/google/uuid"
)

type ServiceRecord struct {
	Name       string
	PricePence int64
	Active     bool
}

type ServiceRepository struct{}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

func (r *ServiceRepository) Create(ctx context.Context, tx db.DBTX, rec ServiceRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO services (name, price_pence, active)
		VALUES ($1, $2, $3)
		RETURNING id`,
		rec.Name, rec.PricePence, rec.Active,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec ServiceRecord) error {
	tag, err := tx.Exec(ctx, `
		UPDATE services
		SET name = $2, price_pence = $3, active = $4, updated_at = now()
		WHERE id = $1`,
		id, rec.Name, rec.PricePence, rec.Active)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
