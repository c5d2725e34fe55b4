package repository

import (
	"context"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VetRecord struct {
	Name        string
	Practice    *string
	Phone       *string
	AddressLine *string
}

type VetRepository struct{}

func NewVetRepository() *VetRepository {
	return &VetRepository{}
}

func (r *VetRepository) Create(ctx context.Context, tx db.DBTX, rec VetRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO vets (name, practice, phone, address_line)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		rec.Name, pgconv.StringPtrToPgtype(rec.Practice),
		pgconv.StringPtrToPgtype(rec.Phone), pgconv.StringPtrToPgtype(rec.AddressLine),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create vet", err)
	}
	return id, nil
}

func (r *VetRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec VetRecord) error {
	tag, err := tx.Exec(ctx, `
		UPDATE vets
		SET name = $2, practice = $3, phone = $4, address_line = $5, updated_at = now()
		WHERE id = $1`,
		id, rec.Name, pgconv.StringPtrToPgtype(rec.Practice),
		pgconv.StringPtrToPgtype(rec.Phone), pgconv.StringPtrToPgtype(rec.AddressLine))
	if err != nil {
		return infra.WrapRepoErr("failed to update vet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vet not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VetRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM vets WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete vet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vet not found", nil, infra.KindNotFound)
	}
	return nil
}
