package repository

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DogRecord struct {
	CustomerID  uuid.UUID
	VetID       *uuid.UUID
	Name        string
	Breed       *string
	DateOfBirth *time.Time
	Notes       *string
	Active      bool
}

type DogRepository struct{}

func NewDogRepository() *DogRepository {
	return &DogRepository{}
}

func (r *DogRepository) Create(ctx context.Context, tx db.DBTX, rec DogRecord, createdBy uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO dogs (customer_id, vet_id, name, breed, date_of_birth, notes, active, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id`,
		rec.CustomerID, pgconv.UUIDPtrToPgtype(rec.VetID), rec.Name,
		pgconv.StringPtrToPgtype(rec.Breed), pgconv.DatePtrToPgtype(rec.DateOfBirth),
		pgconv.StringPtrToPgtype(rec.Notes), rec.Active, createdBy,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create dog", err)
	}
	return id, nil
}

func (r *DogRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec DogRecord, updatedBy uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE dogs
		SET customer_id = $2, vet_id = $3, name = $4, breed = $5, date_of_birth = $6,
		    notes = $7, active = $8, updated_by = $9, updated_at = now()
		WHERE id = $1`,
		id, rec.CustomerID, pgconv.UUIDPtrToPgtype(rec.VetID), rec.Name,
		pgconv.StringPtrToPgtype(rec.Breed), pgconv.DatePtrToPgtype(rec.DateOfBirth),
		pgconv.StringPtrToPgtype(rec.Notes), rec.Active, updatedBy)
	if err != nil {
		return infra.WrapRepoErr("failed to update dog", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("dog not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DogRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete dog", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("dog not found", nil, infra.KindNotFound)
	}
	return nil
}
