package repository

import (
	"context"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerRecord struct {
	FirstName        string
	LastName         string
	Email            *string
	Phone            *string
	AddressLine      *string
	Postcode         *string
	EmergencyContact *string
	EmergencyPhone   *string
	Active           bool
}

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(ctx context.Context, tx db.DBTX, rec CustomerRecord, createdBy uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO customers (first_name, last_name, email, phone, address_line, postcode,
		                       emergency_contact, emergency_phone, active, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id`,
		rec.FirstName, rec.LastName,
		pgconv.StringPtrToPgtype(rec.Email), pgconv.StringPtrToPgtype(rec.Phone),
		pgconv.StringPtrToPgtype(rec.AddressLine), pgconv.StringPtrToPgtype(rec.Postcode),
		pgconv.StringPtrToPgtype(rec.EmergencyContact), pgconv.StringPtrToPgtype(rec.EmergencyPhone),
		rec.Active, createdBy,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec CustomerRecord, updatedBy uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE customers
		SET first_name = $2, last_name = $3, email = $4, phone = $5, address_line = $6,
		    postcode = $7, emergency_contact = $8, emergency_phone = $9, active = $10,
		    updated_by = $11, updated_at = now()
		WHERE id = $1`,
		id, rec.FirstName, rec.LastName,
		pgconv.StringPtrToPgtype(rec.Email), pgconv.StringPtrToPgtype(rec.Phone),
		pgconv.StringPtrToPgtype(rec.AddressLine), pgconv.StringPtrToPgtype(rec.Postcode),
		pgconv.StringPtrToPgtype(rec.EmergencyContact), pgconv.StringPtrToPgtype(rec.EmergencyPhone),
		rec.Active, updatedBy)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
