package request

import (
	"github.com/google/uuid"
)

type CreateExpenseRequest struct {
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Date        string    `json:"date" binding:"required,datetime=2006-01-02"`
	Description string    `json:"description" binding:"required,max=255"`
	AmountPence int64     `json:"amount_pence" binding:"required,min=1"`
}

type UpdateExpenseRequest struct {
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Date        *string    `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=255"`
	AmountPence *int64     `json:"amount_pence,omitempty" binding:"omitempty,min=1"`
}

type CreateExpenseCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
