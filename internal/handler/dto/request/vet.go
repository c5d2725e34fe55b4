package request

type CreateVetRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Practice    *string `json:"practice,omitempty" binding:"omitempty,max=100"`
	Phone       *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	AddressLine *string `json:"address_line,omitempty" binding:"omitempty,max=255"`
}

type UpdateVetRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Practice    *string `json:"practice,omitempty" binding:"omitempty,max=100"`
	Phone       *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	AddressLine *string `json:"address_line,omitempty" binding:"omitempty,max=255"`
}
