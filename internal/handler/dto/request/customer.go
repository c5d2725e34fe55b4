package request

type CreateCustomerRequest struct {
	FirstName        string  `json:"first_name" binding:"required,max=100"`
	LastName         string  `json:"last_name" binding:"required,max=100"`
	Email            *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone            *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	AddressLine      *string `json:"address_line,omitempty" binding:"omitempty,max=255"`
	Postcode         *string `json:"postcode,omitempty" binding:"omitempty,max=12"`
	EmergencyContact *string `json:"emergency_contact,omitempty" binding:"omitempty,max=100"`
	EmergencyPhone   *string `json:"emergency_phone,omitempty" binding:"omitempty,max=30"`
}

// UpdateCustomerRequest applies only the fields present in the payload.
type UpdateCustomerRequest struct {
	FirstName        *string `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName         *string `json:"last_name,omitempty" binding:"omitempty,max=100"`
	Email            *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone            *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	AddressLine      *string `json:"address_line,omitempty" binding:"omitempty,max=255"`
	Postcode         *string `json:"postcode,omitempty" binding:"omitempty,max=12"`
	EmergencyContact *string `json:"emergency_contact,omitempty" binding:"omitempty,max=100"`
	EmergencyPhone   *string `json:"emergency_phone,omitempty" binding:"omitempty,max=30"`
	Active           *bool   `json:"active,omitempty"`
}
