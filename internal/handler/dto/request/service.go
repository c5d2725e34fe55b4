package request

type CreateServiceRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	PricePence int64  `json:"price_pence" binding:"min=0"`
}

type UpdateServiceRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,max=100"`
	PricePence *int64  `json:"price_pence,omitempty" binding:"omitempty,min=0"`
	Active     *bool   `json:"active,omitempty"`
}
