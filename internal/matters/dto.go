package matters

type CreateMatterRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status" validate:"required,oneof=open in_progress closed"`
}

type UpdateMatterRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress closed"`
}

type ListMattersRequest struct {
	CustomerID *int64  `json:"customerId,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress closed"`
	Search     *string `json:"search,omitempty"`
	Limit      int     `json:"limit" validate:"gte=0,lte=1000"`
	Offset     int     `json:"offset" validate:"gte=0"`
}
