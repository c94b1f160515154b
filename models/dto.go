package models

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateOrderRequest struct {
	Size     string `json:"size" binding:"required"`
	Flavour  string `json:"flavour" binding:"required"`
	Quantity int    `json:"quantity"`
}

// UpdateOrderRequest is a partial update: nil fields are left unchanged.
type UpdateOrderRequest struct {
	Size     *string `json:"size"`
	Flavour  *string `json:"flavour"`
	Quantity *int    `json:"quantity"`
}

type UpdateStatusRequest struct {
	OrderStatus string `json:"order_status" binding:"required"`
}
