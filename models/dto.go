package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CheckoutItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty" binding:"required,min=1"`
}

type CheckoutRequest struct {
	Items           []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingAddress ShippingAddress       `json:"shipping_address"`
}

type CheckoutResponse struct {
	OrderID   string `json:"order_id"`
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type CreateProductRequest struct {
	Title       string   `json:"title" binding:"required,min=3"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Brand       string   `json:"brand" binding:"required"`
	PriceINR    int      `json:"price_inr" binding:"required,min=1"`
	Stock       int      `json:"stock" binding:"min=0"`
	Images      []string `json:"images"`
}

type UpdateProductRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	PriceINR    int      `json:"price_inr"`
	Stock       *int     `json:"stock"`
	Images      []string `json:"images"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RefundRequest struct {
	AmountINR int    `json:"amount_inr" binding:"required"`
	Reason    string `json:"reason"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}
