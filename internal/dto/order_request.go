package dto

type OrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

type ShippingAddressRequest struct {
	FullName    string `json:"full_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	PhoneNumber string `json:"phone_number"`
}

type OrderRequest struct {
	UserID          string                 `json:"-"`
	OrderItems      []OrderItemRequest     `json:"order_items"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
	TotalPrice      float64                `json:"total_price"`
}

type OrderStatusRequest struct {
	PaymentStatus  string `json:"payment_status"`
	ShippingStatus string `json:"shipping_status"`
}
