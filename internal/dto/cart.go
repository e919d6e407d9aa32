package dto

import "github.com/AsadUllahBilal/TechThrive/internal/domain"

// CartItemRequest carries the product snapshot captured at add-to-cart time.
type CartItemRequest struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Brand       string  `json:"brand"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type CheckoutSelectionRequest struct {
	ProductIDs []string `json:"product_ids"`
}

type CartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}
