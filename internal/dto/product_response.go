package dto

import "github.com/AsadUllahBilal/TechThrive/internal/domain"

// ProductResponse is a product with its category populated.
type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	Price         float64          `json:"price"`
	Stock         int64            `json:"stock"`
	Brand         string           `json:"brand,omitempty"`
	Images        []string         `json:"images"`
	AverageRating float64          `json:"average_rating"`
	TotalReviews  int64            `json:"total_reviews"`
	Category      *domain.Category `json:"category,omitempty"`
	CreatedAt     int64            `json:"created_at"`
}
