package dto

type ProductRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int64    `json:"stock"`
	CategoryID  string   `json:"category_id"`
	Brand       string   `json:"brand"`
	Images      []string `json:"images"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
