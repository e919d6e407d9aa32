package dto

type ReviewRequest struct {
	ProductID string `json:"product_id"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt int64  `json:"created_at"`
}
