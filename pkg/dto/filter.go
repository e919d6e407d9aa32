package dto

type Filter struct {
	Page          uint64 `query:"page"`
	Limit         uint64 `query:"limit"`
	Category      string `query:"category"`
	PaymentStatus string `query:"payment_status"`
}

type PaginationMetadata struct {
	TotalCount uint64 `json:"total_count"`
	Page       uint64 `json:"page"`
	Limit      int    `json:"limit"`
}

type PaginationResponse struct {
	Metadata PaginationMetadata `json:"_metadata"`
	Records  interface{}        `json:"records"`
}
