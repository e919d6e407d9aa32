package dto

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type OverviewResponse struct {
	TotalUsers      int64         `json:"total_users"`
	TotalOrders     int64         `json:"total_orders"`
	TotalProducts   int64         `json:"total_products"`
	TotalRevenue    float64       `json:"total_revenue"`
	UsersDeltaPct   float64       `json:"users_delta_pct"`
	OrdersDeltaPct  float64       `json:"orders_delta_pct"`
	RevenueDeltaPct float64       `json:"revenue_delta_pct"`
	OrdersByStatus  []StatusCount `json:"orders_by_status"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
