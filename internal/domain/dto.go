package domain

type CreateOrderRequest struct {
	Table            string `json:"table"`
	LineItemsSummary string `json:"products"`
	Total            string `json:"total"`
	Notes            string `json:"notes,omitempty"`
}

type CreateOrderResponse struct {
	OrderID          string  `json:"orderId"`
	ConfirmationCode string  `json:"code"`
	Table            string  `json:"table"`
	Total            float64 `json:"total"`
}

type UpdateOrderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}
