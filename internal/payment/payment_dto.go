package payment

type InitializeOrderRequest struct {
	OrderID string `json:"orderId" binding:"required,uuid"`
}

type InitializeOrderResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
	Reference        string `json:"reference"`
}

type VerifyResponse struct {
	Success bool `json:"success"`
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
	} `json:"data"`
}
