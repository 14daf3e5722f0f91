package cart

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required,uuid" validate:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1" validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type CartLineResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type CartDetailResponse struct {
	Items []CartLineResponse `json:"items"`
	Count int                `json:"count"`
	Total float64            `json:"total"`
}
