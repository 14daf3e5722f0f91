package material

type CreateMaterialRequest struct {
	Name          string `json:"name" binding:"required"`
	PricePerMeter string `json:"pricePerMeter" binding:"required"`
}

type UpdateMaterialRequest struct {
	Name          string `json:"name" binding:"required"`
	PricePerMeter string `json:"pricePerMeter" binding:"required"`
}

type MaterialResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PricePerMeter float64 `json:"pricePerMeter"`
}
