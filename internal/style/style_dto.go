package style

type CreateStyleRequest struct {
	CategoryID  string `json:"categoryId" binding:"required,uuid"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   string `json:"basePrice" binding:"required"`
	ImageURL    string `json:"imageUrl"`
}

type UpdateStyleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   string `json:"basePrice" binding:"required"`
	ImageURL    string `json:"imageUrl"`
}

type StyleResponse struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"categoryId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}
