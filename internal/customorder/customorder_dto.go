package customorder

type MeasurementsRequest struct {
	Bust     *string `json:"bust"`
	Waist    *string `json:"waist"`
	Hips     *string `json:"hips"`
	Shoulder *string `json:"shoulder"`
	Sleeves  *string `json:"sleeves"`
	Length   *string `json:"length"`
}

// DraftRequest carries the fields of whichever step the client is on.
// Absent fields leave the stored values untouched, so going back and
// forth never loses input.
type DraftRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`

	GarmentType      *string `json:"garmentType"`
	StyleDescription *string `json:"styleDescription"`
	Occasion         *string `json:"occasion"`

	Measurements *MeasurementsRequest `json:"measurements"`

	FabricType      *string `json:"fabricType"`
	FabricColor     *string `json:"fabricColor"`
	DesignDetails   *string `json:"designDetails"`
	Urgency         *string `json:"urgency"`
	SpecialRequests *string `json:"specialRequests"`
}

type DraftResponse struct {
	Step      int  `json:"step"`
	Submitted bool `json:"submitted"`

	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	GarmentType      string `json:"garmentType"`
	StyleDescription string `json:"styleDescription"`
	Occasion         string `json:"occasion"`

	Measurements Measurements `json:"measurements"`

	FabricType        string `json:"fabricType"`
	FabricColor       string `json:"fabricColor"`
	DesignDetails     string `json:"designDetails"`
	ReferenceImageURL string `json:"referenceImageUrl,omitempty"`
	Urgency           string `json:"urgency"`
	SpecialRequests   string `json:"specialRequests"`

	Total   float64 `json:"total"`
	Deposit float64 `json:"deposit"`
}
