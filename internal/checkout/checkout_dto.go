package checkout

import (
	"github.com/aman52kwah/kaynetartsphere/internal/customorder"
	"github.com/aman52kwah/kaynetartsphere/internal/order"
)

type ShippingAddressRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Region   string `json:"region"`
}

type SubmitRequest struct {
	ShippingAddress ShippingAddressRequest `json:"shippingAddress"`
}

type OrderItemRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// PlaceOrderRequest is the direct order-creation body: priced items
// come from the catalog, not the client.
type PlaceOrderRequest struct {
	Items           []OrderItemRequest     `json:"items" binding:"required,min=1,dive"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress"`
}

type MeasurementsRequest struct {
	Bust     string `json:"bust"`
	Waist    string `json:"waist"`
	Hips     string `json:"hips"`
	Shoulder string `json:"shoulder"`
	Sleeves  string `json:"sleeves"`
	Length   string `json:"length"`
}

// PlaceCustomOrderRequest is the direct custom-order body, the full
// wizard payload in one request.
type PlaceCustomOrderRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	GarmentType      string `json:"garmentType"`
	StyleDescription string `json:"styleDescription"`
	Occasion         string `json:"occasion"`

	Measurements MeasurementsRequest `json:"measurements"`

	FabricType        string `json:"fabricType"`
	FabricColor       string `json:"fabricColor"`
	DesignDetails     string `json:"designDetails"`
	ReferenceImageURL string `json:"referenceImageUrl"`
	Urgency           string `json:"urgency"`
	SpecialRequests   string `json:"specialRequests"`

	ShippingAddress ShippingAddressRequest `json:"shippingAddress"`
}

func (r PlaceCustomOrderRequest) toDraft() customorder.Draft {
	urgency := r.Urgency
	if urgency == "" {
		urgency = customorder.UrgencyStandard
	}

	return customorder.Draft{
		FullName:         r.FullName,
		Email:            r.Email,
		Phone:            r.Phone,
		GarmentType:      r.GarmentType,
		StyleDescription: r.StyleDescription,
		Occasion:         r.Occasion,
		Measurements: customorder.Measurements{
			Bust:     r.Measurements.Bust,
			Waist:    r.Measurements.Waist,
			Hips:     r.Measurements.Hips,
			Shoulder: r.Measurements.Shoulder,
			Sleeves:  r.Measurements.Sleeves,
			Length:   r.Measurements.Length,
		},
		FabricType:        r.FabricType,
		FabricColor:       r.FabricColor,
		DesignDetails:     r.DesignDetails,
		ReferenceImageURL: r.ReferenceImageURL,
		Urgency:           urgency,
		SpecialRequests:   r.SpecialRequests,
	}
}

type BreakdownResponse struct {
	Base       float64 `json:"base"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grandTotal"`
}

type PreviewResponse struct {
	OrderType string            `json:"orderType"`
	Breakdown BreakdownResponse `json:"breakdown"`
}

type SubmitResponse struct {
	OrderID          string            `json:"orderId"`
	OrderNumber      string            `json:"orderNumber"`
	OrderType        string            `json:"orderType"`
	AuthorizationURL string            `json:"authorizationUrl"`
	Reference        string            `json:"reference"`
	Breakdown        BreakdownResponse `json:"breakdown"`
}

func toBreakdownResponse(b Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Base:       b.Base.InexactFloat64(),
		Shipping:   b.Shipping.InexactFloat64(),
		Tax:        b.Tax.InexactFloat64(),
		GrandTotal: b.GrandTotal.InexactFloat64(),
	}
}

func toOrderAddress(a ShippingAddressRequest) order.ShippingAddress {
	return order.ShippingAddress{
		FullName: a.FullName,
		Phone:    a.Phone,
		Address:  a.Address,
		City:     a.City,
		Region:   a.Region,
	}
}
