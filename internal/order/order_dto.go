package order

import "time"

type ShippingAddressRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	Region   string `json:"region" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

type ShippingAddressResponse struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Region   string `json:"region"`
}

type OrderResponse struct {
	ID               string                  `json:"id"`
	OrderNumber      string                  `json:"orderNumber"`
	Status           string                  `json:"status"`
	PaymentStatus    string                  `json:"paymentStatus"`
	PaymentReference string                  `json:"paymentReference,omitempty"`
	Subtotal         float64                 `json:"subtotal"`
	Shipping         float64                 `json:"shipping"`
	Tax              float64                 `json:"tax"`
	GrandTotal       float64                 `json:"grandTotal"`
	ShippingAddress  ShippingAddressResponse `json:"shippingAddress"`
	Items            []OrderItemResponse     `json:"items,omitempty"`
	PlacedAt         time.Time               `json:"placedAt"`
}

type CustomOrderResponse struct {
	ID               string                  `json:"id"`
	OrderNumber      string                  `json:"orderNumber"`
	Status           string                  `json:"status"`
	PaymentStatus    string                  `json:"paymentStatus"`
	PaymentReference string                  `json:"paymentReference,omitempty"`
	FullName         string                  `json:"fullName"`
	Email            string                  `json:"email"`
	Phone            string                  `json:"phone"`
	GarmentType      string                  `json:"garmentType"`
	FabricType       string                  `json:"fabricType"`
	FabricColor      string                  `json:"fabricColor,omitempty"`
	Urgency          string                  `json:"urgency"`
	Total            float64                 `json:"total"`
	Deposit          float64                 `json:"deposit"`
	Shipping         float64                 `json:"shipping"`
	Tax              float64                 `json:"tax"`
	GrandTotal       float64                 `json:"grandTotal"`
	ShippingAddress  ShippingAddressResponse `json:"shippingAddress"`
	PlacedAt         time.Time               `json:"placedAt"`
}

type DashboardStatsResponse struct {
	TotalOrders       int64   `json:"totalOrders"`
	TotalCustomOrders int64   `json:"totalCustomOrders"`
	PendingOrders     int64   `json:"pendingOrders"`
	TotalProducts     int64   `json:"totalProducts"`
	TotalCustomers    int64   `json:"totalCustomers"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
