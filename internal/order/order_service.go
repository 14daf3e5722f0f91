package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	autherrors "github.com/aman52kwah/kaynetartsphere/internal/auth/errors"
	"github.com/aman52kwah/kaynetartsphere/internal/outbox"
	"github.com/aman52kwah/kaynetartsphere/internal/shared/database/helper"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Statuses move strictly forward, one hop at a time.
var statusTransitions = map[string]string{
	"PENDING":    "PROCESSING",
	"PROCESSING": "SHIPPED",
	"SHIPPED":    "DELIVERED",
}

// PlacedItem is a priced line ready for persistence, name and price
// already snapshotted from the catalog.
type PlacedItem struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

type PlaceRegularInput struct {
	Items      []PlacedItem
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
	Address    ShippingAddress
}

type PlaceCustomInput struct {
	FullName string
	Email    string
	Phone    string

	GarmentType      string
	StyleDescription string
	Occasion         string

	Bust     decimal.Decimal
	Waist    decimal.Decimal
	Hips     decimal.Decimal
	Shoulder decimal.NullDecimal
	Sleeves  decimal.NullDecimal
	Length   decimal.Decimal

	FabricType        string
	FabricColor       string
	DesignDetails     string
	ReferenceImageURL string
	Urgency           string
	SpecialRequests   string

	Total      decimal.Decimal
	Deposit    decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
	Address    ShippingAddress
}

// Payable is what the payment gateway needs to start a transaction.
type Payable struct {
	OrderID     uuid.UUID
	OrderNumber string
	Email       string
	Amount      decimal.Decimal
	Custom      bool
}

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	PlaceRegular(ctx context.Context, userID string, input PlaceRegularInput) (OrderResponse, error)
	PlaceCustom(ctx context.Context, userID string, input PlaceCustomInput) (CustomOrderResponse, error)

	ListByUser(ctx context.Context, userID string) ([]OrderResponse, error)
	ListCustomByUser(ctx context.Context, userID string) ([]CustomOrderResponse, error)
	Detail(ctx context.Context, userID, orderID string, isAdmin bool) (OrderResponse, error)

	ListAdmin(ctx context.Context, status string, page, limit int) ([]OrderResponse, int64, error)
	ListRecent(ctx context.Context, limit int) ([]OrderResponse, error)
	ListCustomAdmin(ctx context.Context, page, limit int) ([]CustomOrderResponse, int64, error)
	DashboardStats(ctx context.Context) (DashboardStatsResponse, error)
	UpdateStatusByAdmin(ctx context.Context, orderID, nextStatus string) (OrderResponse, error)
	UpdateCustomStatusByAdmin(ctx context.Context, orderID, nextStatus string) (CustomOrderResponse, error)

	GetPayable(ctx context.Context, orderID string) (Payable, error)
	SetPaymentReference(ctx context.Context, payable Payable, reference string) error
	ConfirmPaymentByReference(ctx context.Context, reference string) error
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	Logger     *zap.Logger
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("db cannot be nil")
	}
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		logger:     deps.Logger.Named("order.service"),
	}
}

func newOrderNumber(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().Unix(), strings.ToUpper(uuid.New().String()[:4]))
}

func (s *service) PlaceRegular(ctx context.Context, userID string, input PlaceRegularInput) (OrderResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return OrderResponse{}, autherrors.ErrInvalidUserID
	}

	orderNumber := newOrderNumber("KAS")
	logger := s.logger.With(zap.String("user_id", userID), zap.String("order_number", orderNumber))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("failed to begin transaction", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.CreateOrder(ctx, Order{
		OrderNumber: orderNumber,
		UserID:      uid,
		Subtotal:    input.Subtotal,
		Shipping:    input.Shipping,
		Tax:         input.Tax,
		GrandTotal:  input.GrandTotal,
		Address:     input.Address,
	})
	if err != nil {
		logger.Error("failed to create order record", zap.Error(err))
		return OrderResponse{}, err
	}

	items := make([]OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		item := OrderItem{
			OrderID:      o.ID,
			ProductID:    it.ProductID,
			NameSnapshot: it.Name,
			UnitPrice:    it.UnitPrice,
			Quantity:     it.Quantity,
		}
		if err := qtx.CreateOrderItem(ctx, item); err != nil {
			logger.Error("failed to create order item",
				zap.String("product_id", it.ProductID.String()), zap.Error(err))
			return OrderResponse{}, err
		}
		items = append(items, item)
	}

	name, email, err := qtx.GetUserContact(ctx, uid)
	if err != nil {
		logger.Error("failed to load user contact", zap.Error(err))
		return OrderResponse{}, err
	}

	err = s.outboxRepo.WithTx(tx).CreateEvent(ctx, outbox.CreateEventParams{
		AggregateType: "ORDER",
		AggregateID:   o.ID,
		EventType:     "ORDER_CREATED",
		Payload: map[string]string{
			"order_id":     o.ID.String(),
			"order_number": o.OrderNumber,
			"user_id":      userID,
			"name":         name,
			"email":        email,
			"amount":       input.GrandTotal.StringFixed(2),
		},
	})
	if err != nil {
		logger.Error("failed to create outbox event", zap.Error(err))
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit transaction", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}
	committed = true

	logger.Info("order placed", zap.String("order_id", o.ID.String()))
	return toOrderResponse(o, items), nil
}

func (s *service) PlaceCustom(ctx context.Context, userID string, input PlaceCustomInput) (CustomOrderResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return CustomOrderResponse{}, autherrors.ErrInvalidUserID
	}

	orderNumber := newOrderNumber("KASC")
	logger := s.logger.With(zap.String("user_id", userID), zap.String("order_number", orderNumber))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("failed to begin transaction", zap.Error(err))
		return CustomOrderResponse{}, ErrOrderFailed
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.CreateCustomOrder(ctx, CustomOrder{
		OrderNumber:       orderNumber,
		UserID:            uid,
		FullName:          input.FullName,
		Email:             input.Email,
		Phone:             input.Phone,
		GarmentType:       input.GarmentType,
		StyleDescription:  input.StyleDescription,
		Occasion:          input.Occasion,
		Bust:              input.Bust,
		Waist:             input.Waist,
		Hips:              input.Hips,
		Shoulder:          input.Shoulder,
		Sleeves:           input.Sleeves,
		Length:            input.Length,
		FabricType:        input.FabricType,
		FabricColor:       input.FabricColor,
		DesignDetails:     input.DesignDetails,
		ReferenceImageURL: helper.StringToNull(input.ReferenceImageURL),
		Urgency:           input.Urgency,
		SpecialRequests:   input.SpecialRequests,
		Total:             input.Total,
		Deposit:           input.Deposit,
		Shipping:          input.Shipping,
		Tax:               input.Tax,
		GrandTotal:        input.GrandTotal,
		Address:           input.Address,
	})
	if err != nil {
		logger.Error("failed to create custom order record", zap.Error(err))
		return CustomOrderResponse{}, err
	}

	err = s.outboxRepo.WithTx(tx).CreateEvent(ctx, outbox.CreateEventParams{
		AggregateType: "CUSTOM_ORDER",
		AggregateID:   o.ID,
		EventType:     "ORDER_CREATED",
		Payload: map[string]string{
			"order_id":     o.ID.String(),
			"order_number": o.OrderNumber,
			"user_id":      userID,
			"name":         o.FullName,
			"email":        o.Email,
			"amount":       input.GrandTotal.StringFixed(2),
		},
	})
	if err != nil {
		logger.Error("failed to create outbox event", zap.Error(err))
		return CustomOrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit transaction", zap.Error(err))
		return CustomOrderResponse{}, ErrOrderFailed
	}
	committed = true

	logger.Info("custom order placed", zap.String("order_id", o.ID.String()))
	return toCustomOrderResponse(o), nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]OrderResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	rows, err := s.repo.ListOrdersByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]OrderResponse, 0, len(rows))
	for _, o := range rows {
		out = append(out, toOrderResponse(o, nil))
	}
	return out, nil
}

func (s *service) ListCustomByUser(ctx context.Context, userID string) ([]CustomOrderResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	rows, err := s.repo.ListCustomOrdersByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]CustomOrderResponse, 0, len(rows))
	for _, o := range rows {
		out = append(out, toCustomOrderResponse(o))
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, userID, orderID string, isAdmin bool) (OrderResponse, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return OrderResponse{}, ErrInvalidOrderID
	}

	o, err := s.repo.GetOrderByID(ctx, oid)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, ErrOrderNotFound
	}
	if err != nil {
		return OrderResponse{}, err
	}

	if !isAdmin && o.UserID.String() != userID {
		return OrderResponse{}, ErrNotOrderOwner
	}

	items, err := s.repo.GetOrderItems(ctx, oid)
	if err != nil {
		return OrderResponse{}, err
	}
	return toOrderResponse(o, items), nil
}

func (s *service) ListAdmin(ctx context.Context, status string, page, limit int) ([]OrderResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	rows, total, err := s.repo.ListOrdersAdmin(ctx, status, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]OrderResponse, 0, len(rows))
	for _, o := range rows {
		out = append(out, toOrderResponse(o, nil))
	}
	return out, total, nil
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]OrderResponse, error) {
	if limit < 1 || limit > 50 {
		limit = 5
	}

	rows, err := s.repo.ListRecentOrders(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]OrderResponse, 0, len(rows))
	for _, o := range rows {
		out = append(out, toOrderResponse(o, nil))
	}
	return out, nil
}

func (s *service) ListCustomAdmin(ctx context.Context, page, limit int) ([]CustomOrderResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	rows, total, err := s.repo.ListCustomOrdersAdmin(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]CustomOrderResponse, 0, len(rows))
	for _, o := range rows {
		out = append(out, toCustomOrderResponse(o))
	}
	return out, total, nil
}

func (s *service) DashboardStats(ctx context.Context) (DashboardStatsResponse, error) {
	stats, err := s.repo.GetDashboardStats(ctx)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	return DashboardStatsResponse{
		TotalOrders:       stats.TotalOrders,
		TotalCustomOrders: stats.TotalCustomOrders,
		PendingOrders:     stats.PendingOrders,
		TotalProducts:     stats.TotalProducts,
		TotalCustomers:    stats.TotalCustomers,
		TotalRevenue:      stats.TotalRevenue.InexactFloat64(),
	}, nil
}

func (s *service) UpdateStatusByAdmin(ctx context.Context, orderID, nextStatus string) (OrderResponse, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return OrderResponse{}, ErrInvalidOrderID
	}

	nextStatus = strings.ToUpper(strings.TrimSpace(nextStatus))
	if !knownStatus(nextStatus) {
		return OrderResponse{}, ErrUnknownStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.GetOrderByID(ctx, oid)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, ErrOrderNotFound
	}
	if err != nil {
		return OrderResponse{}, err
	}

	if statusTransitions[o.Status] != nextStatus {
		return OrderResponse{}, ErrInvalidStatusTransition
	}

	o, err = qtx.UpdateOrderStatus(ctx, oid, nextStatus)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	err = s.outboxRepo.WithTx(tx).CreateEvent(ctx, outbox.CreateEventParams{
		AggregateType: "ORDER",
		AggregateID:   o.ID,
		EventType:     "ORDER_STATUS_CHANGED",
		Payload: map[string]string{
			"order_id":     o.ID.String(),
			"order_number": o.OrderNumber,
			"status":       nextStatus,
		},
	})
	if err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	return toOrderResponse(o, nil), nil
}

func (s *service) UpdateCustomStatusByAdmin(ctx context.Context, orderID, nextStatus string) (CustomOrderResponse, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return CustomOrderResponse{}, ErrInvalidOrderID
	}

	nextStatus = strings.ToUpper(strings.TrimSpace(nextStatus))
	if !knownStatus(nextStatus) {
		return CustomOrderResponse{}, ErrUnknownStatus
	}

	o, err := s.repo.GetCustomOrderByID(ctx, oid)
	if errors.Is(err, sql.ErrNoRows) {
		return CustomOrderResponse{}, ErrOrderNotFound
	}
	if err != nil {
		return CustomOrderResponse{}, err
	}

	if statusTransitions[o.Status] != nextStatus {
		return CustomOrderResponse{}, ErrInvalidStatusTransition
	}

	o, err = s.repo.UpdateCustomOrderStatus(ctx, oid, nextStatus)
	if err != nil {
		return CustomOrderResponse{}, ErrOrderFailed
	}
	return toCustomOrderResponse(o), nil
}

// GetPayable looks up either order variant by id. Regular orders pull
// the customer email from the account, custom orders carry their own.
func (s *service) GetPayable(ctx context.Context, orderID string) (Payable, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return Payable{}, ErrInvalidOrderID
	}

	o, err := s.repo.GetOrderByID(ctx, oid)
	if err == nil {
		_, email, err := s.repo.GetUserContact(ctx, o.UserID)
		if err != nil {
			return Payable{}, err
		}
		return Payable{
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			Email:       email,
			Amount:      o.GrandTotal,
		}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Payable{}, err
	}

	co, err := s.repo.GetCustomOrderByID(ctx, oid)
	if errors.Is(err, sql.ErrNoRows) {
		return Payable{}, ErrOrderNotFound
	}
	if err != nil {
		return Payable{}, err
	}
	return Payable{
		OrderID:     co.ID,
		OrderNumber: co.OrderNumber,
		Email:       co.Email,
		Amount:      co.GrandTotal,
		Custom:      true,
	}, nil
}

func (s *service) SetPaymentReference(ctx context.Context, payable Payable, reference string) error {
	if payable.Custom {
		return s.repo.SetCustomOrderPaymentReference(ctx, payable.OrderID, reference)
	}
	return s.repo.SetOrderPaymentReference(ctx, payable.OrderID, reference)
}

// ConfirmPaymentByReference marks whichever order carries the gateway
// reference as paid and queues the confirmation event.
func (s *service) ConfirmPaymentByReference(ctx context.Context, reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return ErrOrderNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ErrOrderFailed
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var (
		aggregateType = "ORDER"
		orderID       uuid.UUID
		orderNumber   string
		name          string
		email         string
		amount        decimal.Decimal
	)

	o, err := qtx.MarkOrderPaidByReference(ctx, reference)
	switch {
	case err == nil:
		orderID, orderNumber, amount = o.ID, o.OrderNumber, o.GrandTotal
		name, email, err = qtx.GetUserContact(ctx, o.UserID)
		if err != nil {
			return err
		}
	case errors.Is(err, sql.ErrNoRows):
		co, err := qtx.MarkCustomOrderPaidByReference(ctx, reference)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		aggregateType = "CUSTOM_ORDER"
		orderID, orderNumber, name, email, amount = co.ID, co.OrderNumber, co.FullName, co.Email, co.GrandTotal
	default:
		return err
	}

	err = s.outboxRepo.WithTx(tx).CreateEvent(ctx, outbox.CreateEventParams{
		AggregateType: aggregateType,
		AggregateID:   orderID,
		EventType:     "PAYMENT_CONFIRMED",
		Payload: map[string]string{
			"order_id":     orderID.String(),
			"order_number": orderNumber,
			"name":         name,
			"email":        email,
			"amount":       amount.StringFixed(2),
			"reference":    reference,
		},
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return ErrOrderFailed
	}

	s.logger.Info("payment confirmed",
		zap.String("order_number", orderNumber),
		zap.String("reference", reference))
	return nil
}

func knownStatus(status string) bool {
	switch status {
	case "PENDING", "PROCESSING", "SHIPPED", "DELIVERED":
		return true
	}
	return false
}

func toOrderResponse(o Order, items []OrderItem) OrderResponse {
	res := OrderResponse{
		ID:               o.ID.String(),
		OrderNumber:      o.OrderNumber,
		Status:           o.Status,
		PaymentStatus:    o.PaymentStatus,
		PaymentReference: helper.NullToString(o.PaymentReference),
		Subtotal:         o.Subtotal.InexactFloat64(),
		Shipping:         o.Shipping.InexactFloat64(),
		Tax:              o.Tax.InexactFloat64(),
		GrandTotal:       o.GrandTotal.InexactFloat64(),
		ShippingAddress:  toAddressResponse(o.Address),
		PlacedAt:         o.PlacedAt,
	}

	for _, item := range items {
		res.Items = append(res.Items, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.NameSnapshot,
			UnitPrice: item.UnitPrice.InexactFloat64(),
			Quantity:  item.Quantity,
		})
	}
	return res
}

func toCustomOrderResponse(o CustomOrder) CustomOrderResponse {
	return CustomOrderResponse{
		ID:               o.ID.String(),
		OrderNumber:      o.OrderNumber,
		Status:           o.Status,
		PaymentStatus:    o.PaymentStatus,
		PaymentReference: helper.NullToString(o.PaymentReference),
		FullName:         o.FullName,
		Email:            o.Email,
		Phone:            o.Phone,
		GarmentType:      o.GarmentType,
		FabricType:       o.FabricType,
		FabricColor:      o.FabricColor,
		Urgency:          o.Urgency,
		Total:            o.Total.InexactFloat64(),
		Deposit:          o.Deposit.InexactFloat64(),
		Shipping:         o.Shipping.InexactFloat64(),
		Tax:              o.Tax.InexactFloat64(),
		GrandTotal:       o.GrandTotal.InexactFloat64(),
		ShippingAddress:  toAddressResponse(o.Address),
		PlacedAt:         o.PlacedAt,
	}
}

func toAddressResponse(a ShippingAddress) ShippingAddressResponse {
	return ShippingAddressResponse{
		FullName: a.FullName,
		Phone:    a.Phone,
		Address:  a.Address,
		City:     a.City,
		Region:   a.Region,
	}
}
