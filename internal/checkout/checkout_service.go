package checkout

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/aman52kwah/kaynetartsphere/internal/cart"
	"github.com/aman52kwah/kaynetartsphere/internal/customorder"
	"github.com/aman52kwah/kaynetartsphere/internal/order"
	"github.com/aman52kwah/kaynetartsphere/internal/payment"
	"github.com/aman52kwah/kaynetartsphere/internal/pkg/apperror"
	"github.com/aman52kwah/kaynetartsphere/internal/product"
	"github.com/aman52kwah/kaynetartsphere/internal/shared/database/helper"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrIncompleteShipping = apperror.New(apperror.CodeValidation,
	"Please complete shipping information", http.StatusUnprocessableEntity)

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, userID string) (PreviewResponse, error)
	PrepareAndSubmit(ctx context.Context, userID string, req SubmitRequest) (SubmitResponse, error)
	PlaceRegularOrder(ctx context.Context, userID string, req PlaceOrderRequest) (order.OrderResponse, error)
	PlaceCustomOrder(ctx context.Context, userID string, req PlaceCustomOrderRequest) (order.CustomOrderResponse, error)
}

type Deps struct {
	CartStore  cart.Store
	DraftStore customorder.DraftStore
	Orders     order.Service
	Payments   payment.Service
	Catalog    cart.ProductCatalog
	Logger     *zap.Logger
}

type service struct {
	cartStore  cart.Store
	draftStore customorder.DraftStore
	orders     order.Service
	payments   payment.Service
	catalog    cart.ProductCatalog
	logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.CartStore == nil {
		panic("cart store cannot be nil")
	}
	if deps.DraftStore == nil {
		panic("draft store cannot be nil")
	}
	if deps.Orders == nil {
		panic("order service cannot be nil")
	}
	if deps.Payments == nil {
		panic("payment service cannot be nil")
	}
	if deps.Catalog == nil {
		panic("product catalog cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		cartStore:  deps.CartStore,
		draftStore: deps.DraftStore,
		orders:     deps.Orders,
		payments:   deps.Payments,
		catalog:    deps.Catalog,
		logger:     deps.Logger.Named("checkout.service"),
	}
}

func (s *service) resolve(ctx context.Context, userID string) (Source, error) {
	draft, hasDraft, err := s.draftStore.Load(ctx, userID)
	if err != nil {
		return Source{}, err
	}

	lines, err := s.cartStore.Load(ctx, userID)
	if err != nil {
		return Source{}, err
	}

	return ResolveSource(draft, hasDraft, lines)
}

func breakdownFor(src Source) Breakdown {
	if src.Type == SourceCustom {
		total := customorder.Total(src.Draft.GarmentType, src.Draft.FabricType, src.Draft.Urgency)
		return ComputeBreakdown(customorder.Deposit(total))
	}
	return ComputeBreakdown(cart.Total(src.Lines))
}

func (s *service) Preview(ctx context.Context, userID string) (PreviewResponse, error) {
	src, err := s.resolve(ctx, userID)
	if err != nil {
		return PreviewResponse{}, err
	}

	return PreviewResponse{
		OrderType: string(src.Type),
		Breakdown: toBreakdownResponse(breakdownFor(src)),
	}, nil
}

// PrepareAndSubmit turns the active source into a persisted order,
// initializes payment with the new order's id, and only after both
// succeed clears the cart or discards the draft. A failed payment
// initialization leaves every selection in place for a manual retry.
func (s *service) PrepareAndSubmit(ctx context.Context, userID string, req SubmitRequest) (SubmitResponse, error) {
	if err := validateAddress(req.ShippingAddress); err != nil {
		return SubmitResponse{}, err
	}

	src, err := s.resolve(ctx, userID)
	if err != nil {
		return SubmitResponse{}, err
	}

	breakdown := breakdownFor(src)
	logger := s.logger.With(zap.String("user_id", userID), zap.String("order_type", string(src.Type)))

	var (
		orderID     string
		orderNumber string
	)

	if src.Type == SourceCustom {
		input := customInputFromDraft(src.Draft, breakdown, toOrderAddress(req.ShippingAddress))
		res, err := s.orders.PlaceCustom(ctx, userID, input)
		if err != nil {
			logger.Error("custom order creation failed", zap.Error(err))
			return SubmitResponse{}, err
		}
		orderID, orderNumber = res.ID, res.OrderNumber
	} else {
		input := order.PlaceRegularInput{
			Subtotal:   breakdown.Base,
			Shipping:   breakdown.Shipping,
			Tax:        breakdown.Tax,
			GrandTotal: breakdown.GrandTotal,
			Address:    toOrderAddress(req.ShippingAddress),
		}
		for _, l := range src.Lines {
			pid, err := uuid.Parse(l.ProductID)
			if err != nil {
				return SubmitResponse{}, product.ErrInvalidProduct
			}
			input.Items = append(input.Items, order.PlacedItem{
				ProductID: pid,
				Name:      l.Name,
				UnitPrice: l.Price,
				Quantity:  l.Quantity,
			})
		}
		res, err := s.orders.PlaceRegular(ctx, userID, input)
		if err != nil {
			logger.Error("order creation failed", zap.Error(err))
			return SubmitResponse{}, err
		}
		orderID, orderNumber = res.ID, res.OrderNumber
	}

	pay, err := s.payments.InitializeOrder(ctx, orderID)
	if err != nil {
		logger.Error("payment initialization failed",
			zap.String("order_id", orderID), zap.Error(err))
		return SubmitResponse{}, err
	}

	// Cleanup runs strictly after both calls succeed so a failed
	// submission never loses the customer's selections.
	if src.Type == SourceCustom {
		if err := s.draftStore.Discard(ctx, userID); err != nil {
			logger.Warn("failed to discard draft after checkout", zap.Error(err))
		}
	} else {
		if err := s.cartStore.Clear(ctx, userID); err != nil {
			logger.Warn("failed to clear cart after checkout", zap.Error(err))
		}
	}

	logger.Info("checkout submitted",
		zap.String("order_number", orderNumber),
		zap.String("reference", pay.Reference))

	return SubmitResponse{
		OrderID:          orderID,
		OrderNumber:      orderNumber,
		OrderType:        string(src.Type),
		AuthorizationURL: pay.AuthorizationURL,
		Reference:        pay.Reference,
		Breakdown:        toBreakdownResponse(breakdown),
	}, nil
}

// PlaceRegularOrder is the direct order-creation endpoint. Prices are
// snapshotted from the catalog; the client only names products and
// quantities.
func (s *service) PlaceRegularOrder(ctx context.Context, userID string, req PlaceOrderRequest) (order.OrderResponse, error) {
	if err := validateAddress(req.ShippingAddress); err != nil {
		return order.OrderResponse{}, err
	}

	input := order.PlaceRegularInput{Address: toOrderAddress(req.ShippingAddress)}
	subtotal := decimal.Zero

	for _, it := range req.Items {
		pid, err := uuid.Parse(it.ProductID)
		if err != nil {
			return order.OrderResponse{}, product.ErrInvalidProduct
		}
		p, err := s.catalog.GetByID(ctx, pid)
		if errors.Is(err, sql.ErrNoRows) {
			return order.OrderResponse{}, product.ErrProductNotFound
		}
		if err != nil {
			return order.OrderResponse{}, err
		}

		input.Items = append(input.Items, order.PlacedItem{
			ProductID: pid,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  it.Quantity,
		})
		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	breakdown := ComputeBreakdown(subtotal)
	input.Subtotal = breakdown.Base
	input.Shipping = breakdown.Shipping
	input.Tax = breakdown.Tax
	input.GrandTotal = breakdown.GrandTotal

	return s.orders.PlaceRegular(ctx, userID, input)
}

// PlaceCustomOrder is the direct custom-order endpoint. The payload is
// validated against every wizard step before pricing.
func (s *service) PlaceCustomOrder(ctx context.Context, userID string, req PlaceCustomOrderRequest) (order.CustomOrderResponse, error) {
	if err := validateAddress(req.ShippingAddress); err != nil {
		return order.CustomOrderResponse{}, err
	}

	draft := req.toDraft()
	for step := customorder.StepPersonalInfo; step <= customorder.StepMaterial; step++ {
		if errs := draft.Validate(step); len(errs) > 0 {
			return order.CustomOrderResponse{}, &customorder.StepValidationError{Step: step, Fields: errs}
		}
	}

	total := customorder.Total(draft.GarmentType, draft.FabricType, draft.Urgency)
	breakdown := ComputeBreakdown(customorder.Deposit(total))

	return s.orders.PlaceCustom(ctx, userID, customInputFromDraft(draft, breakdown, toOrderAddress(req.ShippingAddress)))
}

func validateAddress(a ShippingAddressRequest) error {
	if strings.TrimSpace(a.FullName) == "" ||
		strings.TrimSpace(a.Phone) == "" ||
		strings.TrimSpace(a.Address) == "" ||
		strings.TrimSpace(a.City) == "" ||
		strings.TrimSpace(a.Region) == "" {
		return ErrIncompleteShipping
	}
	return nil
}

func customInputFromDraft(d customorder.Draft, b Breakdown, addr order.ShippingAddress) order.PlaceCustomInput {
	total := customorder.Total(d.GarmentType, d.FabricType, d.Urgency)

	return order.PlaceCustomInput{
		FullName:          d.FullName,
		Email:             d.Email,
		Phone:             d.Phone,
		GarmentType:       d.GarmentType,
		StyleDescription:  d.StyleDescription,
		Occasion:          d.Occasion,
		Bust:              helper.StringToDecimal(d.Measurements.Bust),
		Waist:             helper.StringToDecimal(d.Measurements.Waist),
		Hips:              helper.StringToDecimal(d.Measurements.Hips),
		Shoulder:          optionalDecimal(d.Measurements.Shoulder),
		Sleeves:           optionalDecimal(d.Measurements.Sleeves),
		Length:            helper.StringToDecimal(d.Measurements.Length),
		FabricType:        d.FabricType,
		FabricColor:       d.FabricColor,
		DesignDetails:     d.DesignDetails,
		ReferenceImageURL: d.ReferenceImageURL,
		Urgency:           d.Urgency,
		SpecialRequests:   d.SpecialRequests,
		Total:             total,
		Deposit:           customorder.Deposit(total),
		Shipping:          b.Shipping,
		Tax:               b.Tax,
		GrandTotal:        b.GrandTotal,
		Address:           addr,
	}
}

func optionalDecimal(s string) decimal.NullDecimal {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: helper.StringToDecimal(s), Valid: true}
}
