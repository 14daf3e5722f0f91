package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aman52kwah/kaynetartsphere/internal/order"
	"github.com/aman52kwah/kaynetartsphere/internal/paystack"
	"github.com/aman52kwah/kaynetartsphere/internal/pkg/apperror"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrGatewayUnavailable = apperror.New(apperror.CodeGateway, "Payment gateway is unavailable", http.StatusBadGateway)
	ErrInvalidSignature   = apperror.New(apperror.CodeUnauthorized, "Invalid webhook signature", http.StatusUnauthorized)
)

// Orders is the slice of the order service the gateway flow needs.
type Orders interface {
	GetPayable(ctx context.Context, orderID string) (order.Payable, error)
	SetPaymentReference(ctx context.Context, payable order.Payable, reference string) error
	ConfirmPaymentByReference(ctx context.Context, reference string) error
}

//go:generate mockgen -source=payment_service.go -destination=../mock/payment/payment_service_mock.go -package=mock
type Service interface {
	InitializeOrder(ctx context.Context, orderID string) (InitializeOrderResponse, error)
	Verify(ctx context.Context, reference string) (VerifyResponse, error)
	HandleWebhook(ctx context.Context, signature string, body []byte) error
}

type Deps struct {
	Orders   Orders
	Paystack paystack.Service
	Logger   *zap.Logger
}

type service struct {
	orders   Orders
	paystack paystack.Service
	logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Orders == nil {
		panic("order service cannot be nil")
	}
	if deps.Paystack == nil {
		panic("paystack service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		orders:   deps.Orders,
		paystack: deps.Paystack,
		logger:   deps.Logger.Named("payment.service"),
	}
}

// InitializeOrder starts a gateway transaction for either order variant
// and stores the returned reference so verification and webhooks can
// find their way back.
func (s *service) InitializeOrder(ctx context.Context, orderID string) (InitializeOrderResponse, error) {
	payable, err := s.orders.GetPayable(ctx, orderID)
	if err != nil {
		return InitializeOrderResponse{}, err
	}

	reference := fmt.Sprintf("%s-%d", payable.OrderNumber, time.Now().Unix())

	res, err := s.paystack.InitializeTransaction(ctx, paystack.InitializeRequest{
		Email:     payable.Email,
		Amount:    toMinorUnits(payable.Amount),
		Reference: reference,
	})
	if err != nil {
		s.logger.Error("paystack initialize failed",
			zap.String("order_number", payable.OrderNumber),
			zap.Error(err))
		return InitializeOrderResponse{}, ErrGatewayUnavailable.WithCause(err)
	}

	if err := s.orders.SetPaymentReference(ctx, payable, res.Reference); err != nil {
		return InitializeOrderResponse{}, err
	}

	s.logger.Info("payment initialized",
		zap.String("order_number", payable.OrderNumber),
		zap.String("reference", res.Reference))

	return InitializeOrderResponse{
		AuthorizationURL: res.AuthorizationURL,
		Reference:        res.Reference,
	}, nil
}

// Verify is hit when the gateway redirects the customer back with a
// reference query parameter.
func (s *service) Verify(ctx context.Context, reference string) (VerifyResponse, error) {
	res, err := s.paystack.VerifyTransaction(ctx, reference)
	if err != nil {
		s.logger.Error("paystack verify failed", zap.String("reference", reference), zap.Error(err))
		return VerifyResponse{}, ErrGatewayUnavailable.WithCause(err)
	}

	if res.Status != "success" {
		return VerifyResponse{Success: false}, nil
	}

	if err := s.orders.ConfirmPaymentByReference(ctx, reference); err != nil {
		return VerifyResponse{}, err
	}
	return VerifyResponse{Success: true}, nil
}

func (s *service) HandleWebhook(ctx context.Context, signature string, body []byte) error {
	if !s.paystack.VerifyWebhookSignature(body, signature) {
		return ErrInvalidSignature
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return apperror.New(apperror.CodeInvalidInput, "Malformed webhook payload", http.StatusBadRequest).WithCause(err)
	}

	if event.Event != "charge.success" {
		s.logger.Debug("ignoring webhook event", zap.String("event", event.Event))
		return nil
	}

	return s.orders.ConfirmPaymentByReference(ctx, event.Data.Reference)
}

// Paystack amounts are in the minor currency unit (pesewas).
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
