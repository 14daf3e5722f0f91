package payment_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/aman52kwah/kaynetartsphere/internal/order"
	"github.com/aman52kwah/kaynetartsphere/internal/payment"
	"github.com/aman52kwah/kaynetartsphere/internal/paystack"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKES ====================

type fakeOrders struct {
	payable      order.Payable
	payableErr   error
	setReference string
	confirmedRef string
	confirmErr   error
}

func (f *fakeOrders) GetPayable(context.Context, string) (order.Payable, error) {
	return f.payable, f.payableErr
}
func (f *fakeOrders) SetPaymentReference(_ context.Context, _ order.Payable, reference string) error {
	f.setReference = reference
	return nil
}
func (f *fakeOrders) ConfirmPaymentByReference(_ context.Context, reference string) error {
	f.confirmedRef = reference
	return f.confirmErr
}

type fakePaystack struct {
	secret    string
	initReq   paystack.InitializeRequest
	initErr   error
	verifyRes *paystack.VerifyResponse
	verifyErr error
}

func (f *fakePaystack) InitializeTransaction(_ context.Context, req paystack.InitializeRequest) (*paystack.InitializeResponse, error) {
	f.initReq = req
	if f.initErr != nil {
		return nil, f.initErr
	}
	return &paystack.InitializeResponse{
		AuthorizationURL: "https://checkout.paystack.com/abc",
		Reference:        req.Reference,
	}, nil
}

func (f *fakePaystack) VerifyTransaction(context.Context, string) (*paystack.VerifyResponse, error) {
	return f.verifyRes, f.verifyErr
}

func (f *fakePaystack) VerifyWebhookSignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(f.secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil)) == signature
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func newService(orders *fakeOrders, gateway *fakePaystack) payment.Service {
	return payment.NewService(payment.Deps{Orders: orders, Paystack: gateway})
}

// ==================== TESTS ====================

func TestPaymentService_InitializeOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("builds_reference_and_converts_to_minor_units", func(t *testing.T) {
		orders := &fakeOrders{payable: order.Payable{
			OrderID:     uuid.New(),
			OrderNumber: "KAS-1-AAAA",
			Email:       "ama@example.com",
			Amount:      decimal.RequireFromString("322.50"),
		}}
		gateway := &fakePaystack{}

		res, err := newService(orders, gateway).InitializeOrder(ctx, orders.payable.OrderID.String())
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(gateway.initReq.Reference, "KAS-1-AAAA-"))
		assert.Equal(t, int64(32250), gateway.initReq.Amount)
		assert.Equal(t, "ama@example.com", gateway.initReq.Email)

		// The gateway's reference is what gets stored on the order.
		assert.Equal(t, res.Reference, orders.setReference)
		assert.NotEmpty(t, res.AuthorizationURL)
	})

	t.Run("gateway_failure_maps_to_bad_gateway", func(t *testing.T) {
		orders := &fakeOrders{payable: order.Payable{OrderNumber: "KAS-1-AAAA", Amount: decimal.NewFromInt(100)}}
		gateway := &fakePaystack{initErr: errors.New("connection refused")}

		_, err := newService(orders, gateway).InitializeOrder(ctx, uuid.New().String())
		assert.ErrorIs(t, err, payment.ErrGatewayUnavailable)
		assert.Empty(t, orders.setReference)
	})

	t.Run("unknown_order_propagates", func(t *testing.T) {
		orders := &fakeOrders{payableErr: order.ErrOrderNotFound}
		_, err := newService(orders, &fakePaystack{}).InitializeOrder(ctx, uuid.New().String())
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestPaymentService_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("successful_charge_confirms_order", func(t *testing.T) {
		orders := &fakeOrders{}
		gateway := &fakePaystack{verifyRes: &paystack.VerifyResponse{Reference: "ref-1", Status: "success"}}

		res, err := newService(orders, gateway).Verify(ctx, "ref-1")
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "ref-1", orders.confirmedRef)
	})

	t.Run("failed_charge_does_not_confirm", func(t *testing.T) {
		orders := &fakeOrders{}
		gateway := &fakePaystack{verifyRes: &paystack.VerifyResponse{Reference: "ref-1", Status: "abandoned"}}

		res, err := newService(orders, gateway).Verify(ctx, "ref-1")
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Empty(t, orders.confirmedRef)
	})

	t.Run("gateway_error_maps_to_bad_gateway", func(t *testing.T) {
		gateway := &fakePaystack{verifyErr: errors.New("timeout")}
		_, err := newService(&fakeOrders{}, gateway).Verify(ctx, "ref-1")
		assert.ErrorIs(t, err, payment.ErrGatewayUnavailable)
	})
}

func TestPaymentService_HandleWebhook(t *testing.T) {
	ctx := context.Background()
	const secret = "sk_test_123"

	t.Run("charge_success_confirms_by_reference", func(t *testing.T) {
		orders := &fakeOrders{}
		gateway := &fakePaystack{secret: secret}
		body := []byte(`{"event":"charge.success","data":{"reference":"ref-9"}}`)

		err := newService(orders, gateway).HandleWebhook(ctx, sign(secret, body), body)
		require.NoError(t, err)
		assert.Equal(t, "ref-9", orders.confirmedRef)
	})

	t.Run("bad_signature_is_rejected", func(t *testing.T) {
		orders := &fakeOrders{}
		gateway := &fakePaystack{secret: secret}
		body := []byte(`{"event":"charge.success","data":{"reference":"ref-9"}}`)

		err := newService(orders, gateway).HandleWebhook(ctx, "bad-signature", body)
		assert.ErrorIs(t, err, payment.ErrInvalidSignature)
		assert.Empty(t, orders.confirmedRef)
	})

	t.Run("other_events_are_ignored", func(t *testing.T) {
		orders := &fakeOrders{}
		gateway := &fakePaystack{secret: secret}
		body := []byte(`{"event":"transfer.success","data":{"reference":"ref-9"}}`)

		err := newService(orders, gateway).HandleWebhook(ctx, sign(secret, body), body)
		require.NoError(t, err)
		assert.Empty(t, orders.confirmedRef)
	})
}
