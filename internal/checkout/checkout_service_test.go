package checkout_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/aman52kwah/kaynetartsphere/internal/cart"
	"github.com/aman52kwah/kaynetartsphere/internal/checkout"
	"github.com/aman52kwah/kaynetartsphere/internal/customorder"
	"github.com/aman52kwah/kaynetartsphere/internal/order"
	"github.com/aman52kwah/kaynetartsphere/internal/payment"
	"github.com/aman52kwah/kaynetartsphere/internal/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKES ====================

type fakeCartStore struct {
	lines   []cart.Line
	cleared bool
}

func (f *fakeCartStore) Load(context.Context, string) ([]cart.Line, error) { return f.lines, nil }
func (f *fakeCartStore) Save(_ context.Context, _ string, lines []cart.Line) error {
	f.lines = lines
	return nil
}
func (f *fakeCartStore) Clear(context.Context, string) error {
	f.cleared = true
	f.lines = nil
	return nil
}

type fakeDraftStore struct {
	draft     customorder.Draft
	hasDraft  bool
	discarded bool
}

func (f *fakeDraftStore) Load(context.Context, string) (customorder.Draft, bool, error) {
	return f.draft, f.hasDraft, nil
}
func (f *fakeDraftStore) Save(_ context.Context, _ string, d customorder.Draft) error {
	f.draft = d
	f.hasDraft = true
	return nil
}
func (f *fakeDraftStore) Discard(context.Context, string) error {
	f.discarded = true
	f.hasDraft = false
	return nil
}

type fakeOrders struct {
	order.Service

	placedRegular *order.PlaceRegularInput
	placedCustom  *order.PlaceCustomInput
}

func (f *fakeOrders) PlaceRegular(_ context.Context, _ string, input order.PlaceRegularInput) (order.OrderResponse, error) {
	f.placedRegular = &input
	return order.OrderResponse{ID: uuid.New().String(), OrderNumber: "KAS-1-AAAA"}, nil
}

func (f *fakeOrders) PlaceCustom(_ context.Context, _ string, input order.PlaceCustomInput) (order.CustomOrderResponse, error) {
	f.placedCustom = &input
	return order.CustomOrderResponse{ID: uuid.New().String(), OrderNumber: "KASC-1-BBBB"}, nil
}

type fakePayments struct {
	err         error
	initialized bool
}

func (f *fakePayments) InitializeOrder(_ context.Context, orderID string) (payment.InitializeOrderResponse, error) {
	if f.err != nil {
		return payment.InitializeOrderResponse{}, f.err
	}
	f.initialized = true
	return payment.InitializeOrderResponse{
		AuthorizationURL: "https://checkout.paystack.com/abc",
		Reference:        orderID + "-1",
	}, nil
}

func (f *fakePayments) Verify(context.Context, string) (payment.VerifyResponse, error) {
	return payment.VerifyResponse{}, nil
}

func (f *fakePayments) HandleWebhook(context.Context, string, []byte) error { return nil }

type fakeCatalog struct {
	products map[uuid.UUID]product.Product
}

func (f *fakeCatalog) GetByID(_ context.Context, id uuid.UUID) (product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return product.Product{}, sql.ErrNoRows
	}
	return p, nil
}

// ==================== HELPERS ====================

type testEnv struct {
	svc      checkout.Service
	carts    *fakeCartStore
	drafts   *fakeDraftStore
	orders   *fakeOrders
	payments *fakePayments
	catalog  *fakeCatalog
}

func newEnv() *testEnv {
	env := &testEnv{
		carts:    &fakeCartStore{},
		drafts:   &fakeDraftStore{},
		orders:   &fakeOrders{},
		payments: &fakePayments{},
		catalog:  &fakeCatalog{products: map[uuid.UUID]product.Product{}},
	}
	env.svc = checkout.NewService(checkout.Deps{
		CartStore:  env.carts,
		DraftStore: env.drafts,
		Orders:     env.orders,
		Payments:   env.payments,
		Catalog:    env.catalog,
	})
	return env
}

func cartOf100() []cart.Line {
	return []cart.Line{
		{ProductID: uuid.New().String(), Name: "Linen Shirt", Price: decimal.NewFromInt(50), Quantity: 2},
	}
}

func submittedRushDraft() customorder.Draft {
	d := customorder.NewDraft()
	d.FullName = "Efua Mensah"
	d.Email = "efua@example.com"
	d.Phone = "0244000000"
	d.GarmentType = "dress"
	d.Measurements = customorder.Measurements{Bust: "36", Waist: "28", Hips: "38", Length: "44"}
	d.FabricType = "silk"
	d.Urgency = "rush"
	d.Step = customorder.StepSubmitted
	return d
}

func goodAddress() checkout.ShippingAddressRequest {
	return checkout.ShippingAddressRequest{
		FullName: "Efua Mensah",
		Phone:    "0244000000",
		Address:  "12 Ring Road",
		City:     "Accra",
		Region:   "Greater Accra",
	}
}

// ==================== PREVIEW ====================

func TestCheckoutService_Preview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("empty_session_conflicts", func(t *testing.T) {
		env := newEnv()
		_, err := env.svc.Preview(ctx, userID)
		assert.ErrorIs(t, err, checkout.ErrNothingToCheckout)
	})

	t.Run("cart_of_100_totals_130", func(t *testing.T) {
		env := newEnv()
		env.carts.lines = cartOf100()

		res, err := env.svc.Preview(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "regular", res.OrderType)
		assert.Equal(t, float64(100), res.Breakdown.Base)
		assert.Equal(t, float64(20), res.Breakdown.Shipping)
		assert.Equal(t, float64(10), res.Breakdown.Tax)
		assert.Equal(t, float64(130), res.Breakdown.GrandTotal)
	})

	t.Run("submitted_draft_prices_from_deposit", func(t *testing.T) {
		env := newEnv()
		env.drafts.draft = submittedRushDraft()
		env.drafts.hasDraft = true
		env.carts.lines = cartOf100() // draft still wins

		res, err := env.svc.Preview(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "custom", res.OrderType)
		// dress 250 + silk 100 + rush 200 = 550, deposit 275
		assert.Equal(t, float64(275), res.Breakdown.Base)
		assert.Equal(t, 27.5, res.Breakdown.Tax)
		assert.Equal(t, 322.5, res.Breakdown.GrandTotal)
	})

	t.Run("unfinished_draft_falls_back_to_cart", func(t *testing.T) {
		env := newEnv()
		d := submittedRushDraft()
		d.Step = customorder.StepMaterial
		env.drafts.draft = d
		env.drafts.hasDraft = true
		env.carts.lines = cartOf100()

		res, err := env.svc.Preview(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "regular", res.OrderType)
	})
}

// ==================== SUBMIT ====================

func TestCheckoutService_PrepareAndSubmit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("regular_order_clears_cart_after_payment_init", func(t *testing.T) {
		env := newEnv()
		env.carts.lines = cartOf100()

		res, err := env.svc.PrepareAndSubmit(ctx, userID, checkout.SubmitRequest{ShippingAddress: goodAddress()})
		require.NoError(t, err)

		assert.Equal(t, "regular", res.OrderType)
		assert.Equal(t, "KAS-1-AAAA", res.OrderNumber)
		assert.NotEmpty(t, res.AuthorizationURL)
		assert.Equal(t, float64(130), res.Breakdown.GrandTotal)

		require.NotNil(t, env.orders.placedRegular)
		assert.True(t, env.orders.placedRegular.GrandTotal.Equal(decimal.NewFromInt(130)))
		assert.Len(t, env.orders.placedRegular.Items, 1)

		assert.True(t, env.payments.initialized)
		assert.True(t, env.carts.cleared)
		assert.False(t, env.drafts.discarded)
	})

	t.Run("custom_order_discards_draft_and_keeps_cart", func(t *testing.T) {
		env := newEnv()
		env.drafts.draft = submittedRushDraft()
		env.drafts.hasDraft = true
		env.carts.lines = cartOf100()

		res, err := env.svc.PrepareAndSubmit(ctx, userID, checkout.SubmitRequest{ShippingAddress: goodAddress()})
		require.NoError(t, err)

		assert.Equal(t, "custom", res.OrderType)
		assert.Equal(t, "KASC-1-BBBB", res.OrderNumber)
		assert.Equal(t, 322.5, res.Breakdown.GrandTotal)

		require.NotNil(t, env.orders.placedCustom)
		assert.True(t, env.orders.placedCustom.Total.Equal(decimal.NewFromInt(550)))
		assert.True(t, env.orders.placedCustom.Deposit.Equal(decimal.NewFromInt(275)))
		assert.Equal(t, "rush", env.orders.placedCustom.Urgency)

		assert.True(t, env.drafts.discarded)
		assert.False(t, env.carts.cleared)
	})

	t.Run("payment_failure_preserves_cart", func(t *testing.T) {
		env := newEnv()
		env.carts.lines = cartOf100()
		env.payments.err = errors.New("gateway down")

		_, err := env.svc.PrepareAndSubmit(ctx, userID, checkout.SubmitRequest{ShippingAddress: goodAddress()})
		require.Error(t, err)

		assert.False(t, env.carts.cleared)
		assert.Len(t, env.carts.lines, 1)
	})

	t.Run("payment_failure_preserves_draft", func(t *testing.T) {
		env := newEnv()
		env.drafts.draft = submittedRushDraft()
		env.drafts.hasDraft = true
		env.payments.err = errors.New("gateway down")

		_, err := env.svc.PrepareAndSubmit(ctx, userID, checkout.SubmitRequest{ShippingAddress: goodAddress()})
		require.Error(t, err)

		assert.False(t, env.drafts.discarded)
		assert.True(t, env.drafts.hasDraft)
	})

	t.Run("empty_session_conflicts", func(t *testing.T) {
		env := newEnv()
		_, err := env.svc.PrepareAndSubmit(ctx, userID, checkout.SubmitRequest{ShippingAddress: goodAddress()})
		assert.ErrorIs(t, err, checkout.ErrNothingToCheckout)
	})

	t.Run("incomplete_address_is_rejected_before_resolving", func(t *testing.T) {
		env := newEnv()
		env.carts.lines = cartOf100()

		addr := goodAddress()
		addr.City = "  "
		_, err := env.svc.PrepareAndSubmit(ctx, userID, checkout.SubmitRequest{ShippingAddress: addr})
		assert.ErrorIs(t, err, checkout.ErrIncompleteShipping)
		assert.Nil(t, env.orders.placedRegular)
	})
}

// ==================== DIRECT ORDER ENDPOINTS ====================

func TestCheckoutService_PlaceRegularOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("prices_items_from_catalog", func(t *testing.T) {
		env := newEnv()
		pid := uuid.New()
		env.catalog.products[pid] = product.Product{ID: pid, Name: "Navy Classic Suit", Price: decimal.NewFromInt(450)}

		_, err := env.svc.PlaceRegularOrder(ctx, userID, checkout.PlaceOrderRequest{
			Items:           []checkout.OrderItemRequest{{ProductID: pid.String(), Quantity: 2}},
			ShippingAddress: goodAddress(),
		})
		require.NoError(t, err)

		require.NotNil(t, env.orders.placedRegular)
		in := env.orders.placedRegular
		assert.True(t, in.Subtotal.Equal(decimal.NewFromInt(900)))
		assert.True(t, in.Tax.Equal(decimal.NewFromInt(90)))
		assert.True(t, in.GrandTotal.Equal(decimal.NewFromInt(1010)))
		assert.Equal(t, "Navy Classic Suit", in.Items[0].Name)
	})

	t.Run("unknown_product_is_rejected", func(t *testing.T) {
		env := newEnv()
		_, err := env.svc.PlaceRegularOrder(ctx, userID, checkout.PlaceOrderRequest{
			Items:           []checkout.OrderItemRequest{{ProductID: uuid.New().String(), Quantity: 1}},
			ShippingAddress: goodAddress(),
		})
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})
}

func TestCheckoutService_PlaceCustomOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	validReq := func() checkout.PlaceCustomOrderRequest {
		return checkout.PlaceCustomOrderRequest{
			FullName:        "Efua Mensah",
			Email:           "efua@example.com",
			Phone:           "0244000000",
			GarmentType:     "suit",
			Measurements:    checkout.MeasurementsRequest{Bust: "38", Waist: "32", Hips: "40", Length: "46"},
			FabricType:      "velvet",
			Urgency:         "express",
			ShippingAddress: goodAddress(),
		}
	}

	t.Run("validates_and_prices_full_payload", func(t *testing.T) {
		env := newEnv()
		_, err := env.svc.PlaceCustomOrder(ctx, userID, validReq())
		require.NoError(t, err)

		require.NotNil(t, env.orders.placedCustom)
		in := env.orders.placedCustom
		// suit 500 + velvet 150 + express 100 = 750, deposit 375
		assert.True(t, in.Total.Equal(decimal.NewFromInt(750)))
		assert.True(t, in.Deposit.Equal(decimal.NewFromInt(375)))
		assert.True(t, in.Tax.Equal(decimal.RequireFromString("37.5")))
		assert.True(t, in.GrandTotal.Equal(decimal.RequireFromString("432.5")))
	})

	t.Run("blank_urgency_defaults_to_standard", func(t *testing.T) {
		env := newEnv()
		req := validReq()
		req.Urgency = ""

		_, err := env.svc.PlaceCustomOrder(ctx, userID, req)
		require.NoError(t, err)
		assert.Equal(t, "standard", env.orders.placedCustom.Urgency)
	})

	t.Run("missing_measurement_reports_step_fields", func(t *testing.T) {
		env := newEnv()
		req := validReq()
		req.Measurements.Waist = ""

		_, err := env.svc.PlaceCustomOrder(ctx, userID, req)
		require.Error(t, err)

		var stepErr *customorder.StepValidationError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, customorder.StepMeasurements, stepErr.Step)
		assert.Contains(t, stepErr.Fields, "waist")
		assert.Nil(t, env.orders.placedCustom)
	})
}
