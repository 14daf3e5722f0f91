package cart_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/aman52kwah/kaynetartsphere/internal/cart"
	"github.com/aman52kwah/kaynetartsphere/internal/product"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKE CATALOG ====================

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

func newTestService(t *testing.T) (cart.Service, *miniredis.Miniredis, *fakeCatalog) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := cart.NewStore(rdb, nil)

	catalog := &fakeCatalog{products: map[uuid.UUID]product.Product{}}
	return cart.NewService(store, catalog), mr, catalog
}

func seedProduct(catalog *fakeCatalog, name string, price int64) uuid.UUID {
	id := uuid.New()
	catalog.products[id] = product.Product{
		ID:    id,
		Name:  name,
		Price: decimal.NewFromInt(price),
		Stock: 10,
	}
	return id
}

func TestCartService_AddItem(t *testing.T) {
	svc, _, catalog := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	shirtID := seedProduct(catalog, "Linen Shirt", 95)
	gownID := seedProduct(catalog, "Evening Gown", 320)

	t.Run("adds_new_line_with_snapshot", func(t *testing.T) {
		res, err := svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: shirtID.String(), Quantity: 2})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Linen Shirt", res.Items[0].Name)
		assert.Equal(t, 2, res.Items[0].Quantity)
		assert.Equal(t, float64(190), res.Total)
		assert.Equal(t, 2, res.Count)
	})

	t.Run("same_product_merges_into_existing_line", func(t *testing.T) {
		res, err := svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: shirtID.String(), Quantity: 1})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 3, res.Items[0].Quantity)
		assert.Equal(t, float64(285), res.Total)
	})

	t.Run("different_product_gets_its_own_line", func(t *testing.T) {
		res, err := svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: gownID.String(), Quantity: 1})
		require.NoError(t, err)
		require.Len(t, res.Items, 2)
		assert.Equal(t, float64(605), res.Total)
		assert.Equal(t, 4, res.Count)
	})

	t.Run("unknown_product_is_rejected", func(t *testing.T) {
		_, err := svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: uuid.New().String(), Quantity: 1})
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})

	t.Run("malformed_product_id_is_rejected", func(t *testing.T) {
		_, err := svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "abc", Quantity: 1})
		assert.ErrorIs(t, err, product.ErrInvalidProduct)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	svc, _, catalog := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	shirtID := seedProduct(catalog, "Linen Shirt", 95)
	_, err := svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: shirtID.String(), Quantity: 2})
	require.NoError(t, err)

	t.Run("sets_quantity_and_recomputes_total", func(t *testing.T) {
		res, err := svc.UpdateQuantity(ctx, userID, shirtID.String(), cart.UpdateQuantityRequest{Quantity: 5})
		require.NoError(t, err)
		assert.Equal(t, 5, res.Items[0].Quantity)
		assert.Equal(t, float64(475), res.Total)
	})

	t.Run("quantity_below_one_leaves_cart_unchanged", func(t *testing.T) {
		res, err := svc.UpdateQuantity(ctx, userID, shirtID.String(), cart.UpdateQuantityRequest{Quantity: 0})
		require.NoError(t, err)
		assert.Equal(t, 5, res.Items[0].Quantity)
	})

	t.Run("unknown_product_is_a_noop", func(t *testing.T) {
		res, err := svc.UpdateQuantity(ctx, userID, uuid.New().String(), cart.UpdateQuantityRequest{Quantity: 3})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 5, res.Items[0].Quantity)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, _, catalog := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	shirtID := seedProduct(catalog, "Linen Shirt", 95)
	gownID := seedProduct(catalog, "Evening Gown", 320)

	_, err := svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: shirtID.String(), Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: gownID.String(), Quantity: 1})
	require.NoError(t, err)

	t.Run("removes_only_the_named_line", func(t *testing.T) {
		res, err := svc.RemoveItem(ctx, userID, shirtID.String())
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, gownID.String(), res.Items[0].ProductID)
	})

	t.Run("removing_absent_product_is_a_noop", func(t *testing.T) {
		res, err := svc.RemoveItem(ctx, userID, shirtID.String())
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
	})
}

func TestCartService_Clear(t *testing.T) {
	svc, _, catalog := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	shirtID := seedProduct(catalog, "Linen Shirt", 95)
	_, err := svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: shirtID.String(), Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, userID))

	res, err := svc.Detail(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, float64(0), res.Total)
}

func TestCartService_Detail_CorruptPayload(t *testing.T) {
	svc, mr, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	// A bad write must read back as an empty cart, not an error.
	require.NoError(t, mr.Set("cart:"+userID, "{not json"))

	res, err := svc.Detail(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Count)
}

func TestCartService_Detail_SurvivesRestart(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	catalog := &fakeCatalog{products: map[uuid.UUID]product.Product{}}
	shirtID := seedProduct(catalog, "Linen Shirt", 95)

	ctx := context.Background()
	userID := uuid.New().String()

	first := cart.NewService(cart.NewStore(rdb, nil), catalog)
	_, err := first.AddItem(ctx, userID, cart.AddItemRequest{ProductID: shirtID.String(), Quantity: 2})
	require.NoError(t, err)

	// A fresh service against the same Redis sees the same cart.
	second := cart.NewService(cart.NewStore(rdb, nil), catalog)
	res, err := second.Detail(ctx, userID)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 2, res.Items[0].Quantity)
}
