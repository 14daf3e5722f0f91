package cart

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aman52kwah/kaynetartsphere/internal/product"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCatalog is the slice of the product repository the cart needs
// to snapshot name and price at add time.
type ProductCatalog interface {
	GetByID(ctx context.Context, id uuid.UUID) (product.Product, error)
}

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, userID string) (CartDetailResponse, error)
	AddItem(ctx context.Context, userID string, req AddItemRequest) (CartDetailResponse, error)
	UpdateQuantity(ctx context.Context, userID, productID string, req UpdateQuantityRequest) (CartDetailResponse, error)
	RemoveItem(ctx context.Context, userID, productID string) (CartDetailResponse, error)
	Clear(ctx context.Context, userID string) error
}

type service struct {
	store    Store
	catalog  ProductCatalog
	validate *validator.Validate
}

func NewService(store Store, catalog ProductCatalog) Service {
	return &service{store: store, catalog: catalog, validate: validator.New()}
}

func (s *service) Detail(ctx context.Context, userID string) (CartDetailResponse, error) {
	lines, err := s.store.Load(ctx, userID)
	if err != nil {
		return CartDetailResponse{}, err
	}
	return toDetail(lines), nil
}

// AddItem merges by product: adding a product already in the cart bumps
// its quantity instead of creating a second line.
func (s *service) AddItem(ctx context.Context, userID string, req AddItemRequest) (CartDetailResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartDetailResponse{}, product.ErrInvalidProduct
	}

	pid, err := uuid.Parse(req.ProductID)
	if err != nil {
		return CartDetailResponse{}, product.ErrInvalidProduct
	}

	p, err := s.catalog.GetByID(ctx, pid)
	if errors.Is(err, sql.ErrNoRows) {
		return CartDetailResponse{}, product.ErrProductNotFound
	}
	if err != nil {
		return CartDetailResponse{}, err
	}

	lines, err := s.store.Load(ctx, userID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == req.ProductID {
			lines[i].Quantity += req.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, Line{
			ProductID: req.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  req.Quantity,
		})
	}

	if err := s.store.Save(ctx, userID, lines); err != nil {
		return CartDetailResponse{}, err
	}
	return toDetail(lines), nil
}

// UpdateQuantity sets the line quantity. Requests below 1 are ignored
// and the cart is returned unchanged, matching the storefront controls
// which never let quantity drop past one.
func (s *service) UpdateQuantity(ctx context.Context, userID, productID string, req UpdateQuantityRequest) (CartDetailResponse, error) {
	lines, err := s.store.Load(ctx, userID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	if req.Quantity < 1 {
		return toDetail(lines), nil
	}

	changed := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = req.Quantity
			changed = true
			break
		}
	}
	if changed {
		if err := s.store.Save(ctx, userID, lines); err != nil {
			return CartDetailResponse{}, err
		}
	}
	return toDetail(lines), nil
}

// RemoveItem drops the line for productID. Removing an absent product
// is a no-op.
func (s *service) RemoveItem(ctx context.Context, userID, productID string) (CartDetailResponse, error) {
	lines, err := s.store.Load(ctx, userID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	if len(kept) != len(lines) {
		if err := s.store.Save(ctx, userID, kept); err != nil {
			return CartDetailResponse{}, err
		}
	}
	return toDetail(kept), nil
}

func (s *service) Clear(ctx context.Context, userID string) error {
	return s.store.Clear(ctx, userID)
}

// Total sums price*quantity over the lines. It is recomputed on every
// read instead of being stored.
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Count is the sum of line quantities, shown as the header badge.
func Count(lines []Line) int {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}

func toDetail(lines []Line) CartDetailResponse {
	items := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price.InexactFloat64(),
			Quantity:  l.Quantity,
		})
	}
	return CartDetailResponse{
		Items: items,
		Count: Count(lines),
		Total: Total(lines).InexactFloat64(),
	}
}
