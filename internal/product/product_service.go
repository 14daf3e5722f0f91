package product

import (
	"context"
	"database/sql"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/aman52kwah/kaynetartsphere/internal/cloudinary"
	"github.com/aman52kwah/kaynetartsphere/internal/pkg/apperror"
	"github.com/aman52kwah/kaynetartsphere/internal/shared/database/helper"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = apperror.New(apperror.CodeNotFound, "Product not found", http.StatusNotFound)
	ErrInvalidProduct  = apperror.New(apperror.CodeInvalidInput, "Invalid product data", http.StatusBadRequest)
)

//go:generate mockgen -source=product_service.go -destination=../mock/product/product_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProductRequest, file multipart.File, filename string) (ProductResponse, error)
	GetByID(ctx context.Context, id string) (ProductResponse, error)
	List(ctx context.Context) ([]ProductResponse, error)
	Update(ctx context.Context, id string, req UpdateProductRequest, file multipart.File, filename string) (ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	cloudinary cloudinary.Service
}

func NewService(repo Repository, cld cloudinary.Service) Service {
	return &service{repo: repo, cloudinary: cld}
}

func (s *service) Create(ctx context.Context, req CreateProductRequest, file multipart.File, filename string) (ProductResponse, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return ProductResponse{}, ErrInvalidProduct
	}
	if req.Stock < 0 {
		return ProductResponse{}, ErrInvalidProduct
	}

	p := Product{
		CategoryID:  parseNullUUID(req.CategoryID),
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
	}

	if file != nil {
		url, err := s.cloudinary.UploadImage(ctx, file, filename)
		if err != nil {
			return ProductResponse{}, apperror.New(apperror.CodeGateway, "Failed to upload image", http.StatusBadGateway).WithCause(err)
		}
		p.ImageURL = helper.StringToNull(url)
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return ProductResponse{}, err
	}
	return toResponse(created), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProductResponse, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return ProductResponse{}, ErrInvalidProduct
	}

	p, err := s.repo.GetByID(ctx, pid)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductResponse{}, ErrProductNotFound
	}
	if err != nil {
		return ProductResponse{}, err
	}
	return toResponse(p), nil
}

func (s *service) List(ctx context.Context) ([]ProductResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProductResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toResponse(p))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProductRequest, file multipart.File, filename string) (ProductResponse, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return ProductResponse{}, ErrInvalidProduct
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return ProductResponse{}, ErrInvalidProduct
	}
	if req.Stock < 0 {
		return ProductResponse{}, ErrInvalidProduct
	}

	p := Product{
		ID:          pid,
		CategoryID:  parseNullUUID(req.CategoryID),
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
	}

	if file != nil {
		url, err := s.cloudinary.UploadImage(ctx, file, filename)
		if err != nil {
			return ProductResponse{}, apperror.New(apperror.CodeGateway, "Failed to upload image", http.StatusBadGateway).WithCause(err)
		}
		p.ImageURL = helper.StringToNull(url)
	}

	updated, err := s.repo.Update(ctx, p)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductResponse{}, ErrProductNotFound
	}
	if err != nil {
		return ProductResponse{}, err
	}
	return toResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	pid, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidProduct
	}
	return s.repo.Delete(ctx, pid)
}

func parseNullUUID(s string) uuid.NullUUID {
	if s == "" {
		return uuid.NullUUID{}
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: id, Valid: true}
}

func toResponse(p Product) ProductResponse {
	res := ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
		ImageURL:    helper.NullToString(p.ImageURL),
	}
	if p.CategoryID.Valid {
		res.CategoryID = p.CategoryID.UUID.String()
	}
	return res
}
