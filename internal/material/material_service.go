package material

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/aman52kwah/kaynetartsphere/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMaterialNotFound = apperror.New(apperror.CodeNotFound, "Material not found", http.StatusNotFound)
	ErrInvalidMaterial  = apperror.New(apperror.CodeInvalidInput, "Invalid material data", http.StatusBadRequest)
)

//go:generate mockgen -source=material_service.go -destination=../mock/material/material_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateMaterialRequest) (MaterialResponse, error)
	List(ctx context.Context) ([]MaterialResponse, error)
	Update(ctx context.Context, id string, req UpdateMaterialRequest) (MaterialResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateMaterialRequest) (MaterialResponse, error) {
	price, err := decimal.NewFromString(req.PricePerMeter)
	if err != nil || price.IsNegative() {
		return MaterialResponse{}, ErrInvalidMaterial
	}

	m, err := s.repo.Create(ctx, req.Name, price)
	if err != nil {
		return MaterialResponse{}, err
	}
	return toResponse(m), nil
}

func (s *service) List(ctx context.Context) ([]MaterialResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]MaterialResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, toResponse(m))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateMaterialRequest) (MaterialResponse, error) {
	mid, err := uuid.Parse(id)
	if err != nil {
		return MaterialResponse{}, ErrInvalidMaterial
	}

	price, err := decimal.NewFromString(req.PricePerMeter)
	if err != nil || price.IsNegative() {
		return MaterialResponse{}, ErrInvalidMaterial
	}

	m, err := s.repo.Update(ctx, mid, req.Name, price)
	if errors.Is(err, sql.ErrNoRows) {
		return MaterialResponse{}, ErrMaterialNotFound
	}
	if err != nil {
		return MaterialResponse{}, err
	}
	return toResponse(m), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	mid, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidMaterial
	}
	return s.repo.Delete(ctx, mid)
}

func toResponse(m Material) MaterialResponse {
	return MaterialResponse{
		ID:            m.ID.String(),
		Name:          m.Name,
		PricePerMeter: m.PricePerMeter.InexactFloat64(),
	}
}
