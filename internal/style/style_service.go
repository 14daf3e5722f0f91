package style

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/aman52kwah/kaynetartsphere/internal/pkg/apperror"
	"github.com/aman52kwah/kaynetartsphere/internal/shared/database/helper"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrStyleNotFound = apperror.New(apperror.CodeNotFound, "Style not found", http.StatusNotFound)
	ErrInvalidStyle  = apperror.New(apperror.CodeInvalidInput, "Invalid style data", http.StatusBadRequest)
)

//go:generate mockgen -source=style_service.go -destination=../mock/style/style_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateStyleRequest) (StyleResponse, error)
	List(ctx context.Context, categoryID string) ([]StyleResponse, error)
	Update(ctx context.Context, id string, req UpdateStyleRequest) (StyleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateStyleRequest) (StyleResponse, error) {
	price, err := decimal.NewFromString(req.BasePrice)
	if err != nil || price.IsNegative() {
		return StyleResponse{}, ErrInvalidStyle
	}

	created, err := s.repo.Create(ctx, Style{
		CategoryID:  helper.StringToUUID(req.CategoryID),
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   price,
		ImageURL:    helper.StringToNull(req.ImageURL),
	})
	if err != nil {
		return StyleResponse{}, err
	}
	return toResponse(created), nil
}

// List returns all styles, or only those in a category when categoryID is
// set (the custom-order page filters styles per category).
func (s *service) List(ctx context.Context, categoryID string) ([]StyleResponse, error) {
	var rows []Style
	var err error

	if categoryID != "" {
		cid, parseErr := uuid.Parse(categoryID)
		if parseErr != nil {
			return nil, ErrInvalidStyle
		}
		rows, err = s.repo.ListByCategory(ctx, cid)
	} else {
		rows, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]StyleResponse, 0, len(rows))
	for _, st := range rows {
		out = append(out, toResponse(st))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStyleRequest) (StyleResponse, error) {
	sid, err := uuid.Parse(id)
	if err != nil {
		return StyleResponse{}, ErrInvalidStyle
	}

	price, err := decimal.NewFromString(req.BasePrice)
	if err != nil || price.IsNegative() {
		return StyleResponse{}, ErrInvalidStyle
	}

	updated, err := s.repo.Update(ctx, Style{
		ID:          sid,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   price,
		ImageURL:    helper.StringToNull(req.ImageURL),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return StyleResponse{}, ErrStyleNotFound
	}
	if err != nil {
		return StyleResponse{}, err
	}
	return toResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	sid, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidStyle
	}
	return s.repo.Delete(ctx, sid)
}

func toResponse(s Style) StyleResponse {
	return StyleResponse{
		ID:          s.ID.String(),
		CategoryID:  s.CategoryID.String(),
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice.InexactFloat64(),
		ImageURL:    helper.NullToString(s.ImageURL),
	}
}
