package category

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/aman52kwah/kaynetartsphere/internal/pkg/apperror"

	"github.com/google/uuid"
)

var ErrCategoryNotFound = apperror.New(
	apperror.CodeNotFound,
	"Category not found",
	http.StatusNotFound,
)

var ErrInvalidCategoryID = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid category id",
	http.StatusBadRequest,
)

//go:generate mockgen -source=category_service.go -destination=../mock/category/category_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	List(ctx context.Context) ([]CategoryResponse, error)
	Update(ctx context.Context, id string, req UpdateCategoryRequest) (CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error) {
	c, err := s.repo.Create(ctx, req.Name, req.Description)
	if err != nil {
		return CategoryResponse{}, err
	}
	return toResponse(c), nil
}

func (s *service) List(ctx context.Context) ([]CategoryResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, toResponse(c))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCategoryRequest) (CategoryResponse, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return CategoryResponse{}, ErrInvalidCategoryID
	}

	c, err := s.repo.Update(ctx, cid, req.Name, req.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return CategoryResponse{}, ErrCategoryNotFound
	}
	if err != nil {
		return CategoryResponse{}, err
	}
	return toResponse(c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	cid, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidCategoryID
	}
	return s.repo.Delete(ctx, cid)
}

func toResponse(c Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
	}
}
