package style

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=style_repo.go -destination=../mock/style/style_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s Style) (Style, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]Style, error)
	List(ctx context.Context) ([]Style, error)
	Update(ctx context.Context, s Style) (Style, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Style struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Description string
	BasePrice   decimal.Decimal
	ImageURL    sql.NullString
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const styleColumns = `id, category_id, name, description, base_price, image_url`

func (r *repository) Create(ctx context.Context, s Style) (Style, error) {
	const query = `
		INSERT INTO styles (category_id, name, description, base_price, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + styleColumns

	return r.scanOne(r.db.QueryRowContext(ctx, query,
		s.CategoryID, s.Name, s.Description, s.BasePrice.String(), s.ImageURL))
}

func (r *repository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]Style, error) {
	const query = `SELECT ` + styleColumns + ` FROM styles WHERE category_id = $1 ORDER BY name`
	return r.scanMany(ctx, query, categoryID)
}

func (r *repository) List(ctx context.Context) ([]Style, error) {
	const query = `SELECT ` + styleColumns + ` FROM styles ORDER BY name`
	return r.scanMany(ctx, query)
}

func (r *repository) Update(ctx context.Context, s Style) (Style, error) {
	const query = `
		UPDATE styles
		SET name = $2, description = $3, base_price = $4, image_url = $5
		WHERE id = $1
		RETURNING ` + styleColumns

	return r.scanOne(r.db.QueryRowContext(ctx, query,
		s.ID, s.Name, s.Description, s.BasePrice.String(), s.ImageURL))
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM styles WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repository) scanOne(row *sql.Row) (Style, error) {
	var s Style
	var price string
	err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Description, &price, &s.ImageURL)
	if err != nil {
		return Style{}, err
	}
	s.BasePrice, _ = decimal.NewFromString(price)
	return s, nil
}

func (r *repository) scanMany(ctx context.Context, query string, args ...any) ([]Style, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Style
	for rows.Next() {
		var s Style
		var price string
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Description, &price, &s.ImageURL); err != nil {
			return nil, err
		}
		s.BasePrice, _ = decimal.NewFromString(price)
		out = append(out, s)
	}
	return out, rows.Err()
}
