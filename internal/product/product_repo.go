package product

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=product_repo.go -destination=../mock/product/product_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p Product) (Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Product struct {
	ID          uuid.UUID
	CategoryID  uuid.NullUUID
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURL    sql.NullString
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, category_id, name, description, price, stock, image_url`

func (r *repository) Create(ctx context.Context, p Product) (Product, error) {
	const query = `
		INSERT INTO products (category_id, name, description, price, stock, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + productColumns

	return r.scanOne(r.db.QueryRowContext(ctx, query,
		p.CategoryID, p.Name, p.Description, p.Price.String(), p.Stock, p.ImageURL))
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repository) Update(ctx context.Context, p Product) (Product, error) {
	const query = `
		UPDATE products
		SET category_id = $2, name = $3, description = $4, price = $5, stock = $6,
		    image_url = COALESCE($7, image_url), updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns

	return r.scanOne(r.db.QueryRowContext(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Description, p.Price.String(), p.Stock, p.ImageURL))
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM products WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	var price string
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &price, &p.Stock, &p.ImageURL)
	if err != nil {
		return Product{}, err
	}
	p.Price, _ = decimal.NewFromString(price)
	return p, nil
}

func (r *repository) scanOne(row *sql.Row) (Product, error) {
	return scanProduct(row)
}
