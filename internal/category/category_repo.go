package category

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

//go:generate mockgen -source=category_repo.go -destination=../mock/category/category_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, name, description string) (Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) (Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, description string) (Category, error) {
	const query = `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description
	`

	var c Category
	err := r.db.QueryRowContext(ctx, query, name, description).Scan(&c.ID, &c.Name, &c.Description)
	return c, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Category, error) {
	const query = `SELECT id, name, description FROM categories WHERE id = $1`

	var c Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description)
	return c, err
}

func (r *repository) List(ctx context.Context) ([]Category, error) {
	const query = `SELECT id, name, description FROM categories ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, name, description string) (Category, error) {
	const query = `
		UPDATE categories
		SET name = $2, description = $3
		WHERE id = $1
		RETURNING id, name, description
	`

	var c Category
	err := r.db.QueryRowContext(ctx, query, id, name, description).Scan(&c.ID, &c.Name, &c.Description)
	return c, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM categories WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
