package material

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=material_repo.go -destination=../mock/material/material_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, name string, pricePerMeter decimal.Decimal) (Material, error)
	List(ctx context.Context) ([]Material, error)
	Update(ctx context.Context, id uuid.UUID, name string, pricePerMeter decimal.Decimal) (Material, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Material struct {
	ID            uuid.UUID
	Name          string
	PricePerMeter decimal.Decimal
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name string, pricePerMeter decimal.Decimal) (Material, error) {
	const query = `
		INSERT INTO materials (name, price_per_meter)
		VALUES ($1, $2)
		RETURNING id, name, price_per_meter
	`
	return scanMaterial(r.db.QueryRowContext(ctx, query, name, pricePerMeter.String()))
}

func (r *repository) List(ctx context.Context) ([]Material, error) {
	const query = `SELECT id, name, price_per_meter FROM materials ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Material
	for rows.Next() {
		var m Material
		var price string
		if err := rows.Scan(&m.ID, &m.Name, &price); err != nil {
			return nil, err
		}
		m.PricePerMeter, _ = decimal.NewFromString(price)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, name string, pricePerMeter decimal.Decimal) (Material, error) {
	const query = `
		UPDATE materials
		SET name = $2, price_per_meter = $3
		WHERE id = $1
		RETURNING id, name, price_per_meter
	`
	return scanMaterial(r.db.QueryRowContext(ctx, query, id, name, pricePerMeter.String()))
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM materials WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func scanMaterial(row *sql.Row) (Material, error) {
	var m Material
	var price string
	if err := row.Scan(&m.ID, &m.Name, &price); err != nil {
		return Material{}, err
	}
	m.PricePerMeter, _ = decimal.NewFromString(price)
	return m, nil
}
