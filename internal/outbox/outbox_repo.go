package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       json.RawMessage
	CreatedAt     time.Time
}

type CreateEventParams struct {
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       any
}

// DBTX is satisfied by both *sql.DB and *sql.Tx so events can be
// written inside the caller's transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx DBTX) Repository
	CreateEvent(ctx context.Context, arg CreateEventParams) error
	ListPending(ctx context.Context, limit int) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db DBTX
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx DBTX) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	payload, err := json.Marshal(arg.Payload)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO outbox_events (aggregate_type, aggregate_id, event_type, payload)
		VALUES ($1, $2, $3, $4)`

	_, err = r.db.ExecContext(ctx, query, arg.AggregateType, arg.AggregateID, arg.EventType, payload)
	return err
}

func (r *repository) ListPending(ctx context.Context, limit int) ([]Event, error) {
	const query = `
		SELECT id, aggregate_type, aggregate_id, event_type, payload, created_at
		FROM outbox_events
		WHERE status = 'PENDING'
		ORDER BY created_at
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType, &e.Payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE outbox_events SET status = 'SENT', sent_at = now() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
