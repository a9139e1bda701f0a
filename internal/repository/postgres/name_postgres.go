package postgres

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"namesapi/internal/model"
	"namesapi/internal/repository"
)

// NamePostgres is a PostgreSQL implementation of repository.NameRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type NamePostgres struct {
	db      *sql.DB
	migrate func(context.Context) error

	mu    sync.Mutex
	ready atomic.Bool
}

// NewNamePostgres creates a new NamePostgres repository. A non-nil migrate
// runs before the first query and is retried on later calls until it succeeds.
func NewNamePostgres(db *sql.DB, migrate func(context.Context) error) *NamePostgres {
	r := &NamePostgres{db: db, migrate: migrate}
	r.ready.Store(migrate == nil)
	return r
}

var _ repository.NameRepository = (*NamePostgres)(nil)

// EnsureSchema runs the migration unless it already succeeded.
func (r *NamePostgres) EnsureSchema(ctx context.Context) error {
	if r.ready.Load() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready.Load() {
		return nil
	}
	if err := r.migrate(ctx); err != nil {
		return err
	}
	r.ready.Store(true)
	return nil
}

// List returns all records ordered by insertion time.
func (r *NamePostgres) List(ctx context.Context) ([]model.Record, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	const q = `
		SELECT id, name
		FROM names
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Record, 0)
	for rows.Next() {
		var rec model.Record
		if err := rows.Scan(&rec.ID, &rec.Name); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new row and returns the stored record with its generated ID.
func (r *NamePostgres) Create(ctx context.Context, name string) (*model.Record, error) {
	const q = `
		INSERT INTO names (name)
		VALUES ($1)
		RETURNING id, name
	`
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	var out model.Record
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&out.ID, &out.Name); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a row by ID. Unknown and non-UUID IDs are a no-op.
func (r *NamePostgres) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}
	const q = `DELETE FROM names WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// Ping checks database connectivity.
func (r *NamePostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
