package company

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists the empresa singleton in PostgreSQL.
type Repository interface {
	Get(ctx context.Context) (*Company, error)
	Upsert(ctx context.Context, req UpsertCompanyRequest) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository over the shared pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// Get returns the singleton row, or nil when it was never initialized.
func (r *repository) Get(ctx context.Context) (*Company, error) {
	const query = `SELECT id, nombre, ubicacion, telefono, modificacion FROM empresa WHERE id = $1`

	var c Company
	err := r.pool.QueryRow(ctx, query, SingletonID).
		Scan(&c.ID, &c.Nombre, &c.Ubicacion, &c.Telefono, &c.Modificacion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert creates or replaces the singleton in one atomic statement, never a
// read-then-write.
func (r *repository) Upsert(ctx context.Context, req UpsertCompanyRequest) error {
	const query = `INSERT INTO empresa (id, nombre, ubicacion, telefono, modificacion)
		VALUES ($1, $2, $3, $4, COALESCE($5, TRUE))
		ON CONFLICT (id) DO UPDATE
		SET nombre = EXCLUDED.nombre,
			ubicacion = EXCLUDED.ubicacion,
			telefono = EXCLUDED.telefono,
			modificacion = EXCLUDED.modificacion`

	_, err := r.pool.Exec(ctx, query, SingletonID, req.Nombre, req.Ubicacion, req.Telefono, req.Modificacion)
	return err
}
