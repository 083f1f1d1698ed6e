package intake

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendia-pos/vendia-pos/internal/platform/db"
)

// RepositoryPort abstracts persistence for the service.
type RepositoryPort interface {
	List(ctx context.Context) ([]Intake, error)
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
}

// TxRepository exposes the statements available inside the intake transaction.
type TxRepository interface {
	IncrementStock(ctx context.Context, productID, cantidad int64) error
	InsertIntake(ctx context.Context, descripcion string, total float64) (int64, error)
}

// Repository persists intakes in PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// WithTx runs fn inside one database transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &txRepo{tx: tx})
	})
}

func (r *Repository) List(ctx context.Context) ([]Intake, error) {
	const query = `SELECT id, descripcion, total, fecha
		FROM ingreso_producto
		ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intakes []Intake
	for rows.Next() {
		var in Intake
		if err := rows.Scan(&in.ID, &in.Descripcion, &in.Total, &in.Fecha); err != nil {
			return nil, err
		}
		intakes = append(intakes, in)
	}
	return intakes, rows.Err()
}

type txRepo struct {
	tx pgx.Tx
}

func (r *txRepo) IncrementStock(ctx context.Context, productID, cantidad int64) error {
	_, err := r.tx.Exec(ctx, `UPDATE productos SET stock = stock + $1 WHERE id = $2`, cantidad, productID)
	return err
}

func (r *txRepo) InsertIntake(ctx context.Context, descripcion string, total float64) (int64, error) {
	const query = `INSERT INTO ingreso_producto (descripcion, total, fecha)
		VALUES ($1, $2, CURRENT_DATE) RETURNING id`
	var id int64
	err := r.tx.QueryRow(ctx, query, descripcion, total).Scan(&id)
	return id, err
}
