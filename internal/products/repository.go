package products

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
)

// Repository persists products in PostgreSQL.
type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	GetByCode(ctx context.Context, code string) (Product, error)
	Create(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, id int64, changes Changes) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository over the shared pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]Product, error) {
	const query = `SELECT id, nombre, codigo, stock, precio
		FROM productos
		WHERE ($1 = '' OR nombre ILIKE $2 OR codigo ILIKE $2)
		ORDER BY id DESC
		LIMIT $3 OFFSET $4`

	limit := filters.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, query, filters.Q, "%"+filters.Q+"%", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Codigo, &p.Stock, &p.Precio); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	const query = `SELECT id, nombre, codigo, stock, precio FROM productos WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *repository) GetByCode(ctx context.Context, code string) (Product, error) {
	const query = `SELECT id, nombre, codigo, stock, precio FROM productos WHERE codigo = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, code))
}

func (r *repository) scanOne(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Nombre, &p.Codigo, &p.Stock, &p.Precio)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, httpx.ErrNotFound
	}
	return p, err
}

func (r *repository) Create(ctx context.Context, p Product) (int64, error) {
	const query = `INSERT INTO productos (nombre, codigo, stock, precio)
		VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query, p.Nombre, p.Codigo, p.Stock, p.Precio).Scan(&id)
	return id, err
}

func (r *repository) Update(ctx context.Context, id int64, changes Changes) error {
	query, args := buildUpdate(changes, id)
	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

// buildUpdate assembles a parameterized UPDATE over the column whitelist.
// Column names never come from request input.
func buildUpdate(changes Changes, id int64) (string, []any) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if changes.Nombre != nil {
		add("nombre", *changes.Nombre)
	}
	if changes.Codigo != nil {
		add("codigo", *changes.Codigo)
	}
	if changes.Stock != nil {
		add("stock", *changes.Stock)
	}
	if changes.Precio != nil {
		add("precio", *changes.Precio)
	}

	args = append(args, id)
	query := "UPDATE productos SET "
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += " WHERE id = $" + strconv.Itoa(len(args))
	return query, args
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	return err
}
