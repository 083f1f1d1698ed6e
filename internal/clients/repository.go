package clients

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
)

// Repository persists clients in PostgreSQL.
type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]Client, error)
	Get(ctx context.Context, id int64) (Client, error)
	Create(ctx context.Context, c Client) (int64, error)
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

func (r *repository) List(ctx context.Context, filters ListFilters) ([]Client, error) {
	const query = `SELECT id, cedula, nombre, apellido, telefono, direccion
		FROM clientes
		WHERE ($1 = '' OR cedula ILIKE $2 OR nombre ILIKE $2 OR apellido ILIKE $2)
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

	var clients []Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Cedula, &c.Nombre, &c.Apellido, &c.Telefono, &c.Direccion); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Client, error) {
	const query = `SELECT id, cedula, nombre, apellido, telefono, direccion FROM clientes WHERE id = $1`
	var c Client
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Cedula, &c.Nombre, &c.Apellido, &c.Telefono, &c.Direccion)
	if errors.Is(err, pgx.ErrNoRows) {
		return Client{}, httpx.ErrNotFound
	}
	return c, err
}

func (r *repository) Create(ctx context.Context, c Client) (int64, error) {
	const query = `INSERT INTO clientes (cedula, nombre, apellido, telefono, direccion)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query, c.Cedula, c.Nombre, c.Apellido, c.Telefono, c.Direccion).Scan(&id)
	return id, err
}

func (r *repository) Update(ctx context.Context, id int64, changes Changes) error {
	query, args := buildUpdate(changes, id)
	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

// buildUpdate assembles a parameterized UPDATE over the column whitelist.
func buildUpdate(changes Changes, id int64) (string, []any) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if changes.Cedula != nil {
		add("cedula", *changes.Cedula)
	}
	if changes.Nombre != nil {
		add("nombre", *changes.Nombre)
	}
	if changes.Apellido != nil {
		add("apellido", *changes.Apellido)
	}
	if changes.Telefono != nil {
		add("telefono", *changes.Telefono)
	}
	if changes.Direccion != nil {
		add("direccion", *changes.Direccion)
	}

	args = append(args, id)
	query := "UPDATE clientes SET "
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
	_, err := r.pool.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	return err
}
