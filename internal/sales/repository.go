package sales

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendia-pos/vendia-pos/internal/platform/db"
	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
)

// RepositoryPort abstracts persistence for the service.
type RepositoryPort interface {
	List(ctx context.Context) ([]SaleWithClient, error)
	Get(ctx context.Context, id int64) (SaleDetail, error)
	PurgeOldRecords(ctx context.Context) error
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
}

// TxRepository exposes the statements available inside the sale transaction.
type TxRepository interface {
	GetProductsForSale(ctx context.Context, ids []int64) (map[int64]ProductSnapshot, error)
	InsertSale(ctx context.Context, clienteID int64, vendedor string, total float64, fecha *time.Time) (int64, time.Time, error)
	InsertSaleItem(ctx context.Context, item SaleItemInsert) error
	DecrementStock(ctx context.Context, productID int64, cantidad float64) error
}

// Repository persists sales in PostgreSQL.
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

func (r *Repository) List(ctx context.Context) ([]SaleWithClient, error) {
	const query = `SELECT v.id, v.cliente, v.vendedor, v.total, v.fecha,
			c.nombre AS cliente_nombre, c.apellido AS cliente_apellido
		FROM ventas v
		JOIN clientes c ON c.id = v.cliente
		ORDER BY v.id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []SaleWithClient
	for rows.Next() {
		var s SaleWithClient
		if err := rows.Scan(&s.ID, &s.Cliente, &s.Vendedor, &s.Total, &s.Fecha, &s.ClienteNombre, &s.ClienteApellido); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id int64) (SaleDetail, error) {
	const headerQuery = `SELECT id, cliente, vendedor, total, fecha FROM ventas WHERE id = $1`

	var detail SaleDetail
	err := r.pool.QueryRow(ctx, headerQuery, id).
		Scan(&detail.ID, &detail.Cliente, &detail.Vendedor, &detail.Total, &detail.Fecha)
	if errors.Is(err, pgx.ErrNoRows) {
		return SaleDetail{}, httpx.ErrNotFound
	}
	if err != nil {
		return SaleDetail{}, err
	}

	const itemsQuery = `SELECT d.id, d.id_pro, d.cantidad, d.precio, p.nombre
		FROM detalle d
		JOIN productos p ON p.id = d.id_pro
		WHERE d.id_venta = $1
		ORDER BY d.id`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return SaleDetail{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var it SaleItem
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Cantidad, &it.Precio, &it.Nombre); err != nil {
			return SaleDetail{}, err
		}
		detail.Items = append(detail.Items, it)
	}
	return detail, rows.Err()
}

// PurgeOldRecords invokes the server-side cleanup procedure.
func (r *Repository) PurgeOldRecords(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `CALL eliminar_registros_antiguos()`)
	return err
}

type txRepo struct {
	tx pgx.Tx
}

func (r *txRepo) GetProductsForSale(ctx context.Context, ids []int64) (map[int64]ProductSnapshot, error) {
	const query = `SELECT id, nombre, precio, stock FROM productos WHERE id = ANY($1)`

	rows, err := r.tx.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make(map[int64]ProductSnapshot, len(ids))
	for rows.Next() {
		var p ProductSnapshot
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Precio, &p.Stock); err != nil {
			return nil, err
		}
		snapshots[p.ID] = p
	}
	return snapshots, rows.Err()
}

func (r *txRepo) InsertSale(ctx context.Context, clienteID int64, vendedor string, total float64, fecha *time.Time) (int64, time.Time, error) {
	const query = `INSERT INTO ventas (cliente, vendedor, total, fecha)
		VALUES ($1, $2, $3, COALESCE($4, CURRENT_DATE))
		RETURNING id, fecha`

	var id int64
	var saleFecha time.Time
	err := r.tx.QueryRow(ctx, query, clienteID, vendedor, total, fecha).Scan(&id, &saleFecha)
	return id, saleFecha, err
}

func (r *txRepo) InsertSaleItem(ctx context.Context, item SaleItemInsert) error {
	const query = `INSERT INTO detalle (id_pro, cantidad, precio, id_venta)
		VALUES ($1, $2, $3, $4)`
	_, err := r.tx.Exec(ctx, query, item.ProductID, item.Cantidad, item.Precio, item.SaleID)
	return err
}

func (r *txRepo) DecrementStock(ctx context.Context, productID int64, cantidad float64) error {
	_, err := r.tx.Exec(ctx, `UPDATE productos SET stock = stock - $1 WHERE id = $2`, cantidad, productID)
	return err
}
