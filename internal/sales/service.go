package sales

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
	"github.com/vendia-pos/vendia-pos/internal/platform/validate"
)

// Service coordinates sale operations.
type Service struct {
	repo RepositoryPort
}

// NewService constructs a sale service.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all sales joined with the client name.
func (s *Service) List(ctx context.Context) ([]SaleWithClient, error) {
	return s.repo.List(ctx)
}

// Get returns one sale with its line items.
func (s *Service) Get(ctx context.Context, id int64) (SaleDetail, error) {
	if id <= 0 {
		return SaleDetail{}, httpx.Validationf("ID inválido")
	}
	return s.repo.Get(ctx, id)
}

// Create registers a sale. The total is computed server-side from the product
// snapshot loaded at the start of the transaction; the sale header, its line
// items and the stock decrements commit or roll back as one unit.
func (s *Service) Create(ctx context.Context, req CreateSaleRequest) (CreateSaleResult, error) {
	// Fail fast before opening a transaction.
	if req.ClienteID <= 0 || strings.TrimSpace(req.Vendedor) == "" || len(req.Items) == 0 {
		return CreateSaleResult{}, httpx.Validationf("Datos inválidos")
	}

	var result CreateSaleResult
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		ids := distinctProductIDs(req.Items)
		if len(ids) == 0 {
			return httpx.Businessf("Items sin productId")
		}

		snapshot, err := tx.GetProductsForSale(ctx, ids)
		if err != nil {
			return err
		}

		var total float64
		for _, it := range req.Items {
			if it.ProductID <= 0 || !isFinitePositive(it.Cantidad) {
				return httpx.Businessf("Item inválido")
			}
			p, ok := snapshot[it.ProductID]
			if !ok {
				return httpx.Businessf("Producto #%d no existe", it.ProductID)
			}
			// Checked against the snapshot, not re-read between lines.
			if p.Stock < it.Cantidad {
				return httpx.Businessf("Stock insuficiente para #%d", it.ProductID)
			}
			total += effectivePrice(it, p) * it.Cantidad
		}

		var fecha *time.Time
		if req.FechaISO != "" {
			if d, ok := validate.DateOnly(req.FechaISO); ok {
				fecha = &d
			}
		}

		saleID, saleFecha, err := tx.InsertSale(ctx, req.ClienteID, req.Vendedor, total, fecha)
		if err != nil {
			return err
		}

		for _, it := range req.Items {
			item := SaleItemInsert{
				ProductID: it.ProductID,
				Cantidad:  it.Cantidad,
				Precio:    effectivePrice(it, snapshot[it.ProductID]),
				SaleID:    saleID,
			}
			if err := tx.InsertSaleItem(ctx, item); err != nil {
				return err
			}
			if err := tx.DecrementStock(ctx, it.ProductID, it.Cantidad); err != nil {
				return err
			}
		}

		result = CreateSaleResult{ID: saleID, Total: total, Fecha: saleFecha}
		return nil
	})
	if err != nil {
		return CreateSaleResult{}, err
	}
	return result, nil
}

// Cleanup invokes the server-side purge of old sale records.
func (s *Service) Cleanup(ctx context.Context) error {
	return s.repo.PurgeOldRecords(ctx)
}

// effectivePrice is the caller override when present, else the catalog price
// from the snapshot.
func effectivePrice(it SaleItemRequest, p ProductSnapshot) float64 {
	if it.Precio != nil {
		return *it.Precio
	}
	return p.Precio
}

func isFinitePositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func distinctProductIDs(items []SaleItemRequest) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		if it.ProductID <= 0 {
			continue
		}
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}
