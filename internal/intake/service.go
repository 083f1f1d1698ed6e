package intake

import (
	"context"

	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
)

// Service coordinates stock intake operations.
type Service struct {
	repo RepositoryPort
}

// NewService constructs an intake service.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all intake records.
func (s *Service) List(ctx context.Context) ([]Intake, error) {
	return s.repo.List(ctx)
}

// Create registers an intake: every product's stock is incremented and one
// row with the aggregate total is inserted, all inside one transaction. The
// first invalid item rejects the whole batch; nothing is applied partially.
func (s *Service) Create(ctx context.Context, req CreateIntakeRequest) (CreateIntakeResult, error) {
	if len(req.Items) == 0 {
		return CreateIntakeResult{}, httpx.Validationf("Items requeridos")
	}

	var result CreateIntakeResult
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		var total float64
		for _, it := range req.Items {
			if it.ProductID <= 0 || it.Precio == nil {
				return httpx.Businessf("Item inválido")
			}
			total += float64(it.Cantidad) * *it.Precio
			if err := tx.IncrementStock(ctx, it.ProductID, it.Cantidad); err != nil {
				return err
			}
		}

		id, err := tx.InsertIntake(ctx, req.Descripcion, total)
		if err != nil {
			return err
		}
		result = CreateIntakeResult{ID: id, Total: total}
		return nil
	})
	if err != nil {
		return CreateIntakeResult{}, err
	}
	return result, nil
}
