package products

import (
	"context"

	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
	"github.com/vendia-pos/vendia-pos/internal/platform/validate"
)

// Service provides product business logic.
type Service struct {
	repo Repository
}

// NewService constructs a product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns products matching the filters.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]Product, error) {
	return s.repo.List(ctx, filters)
}

// Get returns one product by id.
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, httpx.Validationf("ID inválido")
	}
	return s.repo.Get(ctx, id)
}

// GetByCode returns one product by barcode.
func (s *Service) GetByCode(ctx context.Context, code string) (Product, error) {
	if code == "" {
		return Product{}, httpx.Validationf("Código requerido")
	}
	return s.repo.GetByCode(ctx, code)
}

// Create inserts a new product and returns its id.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (int64, error) {
	if err := validate.Struct(req); err != nil {
		return 0, httpx.Validationf("Datos inválidos")
	}
	if *req.Precio < 0 {
		return 0, httpx.Validationf("Datos inválidos")
	}

	p := Product{
		Nombre: req.Nombre,
		Codigo: req.Codigo,
		Precio: *req.Precio,
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	return s.repo.Create(ctx, p)
}

// Update applies the fields present in req. A request with no recognized
// field is rejected.
func (s *Service) Update(ctx context.Context, id int64, req UpdateProductRequest) error {
	if id <= 0 {
		return httpx.Validationf("ID inválido")
	}
	changes := Changes{
		Nombre: req.Nombre,
		Codigo: req.Codigo,
		Stock:  req.Stock,
		Precio: req.Precio,
	}
	if changes.Empty() {
		return httpx.Validationf("Nada que actualizar")
	}
	return s.repo.Update(ctx, id, changes)
}

// Delete removes a product by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return httpx.Validationf("ID inválido")
	}
	return s.repo.Delete(ctx, id)
}
