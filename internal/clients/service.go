package clients

import (
	"context"

	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
	"github.com/vendia-pos/vendia-pos/internal/platform/validate"
)

// Service provides client business logic.
type Service struct {
	repo Repository
}

// NewService constructs a client service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns clients matching the filters.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]Client, error) {
	return s.repo.List(ctx, filters)
}

// Get returns one client by id.
func (s *Service) Get(ctx context.Context, id int64) (Client, error) {
	if id <= 0 {
		return Client{}, httpx.Validationf("ID inválido")
	}
	return s.repo.Get(ctx, id)
}

// Create inserts a new client and returns its id.
func (s *Service) Create(ctx context.Context, req CreateClientRequest) (int64, error) {
	if err := validate.Struct(req); err != nil {
		return 0, httpx.Validationf("Nombre requerido")
	}
	c := Client{
		Cedula:    req.Cedula,
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	}
	return s.repo.Create(ctx, c)
}

// Update applies the fields present in req.
func (s *Service) Update(ctx context.Context, id int64, req UpdateClientRequest) error {
	if id <= 0 {
		return httpx.Validationf("ID inválido")
	}
	changes := Changes{
		Cedula:    req.Cedula,
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	}
	if changes.Empty() {
		return httpx.Validationf("Nada que actualizar")
	}
	return s.repo.Update(ctx, id, changes)
}

// Delete removes a client. The walk-in sentinel row is rejected before any
// query executes.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return httpx.Validationf("ID inválido")
	}
	if id == ProtectedClientID {
		return httpx.Businessf("No se puede eliminar C/F")
	}
	return s.repo.Delete(ctx, id)
}
