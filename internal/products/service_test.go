package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
)

type mockRepository struct {
	products map[int64]Product
	nextID   int64

	lastChanges  Changes
	updateCalled bool
}

func newMockRepository() *mockRepository {
	return &mockRepository{products: make(map[int64]Product), nextID: 1}
}

func (m *mockRepository) List(ctx context.Context, filters ListFilters) ([]Product, error) {
	var out []Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id int64) (Product, error) {
	p, ok := m.products[id]
	if !ok {
		return Product{}, httpx.ErrNotFound
	}
	return p, nil
}

func (m *mockRepository) GetByCode(ctx context.Context, code string) (Product, error) {
	for _, p := range m.products {
		if p.Codigo != nil && *p.Codigo == code {
			return p, nil
		}
	}
	return Product{}, httpx.ErrNotFound
}

func (m *mockRepository) Create(ctx context.Context, p Product) (int64, error) {
	p.ID = m.nextID
	m.nextID++
	m.products[p.ID] = p
	return p.ID, nil
}

func (m *mockRepository) Update(ctx context.Context, id int64, changes Changes) error {
	m.updateCalled = true
	m.lastChanges = changes
	p := m.products[id]
	if changes.Nombre != nil {
		p.Nombre = *changes.Nombre
	}
	if changes.Codigo != nil {
		p.Codigo = changes.Codigo
	}
	if changes.Stock != nil {
		p.Stock = *changes.Stock
	}
	if changes.Precio != nil {
		p.Precio = *changes.Precio
	}
	m.products[id] = p
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	delete(m.products, id)
	return nil
}

func strPtr(s string) *string    { return &s }
func intPtr(i int64) *int64      { return &i }
func fltPtr(f float64) *float64  { return &f }

func TestCreateProduct(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), CreateProductRequest{
		Nombre: "Widget",
		Codigo: strPtr("W1"),
		Stock:  intPtr(10),
		Precio: fltPtr(5.00),
	})
	require.NoError(t, err)

	p := repo.products[id]
	assert.Equal(t, "Widget", p.Nombre)
	assert.Equal(t, int64(10), p.Stock)
	assert.Equal(t, 5.00, p.Precio)
}

func TestCreateProduct_Invalid(t *testing.T) {
	svc := NewService(newMockRepository())

	cases := []CreateProductRequest{
		{Precio: fltPtr(5.00)},               // missing nombre
		{Nombre: "Widget"},                    // missing precio
		{Nombre: "Widget", Precio: fltPtr(-1)}, // negative precio
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.ErrorIs(t, err, httpx.ErrValidation)
	}
}

// Fetching by id and by code must return identical field values.
func TestProductRoundTrip(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), CreateProductRequest{
		Nombre: "Widget",
		Codigo: strPtr("W1"),
		Stock:  intPtr(10),
		Precio: fltPtr(5.00),
	})
	require.NoError(t, err)

	byID, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	byCode, err := svc.GetByCode(context.Background(), "W1")
	require.NoError(t, err)

	assert.Equal(t, byID, byCode)
	assert.Equal(t, "Widget", byID.Nombre)
}

func TestUpdateProduct_NoFieldsRejected(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	err := svc.Update(context.Background(), 1, UpdateProductRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "Nada que actualizar", err.Error())
	assert.False(t, repo.updateCalled)
}

func TestUpdateProduct_SingleFieldOnly(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), CreateProductRequest{
		Nombre: "Widget",
		Codigo: strPtr("W1"),
		Stock:  intPtr(10),
		Precio: fltPtr(5.00),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Update(context.Background(), id, UpdateProductRequest{Precio: fltPtr(6.50)}))

	p := repo.products[id]
	assert.Equal(t, 6.50, p.Precio)
	assert.Equal(t, "Widget", p.Nombre, "untouched fields keep their value")
	assert.Equal(t, int64(10), p.Stock)
	assert.Nil(t, repo.lastChanges.Nombre)
	assert.Nil(t, repo.lastChanges.Stock)
}

func TestGetProduct_InvalidID(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Get(context.Background(), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrValidation)
}

func TestDeleteProduct(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), CreateProductRequest{Nombre: "Widget", Precio: fltPtr(5)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), id))
	_, err = svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}
