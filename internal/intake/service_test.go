package intake

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
)

type mockRepository struct {
	stocks  map[int64]int64
	intakes []Intake
	nextID  int64
	txCalls int
}

func newMockRepository(stocks map[int64]int64) *mockRepository {
	if stocks == nil {
		stocks = make(map[int64]int64)
	}
	return &mockRepository{stocks: stocks, nextID: 1}
}

func (m *mockRepository) List(ctx context.Context) ([]Intake, error) {
	return m.intakes, nil
}

// WithTx emulates transactional semantics: the callback mutates a staged copy
// that is only merged back on success.
func (m *mockRepository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	m.txCalls++

	staged := &mockRepository{
		stocks:  make(map[int64]int64, len(m.stocks)),
		intakes: append([]Intake(nil), m.intakes...),
		nextID:  m.nextID,
	}
	for id, s := range m.stocks {
		staged.stocks[id] = s
	}

	if err := fn(ctx, &mockTxRepo{state: staged}); err != nil {
		return err
	}

	m.stocks = staged.stocks
	m.intakes = staged.intakes
	m.nextID = staged.nextID
	return nil
}

type mockTxRepo struct {
	state *mockRepository
}

func (t *mockTxRepo) IncrementStock(ctx context.Context, productID, cantidad int64) error {
	t.state.stocks[productID] += cantidad
	return nil
}

func (t *mockTxRepo) InsertIntake(ctx context.Context, descripcion string, total float64) (int64, error) {
	id := t.state.nextID
	t.state.nextID++
	t.state.intakes = append(t.state.intakes, Intake{ID: id, Descripcion: descripcion, Total: total})
	return id, nil
}

func price(f float64) *float64 { return &f }

func TestCreateIntake_IncrementsStockAndStoresTotal(t *testing.T) {
	repo := newMockRepository(map[int64]int64{1: 10, 2: 0})
	svc := NewService(repo)

	result, err := svc.Create(context.Background(), CreateIntakeRequest{
		Descripcion: "Reposición semanal",
		Items: []IntakeItemRequest{
			{ProductID: 1, Cantidad: 5, Precio: price(2.00)},
			{ProductID: 2, Cantidad: 3, Precio: price(4.00)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 22.00, result.Total)
	assert.Equal(t, int64(15), repo.stocks[1])
	assert.Equal(t, int64(3), repo.stocks[2])

	// Only the aggregate row survives; no per-item detail is stored.
	require.Len(t, repo.intakes, 1)
	assert.Equal(t, "Reposición semanal", repo.intakes[0].Descripcion)
	assert.Equal(t, 22.00, repo.intakes[0].Total)
}

func TestCreateIntake_EmptyItems(t *testing.T) {
	repo := newMockRepository(nil)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateIntakeRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "Items requeridos", err.Error())
	assert.Zero(t, repo.txCalls)
}

func TestCreateIntake_InvalidItemRejectsWholeBatch(t *testing.T) {
	repo := newMockRepository(map[int64]int64{1: 10})
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateIntakeRequest{
		Items: []IntakeItemRequest{
			{ProductID: 1, Cantidad: 5, Precio: price(2.00)},
			{ProductID: 1, Cantidad: 5}, // missing precio
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrBusiness)
	assert.Equal(t, "Item inválido", err.Error())

	// No partial application: the first item's increment rolled back too.
	assert.Equal(t, int64(10), repo.stocks[1])
	assert.Empty(t, repo.intakes)
}

func TestCreateIntake_MissingProductID(t *testing.T) {
	repo := newMockRepository(map[int64]int64{1: 10})
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateIntakeRequest{
		Items: []IntakeItemRequest{{Cantidad: 5, Precio: price(2.00)}},
	})
	require.Error(t, err)
	assert.Equal(t, "Item inválido", err.Error())
}
