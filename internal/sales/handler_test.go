package sales

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo *mockRepository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, NewService(repo))
	r := chi.NewRouter()
	r.Route("/api/ventas", h.MountRoutes)
	return r
}

type envelope struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestCreateSaleEndpoint(t *testing.T) {
	repo := newMockRepository(widget())
	router := newTestRouter(repo)

	rec, env := doRequest(t, router, http.MethodPost, "/api/ventas",
		`{"clienteId":2,"vendedor":"Bob","items":[{"productId":1,"cantidad":3}]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.OK)

	var result CreateSaleResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 15.00, result.Total)
	assert.Equal(t, 7.0, repo.products[1].Stock)
}

func TestCreateSaleEndpoint_InsufficientStock(t *testing.T) {
	repo := newMockRepository(widget())
	router := newTestRouter(repo)

	rec, env := doRequest(t, router, http.MethodPost, "/api/ventas",
		`{"clienteId":2,"vendedor":"Bob","items":[{"productId":1,"cantidad":20}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.OK)
	assert.Equal(t, "Stock insuficiente para #1", env.Message)
	assert.Equal(t, 10.0, repo.products[1].Stock)
}

func TestCreateSaleEndpoint_MalformedBody(t *testing.T) {
	router := newTestRouter(newMockRepository(widget()))

	rec, env := doRequest(t, router, http.MethodPost, "/api/ventas", `{"clienteId":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.OK)
	assert.Equal(t, "Datos inválidos", env.Message)
}

func TestListSalesEndpoint(t *testing.T) {
	repo := newMockRepository()
	repo.listResult = []SaleWithClient{
		{Sale: Sale{ID: 1, Cliente: 2, Vendedor: "Bob", Total: 15}, ClienteNombre: "Ana", ClienteApellido: ""},
	}
	router := newTestRouter(repo)

	rec, env := doRequest(t, router, http.MethodGet, "/api/ventas", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.OK)

	var sales []SaleWithClient
	require.NoError(t, json.Unmarshal(env.Data, &sales))
	require.Len(t, sales, 1)
	assert.Equal(t, "Ana", sales[0].ClienteNombre)
}

func TestGetSaleEndpoint_NotFound(t *testing.T) {
	router := newTestRouter(newMockRepository())

	rec, env := doRequest(t, router, http.MethodGet, "/api/ventas/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.OK)
}

func TestGetSaleEndpoint_InvalidID(t *testing.T) {
	router := newTestRouter(newMockRepository())

	rec, env := doRequest(t, router, http.MethodGet, "/api/ventas/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID inválido", env.Message)
}

func TestCleanupEndpoint(t *testing.T) {
	repo := newMockRepository()
	router := newTestRouter(repo)

	rec, env := doRequest(t, router, http.MethodPost, "/api/ventas/cleanup", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.OK)
	assert.True(t, repo.purged)
	assert.JSONEq(t, `{"cleaned":true}`, string(env.Data))
}
