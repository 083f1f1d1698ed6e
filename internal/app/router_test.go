package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendia-pos/vendia-pos/internal/clients"
	"github.com/vendia-pos/vendia-pos/internal/company"
	"github.com/vendia-pos/vendia-pos/internal/intake"
	"github.com/vendia-pos/vendia-pos/internal/products"
	"github.com/vendia-pos/vendia-pos/internal/sales"
)

// The exercised routes never reach storage, so repositories over a nil pool
// are safe here.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(RouterParams{
		Logger:          logger,
		Config:          &Config{RateLimit: 1000},
		ProductsHandler: products.NewHandler(logger, products.NewService(products.NewRepository(nil))),
		ClientsHandler:  clients.NewHandler(logger, clients.NewService(clients.NewRepository(nil))),
		SalesHandler:    sales.NewHandler(logger, sales.NewService(sales.NewRepository(nil))),
		CompanyHandler:  company.NewHandler(logger, company.NewService(company.NewRepository(nil))),
		IntakeHandler:   intake.NewHandler(logger, intake.NewService(intake.NewRepository(nil))),
	})
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"status":"ok"}}`, rec.Body.String())
}

func TestCatchAll(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nada", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"ok":false,"message":"Not found"}`, rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestInvalidPathID(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/productos/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"ok":false,"message":"ID inválido"}`, rec.Body.String())
}
