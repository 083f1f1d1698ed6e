package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendia-pos/vendia-pos/internal/clients"
	"github.com/vendia-pos/vendia-pos/internal/company"
	"github.com/vendia-pos/vendia-pos/internal/intake"
	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
	"github.com/vendia-pos/vendia-pos/internal/products"
	"github.com/vendia-pos/vendia-pos/internal/sales"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	ProductsHandler *products.Handler
	ClientsHandler  *clients.Handler
	SalesHandler    *sales.Handler
	CompanyHandler  *company.Handler
	IntakeHandler   *intake.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.OK(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/productos", params.ProductsHandler.MountRoutes)
	r.Route("/api/clientes", params.ClientsHandler.MountRoutes)
	r.Route("/api/ventas", params.SalesHandler.MountRoutes)
	r.Route("/api/empresa", params.CompanyHandler.MountRoutes)
	r.Route("/api/ingreso-producto", params.IntakeHandler.MountRoutes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusNotFound, "Not found")
	})

	return r
}
