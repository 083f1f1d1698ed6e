package company

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
)

// Handler exposes the company profile endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers company routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.upsert)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context())
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	// c is nil when the profile was never initialized; data is null then.
	if c == nil {
		httpx.OK(w, http.StatusOK, nil)
		return
	}
	httpx.OK(w, http.StatusOK, c)
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertCompanyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	if err := h.service.Upsert(r.Context(), req); err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, map[string]int64{"id": SingletonID})
}
