package intake

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
)

// Handler exposes stock intake endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers intake routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	intakes, err := h.service.List(r.Context())
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	if intakes == nil {
		intakes = []Intake{}
	}
	httpx.OK(w, http.StatusOK, intakes)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateIntakeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusCreated, result)
}
