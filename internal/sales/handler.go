package sales

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vendia-pos/vendia-pos/internal/platform/httpx"
)

// Handler exposes sale endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers sale routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/", h.create)
	r.Post("/cleanup", h.cleanup)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.List(r.Context())
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	if sales == nil {
		sales = []SaleWithClient{}
	}
	httpx.OK(w, http.StatusOK, sales)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Fail(w, http.StatusBadRequest, "ID inválido")
		return
	}
	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	if detail.Items == nil {
		detail.Items = []SaleItem{}
	}
	httpx.OK(w, http.StatusOK, detail)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
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

func (h *Handler) cleanup(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Cleanup(r.Context()); err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, map[string]bool{"cleaned": true})
}
