package access

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/contas/internal/access"
	"github.com/MrJamesThe3rd/contas/internal/pagination"
)

type Handler struct {
	svc *access.Service
}

func NewHandler(svc *access.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/acesso", h.getOrCreate)
	r.Get("/acessos", h.list)
}

func (h *Handler) getOrCreate(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetOrCreate(r.Context(), r.URL.Query().Get("cpf"))
	if err != nil {
		if errors.Is(err, access.ErrInvalidCPF) {
			http.Error(w, "invalid cpf", http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination.Clamp(
		pagination.QueryInt(r, "offset", 0),
		pagination.QueryInt(r, "limit", pagination.DefaultLimit),
	)

	accesses, total, err := h.svc.List(r.Context(), offset, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pagination.SetHeaders(w, total, offset, limit, "")
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(accesses)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
