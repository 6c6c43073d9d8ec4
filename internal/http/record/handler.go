package record

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/contas/internal/pagination"
	"github.com/MrJamesThe3rd/contas/internal/record"
)

type Handler struct {
	svc *record.Service
}

func NewHandler(svc *record.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/registros", func(r chi.Router) {
		r.Get("/", h.list)
		r.With(middleware.AllowContentType("application/json")).Post("/", h.create)
		r.With(middleware.AllowContentType("application/json")).Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accessID, err := uuid.Parse(r.URL.Query().Get("acesso_id"))
	if err != nil {
		http.Error(w, "invalid acesso_id", http.StatusBadRequest)
		return
	}

	offset, limit := pagination.Clamp(
		pagination.QueryInt(r, "offset", 0),
		pagination.QueryInt(r, "limit", pagination.DefaultLimit),
	)

	recs, total, err := h.svc.List(r.Context(), accessID, offset, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pagination.SetHeaders(w, total, offset, limit, accessID.String())
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(recs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createRecordRequest struct {
	Kind          record.Kind `json:"kind"`
	Category      string      `json:"category"`
	Amount        float64     `json:"amount"`
	PaymentMethod string      `json:"payment_method"`
	Description   string      `json:"description"`
	DueAt         time.Time   `json:"due_at"`
	SettledAt     *time.Time  `json:"settled_at"`
	Status        string      `json:"status"`
	Note          string      `json:"note"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	accessID, err := uuid.Parse(r.URL.Query().Get("acesso_id"))
	if err != nil {
		http.Error(w, "invalid acesso_id", http.StatusBadRequest)
		return
	}

	var req createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Create(r.Context(), accessID, record.CreateParams{
		Kind:          req.Kind,
		Category:      req.Category,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
		DueAt:         req.DueAt,
		SettledAt:     req.SettledAt,
		Status:        req.Status,
		Note:          req.Note,
	})
	if err != nil {
		if errors.Is(err, record.ErrAccessNotFound) {
			http.Error(w, "access not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRecordRequest struct {
	Kind          *record.Kind `json:"kind,omitempty"`
	Category      *string      `json:"category,omitempty"`
	Amount        *float64     `json:"amount,omitempty"`
	PaymentMethod *string      `json:"payment_method,omitempty"`
	Description   *string      `json:"description,omitempty"`
	DueAt         *time.Time   `json:"due_at,omitempty"`
	SettledAt     *time.Time   `json:"settled_at,omitempty"`
	Status        *string      `json:"status,omitempty"`
	Note          *string      `json:"note,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Update(r.Context(), id, record.UpdateParams{
		Kind:          req.Kind,
		Category:      req.Category,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
		DueAt:         req.DueAt,
		SettledAt:     req.SettledAt,
		Status:        req.Status,
		Note:          req.Note,
	})
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Deactivate(r.Context(), id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toDeactivateResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
