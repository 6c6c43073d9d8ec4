package record

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/contas/internal/record"
)

type recordResponse struct {
	ID            uuid.UUID   `json:"id"`
	AccessID      uuid.UUID   `json:"acesso_id"`
	Kind          record.Kind `json:"kind"`
	Category      string      `json:"category"`
	Amount        float64     `json:"amount"`
	PaymentMethod string      `json:"payment_method"`
	Description   string      `json:"description"`
	DueAt         time.Time   `json:"due_at"`
	SettledAt     *time.Time  `json:"settled_at,omitempty"`
	Status        string      `json:"status"`
	Note          string      `json:"note"`
	Active        bool        `json:"active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func toResponse(rec *record.Record) recordResponse {
	return recordResponse{
		ID:            rec.ID,
		AccessID:      rec.AccessID,
		Kind:          rec.Kind,
		Category:      rec.Category,
		Amount:        rec.Amount,
		PaymentMethod: rec.PaymentMethod,
		Description:   rec.Description,
		DueAt:         rec.DueAt,
		SettledAt:     rec.SettledAt,
		Status:        rec.Status,
		Note:          rec.Note,
		Active:        rec.Active,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func toResponseList(recs []*record.Record) []recordResponse {
	resp := make([]recordResponse, len(recs))
	for i, rec := range recs {
		resp[i] = toResponse(rec)
	}

	return resp
}

// deactivateResponse confirms a soft delete: the record id, its new active
// flag and the touched timestamp.
type deactivateResponse struct {
	Detail    string    `json:"detail"`
	ID        uuid.UUID `json:"id"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDeactivateResponse(rec *record.Record) deactivateResponse {
	return deactivateResponse{
		Detail:    fmt.Sprintf("record %s deactivated", rec.ID),
		ID:        rec.ID,
		Active:    rec.Active,
		UpdatedAt: rec.UpdatedAt,
	}
}
