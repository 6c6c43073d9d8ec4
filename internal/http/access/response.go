package access

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/contas/internal/access"
)

type accessResponse struct {
	ID        uuid.UUID `json:"id"`
	CPF       string    `json:"cpf"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(a *access.Access) accessResponse {
	return accessResponse{
		ID:        a.ID,
		CPF:       a.CPF,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toResponseList(accesses []*access.Access) []accessResponse {
	resp := make([]accessResponse, len(accesses))
	for i, a := range accesses {
		resp[i] = toResponse(a)
	}

	return resp
}
