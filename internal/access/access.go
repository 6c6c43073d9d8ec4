package access

import (
	"time"

	"github.com/google/uuid"
)

// Access anchors every financial record to a validated CPF. It is created
// once per distinct normalized CPF and never deleted.
type Access struct {
	ID        uuid.UUID
	CPF       string // normalized 11-digit form
	CreatedAt time.Time
	UpdatedAt time.Time
}
