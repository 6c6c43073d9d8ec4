package record

import (
	"time"

	"github.com/google/uuid"
)

// Kind labels a record as money in or money out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// StatusPending is assigned when a record is created without an explicit
// status. Status is otherwise free text; nothing constrains it to a fixed set.
const StatusPending = "pending"

// Record is a financial entry owned by an access. Records are never
// physically deleted: Deactivate flips Active and the lookups only see
// active rows.
type Record struct {
	ID            uuid.UUID
	AccessID      uuid.UUID
	Kind          Kind
	Category      string
	Amount        float64
	PaymentMethod string
	Description   string
	DueAt         time.Time
	SettledAt     *time.Time
	Status        string
	Note          string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
