package record

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no active record matches the id.
	ErrNotFound = errors.New("record not found")
	// ErrAccessNotFound is returned when a record is created under an
	// access id that does not exist.
	ErrAccessNotFound = errors.New("access not found")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=record
type Repository interface {
	AccessExists(ctx context.Context, accessID uuid.UUID) (bool, error)
	CreateRecord(ctx context.Context, rec *Record) error
	// GetRecord only sees active records.
	GetRecord(ctx context.Context, id uuid.UUID) (*Record, error)
	UpdateRecord(ctx context.Context, rec *Record) error
	ListRecords(ctx context.Context, accessID uuid.UUID, offset, limit int) ([]*Record, int, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	Kind          Kind
	Category      string
	Amount        float64
	PaymentMethod string
	Description   string
	DueAt         time.Time
	SettledAt     *time.Time
	Status        string
	Note          string
}

// Create stores a new active record under an existing access. The access is
// checked before anything is written so a bad id persists nothing.
func (s *Service) Create(ctx context.Context, accessID uuid.UUID, params CreateParams) (*Record, error) {
	exists, err := s.repo.AccessExists(ctx, accessID)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, ErrAccessNotFound
	}

	status := params.Status
	if status == "" {
		status = StatusPending
	}

	rec := &Record{
		AccessID:      accessID,
		Kind:          params.Kind,
		Category:      params.Category,
		Amount:        params.Amount,
		PaymentMethod: params.PaymentMethod,
		Description:   params.Description,
		DueAt:         params.DueAt,
		SettledAt:     params.SettledAt,
		Status:        status,
		Note:          params.Note,
		Active:        true,
	}

	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// UpdateParams is a sparse patch: only non-nil fields are applied, the rest
// keep their stored values.
type UpdateParams struct {
	Kind          *Kind
	Category      *string
	Amount        *float64
	PaymentMethod *string
	Description   *string
	DueAt         *time.Time
	SettledAt     *time.Time
	Status        *string
	Note          *string
}

// Update patches an active record. UpdatedAt advances even when the patch
// carries no fields.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Record, error) {
	rec, err := s.repo.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Kind != nil {
		rec.Kind = *params.Kind
	}

	if params.Category != nil {
		rec.Category = *params.Category
	}

	if params.Amount != nil {
		rec.Amount = *params.Amount
	}

	if params.PaymentMethod != nil {
		rec.PaymentMethod = *params.PaymentMethod
	}

	if params.Description != nil {
		rec.Description = *params.Description
	}

	if params.DueAt != nil {
		rec.DueAt = *params.DueAt
	}

	if params.SettledAt != nil {
		rec.SettledAt = params.SettledAt
	}

	if params.Status != nil {
		rec.Status = *params.Status
	}

	if params.Note != nil {
		rec.Note = *params.Note
	}

	rec.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// Deactivate soft-deletes a record and returns it with the new Active and
// UpdatedAt values. A second call for the same id reports ErrNotFound, since
// lookups only see active records.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*Record, error) {
	rec, err := s.repo.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.Active = false
	rec.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// List returns a page of the access's active records plus the total count of
// that filtered set.
func (s *Service) List(ctx context.Context, accessID uuid.UUID, offset, limit int) ([]*Record, int, error) {
	return s.repo.ListRecords(ctx, accessID, offset, limit)
}
