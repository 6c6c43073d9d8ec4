package access

import (
	"context"
	"errors"

	"github.com/MrJamesThe3rd/contas/internal/cpf"
)

var (
	// ErrInvalidCPF is returned when the identifier fails check-digit validation.
	ErrInvalidCPF = errors.New("invalid cpf")
	// ErrNotFound is returned when no access matches the lookup.
	ErrNotFound = errors.New("access not found")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=access
type Repository interface {
	CreateAccess(ctx context.Context, a *Access) error
	GetAccessByCPF(ctx context.Context, normalizedCPF string) (*Access, error)
	ListAccesses(ctx context.Context, offset, limit int) ([]*Access, int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetOrCreate returns the access for the given CPF, creating it on first
// sight. The identifier is normalized before lookup, so formatted and bare
// inputs resolve to the same access; repeated calls are idempotent.
func (s *Service) GetOrCreate(ctx context.Context, rawCPF string) (*Access, error) {
	if !cpf.Valid(rawCPF) {
		return nil, ErrInvalidCPF
	}

	normalized := cpf.Normalize(rawCPF)

	existing, err := s.repo.GetAccessByCPF(ctx, normalized)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	a := &Access{CPF: normalized}
	if err := s.repo.CreateAccess(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// List returns a page of accesses plus the total count. No ownership
// filtering applies; every access is visible.
func (s *Service) List(ctx context.Context, offset, limit int) ([]*Access, int, error) {
	return s.repo.ListAccesses(ctx, offset, limit)
}
