package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/contas/internal/access"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, cpf, created_at, updated_at
func scanAccess(s scanner) (*access.Access, error) {
	var a access.Access

	if err := s.Scan(&a.ID, &a.CPF, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}

	return &a, nil
}

const selectAccessColumns = `id, cpf, created_at, updated_at`

func (s *Store) CreateAccess(ctx context.Context, a *access.Access) error {
	query := `
		INSERT INTO acessos (cpf, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, a.CPF).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating access: %w", err)
	}

	return nil
}

func (s *Store) GetAccessByCPF(ctx context.Context, normalizedCPF string) (*access.Access, error) {
	query := `SELECT ` + selectAccessColumns + ` FROM acessos WHERE cpf = $1`

	a, err := scanAccess(s.db.QueryRowContext(ctx, query, normalizedCPF))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, access.ErrNotFound
		}

		return nil, fmt.Errorf("getting access by cpf: %w", err)
	}

	return a, nil
}

// ListAccesses returns one page of accesses plus the count of all accesses.
// The count runs over the same (unfiltered) predicate as the page so X-Total
// reflects the whole set, not the page size.
func (s *Store) ListAccesses(ctx context.Context, offset, limit int) ([]*access.Access, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM acessos`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting accesses: %w", err)
	}

	query := `SELECT ` + selectAccessColumns + `
		FROM acessos
		ORDER BY created_at ASC
		OFFSET $1 LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing accesses: %w", err)
	}
	defer rows.Close()

	var accesses []*access.Access

	for rows.Next() {
		a, err := scanAccess(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning access: %w", err)
		}

		accesses = append(accesses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating access rows: %w", err)
	}

	return accesses, total, nil
}
