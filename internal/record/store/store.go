package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/contas/internal/record"
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

// Expected column order: id, acesso_id, kind, category, amount,
// payment_method, description, due_at, settled_at, status, note, active,
// created_at, updated_at
func scanRecord(s scanner) (*record.Record, error) {
	var (
		rec     record.Record
		kindStr string
	)

	if err := s.Scan(
		&rec.ID, &rec.AccessID, &kindStr, &rec.Category, &rec.Amount,
		&rec.PaymentMethod, &rec.Description, &rec.DueAt, &rec.SettledAt,
		&rec.Status, &rec.Note, &rec.Active, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}

	rec.Kind = record.Kind(kindStr)

	return &rec, nil
}

const selectRecordColumns = `
	id, acesso_id, kind, category, amount, payment_method, description,
	due_at, settled_at, status, note, active, created_at, updated_at
`

func (s *Store) AccessExists(ctx context.Context, accessID uuid.UUID) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM acessos WHERE id = $1)`, accessID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking access: %w", err)
	}

	return exists, nil
}

func (s *Store) CreateRecord(ctx context.Context, rec *record.Record) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning record tx: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO registros (acesso_id, kind, category, amount, payment_method, description, due_at, settled_at, status, note, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		rec.AccessID,
		rec.Kind,
		rec.Category,
		rec.Amount,
		rec.PaymentMethod,
		rec.Description,
		rec.DueAt,
		rec.SettledAt,
		rec.Status,
		rec.Note,
		rec.Active,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating record: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing record: %w", err)
	}

	return nil
}

func (s *Store) GetRecord(ctx context.Context, id uuid.UUID) (*record.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM registros
		WHERE id = $1 AND active`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, record.ErrNotFound
		}

		return nil, fmt.Errorf("getting record: %w", err)
	}

	return rec, nil
}

func (s *Store) UpdateRecord(ctx context.Context, rec *record.Record) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning record tx: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		UPDATE registros
		SET kind = $1, category = $2, amount = $3, payment_method = $4,
			description = $5, due_at = $6, settled_at = $7, status = $8,
			note = $9, active = $10, updated_at = $11
		WHERE id = $12
	`

	if _, err := dbTx.ExecContext(ctx, query,
		rec.Kind,
		rec.Category,
		rec.Amount,
		rec.PaymentMethod,
		rec.Description,
		rec.DueAt,
		rec.SettledAt,
		rec.Status,
		rec.Note,
		rec.Active,
		rec.UpdatedAt,
		rec.ID,
	); err != nil {
		return fmt.Errorf("updating record: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing record: %w", err)
	}

	return nil
}

// ListRecords returns one page of the access's active records plus the count
// of that whole filtered set, so X-Total is independent of the page size.
func (s *Store) ListRecords(ctx context.Context, accessID uuid.UUID, offset, limit int) ([]*record.Record, int, error) {
	var total int

	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM registros WHERE acesso_id = $1 AND active`, accessID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("counting records: %w", err)
	}

	query := `SELECT ` + selectRecordColumns + `
		FROM registros
		WHERE acesso_id = $1 AND active
		ORDER BY due_at ASC
		OFFSET $2 LIMIT $3`

	rows, err := s.db.QueryContext(ctx, query, accessID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var recs []*record.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning record: %w", err)
		}

		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating record rows: %w", err)
	}

	return recs, total, nil
}
