// Package attachment implements the case_configs repository using PostgreSQL.
// Rows in case_configs are snapshots of catalog configs at attach time; they
// do not reference the configs table and survive catalog edits.
package attachment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/casedesk/casedesk-backend/internal/adapter/postgres"
	"github.com/casedesk/casedesk-backend/internal/domain"
)

// Repo provides case_configs persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new attachment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listByCaseSQL = `
SELECT id, case_id, label, type, amount, created_at
FROM case_configs
WHERE case_id = $1
ORDER BY created_at, id`

// ListByCase returns all configs attached to a case in attach order.
// Returns an empty slice (not nil) when the case has no attachments.
func (r *Repo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.CaseConfig, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByCaseSQL, caseID)
	if err != nil {
		return nil, fmt.Errorf("list case configs: %w", err)
	}
	defer rows.Close()

	result, err := scanCaseConfigs(rows)
	if err != nil {
		return nil, fmt.Errorf("list case configs: %w", err)
	}

	return result, nil
}

const labelsByCaseSQL = `SELECT label FROM case_configs WHERE case_id = $1`

// LabelsByCase returns the set of labels already attached to a case.
func (r *Repo) LabelsByCase(ctx context.Context, caseID uuid.UUID) (map[string]struct{}, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, labelsByCaseSQL, caseID)
	if err != nil {
		return nil, fmt.Errorf("labels by case: %w", err)
	}
	defer rows.Close()

	labels := make(map[string]struct{})
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("labels by case: %w", err)
		}
		labels[label] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("labels by case: %w", err)
	}

	return labels, nil
}

const getByIDsSQL = `
SELECT id, case_id, label, type, amount, created_at
FROM case_configs
WHERE id = ANY($1::uuid[])`

// GetByIDs resolves a batch of case_config IDs. Missing IDs are silently
// absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.CaseConfig, error) {
	if len(ids) == 0 {
		return []domain.CaseConfig{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get case configs by ids: %w", err)
	}
	defer rows.Close()

	result, err := scanCaseConfigs(rows)
	if err != nil {
		return nil, fmt.Errorf("get case configs by ids: %w", err)
	}

	return result, nil
}

const insertSQL = `
INSERT INTO case_configs (id, case_id, label, type, amount, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

// BulkInsert inserts all rows or none. It is meant to run inside a
// transaction (TxManager puts the tx on ctx); the UNIQUE(case_id, label)
// constraint surfaces concurrent duplicate attaches as domain.ErrAlreadyExists.
func (r *Repo) BulkInsert(ctx context.Context, rows []domain.CaseConfig) error {
	if len(rows) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	for i := range rows {
		row := &rows[i]
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		if row.CreatedAt.IsZero() {
			row.CreatedAt = now
		}

		_, err := querier.Exec(ctx, insertSQL,
			row.ID, row.CaseID, row.Label, row.Type, row.Amount, row.CreatedAt)
		if err != nil {
			return postgres.MapError(err, "case_config", row.CaseID)
		}
	}

	return nil
}

// scanCaseConfigs scans case_configs rows into domain.CaseConfig values.
func scanCaseConfigs(rows pgx.Rows) ([]domain.CaseConfig, error) {
	var result []domain.CaseConfig
	for rows.Next() {
		var cc domain.CaseConfig
		if err := rows.Scan(&cc.ID, &cc.CaseID, &cc.Label, &cc.Type, &cc.Amount, &cc.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.CaseConfig{}
	}

	return result, nil
}
