// Package casefile implements the Case repository using PostgreSQL.
package casefile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/casedesk/casedesk-backend/internal/adapter/postgres"
	"github.com/casedesk/casedesk-backend/internal/domain"
)

// Repo provides case persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new case repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, reference, status, created_at, updated_at
FROM cases
WHERE id = $1`

// GetByID returns a case by primary key.
// Returns domain.ErrNotFound if the case does not exist.
func (r *Repo) GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Case
	var status string
	err := querier.QueryRow(ctx, getByIDSQL, caseID).
		Scan(&c.ID, &c.Reference, &status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "case", caseID)
	}
	c.Status = domain.CaseStatus(status)

	return &c, nil
}

const createSQL = `
INSERT INTO cases (id, reference, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, reference, status, created_at, updated_at`

// Create inserts a new open case and returns the persisted row.
// Returns domain.ErrAlreadyExists if the reference is taken.
func (r *Repo) Create(ctx context.Context, reference string) (*domain.Case, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()

	var c domain.Case
	var status string
	err := querier.QueryRow(ctx, createSQL,
		uuid.New(), reference, string(domain.CaseStatusOpen), now, now).
		Scan(&c.ID, &c.Reference, &status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "case", uuid.Nil)
	}
	c.Status = domain.CaseStatus(status)

	return &c, nil
}

const closeSQL = `
UPDATE cases
SET status = 'Closed', updated_at = now()
WHERE id = $1 AND status = 'Open'`

// Close transitions a case from Open to Closed.
// Returns domain.ErrCaseClosed if the case is already closed and
// domain.ErrNotFound if it does not exist.
func (r *Repo) Close(ctx context.Context, caseID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, closeSQL, caseID)
	if err != nil {
		return postgres.MapError(err, "case", caseID)
	}

	if tag.RowsAffected() == 0 {
		// Distinguish a missing case from one already closed.
		if _, err := r.GetByID(ctx, caseID); err != nil {
			return err
		}
		return fmt.Errorf("case %s: %w", caseID, domain.ErrCaseClosed)
	}

	return nil
}
