package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casedesk/casedesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCase creates an open case row and returns the filled domain.Case.
func SeedCase(t *testing.T, pool *pgxpool.Pool) domain.Case {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Case{
		ID:        uuid.New(),
		Reference: "CASE-" + uniqueSuffix(),
		Status:    domain.CaseStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cases (id, reference, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Reference, string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCase insert: %v", err)
	}

	return c
}

// SeedClosedCase creates a case row that is already Closed.
func SeedClosedCase(t *testing.T, pool *pgxpool.Pool) domain.Case {
	t.Helper()

	c := SeedCase(t, pool)
	_, err := pool.Exec(context.Background(),
		`UPDATE cases SET status = 'Closed' WHERE id = $1`, c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedClosedCase update: %v", err)
	}
	c.Status = domain.CaseStatusClosed

	return c
}

// SeedConfig creates a catalog config row with a unique label.
func SeedConfig(t *testing.T, pool *pgxpool.Pool, typ string, amount float64) domain.Config {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cfg := domain.Config{
		ID:        uuid.New(),
		Label:     "Config " + uniqueSuffix(),
		Type:      typ,
		Amount:    amount,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO configs (id, label, type, amount, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		cfg.ID, cfg.Label, cfg.Type, cfg.Amount, cfg.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConfig insert: %v", err)
	}

	return cfg
}

// SeedCaseConfig attaches a config-shaped row directly to a case, bypassing
// the attach service. Used to pre-populate duplicate scenarios.
func SeedCaseConfig(t *testing.T, pool *pgxpool.Pool, caseID uuid.UUID, label, typ string, amount float64) domain.CaseConfig {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cc := domain.CaseConfig{
		ID:        uuid.New(),
		CaseID:    caseID,
		Label:     label,
		Type:      typ,
		Amount:    amount,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO case_configs (id, case_id, label, type, amount, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		cc.ID, cc.CaseID, cc.Label, cc.Type, cc.Amount, cc.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCaseConfig insert: %v", err)
	}

	return cc
}
