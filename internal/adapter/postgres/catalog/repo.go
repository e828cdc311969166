// Package catalog implements the catalog Config repository using PostgreSQL.
// It serves the read-only browse surface: paginated, sortable listing plus
// batch resolution of selected config IDs.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/casedesk/casedesk-backend/internal/adapter/postgres"
	"github.com/casedesk/casedesk-backend/internal/domain"
)

// builder is the shared squirrel statement builder with $N placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides catalog config persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const configColumns = "id, label, type, amount, created_at"

// List returns a page of catalog configs ordered by the requested column.
// Returns an empty slice (not nil) when the page is empty.
func (r *Repo) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.Config, error) {
	q := builder.
		Select(strings.Split(configColumns, ", ")...).
		From("configs")

	if filter.Type != "" {
		q = q.Where(squirrel.Eq{"type": filter.Type})
	}

	order := string(filter.Sort)
	if filter.Desc {
		order += " DESC"
	}
	// Secondary key keeps pages stable when the sort column has ties.
	q = q.OrderBy(order, "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list configs query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}
	defer rows.Close()

	result, err := scanConfigs(rows)
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}

	return result, nil
}

// Count returns the total number of catalog configs matching the type filter.
func (r *Repo) Count(ctx context.Context, typeFilter string) (int, error) {
	q := builder.Select("count(*)").From("configs")
	if typeFilter != "" {
		q = q.Where(squirrel.Eq{"type": typeFilter})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count configs query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count configs: %w", err)
	}

	return count, nil
}

const getByIDsSQL = `
SELECT ` + configColumns + `
FROM configs
WHERE id = ANY($1::uuid[])`

// GetByIDs resolves a batch of config IDs. IDs that do not exist are silently
// absent from the result; the caller decides whether that matters. Result
// order is unspecified.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Config, error) {
	if len(ids) == 0 {
		return []domain.Config{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get configs by ids: %w", err)
	}
	defer rows.Close()

	result, err := scanConfigs(rows)
	if err != nil {
		return nil, fmt.Errorf("get configs by ids: %w", err)
	}

	return result, nil
}

// scanConfigs scans rows selected with configColumns into domain.Config values.
func scanConfigs(rows pgx.Rows) ([]domain.Config, error) {
	var result []domain.Config
	for rows.Next() {
		var c domain.Config
		if err := rows.Scan(&c.ID, &c.Label, &c.Type, &c.Amount, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Config{}
	}

	return result, nil
}
