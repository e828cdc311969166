package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/casedesk/casedesk-backend/internal/domain"
)

// List returns one page of the catalog plus the total config count, so the
// client can render paging controls. Sorting is restricted to the whitelisted
// columns; an unknown sort column is a validation error, never raw SQL.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sort := domain.CatalogSort(input.Sort)
	if input.Sort == "" {
		sort = domain.CatalogSortLabel
	}

	page := input.Page
	if page < 1 {
		page = 1
	}

	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = s.paging.DefaultPageSize
	}
	if pageSize > s.paging.MaxPageSize {
		pageSize = s.paging.MaxPageSize
	}

	configs, err := s.configs.List(ctx, domain.CatalogFilter{
		Type:   input.Type,
		Sort:   sort,
		Desc:   input.Desc,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}

	total, err := s.configs.Count(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("count configs: %w", err)
	}

	s.log.DebugContext(ctx, "catalog listed",
		slog.Int("page", page),
		slog.Int("page_size", pageSize),
		slog.Int("total", total),
	)

	return &ListResult{
		Configs:  configs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
