// Package catalog provides the read-only catalog browsing operations.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/casedesk/casedesk-backend/internal/config"
	"github.com/casedesk/casedesk-backend/internal/domain"
)

type configRepo interface {
	List(ctx context.Context, filter domain.CatalogFilter) ([]domain.Config, error)
	Count(ctx context.Context, typeFilter string) (int, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Config, error)
}

// Service provides catalog browsing operations.
type Service struct {
	configs configRepo
	paging  config.CatalogConfig
	log     *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, configs configRepo, paging config.CatalogConfig) *Service {
	return &Service{
		configs: configs,
		paging:  paging,
		log:     log.With("service", "catalog"),
	}
}

// ListResult is a single page of the catalog plus the total match count.
type ListResult struct {
	Configs  []domain.Config
	Total    int
	Page     int
	PageSize int
}
