// Package attachment implements attaching catalog configs to a case with
// label-based duplicate detection.
package attachment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/casedesk/casedesk-backend/internal/domain"
	"github.com/casedesk/casedesk-backend/internal/events"
)

type caseRepo interface {
	GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)
}

type configRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Config, error)
}

type caseConfigRepo interface {
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.CaseConfig, error)
	LabelsByCase(ctx context.Context, caseID uuid.UUID) (map[string]struct{}, error)
	BulkInsert(ctx context.Context, rows []domain.CaseConfig) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, ev events.CaseConfigsChanged)
}

// Service provides attach and case-config listing operations.
type Service struct {
	cases       caseRepo
	configs     configRepo
	caseConfigs caseConfigRepo
	tx          txManager
	publisher   eventPublisher
	log         *slog.Logger
}

// NewService creates a new attachment service.
func NewService(
	log *slog.Logger,
	cases caseRepo,
	configs configRepo,
	caseConfigs caseConfigRepo,
	tx txManager,
	publisher eventPublisher,
) *Service {
	return &Service{
		cases:       cases,
		configs:     configs,
		caseConfigs: caseConfigs,
		tx:          tx,
		publisher:   publisher,
		log:         log.With("service", "attachment"),
	}
}
