// Package submission implements sending a case's attached configs to the
// external processing endpoint and closing the case.
package submission

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/casedesk/casedesk-backend/internal/domain"
	"github.com/casedesk/casedesk-backend/internal/events"
)

type caseRepo interface {
	GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)
	Close(ctx context.Context, caseID uuid.UUID) error
}

type caseConfigRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.CaseConfig, error)
}

type sender interface {
	Send(ctx context.Context, sub domain.Submission) error
}

type eventPublisher interface {
	Publish(ctx context.Context, ev events.CaseConfigsChanged)
}

// Service provides the submit operation.
type Service struct {
	cases       caseRepo
	caseConfigs caseConfigRepo
	sender      sender
	publisher   eventPublisher
	log         *slog.Logger
}

// NewService creates a new submission service.
func NewService(
	log *slog.Logger,
	cases caseRepo,
	caseConfigs caseConfigRepo,
	snd sender,
	publisher eventPublisher,
) *Service {
	return &Service{
		cases:       cases,
		caseConfigs: caseConfigs,
		sender:      snd,
		publisher:   publisher,
		log:         log.With("service", "submission"),
	}
}

// SubmitResult reports a completed submission.
type SubmitResult struct {
	CaseID    uuid.UUID
	Submitted int
	Status    domain.CaseStatus
}
