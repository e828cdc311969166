package attachment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/casedesk/casedesk-backend/internal/domain"
	"github.com/casedesk/casedesk-backend/internal/events"
	"github.com/casedesk/casedesk-backend/pkg/ctxutil"
)

// Attach copies the selected catalog configs onto the case, skipping any
// whose label is already attached. The whole batch is written in one
// transaction: either every new row lands or none do. Selected IDs that no
// longer exist in the catalog are ignored. An event is published only when
// at least one row was added.
func (s *Service) Attach(ctx context.Context, input AttachInput) (*domain.AttachResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.cases.GetByID(ctx, input.CaseID)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}
	if c.IsClosed() {
		return nil, fmt.Errorf("case %s: %w", c.ID, domain.ErrCaseClosed)
	}

	// Repeated IDs in one request count once, first occurrence wins.
	configIDs := dedupeIDs(input.ConfigIDs)

	if len(configIDs) == 0 {
		return &domain.AttachResult{}, nil
	}

	resolved, err := s.configs.GetByIDs(ctx, configIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve configs: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Config, len(resolved))
	for _, cfg := range resolved {
		byID[cfg.ID] = cfg
	}

	existing, err := s.caseConfigs.LabelsByCase(ctx, input.CaseID)
	if err != nil {
		return nil, fmt.Errorf("labels by case: %w", err)
	}

	// Partition in request order so the duplicate list reads in the order
	// the user selected. A label attached earlier in the same request is a
	// duplicate too.
	var toAdd []domain.CaseConfig
	result := &domain.AttachResult{}
	for _, id := range configIDs {
		cfg, ok := byID[id]
		if !ok {
			continue
		}

		if _, dup := existing[cfg.Label]; dup {
			result.Duplicates++
			result.DuplicateLabels = append(result.DuplicateLabels, cfg.Label)
			continue
		}
		existing[cfg.Label] = struct{}{}

		toAdd = append(toAdd, domain.CaseConfig{
			CaseID: input.CaseID,
			Label:  cfg.Label,
			Type:   cfg.Type,
			Amount: cfg.Amount,
		})
	}
	result.Added = len(toAdd)

	if len(toAdd) > 0 {
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			return s.caseConfigs.BulkInsert(txCtx, toAdd)
		})
		if err != nil {
			return nil, fmt.Errorf("attach configs: %w", err)
		}

		s.publisher.Publish(ctx, events.CaseConfigsChanged{
			CaseID: input.CaseID,
			Origin: events.OriginAttach,
		})
	}

	s.log.InfoContext(ctx, "configs attached",
		slog.String("user_id", userID.String()),
		slog.String("case_id", input.CaseID.String()),
		slog.Int("added", result.Added),
		slog.Int("duplicates", result.Duplicates),
	)

	return result, nil
}

// dedupeIDs removes repeated IDs preserving first-occurrence order.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
