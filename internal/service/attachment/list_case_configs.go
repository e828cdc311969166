package attachment

import (
	"context"
	"fmt"

	"github.com/casedesk/casedesk-backend/internal/domain"
	"github.com/casedesk/casedesk-backend/pkg/ctxutil"
)

// ListByCase returns the configs attached to a case in attach order. The
// case itself is loaded first so a missing case surfaces as ErrNotFound
// rather than an empty list.
func (s *Service) ListByCase(ctx context.Context, input ListInput) ([]domain.CaseConfig, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.cases.GetByID(ctx, input.CaseID); err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}

	configs, err := s.caseConfigs.ListByCase(ctx, input.CaseID)
	if err != nil {
		return nil, fmt.Errorf("list case configs: %w", err)
	}

	return configs, nil
}
