package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/casedesk/casedesk-backend/internal/domain"
	"github.com/casedesk/casedesk-backend/internal/events"
	"github.com/casedesk/casedesk-backend/pkg/ctxutil"
)

// Submit sends the selected attached configs to the external endpoint and
// closes the case. The payload carries the case's target status (Closed);
// the case row is only updated after the endpoint accepts the submission,
// so a failed delivery leaves the case open and untouched.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ids := dedupeIDs(input.CaseConfigIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("case %s: %w", input.CaseID, domain.ErrEmptySelection)
	}

	rows, err := s.caseConfigs.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve case configs: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("case configs: %w", domain.ErrNotFound)
	}

	for _, row := range rows {
		if row.CaseID != input.CaseID {
			return nil, domain.NewValidationError("case_config_ids", "must belong to the case")
		}
	}

	c, err := s.cases.GetByID(ctx, input.CaseID)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}
	if c.IsClosed() {
		return nil, fmt.Errorf("case %s: %w", c.ID, domain.ErrCaseClosed)
	}

	// Entries follow the selection order of the request.
	byID := make(map[uuid.UUID]domain.CaseConfig, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	entries := make([]domain.SubmissionEntry, 0, len(rows))
	for _, id := range ids {
		row, ok := byID[id]
		if !ok {
			continue
		}
		entries = append(entries, domain.SubmissionEntry{
			Label:  row.Label,
			Type:   row.Type,
			Amount: row.Amount,
		})
	}

	sub := domain.Submission{
		CaseID:  c.ID,
		Status:  domain.CaseStatusClosed,
		Entries: entries,
	}

	if err := s.sender.Send(ctx, sub); err != nil {
		return nil, fmt.Errorf("send submission: %w", err)
	}

	if err := s.cases.Close(ctx, c.ID); err != nil {
		return nil, fmt.Errorf("close case: %w", err)
	}

	s.publisher.Publish(ctx, events.CaseConfigsChanged{
		CaseID: c.ID,
		Origin: events.OriginSubmit,
	})

	s.log.InfoContext(ctx, "case submitted",
		slog.String("user_id", userID.String()),
		slog.String("case_id", c.ID.String()),
		slog.Int("entries", len(entries)),
	)

	return &SubmitResult{
		CaseID:    c.ID,
		Submitted: len(entries),
		Status:    domain.CaseStatusClosed,
	}, nil
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
