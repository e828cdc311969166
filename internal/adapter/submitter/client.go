// Package submitter delivers finalized case submissions to the external
// processing endpoint over HTTP.
package submitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/casedesk/casedesk-backend/internal/config"
	"github.com/casedesk/casedesk-backend/internal/domain"
)

// payload is the wire format the processing endpoint expects.
type payload struct {
	CaseID  uuid.UUID      `json:"caseId"`
	Status  string         `json:"status"`
	Entries []payloadEntry `json:"entries"`
}

type payloadEntry struct {
	Label  string  `json:"label"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// Client posts submissions to the configured endpoint.
type Client struct {
	endpointURL string
	httpClient  *http.Client
	log         *slog.Logger
}

// NewClient creates a Client from the submission config.
func NewClient(cfg config.SubmissionConfig, logger *slog.Logger) *Client {
	return &Client{
		endpointURL: cfg.EndpointURL,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		log:         logger.With("adapter", "submitter"),
	}
}

// Send delivers the submission. A non-2xx response or transport failure is
// returned as *domain.ExternalServiceError so callers can leave the case
// open and report the failure. The request is never retried: the endpoint
// is not known to be idempotent.
func (c *Client) Send(ctx context.Context, sub domain.Submission) error {
	p := payload{
		CaseID:  sub.CaseID,
		Status:  string(sub.Status),
		Entries: make([]payloadEntry, len(sub.Entries)),
	}
	for i, e := range sub.Entries {
		p.Entries[i] = payloadEntry{Label: e.Label, Type: e.Type, Amount: e.Amount}
	}

	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("submitter: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("submitter: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "submitting case",
		slog.String("case_id", sub.CaseID.String()),
		slog.Int("entries", len(sub.Entries)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "submission request failed",
			slog.String("case_id", sub.CaseID.String()),
			slog.String("error", err.Error()),
		)
		return &domain.ExternalServiceError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	// The endpoint signals acceptance with 200 only; anything else, including
	// other 2xx codes, must not close the case.
	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "submission rejected",
			slog.String("case_id", sub.CaseID.String()),
			slog.Int("status", resp.StatusCode),
		)
		return &domain.ExternalServiceError{StatusCode: resp.StatusCode}
	}

	c.log.InfoContext(ctx, "submission accepted",
		slog.String("case_id", sub.CaseID.String()),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}
