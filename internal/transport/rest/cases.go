package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/casedesk/casedesk-backend/internal/domain"
	"github.com/casedesk/casedesk-backend/internal/service/attachment"
	"github.com/casedesk/casedesk-backend/internal/service/submission"
)

// caseGetter loads a case for the detail endpoint.
type caseGetter interface {
	GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)
}

// attachmentService defines the attach-side operations needed by CasesHandler.
type attachmentService interface {
	Attach(ctx context.Context, input attachment.AttachInput) (*domain.AttachResult, error)
	ListByCase(ctx context.Context, input attachment.ListInput) ([]domain.CaseConfig, error)
}

// submissionService defines the submit operation needed by CasesHandler.
type submissionService interface {
	Submit(ctx context.Context, input submission.SubmitInput) (*submission.SubmitResult, error)
}

// CasesHandler serves case-scoped REST endpoints.
type CasesHandler struct {
	cases       caseGetter
	attachments attachmentService
	submissions submissionService
	log         *slog.Logger
}

// NewCasesHandler creates a CasesHandler.
func NewCasesHandler(
	cases caseGetter,
	attachments attachmentService,
	submissions submissionService,
	logger *slog.Logger,
) *CasesHandler {
	return &CasesHandler{
		cases:       cases,
		attachments: attachments,
		submissions: submissions,
		log:         logger.With("handler", "cases"),
	}
}

type caseResponse struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type caseConfigResponse struct {
	ID        string    `json:"id"`
	CaseID    string    `json:"caseId"`
	Label     string    `json:"label"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

type attachRequest struct {
	ConfigIDs []uuid.UUID `json:"configIds"`
}

type attachResponse struct {
	Added           int      `json:"added"`
	Duplicates      int      `json:"duplicates"`
	DuplicateLabels []string `json:"duplicateLabels,omitempty"`
	Message         string   `json:"message"`
}

type submitRequest struct {
	CaseConfigIDs []uuid.UUID `json:"caseConfigIds"`
}

type submitResponse struct {
	CaseID    string `json:"caseId"`
	Submitted int    `json:"submitted"`
	Status    string `json:"status"`
}

// Get handles GET /api/v1/cases/{caseID}.
func (h *CasesHandler) Get(w http.ResponseWriter, r *http.Request) {
	caseID, ok := caseIDFromPath(w, r)
	if !ok {
		return
	}

	c, err := h.cases.GetByID(r.Context(), caseID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseResponse(c))
}

// ListConfigs handles GET /api/v1/cases/{caseID}/configs.
func (h *CasesHandler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	caseID, ok := caseIDFromPath(w, r)
	if !ok {
		return
	}

	configs, err := h.attachments.ListByCase(r.Context(), attachment.ListInput{CaseID: caseID})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	response := make([]caseConfigResponse, len(configs))
	for i, cc := range configs {
		response[i] = toCaseConfigResponse(cc)
	}

	writeJSON(w, http.StatusOK, map[string]any{"configs": response})
}

// Attach handles POST /api/v1/cases/{caseID}/configs.
func (h *CasesHandler) Attach(w http.ResponseWriter, r *http.Request) {
	caseID, ok := caseIDFromPath(w, r)
	if !ok {
		return
	}

	var req attachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.attachments.Attach(r.Context(), attachment.AttachInput{
		CaseID:    caseID,
		ConfigIDs: req.ConfigIDs,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, attachResponse{
		Added:           result.Added,
		Duplicates:      result.Duplicates,
		DuplicateLabels: result.DuplicateLabels,
		Message:         result.Message(),
	})
}

// Submit handles POST /api/v1/cases/{caseID}/submit.
func (h *CasesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	caseID, ok := caseIDFromPath(w, r)
	if !ok {
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.submissions.Submit(r.Context(), submission.SubmitInput{
		CaseID:        caseID,
		CaseConfigIDs: req.CaseConfigIDs,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		CaseID:    result.CaseID.String(),
		Submitted: result.Submitted,
		Status:    string(result.Status),
	})
}

// caseIDFromPath parses the {caseID} URL parameter, writing a 400 on failure.
func caseIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	caseID, err := uuid.Parse(chi.URLParam(r, "caseID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid case ID")
		return uuid.Nil, false
	}
	return caseID, true
}

func toCaseResponse(c *domain.Case) caseResponse {
	return caseResponse{
		ID:        c.ID.String(),
		Reference: c.Reference,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCaseConfigResponse(cc domain.CaseConfig) caseConfigResponse {
	return caseConfigResponse{
		ID:        cc.ID.String(),
		CaseID:    cc.CaseID.String(),
		Label:     cc.Label,
		Type:      cc.Type,
		Amount:    cc.Amount,
		CreatedAt: cc.CreatedAt,
	}
}
