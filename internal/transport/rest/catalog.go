package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/casedesk/casedesk-backend/internal/domain"
	"github.com/casedesk/casedesk-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	List(ctx context.Context, input catalog.ListInput) (*catalog.ListResult, error)
}

// CatalogHandler serves the catalog browse endpoint.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type configResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

type catalogListResponse struct {
	Configs  []configResponse `json:"configs"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// List handles GET /api/v1/configs.
// Query params: type, sort, order (asc|desc), page, page_size.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intQueryParam(q.Get("page"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid page")
		return
	}
	pageSize, err := intQueryParam(q.Get("page_size"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid page_size")
		return
	}

	result, err := h.svc.List(r.Context(), catalog.ListInput{
		Type:     q.Get("type"),
		Sort:     q.Get("sort"),
		Desc:     q.Get("order") == "desc",
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCatalogListResponse(result))
}

func intQueryParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func toConfigResponse(c domain.Config) configResponse {
	return configResponse{
		ID:        c.ID.String(),
		Label:     c.Label,
		Type:      c.Type,
		Amount:    c.Amount,
		CreatedAt: c.CreatedAt,
	}
}

func toCatalogListResponse(result *catalog.ListResult) catalogListResponse {
	configs := make([]configResponse, len(result.Configs))
	for i, c := range result.Configs {
		configs[i] = toConfigResponse(c)
	}
	return catalogListResponse{
		Configs:  configs,
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	}
}
