package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/casedesk/casedesk-backend/internal/config"
	"github.com/casedesk/casedesk-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the HTTP router needs.
type RouterDeps struct {
	Logger    *slog.Logger
	Validator middleware.TokenValidator
	CORS      config.CORSConfig

	Health  *HealthHandler
	Catalog *CatalogHandler
	Cases   *CasesHandler
	Events  *EventsHandler
}

// NewRouter assembles the full HTTP surface: health probes unauthenticated,
// the API behind bearer-token auth.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	base := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)

	r.Get("/health", deps.Health.Health)
	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(deps.Validator))

		r.Get("/configs", deps.Catalog.List)

		r.Route("/cases/{caseID}", func(r chi.Router) {
			r.Get("/", deps.Cases.Get)
			r.Get("/configs", deps.Cases.ListConfigs)
			r.Post("/configs", deps.Cases.Attach)
			r.Post("/submit", deps.Cases.Submit)
			r.Get("/events", deps.Events.Stream)
		})
	})

	return base(r)
}
