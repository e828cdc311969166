//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casedesk/casedesk-backend/internal/adapter/postgres"
	pgattachment "github.com/casedesk/casedesk-backend/internal/adapter/postgres/attachment"
	pgcasefile "github.com/casedesk/casedesk-backend/internal/adapter/postgres/casefile"
	pgcatalog "github.com/casedesk/casedesk-backend/internal/adapter/postgres/catalog"
	"github.com/casedesk/casedesk-backend/internal/adapter/postgres/testhelper"
	"github.com/casedesk/casedesk-backend/internal/adapter/submitter"
	authpkg "github.com/casedesk/casedesk-backend/internal/auth"
	"github.com/casedesk/casedesk-backend/internal/config"
	"github.com/casedesk/casedesk-backend/internal/events"
	attachmentsvc "github.com/casedesk/casedesk-backend/internal/service/attachment"
	catalogsvc "github.com/casedesk/casedesk-backend/internal/service/catalog"
	submissionsvc "github.com/casedesk/casedesk-backend/internal/service/submission"
	"github.com/casedesk/casedesk-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// submissionRecorder captures submission payloads sent to the fake endpoint.
// ---------------------------------------------------------------------------

type submissionRecorder struct {
	mu       sync.Mutex
	payloads []map[string]any
	status   int
}

func (r *submissionRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		r.mu.Lock()
		r.payloads = append(r.payloads, payload)
		status := r.status
		r.mu.Unlock()

		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
	}
}

// setStatus makes subsequent submissions answer with the given HTTP status.
func (r *submissionRecorder) setStatus(status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
}

func (r *submissionRecorder) all() []map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]map[string]any, len(r.payloads))
	copy(out, r.payloads)
	return out
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL         string
	Client      *http.Client
	Pool        *pgxpool.Pool
	Submissions *submissionRecorder
	jwt         *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	broker := events.NewBroker(logger)
	t.Cleanup(broker.Close)

	// 3. Repositories.
	caseRepo := pgcasefile.New(pool)
	configRepo := pgcatalog.New(pool)
	caseConfigRepo := pgattachment.New(pool)

	// 4. Fake submission endpoint.
	recorder := &submissionRecorder{}
	endpoint := httptest.NewServer(recorder.handler())
	t.Cleanup(endpoint.Close)

	sender := submitter.NewClient(config.SubmissionConfig{
		EndpointURL: endpoint.URL,
		Timeout:     5 * time.Second,
	}, logger)

	// 5. JWT manager with a test secret (>= 32 chars).
	authCfg := config.AuthConfig{
		JWTSecret:      "test-secret-at-least-32-chars-long!!",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 15 * time.Minute,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg)

	// 6. Services.
	catalogService := catalogsvc.NewService(logger, configRepo, config.CatalogConfig{
		DefaultPageSize: 20,
		MaxPageSize:     100,
	})
	attachmentService := attachmentsvc.NewService(logger, caseRepo, configRepo, caseConfigRepo, txm, broker)
	submissionService := submissionsvc.NewService(logger, caseRepo, caseConfigRepo, sender, broker)

	// 7. Router.
	router := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Validator: jwtMgr,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},

		Health:  rest.NewHealthHandler(pool, "test-version"),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		Cases:   rest.NewCasesHandler(caseRepo, attachmentService, submissionService, logger),
		Events:  rest.NewEventsHandler(broker, logger),
	})

	// 8. httptest server.
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:         srv.URL,
		Client:      srv.Client(),
		Pool:        pool,
		Submissions: recorder,
		jwt:         jwtMgr,
	}
}

// authToken issues a valid access token for a fresh consultant ID.
func (ts *testServer) authToken(t *testing.T) string {
	t.Helper()

	token, err := ts.jwt.GenerateAccessToken(uuid.New())
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	return token
}

// doJSON sends a request with an optional JSON body and bearer token, and
// returns the status code plus the decoded response body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	// Middleware rejections (e.g. invalid bearer token) write plain text.
	var result map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &result)
	}
	return resp.StatusCode, result
}
