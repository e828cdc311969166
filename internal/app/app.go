package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (migrations)
	"github.com/pressly/goose/v3"

	"github.com/casedesk/casedesk-backend/internal/adapter/postgres"
	pgattachment "github.com/casedesk/casedesk-backend/internal/adapter/postgres/attachment"
	pgcasefile "github.com/casedesk/casedesk-backend/internal/adapter/postgres/casefile"
	pgcatalog "github.com/casedesk/casedesk-backend/internal/adapter/postgres/catalog"
	"github.com/casedesk/casedesk-backend/internal/adapter/submitter"
	"github.com/casedesk/casedesk-backend/internal/auth"
	"github.com/casedesk/casedesk-backend/internal/config"
	"github.com/casedesk/casedesk-backend/internal/events"
	attachmentsvc "github.com/casedesk/casedesk-backend/internal/service/attachment"
	catalogsvc "github.com/casedesk/casedesk-backend/internal/service/catalog"
	submissionsvc "github.com/casedesk/casedesk-backend/internal/service/submission"
	"github.com/casedesk/casedesk-backend/internal/transport/rest"
	"github.com/casedesk/casedesk-backend/migrations"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database pool, wires repositories, services and the HTTP
// transport, then serves until ctx is cancelled and shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.Migrate {
		if err := runMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	caseRepo := pgcasefile.New(pool)
	configRepo := pgcatalog.New(pool)
	caseConfigRepo := pgattachment.New(pool)
	txManager := postgres.NewTxManager(pool)

	broker := events.NewBroker(logger)
	defer broker.Close()

	sender := submitter.NewClient(cfg.Submission, logger)

	catalogService := catalogsvc.NewService(logger, configRepo, cfg.Catalog)
	attachmentService := attachmentsvc.NewService(logger, caseRepo, configRepo, caseConfigRepo, txManager, broker)
	submissionService := submissionsvc.NewService(logger, caseRepo, caseConfigRepo, sender, broker)

	jwtManager := auth.NewJWTManager(cfg.Auth)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Validator: jwtManager,
		CORS:      cfg.CORS,

		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		Cases:   rest.NewCasesHandler(caseRepo, attachmentService, submissionService, logger),
		Events:  rest.NewEventsHandler(broker, logger),
	})

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")

	return nil
}

// runMigrations applies the embedded goose migrations over database/sql.
// A separate short-lived connection is used: goose requires *sql.DB, while
// the application itself runs on pgxpool.
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.PingContext(migrateCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(migrateCtx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
