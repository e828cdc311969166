// Command server runs the CaseDesk backend HTTP API.
//
// Configuration is read from a YAML file (CONFIG_PATH, default ./config.yaml)
// and environment variables; see internal/config for the full reference.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/casedesk/casedesk-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
