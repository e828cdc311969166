// Command seed-case opens a new case, optionally alongside a handful of demo
// catalog configs. It is intended for local development and staging, not as
// part of the main server.
//
// Flags:
//
//	--reference      case reference (default: generated CASE-<suffix>)
//	--demo-configs   number of demo catalog configs to insert (default: 0)
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casedesk/casedesk-backend/internal/adapter/postgres/casefile"
)

func main() {
	referenceFlag := flag.String("reference", "", "case reference (default: generated)")
	demoConfigsFlag := flag.Int("demo-configs", 0, "number of demo catalog configs to insert")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	reference := *referenceFlag
	if reference == "" {
		reference = "CASE-" + uuid.New().String()[:8]
	}

	c, err := casefile.New(pool).Create(ctx, reference)
	if err != nil {
		log.Fatalf("create case: %v", err)
	}

	fmt.Printf("Created case %s (%s).\n", c.Reference, c.ID)

	for i := 0; i < *demoConfigsFlag; i++ {
		label := fmt.Sprintf("Demo Config %s", uuid.New().String()[:8])
		_, err := pool.Exec(ctx,
			`INSERT INTO configs (id, label, type, amount, created_at)
			 VALUES ($1, $2, $3, $4, now())`,
			uuid.New(), label, "demo", float64((i+1)*25),
		)
		if err != nil {
			log.Fatalf("insert demo config: %v", err)
		}
	}

	if *demoConfigsFlag > 0 {
		fmt.Printf("Inserted %d demo configs.\n", *demoConfigsFlag)
	}
}
