// Package testutil provides a migrated Postgres pool for adapter contract tests.
//
// Tests run only when ITEST_BACKEND is "postgres" or "all". DATABASE_URL is used
// when set; otherwise a throwaway postgres:16 container is started.
package testutil

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	postgres "github.com/Overland-East-Bay/workshop-checkin/internal/adapters/postgres"
	pgattendeesource "github.com/Overland-East-Bay/workshop-checkin/internal/adapters/postgres/attendeesource"
)

// Enabled reports whether postgres-backed tests were requested.
func Enabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ITEST_BACKEND"))) {
	case "postgres", "all":
		return true
	default:
		return false
	}
}

// OpenMigratedPool returns a pool with an empty attendees table. It skips the
// test when postgres tests are not enabled.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if !Enabled() {
		t.Skip("set ITEST_BACKEND=postgres to run postgres tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		c, err := tcpostgres.Run(ctx,
			"postgres:16",
			tcpostgres.WithDatabase("checkin"),
			tcpostgres.WithUsername("checkin"),
			tcpostgres.WithPassword("checkin"),
			tcpostgres.BasicWaitStrategies(),
		)
		if err != nil {
			t.Fatalf("start postgres container: %v", err)
		}
		t.Cleanup(func() { _ = c.Terminate(context.Background()) })

		dsn, err = c.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			t.Fatalf("connection string: %v", err)
		}
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{MaxConns: 4})
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, `DROP TABLE IF EXISTS attendees`); err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	if _, err := pool.Exec(ctx, pgattendeesource.Schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return pool
}
