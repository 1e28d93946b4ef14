package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	filedepot "github.com/filedepot/filedepot"
	"github.com/filedepot/filedepot/database/postgres"
)

var (
	testPool     *pgxpool.Pool
	testPoolOnce sync.Once
	tableCounter atomic.Int64
)

// getSharedTestDatabase returns a shared database pool for all tests.
// This significantly improves test performance by reusing the same container.
func getSharedTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	testPoolOnce.Do(func() {
		ctx := context.Background()

		pgContainer, err := pgcontainer.Run(ctx,
			"postgres:18-alpine",
			pgcontainer.WithDatabase("testdb"),
			pgcontainer.WithUsername("testuser"),
			pgcontainer.WithPassword("testpass"),
			pgcontainer.BasicWaitStrategies(),
		)
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}

		cleanup := func() {
			if testPool != nil {
				testPool.Close()
			}
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %s", err)
			}
		}

		connectionStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			cleanup()
			t.Fatalf("failed to get connection string: %v", err)
		}

		pool, err := pgxpool.New(ctx, connectionStr)
		if err != nil {
			cleanup()
			t.Fatalf("could not connect to database: %v", err)
		}

		testPool = pool
	})

	return testPool
}

// setupTestRepo migrates a uniquely named table on the shared pool and
// returns a repo bound to it. Each test gets its own table for isolation.
func setupTestRepo(t *testing.T) *postgres.Repo {
	t.Helper()
	ctx := context.Background()

	pool := getSharedTestDatabase(t)
	tables := filedepot.Tables{Files: fmt.Sprintf("file_records_%d", tableCounter.Add(1))}

	if err := postgres.Migrate(ctx, pool, tables); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if err := postgres.DropTables(context.Background(), pool, tables); err != nil {
			t.Logf("drop tables: %v", err)
		}
	})

	repo, err := postgres.NewRepo(pool, tables)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	return repo
}
