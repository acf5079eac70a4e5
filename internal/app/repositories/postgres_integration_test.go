//go:build integration

package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/yigit/eamcet-predictor/internal/app/migrations"
	"github.com/yigit/eamcet-predictor/internal/db"
)

func startPostgres(t *testing.T) *db.PostgresDB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "eamcet_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/eamcet_test?sslmode=disable", host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	database := db.NewPostgresDBFromPool(pool)
	t.Cleanup(database.Close)
	return database
}

func TestSQLCollegeRepository_Postgres(t *testing.T) {
	database := startPostgres(t)
	ctx := context.Background()

	migrator := migrations.NewMigrator(database)
	require.NoError(t, migrator.MigrateFromDirectory(ctx, "../../../migrations"))
	// second run is a no-op
	require.NoError(t, migrator.MigrateFromDirectory(ctx, "../../../migrations"))

	versions, err := migrator.AppliedVersions(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"001"}, versions)

	runCollegeStoreSuite(t, NewSQLCollegeRepository(database))
}
