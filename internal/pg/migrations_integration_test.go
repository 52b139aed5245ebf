//go:build integration

package pg

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "docker.io/postgres:16-alpine",
		postgres.WithDatabase("fieldbook"),
		postgres.WithUsername("fieldbook"),
		postgres.WithPassword("fieldbook"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestRunMigrations_ActivePriceUniqueness(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(pool))
	// second run is a no-op
	require.NoError(t, RunMigrations(pool))

	var fieldID int
	err := pool.QueryRow(ctx, `INSERT INTO fields (store_id, sport_id) VALUES ('s1', 'football') RETURNING id`).Scan(&fieldID)
	require.NoError(t, err)

	insert := `INSERT INTO weekly_prices (field_id, day_of_week, start_minute, end_minute, price) VALUES ($1, 'mon', 480, 510, $2)`
	_, err = pool.Exec(ctx, insert, fieldID, 100)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, insert, fieldID, 200)
	assert.Error(t, err, "two active rows for one slot must be rejected")

	tx := NewTXManager(pool)
	db := New(pool)
	err = tx.Begin(ctx, func(ctx context.Context) error {
		if _, err := db.Exec(ctx, `UPDATE weekly_prices SET retired_at = now() WHERE field_id = $1 AND retired_at IS NULL`, fieldID); err != nil {
			return err
		}
		_, err := db.Exec(ctx, insert, fieldID, 200)
		return err
	})
	require.NoError(t, err)

	var active int
	err = pool.QueryRow(ctx, `SELECT count(*) FROM weekly_prices WHERE field_id = $1 AND retired_at IS NULL`, fieldID).Scan(&active)
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}
