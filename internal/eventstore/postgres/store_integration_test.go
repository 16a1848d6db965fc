//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/eventstore/storetest"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("activities"),
		postgrescontainer.WithUsername("sampler"),
		postgrescontainer.WithPassword("sampler"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, waitForDatabase(ctx, connStr))
	return connStr
}

func TestStoreAgainstPostgres(t *testing.T) {
	connStr := startPostgres(t)
	ctx := context.Background()

	storetest.Run(t, func(t *testing.T) eventstore.EventStore {
		store, err := Open(ctx, connStr)
		require.NoError(t, err)
		_, err = store.pool.Exec(ctx, "DROP TABLE IF EXISTS activity_events")
		require.NoError(t, err)
		return store
	})
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}
