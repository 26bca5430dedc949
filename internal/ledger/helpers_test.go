package ledger

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Zeta-Slow/Industry-Tools/pkg/config"
	"github.com/Zeta-Slow/Industry-Tools/pkg/db"
	"github.com/Zeta-Slow/Industry-Tools/pkg/logger"
	"github.com/Zeta-Slow/Industry-Tools/pkg/migrate"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "ledger-test", Output: io.Discard})
}

func newTestClient(t *testing.T) *db.Client {
	t.Helper()

	cfg := config.DBConfig{
		Path:         filepath.Join(t.TempDir(), "ledger_test.db"),
		BusyTimeout:  5 * time.Second,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	client, err := db.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	sqlDB, err := client.DB().DB()
	require.NoError(t, err)
	require.NoError(t, migrate.Up(context.Background(), sqlDB))

	return client
}

func newTestService(t *testing.T) (Service, Repository, *db.Client) {
	t.Helper()

	client := newTestClient(t)
	repo := NewRepository(client)
	svc, err := NewService(client, repo, newTestLogger())
	require.NoError(t, err)
	return svc, repo, client
}
