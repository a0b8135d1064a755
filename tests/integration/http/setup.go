package http

import (
	"context"
	"database/sql"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	"github.com/Elias-Manica/push-notifications-poc/internal/ctrl"
	hdl "github.com/Elias-Manica/push-notifications-poc/internal/hdl/http"
	"github.com/Elias-Manica/push-notifications-poc/internal/push/sim"
	"github.com/Elias-Manica/push-notifications-poc/internal/repo/db"
	"github.com/Elias-Manica/push-notifications-poc/internal/repo/redis"
	goredis "github.com/go-redis/redis/v8"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const truncateTokens = `TRUNCATE TABLE device_tokens;`

var rootDir = filepath.Join("..", "..", "..")

// setupTestServer starts the API on top of a live registry backend. Postgres and
// Redis must already be running; set INTEGRATION=1 to enable these tests.
func setupTestServer(t *testing.T, backend string) (*httptest.Server, func()) {
	t.Helper()
	if os.Getenv("INTEGRATION") == "" {
		t.Skip("INTEGRATION is not set")
	}

	zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	conf := config.MustLoad(filepath.ToSlash(filepath.Join(rootDir, ".env.integration")))
	conf.Registry.Backend = backend

	_ = os.Setenv(
		"MIGRATIONS_PATH", filepath.ToSlash(
			filepath.Join(rootDir, "internal", "repo", "db", "migration"),
		),
	)

	var repo ctrl.AppRepo
	switch backend {
	case config.RegistryPostgres:
		repo = db.New(conf.DB)
	case config.RegistryRedis:
		repo = redis.New(conf.Redis)
	default:
		t.Fatalf("unsupported backend %q", backend)
	}

	ts := httptest.NewServer(hdl.New(ctrl.New(repo, sim.New()), conf))
	cleanup := func() {
		ts.Close()
		if err := repo.Close(); err != nil {
			zap.L().Debug("Error closing repository", zap.Error(err))
		}

		cleanupState(backend, conf)
	}

	// Start from an empty registry even if an earlier run was interrupted.
	cleanupState(backend, conf)
	return ts, cleanup
}

func cleanupState(backend string, conf config.Config) {
	switch backend {
	case config.RegistryPostgres:
		truncatePostgres(conf.DB)
	case config.RegistryRedis:
		flushRedis(conf.Redis)
	}
}

func truncatePostgres(conf config.DBConfig) {
	conn, err := sql.Open(
		"pgx", fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=disable",
			conf.User,
			conf.Password,
			conf.Host,
			conf.Port,
			conf.Database,
		),
	)
	if err != nil {
		zap.L().Fatal("Failed to connect to the database", zap.Error(err))
	}
	defer func() {
		if err := conn.Close(); err != nil {
			zap.L().Debug("Error while closing connection", zap.Error(err))
		}
	}()

	if _, err = conn.Exec(truncateTokens); err != nil {
		zap.L().Fatal("Failed to truncate tables", zap.Error(err))
	}
}

func flushRedis(conf config.RedisConfig) {
	cli := goredis.NewClient(
		&goredis.Options{
			Addr:     conf.Addr,
			Password: conf.Password,
			DB:       conf.DB,
		},
	)
	defer func() {
		if err := cli.Close(); err != nil {
			zap.L().Debug("Error while closing redis client", zap.Error(err))
		}
	}()

	if err := cli.FlushDB(context.Background()).Err(); err != nil {
		zap.L().Fatal("Failed to flush redis", zap.Error(err))
	}
}
