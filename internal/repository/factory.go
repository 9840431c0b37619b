package repository

import (
	"context"
	"fmt"

	"github.com/mbrell/centsible/centsible-backend/internal/config"
	"github.com/mbrell/centsible/centsible-backend/internal/repository/file"
	"github.com/mbrell/centsible/centsible-backend/internal/repository/memory"
	"github.com/mbrell/centsible/centsible-backend/internal/repository/postgres"
	"github.com/mbrell/centsible/centsible-backend/internal/repository/redis"
	"github.com/mbrell/centsible/centsible-backend/internal/repository/sqlite"
)

// OpenKV opens the snapshot backend selected by the configuration.
func OpenKV(ctx context.Context, cfg *config.Config) (KV, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendFile:
		return file.New(cfg.DataDir)
	case config.BackendSQLite:
		return sqlite.Open(cfg.SQLitePath)
	case config.BackendPostgres:
		return postgres.Open(ctx, cfg.DatabaseURL)
	case config.BackendRedis:
		return redis.Open(ctx, cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
