package kv

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/config"
)

// NewStore creates the store selected by cfg.Type.
func NewStore(logger *zap.Logger, cfg config.StorageConfig) (Store, error) {
	logger.Info("Initializing storage", zap.String("type", cfg.Type))
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.Dir)
	case "redis":
		return NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
	case "sql":
		db, err := OpenSQL(cfg.SQL.Driver, cfg.SQL.DSN)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(db)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
