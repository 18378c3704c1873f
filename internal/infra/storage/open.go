package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-scheduler/internal/config"
)

// Open builds the slot selected by STORAGE_BACKEND. db is only used by
// the sql backend.
func Open(ctx context.Context, cfg *config.Config, db *gorm.DB) (Slot, error) {
	switch cfg.StorageBackend {
	case config.StorageSQL:
		if db == nil {
			return nil, fmt.Errorf("storage: sql backend needs a database")
		}
		return NewSQLSlot(db), nil

	case config.StorageFile:
		return NewFileSlot(cfg.DataDir)

	case config.StorageRedis:
		client, err := DialRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		return NewRedisSlot(client, "garage:"), nil

	case config.StorageS3:
		return NewS3Slot(S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Prefix:    "garage/",
		}), nil

	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.StorageBackend)
	}
}
