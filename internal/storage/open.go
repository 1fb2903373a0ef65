package storage

import (
	"context"
	"fmt"

	"github.com/pageza/recipebook/config"
	"github.com/pageza/recipebook/internal/database"
)

// Open builds the gateway selected by cfg.StorageBackend. The returned close
// function releases any connection the backend holds.
func Open(ctx context.Context, cfg *config.Config) (Gateway, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageBackend {
	case config.BackendFile, "":
		return NewFileGateway(), noop, nil

	case config.BackendRedis:
		client, err := database.NewRedisClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisGateway(client, cfg.RedisKeyPrefix), client.Close, nil

	case config.BackendS3:
		s3Cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return NewS3Gateway(s3Cfg.Client, s3Cfg.BucketName), noop, nil

	case config.BackendSQL:
		db, err := database.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			_ = database.Close(db)
			return nil, nil, err
		}
		return NewSQLStore(db), func() error { return database.Close(db) }, nil
	}

	storageLog().Error("unknown storage backend", "backend", cfg.StorageBackend)
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
