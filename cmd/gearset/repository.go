package main

import (
	"context"

	"github.com/KirkDiggler/rpg-gearset/internal/config"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
	"github.com/KirkDiggler/rpg-gearset/internal/redis"
	"github.com/KirkDiggler/rpg-gearset/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-gearset/internal/repositories/catalog/bundled"
)

// openRepository connects the catalog repository for source. The returned
// close function is never nil.
func openRepository(ctx context.Context, cfg config.CatalogConfig, source string) (catalog.Repository, func() error, error) {
	noop := func() error { return nil }

	switch source {
	case config.SourceBundled:
		repo, err := catalog.NewFile(&catalog.FileConfig{FS: bundled.FS})
		return repo, noop, err

	case config.SourceFile:
		repo, err := catalog.NewFile(&catalog.FileConfig{Dir: cfg.Dir})
		return repo, noop, err

	case config.SourceRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, noop, err
		}
		if err := redis.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		return repo, client.Close, nil

	case config.SourceSQLite:
		repo, err := catalog.NewSQLite(ctx, &catalog.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, noop, err
		}
		return repo, repo.Close, nil

	default:
		return nil, noop, errors.InvalidArgumentf("unknown catalog source %q", source)
	}
}
