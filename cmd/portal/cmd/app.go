package cmd

import (
	"fmt"
	"log/slog"

	"council-portal-api/internal/cache"
	"council-portal-api/internal/config"
	"council-portal-api/internal/content"
	"council-portal-api/internal/database"
	"council-portal-api/internal/remote"

	"gorm.io/gorm"
)

// app is the wired data path shared by the subcommands.
type app struct {
	db      *gorm.DB
	cache   *cache.Cache
	content *content.Accessor
	closers []func() error
}

func openApp(cfg config.Config, logger *slog.Logger) (*app, error) {
	db, err := database.Open(cfg.Database.Path, cfg.Database.Debug)
	if err != nil {
		return nil, err
	}
	a := &app{db: db}
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}

	store, err := openStore(cfg.Cache)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		a.closers = append(a.closers, closer.Close)
	}

	a.cache = cache.New(store, cache.Options{
		Prefix: cfg.Cache.Prefix,
		TTL:    cfg.Cache.TTL,
		Logger: logger.With("component", "cache"),
	})
	a.content = content.New(remote.NewGormSource(db), a.cache, content.Options{
		RemoteTimeout: cfg.Remote.Timeout,
		CoalesceReads: cfg.Remote.CoalesceReads,
		Logger:        logger.With("component", "content"),
	})
	return a, nil
}

func openStore(cfg config.CacheConfig) (cache.Store, error) {
	switch cfg.Backend {
	case config.CacheBolt:
		s, err := cache.OpenBoltStore(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		return s, nil
	default:
		return cache.NewMemoryStore(cache.MemoryOptions{ConcurrencySafe: true, MaxBytes: cfg.MaxBytes}), nil
	}
}

// Close releases the cache store and database in reverse order of opening.
func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}
