// Package content is the portal's data-access layer. Every read of a resource
// collection goes through a time-boxed cache in front of the remote data
// store; writes are validated before any I/O and invalidate the cache key of
// the resource they change.
//
// Each read comes in two forms. FetchX returns the collection or the failure.
// X wraps it for display code: failures are logged and become an empty
// collection, so pages always render.
package content

import (
	"context"
	"log/slog"
	"time"

	"council-portal-api/internal/cache"
	"council-portal-api/internal/logging"
	"council-portal-api/internal/remote"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// DefaultRemoteTimeout bounds each call to the remote data store.
const DefaultRemoteTimeout = 12 * time.Second

// Options controls construction of an Accessor.
type Options struct {
	// RemoteTimeout bounds each remote call. Defaults to DefaultRemoteTimeout.
	RemoteTimeout time.Duration
	// CoalesceReads shares one in-flight remote fetch between concurrent
	// cache misses on the same key.
	CoalesceReads bool
	Logger        *slog.Logger
	// NewID generates record IDs. Defaults to random UUIDs.
	NewID func() string
	// Now stamps created records. Defaults to time.Now.
	Now func() time.Time
}

// Accessor serves resource collections from cache or the remote store.
type Accessor struct {
	src      remote.Source
	cache    *cache.Cache
	timeout  time.Duration
	logger   *slog.Logger
	group    *singleflight.Group // nil unless coalescing
	validate *validator.Validate
	newID    func() string
	now      func() time.Time
}

// New constructs an Accessor reading from src through c.
func New(src remote.Source, c *cache.Cache, opts Options) *Accessor {
	if opts.RemoteTimeout <= 0 {
		opts.RemoteTimeout = DefaultRemoteTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	a := &Accessor{
		src:      src,
		cache:    c,
		timeout:  opts.RemoteTimeout,
		logger:   opts.Logger,
		validate: newValidator(),
		newID:    opts.NewID,
		now:      opts.Now,
	}
	if opts.CoalesceReads {
		a.group = &singleflight.Group{}
	}
	return a
}

// Invalidate drops the cached collection for each key.
func (a *Accessor) Invalidate(keys ...string) {
	for _, k := range keys {
		a.cache.Delete(k)
	}
}

// InvalidateAll drops every cached collection.
func (a *Accessor) InvalidateAll() error {
	return a.cache.Clear()
}

// cachedRead serves key from cache, or runs fetch under the remote timeout
// and caches its result. Failures are returned and leave the cache untouched.
func cachedRead[T any](ctx context.Context, a *Accessor, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	if a.cache.Get(key, &cached) {
		return cached, nil
	}

	load := func() ([]T, error) {
		ctx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		items, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		a.cache.Set(key, items)
		return items, nil
	}

	if a.group == nil {
		return load()
	}
	v, err, _ := a.group.Do(key, func() (any, error) {
		return load()
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

// orEmpty turns a failed read into an empty collection.
func orEmpty[T any](a *Accessor, key string, items []T, err error) []T {
	if err != nil {
		a.logger.Warn("resource read failed, serving empty collection",
			"resource", key,
			"kind", remote.KindOf(err).String(),
			"error", err,
		)
		return []T{}
	}
	return items
}

// collection builds a fetch of one flat table.
func collection[T any](src remote.Source, table string, q remote.Query) func(context.Context) ([]T, error) {
	return func(ctx context.Context) ([]T, error) {
		var rows []T
		if err := src.FetchCollection(ctx, table, q, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}
}
