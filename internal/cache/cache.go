// Package cache keeps fetched resource collections in a namespaced,
// time-boxed key-value store so repeated reads skip the remote data store.
package cache

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"council-portal-api/internal/logging"
)

// DefaultTTL is how long a cached collection is served before it is refetched.
const DefaultTTL = time.Hour

// DefaultPrefix namespaces portal keys inside a shared store.
const DefaultPrefix = "council_portal_v1_"

// ErrQuotaExceeded is returned by a Store that refuses a write for lack of space.
var ErrQuotaExceeded = errors.New("cache: storage quota exceeded")

// Store is the byte-level storage behind a Cache.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the stored bytes and whether the key was present.
	Get(key string) ([]byte, bool, error)

	// Set replaces the value stored under key.
	Set(key string, value []byte) error

	// Delete removes key if present. Deleting a missing key is not an error.
	Delete(key string) error

	// Clear removes every key that starts with prefix.
	Clear(prefix string) error
}

// Options controls construction of a Cache.
type Options struct {
	// Prefix is prepended to every key. Defaults to DefaultPrefix.
	Prefix string
	// TTL is the maximum age of a served entry. Defaults to DefaultTTL.
	TTL time.Duration
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
	// Logger receives cache failures, which are never returned to callers.
	Logger *slog.Logger
}

// entry is the stored envelope: the payload plus when it was stored.
type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // unix millis
}

// Cache stores JSON-serializable values under namespaced keys and treats
// entries older than its TTL as absent.
//
// Storage failures only cost the caching optimization: reads report a miss,
// writes are dropped, and both are logged.
type Cache struct {
	store  Store
	prefix string
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// New constructs a Cache over store.
func New(store Store, opts Options) *Cache {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Cache{
		store:  store,
		prefix: opts.Prefix,
		ttl:    opts.TTL,
		now:    opts.Now,
		logger: opts.Logger,
	}
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get decodes the entry stored under key into dst and reports whether it was
// a fresh hit. Expired and corrupt entries are deleted and reported as misses.
func (c *Cache) Get(key string, dst any) bool {
	raw, ok, err := c.store.Get(c.prefix + key)
	if err != nil {
		c.logger.Warn("cache read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil || len(e.Data) == 0 {
		c.logger.Debug("discarding corrupt cache entry", "key", key, "error", err)
		c.drop(key)
		return false
	}

	// An entry stamped in the future means the clock stepped back; its age is unknown.
	if age := c.now().UnixMilli() - e.Timestamp; age < 0 || age > c.ttl.Milliseconds() {
		c.drop(key)
		return false
	}

	if err := json.Unmarshal(e.Data, dst); err != nil {
		c.logger.Debug("discarding undecodable cache entry", "key", key, "error", err)
		c.drop(key)
		return false
	}
	return true
}

// Set replaces the entry under key with value, stamped with the current time.
func (c *Cache) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	raw, err := json.Marshal(entry{Data: data, Timestamp: c.now().UnixMilli()})
	if err != nil {
		c.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.store.Set(c.prefix+key, raw); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

// Delete removes the entry under key.
func (c *Cache) Delete(key string) {
	c.drop(key)
}

// Clear removes every entry in this cache's namespace.
func (c *Cache) Clear() error {
	return c.store.Clear(c.prefix)
}

func (c *Cache) drop(key string) {
	if err := c.store.Delete(c.prefix + key); err != nil {
		c.logger.Warn("cache delete failed", "key", key, "error", err)
	}
}
