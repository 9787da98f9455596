/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package pagecache provides a Redis-backed cache of published pages keyed
// by slug. When Redis is absent or starts failing the cache disables
// itself and public serving falls through to the database.
package pagecache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/friendsincode/brandpage/internal/events"
	"github.com/friendsincode/brandpage/internal/telemetry"
)

const keyPrefix = "brandpage:page:"

// DefaultTTL bounds staleness for entries that miss an invalidation event.
const DefaultTTL = 10 * time.Minute

// Entry is a cached published page. SiteID rides along so a cache hit can
// still attribute the visit without a database read.
type Entry struct {
	SiteID string `json:"site_id"`
	HTML   string `json:"html"`
	CSS    string `json:"css"`
}

// Config contains cache configuration.
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// Cache caches published pages with circuit-breaker fallback.
type Cache struct {
	client *redis.Client
	logger zerolog.Logger
	ttl    time.Duration

	mu       sync.RWMutex
	disabled bool
}

// New creates a cache. A missing Redis is not an error; the cache starts
// disabled and every lookup is a miss.
func New(cfg Config, logger zerolog.Logger) *Cache {
	logger = logger.With().Str("component", "pagecache").Logger()

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if cfg.RedisAddr == "" {
		logger.Info().Msg("no redis address configured, page cache disabled")
		return &Cache{logger: logger, ttl: ttl, disabled: true}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, page cache disabled")
		return &Cache{logger: logger, ttl: ttl, disabled: true}
	}

	logger.Info().Str("addr", cfg.RedisAddr).Msg("page cache initialized")
	return &Cache{client: client, logger: logger, ttl: ttl}
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Available reports whether the cache is operational.
func (c *Cache) Available() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.disabled && c.client != nil
}

// Get returns the cached page for slug, or ok=false on miss or when the
// cache is disabled.
func (c *Cache) Get(ctx context.Context, slug string) (Entry, bool) {
	if !c.Available() {
		return Entry{}, false
	}

	raw, err := c.client.Get(ctx, keyPrefix+slug).Bytes()
	if errors.Is(err, redis.Nil) {
		telemetry.PageCacheMisses.Inc()
		return Entry{}, false
	}
	if err != nil {
		c.handleError(err, "get")
		return Entry{}, false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.logger.Debug().Err(err).Str("slug", slug).Msg("corrupt cache entry")
		return Entry{}, false
	}

	telemetry.PageCacheHits.Inc()
	return entry, true
}

// Set stores a published page.
func (c *Cache) Set(ctx context.Context, slug string, entry Entry) {
	if !c.Available() {
		return
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, keyPrefix+slug, raw, c.ttl).Err(); err != nil {
		c.handleError(err, "set")
	}
}

// Invalidate removes the entry for slug.
func (c *Cache) Invalidate(ctx context.Context, slug string) {
	if !c.Available() {
		return
	}
	if err := c.client.Del(ctx, keyPrefix+slug).Err(); err != nil {
		c.handleError(err, "del")
	}
}

// Subscribe wires cache invalidation to site mutation events. Runs until
// ctx is cancelled.
func (c *Cache) Subscribe(ctx context.Context, bus *events.Bus) {
	for _, eventType := range []events.EventType{
		events.EventSiteUpdated,
		events.EventSitePublished,
		events.EventSiteDeleted,
	} {
		sub := bus.Subscribe(eventType)
		go func(eventType events.EventType, sub events.Subscriber) {
			defer bus.Unsubscribe(eventType, sub)
			for {
				select {
				case <-ctx.Done():
					return
				case payload, ok := <-sub:
					if !ok {
						return
					}
					if slug, _ := payload["slug"].(string); slug != "" {
						c.Invalidate(ctx, slug)
					}
				}
			}
		}(eventType, sub)
	}
}

func (c *Cache) handleError(err error, operation string) {
	c.logger.Debug().Err(err).Str("operation", operation).Msg("cache operation failed")
	c.mu.Lock()
	c.disabled = true
	c.mu.Unlock()
	c.logger.Warn().Msg("disabling page cache due to redis error")
}
