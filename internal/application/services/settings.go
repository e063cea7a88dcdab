package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/plantcare/core/internal/domain/care"
	"github.com/plantcare/core/internal/domain/entities"
	"github.com/plantcare/core/internal/infrastructure/config"
	"github.com/plantcare/core/internal/infrastructure/logger"
	"github.com/plantcare/core/internal/ports"
)

// Cache keys. Only stored records are cached; urgency and labels are always
// derived after the read.
const (
	cacheKeyPlants          = "plantcare:plants"
	cacheKeyPendingReminder = "plantcare:reminders:pending"
	cachePatternAll         = "plantcare:*"
)

// Settings is the care engine configuration shared by the services
type Settings struct {
	Clock    care.Clock
	Locale   care.Locale
	Policy   care.Policy
	CacheTTL time.Duration
}

// NewSettings derives engine settings from the loaded configuration
func NewSettings(cfg *config.Config) (Settings, error) {
	loc, err := cfg.Care.Location()
	if err != nil {
		return Settings{}, err
	}

	locale, ok := care.LookupLocale(cfg.Care.Locale)
	if !ok {
		locale = care.English
	}

	types := make([]entities.CareType, 0, len(cfg.Care.RecurringTypes))
	for _, t := range cfg.Care.RecurringTypes {
		types = append(types, entities.CareType(t))
	}

	return Settings{
		Clock:    care.NewSystemClock(loc),
		Locale:   locale,
		Policy:   care.NewPolicy(types...),
		CacheTTL: cfg.Redis.TTL,
	}, nil
}

// Location is the timezone calendar dates are interpreted in
func (s Settings) Location() *time.Location {
	return s.Clock.Now().Location()
}

// today returns the current calendar day of the configured clock
func (s Settings) today() time.Time {
	return care.Today(s.Clock)
}

// parseDateOr parses a YYYY-MM-DD date in the clock's location, falling back to
// today for an empty string.
func (s Settings) parseDateOr(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return s.today(), nil
	}
	return care.ParseDate(value, s.Location())
}

// recordCache wraps a cache so that failures are logged and otherwise ignored
type recordCache struct {
	cache  ports.CacheRepository
	ttl    time.Duration
	logger *logger.Logger
}

func (c recordCache) get(ctx context.Context, key string, dest interface{}) bool {
	if c.cache == nil {
		return false
	}
	err := c.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		c.logger.Warnw("Cache read failed", "key", key, "error", err)
	}
	return false
}

func (c recordCache) set(ctx context.Context, key string, value interface{}) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		c.logger.Warnw("Cache write failed", "key", key, "error", err)
	}
}

// evict drops the named record lists
func (c recordCache) evict(ctx context.Context, keys ...string) {
	if c.cache == nil {
		return
	}
	for _, key := range keys {
		if err := c.cache.Delete(ctx, key); err != nil {
			c.logger.Warnw("Cache eviction failed", "key", key, "error", err)
		}
	}
}

// invalidate drops every cached record list
func (c recordCache) invalidate(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.DeletePattern(ctx, cachePatternAll); err != nil {
		c.logger.Warnw("Cache invalidation failed", "error", err)
	}
}
