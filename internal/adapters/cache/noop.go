package cache

import (
	"context"
	"time"

	"github.com/plantcare/core/internal/ports"
)

// Noop is used when Redis is disabled; every lookup misses
type Noop struct{}

func (Noop) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (Noop) Get(ctx context.Context, key string, dest interface{}) error {
	return ports.ErrCacheMiss
}

func (Noop) Delete(ctx context.Context, key string) error { return nil }

func (Noop) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (Noop) Ping(ctx context.Context) error { return nil }
