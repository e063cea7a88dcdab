package cache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/plantcare/core/internal/infrastructure/config"
	"github.com/plantcare/core/internal/infrastructure/logger"
)

func TestConnectLogsStructuredRetries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	// nothing listens on port 1
	_, err := Connect(ctx, config.RedisConfig{Host: "127.0.0.1", Port: 1}, log)
	if err == nil {
		t.Fatal("expected connection error")
	}

	failures := logs.FilterMessage("Redis connection failed").All()
	if len(failures) == 0 {
		t.Fatalf("expected a failed attempt to be logged, got %v", logs.All())
	}
	fields := failures[0].ContextMap()
	if fields["attempt"] != int64(1) {
		t.Fatalf("expected attempt=1 field, got %v", fields)
	}
	if fields["address"] != "127.0.0.1:1" {
		t.Fatalf("expected address field, got %v", fields)
	}
	if _, ok := fields["error"]; !ok {
		t.Fatalf("expected error field, got %v", fields)
	}
}

func TestNoopAlwaysMisses(t *testing.T) {
	var c Noop
	ctx := context.Background()
	if err := c.Set(ctx, "k", 1, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	var v int
	if err := c.Get(ctx, "k", &v); err == nil {
		t.Fatal("noop cache should never hit")
	}
}
