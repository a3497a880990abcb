package content

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/nika-camp/campbot/core/logger"
	"log/slog"
)

// DefaultStartText is used until the singleton has been loaded at least once.
const DefaultStartText = "Привет! Что ты хочешь узнать?"

// GeneralCache holds the process-wide GeneralInfo singleton behind an
// atomically swappable reference. Reads never block; the value is replaced
// only by an explicit Refresh, so stale reads between a content edit and the
// next refresh are expected.
type GeneralCache struct {
	load    func(ctx context.Context) (*GeneralInfo, error)
	current atomic.Pointer[GeneralInfo]
}

// NewGeneralCache builds a cache over the given loader. Call Refresh once
// during startup to populate it.
func NewGeneralCache(load func(ctx context.Context) (*GeneralInfo, error)) *GeneralCache {
	return &GeneralCache{load: load}
}

// StartText returns the cached greeting, falling back to the default when
// the singleton has never loaded or holds an empty text.
func (c *GeneralCache) StartText() string {
	if g := c.current.Load(); g != nil && g.StartText != "" {
		return g.StartText
	}
	return DefaultStartText
}

// Refresh re-reads the singleton. A missing row clears the cache back to
// defaults; any other failure keeps the previous value.
func (c *GeneralCache) Refresh(ctx context.Context) error {
	g, err := c.load(ctx)
	if errors.Is(err, ErrNotFound) {
		c.current.Store(nil)
		logger.Cache.Warn("general info missing",
			slog.String("event", "cache.refresh"),
			slog.String("cache", "miss"),
		)
		return nil
	}
	if err != nil {
		logger.Cache.Error("general info refresh failed",
			slog.String("event", "cache.refresh"),
			slog.String("err", err.Error()),
		)
		return err
	}
	c.current.Store(g)
	logger.Cache.Info("general info refreshed",
		slog.String("event", "cache.refresh"),
		slog.String("cache", "refresh"),
	)
	return nil
}
