package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/particledocs"
)

// Ensure LoggingCacheStore implements particledocs.CacheStore.
var _ particledocs.CacheStore = (*LoggingCacheStore)(nil)

// LoggingCacheStore wraps a CacheStore with hit/miss and write logging.
type LoggingCacheStore struct {
	next   particledocs.CacheStore
	logger *slog.Logger
}

// NewLoggingCacheStore creates a new LoggingCacheStore.
func NewLoggingCacheStore(next particledocs.CacheStore, logger *slog.Logger) *LoggingCacheStore {
	return &LoggingCacheStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the hit or miss.
func (s *LoggingCacheStore) Load(ctx context.Context, url string, ttl time.Duration) *particledocs.CacheEntry {
	entry := s.next.Load(ctx, url, ttl)
	s.logger.Debug("cache lookup",
		"url", url,
		"hit", entry != nil,
	)
	return entry
}

// Save delegates to the wrapped store and logs the write.
func (s *LoggingCacheStore) Save(ctx context.Context, url, content string, meta particledocs.CacheMetadata) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("cache write",
			"url", url,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, url, content, meta)
}
