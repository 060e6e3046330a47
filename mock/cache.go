package mock

import (
	"context"
	"time"

	"github.com/fwojciec/particledocs"
)

var _ particledocs.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of particledocs.CacheStore.
type CacheStore struct {
	LoadFn func(ctx context.Context, url string, ttl time.Duration) *particledocs.CacheEntry
	SaveFn func(ctx context.Context, url, content string, meta particledocs.CacheMetadata) error
}

func (c *CacheStore) Load(ctx context.Context, url string, ttl time.Duration) *particledocs.CacheEntry {
	return c.LoadFn(ctx, url, ttl)
}

func (c *CacheStore) Save(ctx context.Context, url, content string, meta particledocs.CacheMetadata) error {
	return c.SaveFn(ctx, url, content, meta)
}
