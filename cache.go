package particledocs

import (
	"context"
	"time"
)

// CacheMetadata describes the fetch that produced a cache entry.
type CacheMetadata struct {
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	FetchedAt     time.Time `json:"fetched_at"`
	ContentLength int       `json:"content_length"`
}

// CacheEntry is a cached fetch result keyed by source URL.
type CacheEntry struct {
	URL      string        `json:"url"`
	Content  string        `json:"content"`
	Metadata CacheMetadata `json:"metadata"`
	CachedAt time.Time     `json:"cached_at"`
}

// CacheStore persists fetch results keyed by source URL with TTL-based
// expiry.
//
// Load returns nil (a cache miss, not an error) when no entry exists,
// the entry cannot be decoded, required fields are absent, or the entry
// is older than the TTL. Save always stamps the entry with the current
// time; writes must be atomic so a reader never observes a partially
// written entry.
type CacheStore interface {
	Load(ctx context.Context, url string, ttl time.Duration) *CacheEntry
	Save(ctx context.Context, url, content string, meta CacheMetadata) error
}
