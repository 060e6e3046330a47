// Package fs provides a file-based implementation of
// particledocs.CacheStore: one JSON file per distinct source URL.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/particledocs"
)

// Ensure DiskCache implements particledocs.CacheStore at compile time.
var _ particledocs.CacheStore = (*DiskCache)(nil)

// DiskCache stores cache entries as JSON files in a directory. Entries
// are keyed by a content hash of the source URL and carry the timestamp
// of the write; validity is decided at read time against a TTL.
type DiskCache struct {
	dir string

	// now is swappable for tests.
	now func() time.Time
}

// Option configures a DiskCache.
type Option func(*DiskCache)

// WithClock overrides the time source used to stamp and validate entries.
func WithClock(now func() time.Time) Option {
	return func(c *DiskCache) {
		c.now = now
	}
}

// NewDiskCache creates a DiskCache rooted at dir, creating the directory
// if needed.
func NewDiskCache(dir string, opts ...Option) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory %q: %w", dir, err)
	}

	c := &DiskCache{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Key derives the cache file name for a URL. The same URL always maps to
// the same key; distinct URLs collide only with negligible probability.
func Key(url string) string {
	return fmt.Sprintf("%016x.json", xxhash.Sum64String(url))
}

func (c *DiskCache) path(url string) string {
	return filepath.Join(c.dir, Key(url))
}

// Load returns the cached entry for the URL, or nil on any invalidity:
// missing file, undecodable JSON, missing timestamp, or expiry. Read
// failures degrade to a cache miss and are never surfaced.
func (c *DiskCache) Load(ctx context.Context, url string, ttl time.Duration) *particledocs.CacheEntry {
	data, err := os.ReadFile(c.path(url))
	if err != nil {
		return nil
	}

	var entry particledocs.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}

	if entry.CachedAt.IsZero() {
		return nil
	}
	if !c.now().Before(entry.CachedAt.Add(ttl)) {
		return nil
	}

	return &entry
}

// Save writes an entry for the URL, stamping it with the current time.
// The write goes to a temp file first and is renamed into place so a
// concurrent reader never observes a partial entry.
func (c *DiskCache) Save(ctx context.Context, url, content string, meta particledocs.CacheMetadata) error {
	entry := particledocs.CacheEntry{
		URL:      url,
		Content:  content,
		Metadata: meta,
		CachedAt: c.now(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache entry for %q: %w", url, err)
	}

	final := c.path(url)
	tmp, err := os.CreateTemp(c.dir, Key(url)+".tmp")
	if err != nil {
		return fmt.Errorf("creating temp cache file for %q: %w", url, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing cache entry for %q: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp cache file for %q: %w", url, err)
	}

	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("finalizing cache entry for %q: %w", url, err)
	}

	return nil
}
