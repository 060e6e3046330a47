package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/particledocs"
	"github.com/fwojciec/particledocs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://developers.particle.network/universal-accounts/cha/overview"

func TestKey(t *testing.T) {
	t.Parallel()

	t.Run("same URL maps to the same key", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, fs.Key(pageURL), fs.Key(pageURL))
	})

	t.Run("different URLs map to different keys", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, fs.Key(pageURL), fs.Key(pageURL+"/other"))
	})
}

func TestDiskCache_SaveLoad(t *testing.T) {
	t.Parallel()

	t.Run("round trips an entry", func(t *testing.T) {
		t.Parallel()

		cache, err := fs.NewDiskCache(t.TempDir())
		require.NoError(t, err)

		meta := particledocs.CacheMetadata{
			Title:         "Overview",
			URL:           pageURL,
			FetchedAt:     time.Now(),
			ContentLength: 7,
		}
		require.NoError(t, cache.Save(context.Background(), pageURL, "content", meta))

		entry := cache.Load(context.Background(), pageURL, 24*time.Hour)
		require.NotNil(t, entry)
		assert.Equal(t, pageURL, entry.URL)
		assert.Equal(t, "content", entry.Content)
		assert.Equal(t, "Overview", entry.Metadata.Title)
		assert.False(t, entry.CachedAt.IsZero())
	})

	t.Run("missing entry is a miss", func(t *testing.T) {
		t.Parallel()

		cache, err := fs.NewDiskCache(t.TempDir())
		require.NoError(t, err)

		assert.Nil(t, cache.Load(context.Background(), pageURL, 24*time.Hour))
	})

	t.Run("corrupt entry is a miss not an error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cache, err := fs.NewDiskCache(dir)
		require.NoError(t, err)

		path := filepath.Join(dir, fs.Key(pageURL))
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		assert.Nil(t, cache.Load(context.Background(), pageURL, 24*time.Hour))
	})

	t.Run("entry without a timestamp is a miss", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cache, err := fs.NewDiskCache(dir)
		require.NoError(t, err)

		path := filepath.Join(dir, fs.Key(pageURL))
		require.NoError(t, os.WriteFile(path, []byte(`{"url":"x","content":"y"}`), 0644))

		assert.Nil(t, cache.Load(context.Background(), pageURL, 24*time.Hour))
	})

	t.Run("save overwrites the previous entry", func(t *testing.T) {
		t.Parallel()

		cache, err := fs.NewDiskCache(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, cache.Save(context.Background(), pageURL, "old", particledocs.CacheMetadata{}))
		require.NoError(t, cache.Save(context.Background(), pageURL, "new", particledocs.CacheMetadata{}))

		entry := cache.Load(context.Background(), pageURL, 24*time.Hour)
		require.NotNil(t, entry)
		assert.Equal(t, "new", entry.Content)
	})
}

func TestDiskCache_TTL(t *testing.T) {
	t.Parallel()

	t.Run("valid before expiry and invalid after", func(t *testing.T) {
		t.Parallel()

		writeTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		current := writeTime
		cache, err := fs.NewDiskCache(t.TempDir(), fs.WithClock(func() time.Time { return current }))
		require.NoError(t, err)

		require.NoError(t, cache.Save(context.Background(), pageURL, "content", particledocs.CacheMetadata{}))

		current = writeTime.Add(23 * time.Hour)
		assert.NotNil(t, cache.Load(context.Background(), pageURL, 24*time.Hour), "entry should be valid before expiry")

		current = writeTime.Add(25 * time.Hour)
		assert.Nil(t, cache.Load(context.Background(), pageURL, 24*time.Hour), "entry should be invalid after expiry")
	})

	t.Run("expiry boundary is exclusive", func(t *testing.T) {
		t.Parallel()

		writeTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		current := writeTime
		cache, err := fs.NewDiskCache(t.TempDir(), fs.WithClock(func() time.Time { return current }))
		require.NoError(t, err)

		require.NoError(t, cache.Save(context.Background(), pageURL, "content", particledocs.CacheMetadata{}))

		current = writeTime.Add(24 * time.Hour)
		assert.Nil(t, cache.Load(context.Background(), pageURL, 24*time.Hour), "entry expires exactly at cachedAt+ttl")
	})
}

func TestDiskCache_Layout(t *testing.T) {
	t.Parallel()

	// The on-disk entry is JSON with url, content, metadata and an
	// ISO-8601 cached_at timestamp.
	dir := t.TempDir()
	cache, err := fs.NewDiskCache(dir)
	require.NoError(t, err)

	meta := particledocs.CacheMetadata{Title: "Overview", URL: pageURL, FetchedAt: time.Now(), ContentLength: 3}
	require.NoError(t, cache.Save(context.Background(), pageURL, "abc", meta))

	data, err := os.ReadFile(filepath.Join(dir, fs.Key(pageURL)))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "url")
	assert.Contains(t, raw, "content")
	assert.Contains(t, raw, "metadata")
	assert.Contains(t, raw, "cached_at")

	var ts string
	require.NoError(t, json.Unmarshal(raw["cached_at"], &ts))
	_, err = time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}
