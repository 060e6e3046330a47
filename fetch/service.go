// Package fetch orchestrates the cache-check, fetch, extract, persist
// pipeline for documentation pages.
package fetch

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/particledocs"
)

// PageContent is the result of retrieving a page: its linearized content,
// the metadata recorded at fetch time, and whether the cache served it.
type PageContent struct {
	Content   string
	Metadata  particledocs.CacheMetadata
	FromCache bool
}

// Service retrieves page content, serving from the on-disk cache when a
// valid entry exists and fetching upstream otherwise. All fields must be
// set before use; Logger may be nil to disable logging.
type Service struct {
	Fetcher   particledocs.Fetcher
	Extractor particledocs.Extractor
	Cache     particledocs.CacheStore

	// TTL bounds cache entry validity.
	TTL time.Duration

	Logger *slog.Logger
}

// GetPageContent returns the page's content, consulting the cache first.
// A cache hit involves no network access. On a miss the page is fetched,
// extracted, and persisted; a persistence failure is logged at warning
// level but does not fail the request.
func (s *Service) GetPageContent(ctx context.Context, page *particledocs.Page) (*PageContent, error) {
	if entry := s.Cache.Load(ctx, page.URL, s.TTL); entry != nil {
		return &PageContent{
			Content:   entry.Content,
			Metadata:  entry.Metadata,
			FromCache: true,
		}, nil
	}

	return s.fetchAndStore(ctx, page)
}

// RefreshCache fetches the page unconditionally, bypassing the cache
// read, and persists the result.
func (s *Service) RefreshCache(ctx context.Context, page *particledocs.Page) (*PageContent, error) {
	return s.fetchAndStore(ctx, page)
}

func (s *Service) fetchAndStore(ctx context.Context, page *particledocs.Page) (*PageContent, error) {
	rawHTML, err := s.Fetcher.Fetch(ctx, page.URL)
	if err != nil {
		return nil, err
	}

	result, err := s.Extractor.Extract(rawHTML)
	if err != nil {
		return nil, err
	}

	meta := particledocs.CacheMetadata{
		Title:         result.Title,
		URL:           page.URL,
		FetchedAt:     time.Now(),
		ContentLength: len(result.Content),
	}

	if err := s.Cache.Save(ctx, page.URL, result.Content, meta); err != nil {
		// The caller already has the content; losing the cache write
		// only costs a refetch later.
		if s.Logger != nil {
			s.Logger.Warn("cache write failed", "url", page.URL, "err", err)
		}
	}

	return &PageContent{
		Content:   result.Content,
		Metadata:  meta,
		FromCache: false,
	}, nil
}
