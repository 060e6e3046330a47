// Package docs serves parsed documentation resources: listing,
// retrieval as formatted text, cross-page search, and forced refresh.
package docs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fwojciec/particledocs"
	"github.com/fwojciec/particledocs/fetch"
)

// searchSnippetLen caps section bodies in search results, in characters.
const searchSnippetLen = 200

// SearchSection is one matching section within a search result.
type SearchSection struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Anchor string `json:"anchor"`
}

// SearchResult groups the matching sections of a single page.
type SearchResult struct {
	ResourceURI string          `json:"resourceUri"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Sections    []SearchSection `json:"sections"`
}

// Manager owns the in-memory parsed-document cache sitting above the
// on-disk fetch cache. The two caches have different keys (resource URI
// vs. URL hash) and different invalidation rules (explicit clear vs.
// TTL), so they stay separate. Parsed documents are replaced wholesale,
// never mutated in place.
type Manager struct {
	registry *particledocs.Registry
	pages    *fetch.Service
	logger   *slog.Logger

	mu     sync.RWMutex
	parsed map[string]*particledocs.Document
}

// NewManager creates a Manager over the given registry and fetch
// service. A nil logger disables logging.
func NewManager(registry *particledocs.Registry, pages *fetch.Service, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		registry: registry,
		pages:    pages,
		logger:   logger,
		parsed:   make(map[string]*particledocs.Document),
	}
}

// List returns all registered pages in order.
func (m *Manager) List() []particledocs.Page {
	return m.registry.Pages()
}

// Get returns the formatted content blob for a resource URI.
// Returns ENOTFOUND for an unknown URI.
func (m *Manager) Get(ctx context.Context, uri string) (string, error) {
	page, err := m.registry.ByURI(uri)
	if err != nil {
		return "", err
	}

	doc, err := m.document(ctx, page)
	if err != nil {
		return "", err
	}

	return particledocs.FormatDocument(doc, page), nil
}

// Search sweeps all registered pages for sections matching the query.
// A page that fails to load is skipped, never fatal to the sweep.
// Section bodies are truncated to 200 characters.
func (m *Manager) Search(ctx context.Context, query string) []SearchResult {
	var results []SearchResult

	for _, page := range m.registry.Pages() {
		doc, err := m.document(ctx, &page)
		if err != nil {
			m.logger.Warn("skipping page in search", "uri", page.ResourceURI, "err", err)
			continue
		}

		matches := particledocs.SearchSections(doc, query)
		if len(matches) == 0 {
			continue
		}

		result := SearchResult{
			ResourceURI: page.ResourceURI,
			Title:       page.Title,
			Category:    page.Category,
		}
		for _, section := range matches {
			result.Sections = append(result.Sections, SearchSection{
				Title:  section.Title,
				Body:   snippet(section.Body),
				Anchor: section.Anchor,
			})
		}
		results = append(results, result)
	}

	return results
}

// Refresh refetches a resource, bypassing the on-disk cache, and
// replaces its parsed document. Returns ENOTFOUND for an unknown URI and
// the fetch error when the upstream request fails.
func (m *Manager) Refresh(ctx context.Context, uri string) error {
	page, err := m.registry.ByURI(uri)
	if err != nil {
		return err
	}

	content, err := m.pages.RefreshCache(ctx, page)
	if err != nil {
		return err
	}

	doc := particledocs.ParseDocument(content.Content, page.Title)

	m.mu.Lock()
	m.parsed[uri] = doc
	m.mu.Unlock()

	return nil
}

// Clear drops all parsed documents. The on-disk cache is unaffected.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.parsed = make(map[string]*particledocs.Document)
	m.mu.Unlock()
}

// document returns the parsed document for a page, loading and parsing
// it on first access. Concurrent loads of the same page may fetch twice;
// the second whole-document write wins.
func (m *Manager) document(ctx context.Context, page *particledocs.Page) (*particledocs.Document, error) {
	m.mu.RLock()
	doc, ok := m.parsed[page.ResourceURI]
	m.mu.RUnlock()
	if ok {
		return doc, nil
	}

	content, err := m.pages.GetPageContent(ctx, page)
	if err != nil {
		return nil, err
	}

	doc = particledocs.ParseDocument(content.Content, page.Title)

	m.mu.Lock()
	m.parsed[page.ResourceURI] = doc
	m.mu.Unlock()

	return doc, nil
}

// snippet truncates a section body to searchSnippetLen characters. The
// cut is on rune boundaries so multi-byte text stays valid UTF-8.
func snippet(body string) string {
	runes := []rune(body)
	if len(runes) <= searchSnippetLen {
		return body
	}
	return string(runes[:searchSnippetLen]) + "..."
}
