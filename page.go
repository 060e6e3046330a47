package particledocs

// Page describes a known documentation page. The set of pages is fixed
// configuration supplied at startup; the core never mutates it.
type Page struct {
	URL         string `json:"url"`
	ResourceURI string `json:"resourceUri"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Registry holds an ordered, immutable set of documentation pages with
// lookup by resource URI and by source URL.
type Registry struct {
	pages []Page
	byURI map[string]*Page
	byURL map[string]*Page
}

// NewRegistry creates a Registry from an ordered page list.
func NewRegistry(pages []Page) *Registry {
	r := &Registry{
		pages: pages,
		byURI: make(map[string]*Page, len(pages)),
		byURL: make(map[string]*Page, len(pages)),
	}
	for i := range pages {
		r.byURI[pages[i].ResourceURI] = &r.pages[i]
		r.byURL[pages[i].URL] = &r.pages[i]
	}
	return r
}

// Pages returns all pages in registration order.
func (r *Registry) Pages() []Page {
	return r.pages
}

// ByURI returns the page registered under the given resource URI.
// Returns ENOTFOUND if no page matches.
func (r *Registry) ByURI(uri string) (*Page, error) {
	page, ok := r.byURI[uri]
	if !ok {
		return nil, Errorf(ENOTFOUND, "resource %q not found", uri)
	}
	return page, nil
}

// ByURL returns the page registered under the given source URL.
// Returns ENOTFOUND if no page matches.
func (r *Registry) ByURL(url string) (*Page, error) {
	page, ok := r.byURL[url]
	if !ok {
		return nil, Errorf(ENOTFOUND, "page with URL %q not found", url)
	}
	return page, nil
}

// DefaultPages is the predefined list of Particle documentation pages.
func DefaultPages() []Page {
	return []Page{
		{
			URL:         "https://developers.particle.network/universal-accounts/cha/overview",
			ResourceURI: "particle://universal-accounts/overview",
			Title:       "Universal Accounts Overview",
			Category:    "Core",
			Description: "Learn about the Universal Accounts SDK—your entry point to integrating chain abstraction.",
		},
		{
			URL:         "https://developers.particle.network/universal-accounts/cha/chains",
			ResourceURI: "particle://universal-accounts/chains",
			Title:       "Supported Chains",
			Category:    "Core",
			Description: "List of chains supported by Universal Accounts.",
		},
		{
			URL:         "https://developers.particle.network/universal-accounts/cha/web-quickstart",
			ResourceURI: "particle://universal-accounts/quickstart",
			Title:       "Web Quickstart",
			Category:    "Getting Started",
			Description: "A step-by-step setup guide for integrating the UAs SDK into your application.",
		},
		{
			URL:         "https://developers.particle.network/universal-accounts/cha/how-to/provider",
			ResourceURI: "particle://guides/provider",
			Title:       "Provider Setup",
			Category:    "How-To",
			Description: "Learn how to set up and configure providers for Universal Accounts.",
		},
		{
			URL:         "https://developers.particle.network/universal-accounts/cha/how-to/balances",
			ResourceURI: "particle://guides/balances",
			Title:       "Getting Balances",
			Category:    "How-To",
			Description: "Learn how to fetch and display the unified balance of a Universal Account.",
		},
		{
			URL:         "https://developers.particle.network/universal-accounts/cha/how-to/tx-preview",
			ResourceURI: "particle://guides/tx-preview",
			Title:       "Transaction Preview",
			Category:    "How-To",
			Description: "Learn how to preview transactions before execution.",
		},
		{
			URL:         "https://developers.particle.network/universal-accounts/cha/how-to/conversions",
			ResourceURI: "particle://guides/conversions",
			Title:       "Token Conversions",
			Category:    "How-To",
			Description: "Learn how to handle token conversions in Universal Accounts.",
		},
		{
			URL:         "https://developers.particle.network/universal-accounts/ua-reference/desktop/web",
			ResourceURI: "particle://reference/web-sdk",
			Title:       "Web SDK Reference",
			Category:    "Reference",
			Description: "SDK and API reference for the Universal Accounts Web SDK.",
		},
		{
			URL:         "https://developers.particle.network/universal-accounts/ua-reference/faq",
			ResourceURI: "particle://reference/faq",
			Title:       "FAQ",
			Category:    "Reference",
			Description: "Frequently asked questions about Universal Accounts.",
		},
	}
}
