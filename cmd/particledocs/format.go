package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/particledocs"
	"github.com/fwojciec/particledocs/docs"
)

// formatSearchResults renders search results as markdown, one block per
// matching page with its matching sections.
func formatSearchResults(query string, results []docs.SearchResult) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Search results for %q:", query), "")

	for _, result := range results {
		lines = append(lines,
			fmt.Sprintf("## %s (%s)", result.Title, result.Category),
			"Resource: "+result.ResourceURI,
			"Matching sections:",
		)
		for _, section := range result.Sections {
			lines = append(lines, fmt.Sprintf("- **%s**: %s", section.Title, section.Body))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// formatPageList renders all pages grouped by category, categories in
// first-appearance order.
func formatPageList(pages []particledocs.Page) string {
	var categories []string
	grouped := make(map[string][]particledocs.Page)
	for _, page := range pages {
		if _, ok := grouped[page.Category]; !ok {
			categories = append(categories, page.Category)
		}
		grouped[page.Category] = append(grouped[page.Category], page)
	}

	var lines []string
	lines = append(lines, "Available Particle Documentation Pages:", "")

	for _, category := range categories {
		lines = append(lines, "## "+category)
		for _, page := range grouped[category] {
			lines = append(lines,
				"- **"+page.Title+"**",
				"  - URI: "+page.ResourceURI,
				"  - URL: "+page.URL,
				"  - Description: "+page.Description,
			)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
