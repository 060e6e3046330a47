package particledocs

// ExtractResult holds the linearized content extracted from an HTML page.
type ExtractResult struct {
	// Title is the document title element text, "Untitled" when absent.
	Title string

	// Content is markdown-like text preserving heading levels,
	// paragraphs, code fences, and list items. Empty content is a valid
	// result for pages with no recognizable content.
	Content string
}

// Extractor converts raw HTML into linearized markdown-like text.
type Extractor interface {
	// Extract walks the page's main content element in document order
	// and renders headings, paragraphs, code blocks, and list items.
	// Malformed or empty HTML degrades to empty content, never an error.
	Extract(html string) (*ExtractResult, error)
}
