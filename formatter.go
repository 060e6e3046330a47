package particledocs

import (
	"fmt"
	"strings"
)

// FormatDocument renders a parsed document and its page descriptor as a
// single text blob: title and metadata, summary, table of contents,
// full content, code examples, and related links, in that fixed order.
// The summary, TOC, code and link blocks are omitted when empty.
func FormatDocument(doc *Document, page *Page) string {
	var lines []string

	lines = append(lines,
		"# "+doc.Title,
		"**Category:** "+page.Category,
		"**URL:** "+page.URL,
		"**Description:** "+page.Description,
		"",
	)

	if doc.Summary != "" {
		lines = append(lines, "## Summary", doc.Summary, "")
	}

	if len(doc.Sections) > 1 {
		lines = append(lines, "## Table of Contents")
		for _, section := range doc.Sections {
			indent := strings.Repeat("  ", section.Level-1)
			lines = append(lines, indent+"- "+section.Title)
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## Content")
	for _, section := range doc.Sections {
		lines = append(lines, strings.Repeat("#", section.Level)+" "+section.Title)
		if section.Body != "" {
			lines = append(lines, section.Body)
		}
		lines = append(lines, "")
	}

	if len(doc.CodeBlocks) > 0 {
		lines = append(lines, "## Code Examples")
		for i, block := range doc.CodeBlocks {
			lang := block.Language
			if lang == "" {
				lang = "text"
			}
			lines = append(lines,
				fmt.Sprintf("### Example %d (%s)", i+1, lang),
				"```"+lang,
				block.Content,
				"```",
				"",
			)
		}
	}

	if len(doc.Links) > 0 {
		lines = append(lines, "## Related Links")
		for _, link := range doc.Links {
			kind := "Internal"
			if link.External {
				kind = "External"
			}
			lines = append(lines, fmt.Sprintf("- [%s](%s) (%s)", link.Text, link.Target, kind))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
