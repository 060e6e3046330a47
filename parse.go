package particledocs

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	headerRe     = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	headerLineRe = regexp.MustCompile(`(?m)^#{1,6}\s+.+$`)
	codeBlockRe  = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)\\n```")
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// summaryMaxLen caps the generated document summary in characters.
const summaryMaxLen = 300

// ParseDocument parses markdown-like text into a structured document.
// The title resolves to titleHint when non-empty, else the first
// section's title, else the empty string.
func ParseDocument(text, titleHint string) *Document {
	sections := extractSections(text)

	title := titleHint
	if title == "" && len(sections) > 0 {
		title = sections[0].Title
	}

	return &Document{
		Title:      title,
		Sections:   sections,
		CodeBlocks: extractCodeBlocks(text),
		Links:      ExtractLinks(text),
		Summary:    summarize(text),
	}
}

// extractSections scans lines for markdown headers. Each header starts a
// new section; subsequent lines accumulate into its body until the next
// header. Text before the first header is discarded.
func extractSections(text string) []Section {
	var sections []Section
	var current *Section
	var body []string

	finalize := func() {
		if current == nil {
			return
		}
		current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		sections = append(sections, *current)
	}

	for _, line := range strings.Split(text, "\n") {
		m := headerRe.FindStringSubmatch(line)
		if m == nil {
			if current != nil {
				body = append(body, line)
			}
			continue
		}

		finalize()
		title := strings.TrimSpace(m[2])
		current = &Section{
			Title:  title,
			Level:  len(m[1]),
			Anchor: Anchor(title),
		}
		body = body[:0]
	}
	finalize()

	return sections
}

// Anchor generates a URL-safe anchor slug from a section title: lowercase,
// special characters stripped, whitespace and hyphen runs collapsed to a
// single hyphen. Duplicate titles yield duplicate anchors; anchors are
// deliberately not deduplicated across a document.
func Anchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			sb.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// extractCodeBlocks finds fenced code blocks. StartLine is the count of
// newlines preceding the opening fence, plus one.
func extractCodeBlocks(text string) []CodeBlock {
	var blocks []CodeBlock

	for _, idx := range codeBlockRe.FindAllStringSubmatchIndex(text, -1) {
		language := ""
		if idx[2] >= 0 {
			language = text[idx[2]:idx[3]]
		}
		blocks = append(blocks, CodeBlock{
			Language:  language,
			Content:   text[idx[4]:idx[5]],
			StartLine: strings.Count(text[:idx[0]], "\n") + 1,
		})
	}

	return blocks
}

// ExtractLinks finds inline markdown links in order of appearance.
func ExtractLinks(text string) []Link {
	var links []Link

	for _, m := range linkRe.FindAllStringSubmatch(text, -1) {
		target := m[2]
		links = append(links, Link{
			Text:     m[1],
			Target:   target,
			External: !strings.HasPrefix(target, "#") && !strings.HasPrefix(target, "/"),
		})
	}

	return links
}

// summarize produces a plain-text summary: code blocks removed, links
// collapsed to their display text, header lines dropped, whitespace
// collapsed. Truncated at a word boundary at or before summaryMaxLen
// characters with a trailing ellipsis.
func summarize(text string) string {
	clean := codeBlockRe.ReplaceAllString(text, "")
	clean = linkRe.ReplaceAllString(clean, "$1")
	clean = headerLineRe.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(whitespaceRe.ReplaceAllString(clean, " "))

	runes := []rune(clean)
	if len(runes) <= summaryMaxLen {
		return clean
	}

	cut := string(runes[:summaryMaxLen])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// SearchSections returns sections whose title or body contains the query,
// case-insensitively, in document order. No match yields an empty result,
// not an error.
func SearchSections(doc *Document, query string) []Section {
	q := strings.ToLower(query)

	var matches []Section
	for _, section := range doc.Sections {
		if strings.Contains(strings.ToLower(section.Title), q) ||
			strings.Contains(strings.ToLower(section.Body), q) {
			matches = append(matches, section)
		}
	}

	return matches
}

// SectionByAnchor returns the first section with the given anchor, or nil.
func SectionByAnchor(doc *Document, anchor string) *Section {
	for i := range doc.Sections {
		if doc.Sections[i].Anchor == anchor {
			return &doc.Sections[i]
		}
	}
	return nil
}
