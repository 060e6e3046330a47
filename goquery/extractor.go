// Package goquery provides a CSS-selector based implementation of
// particledocs.Extractor that linearizes documentation HTML into
// markdown-like text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/particledocs"
	"golang.org/x/net/html"
)

// contentSelectors is the priority-ordered list of content root
// candidates. The first selector with a match wins; body is the final
// fallback.
var contentSelectors = []string{
	"main",
	".content",
	"article",
	`[role="main"]`,
	".markdown-body",
}

// headingLevels maps heading element names to their levels.
var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

// Ensure Extractor implements particledocs.Extractor at compile time.
var _ particledocs.Extractor = (*Extractor)(nil)

// Extractor converts raw HTML into linearized markdown-like text by
// walking the page's main content element in document order.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract selects the page's content root, renders headings, paragraphs,
// code blocks and list items in document order, and extracts the page
// title. Malformed or empty HTML degrades to empty content.
func (e *Extractor) Extract(rawHTML string) (*particledocs.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &particledocs.ExtractResult{Title: "Untitled"}, nil
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = "Untitled"
	}

	root := findContentRoot(doc)
	if root == nil {
		return &particledocs.ExtractResult{Title: title}, nil
	}

	var lines []string
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		renderNode(c, &lines)
	}

	return &particledocs.ExtractResult{
		Title:   title,
		Content: collapseBlankLines(lines),
	}, nil
}

// findContentRoot returns the first matching content root element, or
// nil when the document has no usable root at all.
func findContentRoot(doc *goquery.Document) *html.Node {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel.Get(0)
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body.Get(0)
	}
	return nil
}

// renderNode emits lines for a node, then descends unconditionally.
// Every descendant is dispatched in document order, so a renderable
// element nested inside another emits twice: once through its
// ancestor's text, once on its own (a heading inside a list item
// produces both the list line and a header line, and pre > code
// produces two fenced blocks).
func renderNode(n *html.Node, lines *[]string) {
	if n.Type == html.ElementNode {
		if level, ok := headingLevels[n.Data]; ok {
			if text := nodeText(n); text != "" {
				*lines = append(*lines, strings.Repeat("#", level)+" "+text, "")
			}
		} else {
			switch n.Data {
			case "p":
				if text := nodeText(n); text != "" {
					*lines = append(*lines, text, "")
				}
			case "code", "pre":
				if text := nodeText(n); text != "" {
					*lines = append(*lines, "```", text, "```", "")
				}
			case "ul", "ol":
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type == html.ElementNode && c.Data == "li" {
						if text := nodeText(c); text != "" {
							*lines = append(*lines, "- "+text)
						}
					}
				}
				*lines = append(*lines, "")
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(c, lines)
	}
}

// nodeText returns the trimmed concatenation of all text under a node.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.TrimSpace(sb.String())
}

// collapseBlankLines reduces runs of blank lines to a single blank line
// and trims leading and trailing blanks.
func collapseBlankLines(lines []string) string {
	var out []string
	prevBlank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if !prevBlank {
				out = append(out, "")
			}
			prevBlank = true
		} else {
			out = append(out, line)
			prevBlank = false
		}
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
