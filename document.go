package particledocs

// Section represents a heading-delimited region of a parsed document.
type Section struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Level  int    `json:"level"`
	Anchor string `json:"anchor"`
}

// CodeBlock represents a fenced code block in a parsed document.
type CodeBlock struct {
	// Language is the fence's language tag, empty when absent.
	Language string `json:"language"`
	Content  string `json:"content"`

	// StartLine is 1-based, counted by newlines preceding the opening fence.
	StartLine int `json:"startLine"`
}

// Link represents an inline markdown link in a parsed document.
type Link struct {
	Text   string `json:"text"`
	Target string `json:"target"`

	// External is true unless the target starts with "#" or "/".
	External bool `json:"external"`
}

// Document is the structured representation of a documentation page.
type Document struct {
	Title      string      `json:"title"`
	Sections   []Section   `json:"sections"`
	CodeBlocks []CodeBlock `json:"codeBlocks"`
	Links      []Link      `json:"links"`

	// Summary is plain text, at most 300 characters, ellipsis-terminated
	// when truncated.
	Summary string `json:"summary"`
}
