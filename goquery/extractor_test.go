package goquery_test

import (
	"testing"

	"github.com/fwojciec/particledocs/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewExtractor()

	t.Run("heading and paragraph inside main", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract("<main><h1>Intro</h1><p>Hello world</p></main>")

		require.NoError(t, err)
		assert.Equal(t, "# Intro\n\nHello world", result.Content)
	})

	t.Run("all heading levels", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract(
			"<main><h1>A</h1><h2>B</h2><h3>C</h3><h4>D</h4><h5>E</h5><h6>F</h6></main>")

		require.NoError(t, err)
		assert.Equal(t, "# A\n\n## B\n\n### C\n\n#### D\n\n##### E\n\n###### F", result.Content)
	})

	t.Run("empty headings are skipped", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract("<main><h1></h1><h2>Real</h2></main>")

		require.NoError(t, err)
		assert.Equal(t, "## Real", result.Content)
	})

	t.Run("code blocks are fenced", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract("<main><pre>const x = 1;</pre></main>")

		require.NoError(t, err)
		assert.Equal(t, "```\nconst x = 1;\n```", result.Content)
	})

	t.Run("code inside pre renders for both elements", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract("<main><pre><code>const x = 1;</code></pre></main>")

		require.NoError(t, err)
		assert.Equal(t, "```\nconst x = 1;\n```\n\n```\nconst x = 1;\n```", result.Content)
	})

	t.Run("direct list items only", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract("<main><ul><li>one</li><li>two</li></ul></main>")

		require.NoError(t, err)
		assert.Equal(t, "- one\n- two", result.Content)
	})

	t.Run("heading inside list item emits its own header line", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract(
			"<main><ul><li><h3>Nested Heading</h3></li></ul><p>tail</p></main>")

		require.NoError(t, err)
		assert.Equal(t, "- Nested Heading\n\n### Nested Heading\n\ntail", result.Content)
	})

	t.Run("text in unlisted containers is dropped", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract(
			"<main><div>stray text</div><span>more</span><p>kept</p></main>")

		require.NoError(t, err)
		assert.Equal(t, "kept", result.Content)
	})

	t.Run("elements nested in containers still render", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract(
			"<main><div><section><h2>Nested</h2><p>deep text</p></section></div></main>")

		require.NoError(t, err)
		assert.Equal(t, "## Nested\n\ndeep text", result.Content)
	})

	t.Run("blank line runs collapse to one", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract(
			"<main><p>first</p><p></p><ul></ul><p>second</p></main>")

		require.NoError(t, err)
		assert.Equal(t, "first\n\nsecond", result.Content)
	})

	t.Run("empty body yields empty content", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract("<html><body></body></html>")

		require.NoError(t, err)
		assert.Empty(t, result.Content)
	})

	t.Run("garbage input degrades to empty content", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract("<<<not html>>>")

		require.NoError(t, err)
		assert.Empty(t, result.Content)
	})
}

func TestExtractor_ContentRoot(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewExtractor()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "main has highest priority",
			html: `<body><main><p>from main</p></main><article><p>from article</p></article></body>`,
			want: "from main",
		},
		{
			name: "content class beats article",
			html: `<body><article><p>from article</p></article><div class="content"><p>from content</p></div></body>`,
			want: "from content",
		},
		{
			name: "article",
			html: `<body><article><p>from article</p></article><div><p>elsewhere</p></div></body>`,
			want: "from article",
		},
		{
			name: "ARIA main role",
			html: `<body><div role="main"><p>from role</p></div><div><p>elsewhere</p></div></body>`,
			want: "from role",
		},
		{
			name: "markdown-body class",
			html: `<body><div class="markdown-body"><p>from markdown-body</p></div><div><p>elsewhere</p></div></body>`,
			want: "from markdown-body",
		},
		{
			name: "body fallback",
			html: `<body><p>from body</p></body>`,
			want: "from body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := extractor.Extract(tt.html)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Content)
		})
	}
}

func TestExtractor_Title(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewExtractor()

	t.Run("uses title element text", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract(
			"<html><head><title> Docs Home </title></head><body></body></html>")

		require.NoError(t, err)
		assert.Equal(t, "Docs Home", result.Title)
	})

	t.Run("defaults to Untitled", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract("<html><body><p>text</p></body></html>")

		require.NoError(t, err)
		assert.Equal(t, "Untitled", result.Title)
	})
}
