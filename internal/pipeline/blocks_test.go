package pipeline

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRenderHeaders - ATX and Setext
// ---------------------------------------------------------------------------

func TestRenderHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"h1", "# Title", `<h1 id="title">Title</h1>`},
		{"h6", "###### Deep", `<h6 id="deep">Deep</h6>`},
		{"closing markers dropped", "## Hello World ##", `<h2 id="hello-world">Hello World</h2>`},
		{"hash inside word kept", "## C#", `<h2 id="c-">C#</h2>`},
		{"setext level 1", "Title\n=====", `<h1 id="title">Title</h1>`},
		{"setext level 2", "Sub title\n---", `<h2 id="sub-title">Sub title</h2>`},
		{"entities decoded for slug", "# Tom &amp; Jerry", `<h1 id="tom-jerry">Tom &amp; Jerry</h1>`},
		{"unicode letters kept", "# Café Über", `<h1 id="café-über">Café Über</h1>`},
		{"trailing punctuation becomes hyphen", "# Hello!", `<h1 id="hello-">Hello!</h1>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := strings.TrimSpace(renderHeaders(tt.input, nil))
			if got != tt.expected {
				t.Errorf("renderHeaders(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRenderHeaders_NotHeaders(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"#nospace",
		"####### seven markers",
		"  indented\n---",
		"- item\n---",
	}

	for _, in := range inputs {
		if got := renderHeaders(in, nil); strings.Contains(got, "<h") {
			t.Errorf("renderHeaders(%q) = %q, want no header", in, got)
		}
	}
}

func TestRenderHeaders_SlugRevealsCode(t *testing.T) {
	t.Parallel()

	text, v := Extract("# Using `go test`")
	got := renderHeaders(text, v)
	if !strings.Contains(got, `id="using-go-test"`) {
		t.Errorf("renderHeaders() = %q, want slug from revealed code", got)
	}
}

func TestRenderHeaders_DuplicateSlugs(t *testing.T) {
	t.Parallel()

	// Equal titles share an id; there is no disambiguation counter.
	got := renderHeaders("# Summary\n\n# Summary", nil)
	if n := strings.Count(got, `id="summary"`); n != 2 {
		t.Errorf("got %d headers with id summary, want 2: %q", n, got)
	}
}

// ---------------------------------------------------------------------------
// TestRenderRules
// ---------------------------------------------------------------------------

func TestRenderRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"---", `<hr class="elegant-hr">`},
		{"*****", `<hr class="elegant-hr">`},
		{"===", `<hr class="thick elegant-hr">`},
		{"--", "--"},
		{"-=-", "-=-"},
		{"text ---", "text ---"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := renderRules(tt.input); got != tt.expected {
				t.Errorf("renderRules(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderBlockquotes - Grouping and nesting
// ---------------------------------------------------------------------------

func TestRenderBlockquotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single line",
			input:    "&gt; wise words",
			expected: "<blockquote class=\"elegant-quote\">\nwise words\n</blockquote>",
		},
		{
			name:     "consecutive lines grouped",
			input:    "&gt; one\n&gt; two",
			expected: "<blockquote class=\"elegant-quote\">\none\ntwo\n</blockquote>",
		},
		{
			name:     "marker without space",
			input:    "&gt;tight",
			expected: "<blockquote class=\"elegant-quote\">\ntight\n</blockquote>",
		},
		{
			name:  "nested quote",
			input: "&gt; outer\n&gt; &gt; inner",
			expected: "<blockquote class=\"elegant-quote\">\nouter\n" +
				"<blockquote class=\"elegant-quote\">\ninner\n</blockquote>\n</blockquote>",
		},
		{
			name:     "blank quoted line dropped",
			input:    "&gt; a\n&gt;\n&gt; b",
			expected: "<blockquote class=\"elegant-quote\">\na\nb\n</blockquote>",
		},
		{
			name:     "empty quote",
			input:    "&gt;",
			expected: "<blockquote class=\"elegant-quote\">\n</blockquote>",
		},
		{
			name:     "separate quotes stay separate",
			input:    "&gt; a\n\n&gt; b",
			expected: "<blockquote class=\"elegant-quote\">\na\n</blockquote>\n\n<blockquote class=\"elegant-quote\">\nb\n</blockquote>",
		},
		{
			name:     "no quote",
			input:    "a &gt; b",
			expected: "a &gt; b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := renderBlockquotes(tt.input); got != tt.expected {
				t.Errorf("renderBlockquotes(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
