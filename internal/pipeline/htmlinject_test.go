package pipeline

import (
	"context"
	"testing"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no escape needed", ".slide { color: red; }", ".slide { color: red; }"},
		{"escapes style close", "</style>", `<\/style>`},
		{"escapes script close", "</script>", `<\/script>`},
		{"multiple occurrences", "</a></b>", `<\/a><\/b>`},
		{"nested sequences", "</</style>", `<\/<\/style>`},
		{"case variation", "</STYLE>", `<\/STYLE>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sanitizeCSS(tt.input)
			if got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	const css = ".slide { color: red; }"
	const block = `<style class="user-css">.slide { color: red; }</style>`

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "empty CSS returns HTML unchanged",
			html:     "<html><head></head><body>Deck</body></html>",
			css:      "",
			expected: "<html><head></head><body>Deck</body></html>",
		},
		{
			name:     "injects before </head> after deck styles",
			html:     "<html><head><style>:root{}</style></head><body>Deck</body></html>",
			css:      css,
			expected: "<html><head><style>:root{}</style>" + block + "</head><body>Deck</body></html>",
		},
		{
			name:     "injects before </HEAD> mixed case",
			html:     "<html><HEAD></HEAD><body>Deck</body></html>",
			css:      css,
			expected: "<html><HEAD>" + block + "</HEAD><body>Deck</body></html>",
		},
		{
			name:     "injects after <body> with attributes when no </head>",
			html:     `<html><body class="theme-dark">Deck</body></html>`,
			css:      css,
			expected: `<html><body class="theme-dark">` + block + `Deck</body></html>`,
		},
		{
			name:     "prepends to bare fragment",
			html:     `<div class="slide">Deck</div>`,
			css:      css,
			expected: block + `<div class="slide">Deck</div>`,
		},
		{
			name:     "sanitizes CSS with closing tags",
			html:     "<html><head></head><body></body></html>",
			css:      "</style><script>alert('x')</script>",
			expected: `<html><head><style class="user-css"><\/style><script>alert('x')<\/script></style></head><body></body></html>`,
		},
	}

	injector := &CSSInjection{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectCSS_ContextCancellation(t *testing.T) {
	t.Parallel()

	injector := &CSSInjection{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<html><head></head><body>Deck</body></html>"
	if got := injector.InjectCSS(ctx, html, "body{}"); got != html {
		t.Errorf("InjectCSS() with cancelled context should return HTML unchanged, got %q", got)
	}
}
