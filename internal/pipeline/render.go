package pipeline

import (
	"context"
	"strings"
)

// FragmentRenderer renders the body of one slide to an HTML fragment.
type FragmentRenderer interface {
	Render(ctx context.Context, body string) (string, error)
}

// Compile-time interface checks.
var (
	_ FragmentRenderer = (*BuiltinRenderer)(nil)
	_ FragmentRenderer = (*GoldmarkConverter)(nil)
)

// BuiltinRenderer runs the pass chain of this package. It never fails on
// malformed input: text no pass recognizes is passed through escaped.
type BuiltinRenderer struct {
	highlighter CodeHighlighter
}

// NewBuiltinRenderer creates a renderer. hl may be nil for plain code blocks.
func NewBuiltinRenderer(hl CodeHighlighter) *BuiltinRenderer {
	return &BuiltinRenderer{highlighter: hl}
}

// Render converts body to HTML. The only error is ctx cancellation.
func (r *BuiltinRenderer) Render(ctx context.Context, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return RenderMarkdown(body, r.highlighter), nil
}

// RenderMarkdown converts one slide body to HTML.
//
// Code is vaulted before anything else and restored last, so no pass ever
// sees it. Block passes run before inline passes, lists before tables before
// emphasis, so that an earlier construct is never re-read by a later rule.
func RenderMarkdown(body string, hl CodeHighlighter) string {
	text, v := Extract(normalizeLineEndings(body))

	text = escapeHTML(text)
	text = isolateBlocks(text)
	text = compressBlankLines(text)

	text = renderHeaders(text, v)
	text = renderRules(text)
	text = renderBlockquotes(text)
	text = renderUnorderedLists(text)
	text = renderOrderedLists(text)
	text = renderTaskLists(text)
	text = renderTables(text)
	text = renderImages(text)
	text = renderLinks(text)
	text = renderEmphasis(text)

	text = wrapParagraphs(text)
	text = compressBlankLines(text)

	// Restored code may contain blank lines; nothing runs after this.
	return strings.TrimSpace(v.Restore(text, hl))
}
