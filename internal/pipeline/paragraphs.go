package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Paragraph separator
	blankLines = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

	// Blocks that already start with a structural tag
	structuralTag = regexp.MustCompile(`^<(?:h[1-6]|ul|ol|pre|blockquote|hr|figure|div|table)\b`)
)

// wrapParagraphs wraps every remaining bare text block in a paragraph.
// Blocks that start with a structural tag and fenced code tokens are kept.
func wrapParagraphs(text string) string {
	blocks := blankLines.Split(text, -1)
	out := make([]string, 0, len(blocks))

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		switch {
		case block == "":
			continue
		case structuralTag.MatchString(block), isBlockToken(block):
			out = append(out, block)
		default:
			out = append(out, `<p class="elegant-paragraph">`+block+`</p>`)
		}
	}

	return strings.Join(out, "\n\n")
}
