package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// ATX header: 1-6 markers, whitespace, text
	atxHeaderLine = regexp.MustCompile(`^#{1,6}[ \t]+\S`)

	// Horizontal rule: 3+ of the same character alone on a line
	ruleLine = regexp.MustCompile(`^[ \t]*(?:-{3,}|={3,}|\*{3,})[ \t]*$`)

	// Setext underline
	setextUnderline = regexp.MustCompile(`^(?:=+|-+)[ \t]*$`)

	// Blockquote marker, already HTML-escaped
	quoteLine = regexp.MustCompile(`^[ \t]*&gt;`)

	// Unordered, ordered or task list item
	listLine = regexp.MustCompile(`^[ \t]*(?:[*+-]|\d+\.)[ \t]+\S`)

	// Table row
	tableLine = regexp.MustCompile(`^[ \t]*\|`)

	// Table alignment row; the leading pipe is optional
	tableAlignLine = regexp.MustCompile(`^[ \t]*\|?[ \t]*:?-+:?[ \t]*(?:\|[ \t]*:?-+:?[ \t]*)+\|?[ \t]*$`)
)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// escapeHTML escapes the characters that would otherwise be read as markup.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// lineKind classifies a line for block isolation.
type lineKind int

const (
	lineBlank lineKind = iota
	lineText
	lineHeader
	lineSetext // text line followed by an underline, or the underline itself
	lineRule
	lineQuote
	lineList
	lineTable
	lineToken
)

// standalone reports whether every line of this kind is its own block.
func (k lineKind) standalone() bool {
	return k == lineHeader || k == lineRule || k == lineToken
}

func classifyLine(line string) lineKind {
	switch {
	case isBlankLine(line):
		return lineBlank
	case isBlockToken(line):
		return lineToken
	case atxHeaderLine.MatchString(line):
		return lineHeader
	case ruleLine.MatchString(line):
		return lineRule
	case quoteLine.MatchString(line):
		return lineQuote
	case listLine.MatchString(line):
		return lineList
	case isTableLine(line):
		return lineTable
	default:
		return lineText
	}
}

func isTableLine(line string) bool {
	return tableLine.MatchString(line) || tableAlignLine.MatchString(line)
}

// isSetextPair reports whether text and underline form a Setext header.
func isSetextPair(text, underline string) bool {
	return classifyLine(text) == lineText &&
		!strings.HasPrefix(text, " ") && !strings.HasPrefix(text, "\t") &&
		setextUnderline.MatchString(underline)
}

// blockGroups assigns a group id to every line. Adjacent lines of the same
// construct share an id, except headers, rules and code tokens which always
// get their own. A Setext header (text plus underline) forms one group.
// Blank lines get -1.
func blockGroups(lines []string) []int {
	groups := make([]int, len(lines))
	id := 0
	prev := lineBlank
	for i := 0; i < len(lines); i++ {
		if i+1 < len(lines) && isSetextPair(lines[i], lines[i+1]) {
			id++
			groups[i], groups[i+1] = id, id
			prev = lineSetext
			i++
			continue
		}
		kind := classifyLine(lines[i])
		switch {
		case kind == lineBlank:
			groups[i] = -1
		case kind != prev || kind.standalone():
			id++
			groups[i] = id
		default:
			groups[i] = id
		}
		prev = kind
	}
	return groups
}

// isolateBlocks inserts a blank line wherever two adjacent non-blank lines
// belong to different block constructs, so that paragraph wrapping never
// glues text onto a list, table, quote, rule or header.
func isolateBlocks(content string) string {
	lines := strings.Split(content, "\n")
	groups := blockGroups(lines)
	result := make([]string, 0, len(lines))

	for i, line := range lines {
		if i > 0 && groups[i] >= 0 && groups[i-1] >= 0 && groups[i] != groups[i-1] {
			result = append(result, "")
		}
		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}
