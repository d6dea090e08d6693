// Package layout decides whether a slide body fits on one slide and splits
// oversized bodies into ordered fragments.
//
// Fit is estimated from three counts (characters, bullet lines, paragraphs)
// rather than rendered geometry.
package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Default thresholds used when a caller leaves a field unset.
const (
	DefaultMaxChars      = 2000
	DefaultMaxBullets    = 8
	DefaultMaxParagraphs = 4
)

var (
	// A bullet line: optional indentation, a marker, whitespace, then content.
	bulletLine = regexp.MustCompile(`(?m)^[ \t]*[*+-][ \t]+\S`)

	// One or more blank (whitespace-only) lines between two text lines.
	paragraphBreak = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

	// A closed fenced code block, matched the way the renderer vaults it.
	fencedBlock = regexp.MustCompile("(?ms)^[ \\t]*```[^\\n`]*\\n.*?^[ \\t]*```[ \\t]*$")
)

// Thresholds bounds what a single slide body may contain.
type Thresholds struct {
	MaxChars      int
	MaxBullets    int
	MaxParagraphs int
}

// DefaultThresholds returns the reference limits: 2000 chars, 8 bullets, 4 paragraphs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxChars:      DefaultMaxChars,
		MaxBullets:    DefaultMaxBullets,
		MaxParagraphs: DefaultMaxParagraphs,
	}
}

// normalized replaces non-positive fields with their defaults so that the
// splitter always has a finite cut window.
func (t Thresholds) normalized() Thresholds {
	if t.MaxChars <= 0 {
		t.MaxChars = DefaultMaxChars
	}
	if t.MaxBullets <= 0 {
		t.MaxBullets = DefaultMaxBullets
	}
	if t.MaxParagraphs <= 0 {
		t.MaxParagraphs = DefaultMaxParagraphs
	}
	return t
}

// Metrics holds the measured size of a slide body.
type Metrics struct {
	Chars      int // Unicode code points
	Bullets    int // list-marker lines
	Paragraphs int // blank-line-delimited non-empty blocks
}

// Exceeds reports whether any metric is above its threshold.
func (m Metrics) Exceeds(t Thresholds) bool {
	return m.Chars > t.MaxChars ||
		m.Bullets > t.MaxBullets ||
		m.Paragraphs > t.MaxParagraphs
}

// Measure counts characters, bullet lines and paragraphs in content.
// A fenced code block is one paragraph, and list markers inside it are code.
func Measure(content string) Metrics {
	return Metrics{
		Chars:      utf8.RuneCountInString(content),
		Bullets:    countBullets(content),
		Paragraphs: len(paragraphSpans(content)),
	}
}

// IsOverflowing reports whether content must be split to fit thresholds.
func IsOverflowing(content string, t Thresholds) bool {
	return Measure(content).Exceeds(t.normalized())
}

func countBullets(content string) int {
	code := findFences(content)
	n := 0
	for _, loc := range bulletLine.FindAllStringIndex(content, -1) {
		if !code.contains(loc[0]) {
			n++
		}
	}
	return n
}

func isBulletLine(line string) bool {
	return bulletLine.MatchString(line)
}

// span is a half-open byte range [start, end) into the source text.
type span struct {
	start, end int
}

// fences are the fenced code blocks of a text, in order.
type fences []span

func findFences(content string) fences {
	var f fences
	for _, loc := range fencedBlock.FindAllStringIndex(content, -1) {
		f = append(f, span{start: loc[0], end: loc[1]})
	}
	return f
}

// contains reports whether byte offset pos falls inside a fenced block.
func (f fences) contains(pos int) bool {
	for _, s := range f {
		if pos < s.start {
			return false
		}
		if pos < s.end {
			return true
		}
	}
	return false
}

// paragraphSpans returns the byte ranges of non-blank paragraphs, in order.
// Ranges are exact slices of content so that joining neighbours keeps the
// original separators. Blank lines inside fenced code do not break.
func paragraphSpans(content string) []span {
	var spans []span
	code := findFences(content)
	pos := 0
	for _, brk := range paragraphBreak.FindAllStringIndex(content, -1) {
		if code.contains(brk[0]) {
			continue
		}
		spans = appendSpan(spans, content, pos, brk[0])
		pos = brk[1]
	}
	return appendSpan(spans, content, pos, len(content))
}

// appendSpan adds [start, end) without its leading blank lines and trailing
// whitespace, skipping blocks that hold nothing but whitespace. Indentation of
// the first text line is kept so nested list items stay nested.
func appendSpan(spans []span, content string, start, end int) []span {
	lo, hi := blankBounds(content[start:end])
	if lo == hi {
		return spans
	}
	return append(spans, span{start: start + lo, end: start + hi})
}

// blankBounds returns the range of s left after dropping leading
// whitespace-only lines and trailing whitespace. lo == hi when s is blank.
func blankBounds(s string) (lo, hi int) {
	hi = len(strings.TrimRight(s, " \t\r\n"))
	first := strings.IndexFunc(s[:hi], func(r rune) bool {
		return r != ' ' && r != '\t' && r != '\r' && r != '\n'
	})
	if first < 0 {
		return 0, 0
	}
	if nl := strings.LastIndexByte(s[:first], '\n'); nl >= 0 {
		lo = nl + 1
	}
	return lo, hi
}

// trimBlank drops leading whitespace-only lines and trailing whitespace.
func trimBlank(s string) string {
	lo, hi := blankBounds(s)
	return s[lo:hi]
}
