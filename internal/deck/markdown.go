package deck

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2slides/internal/yamlutil"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	// An ATX heading opener: up to three spaces, 1-6 hashes, then space or end.
	atxOpener = regexp.MustCompile(`^ {0,3}#{1,6}(?:[ \t]|$)`)

	// A thematic break line: three or more -, * or _ with optional spaces.
	ruleLine = regexp.MustCompile(`^ {0,3}(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)

	// First line of a front matter block: a YAML mapping key.
	frontMatterKey = regexp.MustCompile(`^[A-Za-z_][\w-]*:`)
)

// frontMatter is the optional YAML header of a Markdown deck.
type frontMatter struct {
	Title string `yaml:"title"`
	Theme string `yaml:"theme"`
}

// heading is a top-level boundary found in the source.
type heading struct {
	level     int
	title     string
	start     int // offset of the heading's first line
	bodyStart int // offset of the line after the heading
}

// ParseMarkdown reads a Markdown deck.
//
// With two or more level-1 headings, the first is the deck title and each
// later one starts a slide; this is the layout the Markdown assembler
// writes. Otherwise the single level-1 heading (if any) is the title and
// level-2 headings start slides. Text before the first slide becomes a
// slide named after the deck. Rules separating slides are dropped.
//
// Only top-level headings count, so "#" lines inside fenced code, lists or
// quotes never split a slide.
func ParseMarkdown(data []byte) (*Deck, error) {
	src := bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	fm, src, err := splitFrontMatter(src)
	if err != nil {
		return nil, err
	}

	headings := scanHeadings(src)
	slideLevel := 2
	if countLevel(headings, 1) >= 2 {
		slideLevel = 1
	}

	d := &Deck{Title: fm.Title, Theme: fm.Theme}
	var (
		bounds   []heading
		titleIdx = -1
	)
	for _, h := range headings {
		switch {
		case h.level == 1 && titleIdx < 0:
			titleIdx = len(bounds)
			if d.Title == "" {
				d.Title = h.title
			}
			bounds = append(bounds, h)
		case h.level == slideLevel:
			bounds = append(bounds, h)
		}
	}

	addPreamble := func(body string) {
		if body = cleanBody(body); body != "" {
			d.Slides = append(d.Slides, Slide{Title: d.Title, Content: body})
		}
	}

	if len(bounds) == 0 {
		addPreamble(string(src))
		return d, nil
	}

	addPreamble(string(src[:bounds[0].start]))
	for i, b := range bounds {
		end := len(src)
		if i+1 < len(bounds) {
			end = bounds[i+1].start
		}
		body := string(src[b.bodyStart:end])
		if i == titleIdx {
			addPreamble(body)
			continue
		}
		d.Slides = append(d.Slides, Slide{Title: b.title, Content: cleanBody(body)})
	}

	return d, nil
}

// splitFrontMatter separates a leading "---" delimited YAML block.
func splitFrontMatter(src []byte) (frontMatter, []byte, error) {
	var fm frontMatter
	if !bytes.HasPrefix(src, []byte("---\n")) {
		return fm, src, nil
	}

	rest := src[len("---\n"):]
	if !frontMatterKey.Match(rest) {
		return fm, src, nil
	}
	end := bytes.Index(rest, []byte("\n---\n"))
	skip := len("\n---\n")
	if end < 0 && bytes.HasSuffix(rest, []byte("\n---")) {
		end, skip = len(rest)-len("\n---"), len("\n---")
	}
	if end < 0 {
		// No closing delimiter: the opening line is a thematic break.
		return fm, src, nil
	}

	if err := yamlutil.UnmarshalStrict(rest[:end], &fm); err != nil {
		return fm, nil, fmt.Errorf("%w: front matter: %v", ErrInvalidDeck, err)
	}
	return fm, rest[end+skip:], nil
}

// scanHeadings returns the level 1 and 2 headings at the top of the AST, in
// source order. Headings without text cannot be located and are skipped.
func scanHeadings(src []byte) []heading {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var headings []heading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > 2 || h.Lines().Len() == 0 {
			continue
		}

		lines := h.Lines()
		first, last := lines.At(0), lines.At(lines.Len()-1)

		start := lineStart(src, first.Start)
		stop := last.Stop
		if stop > first.Start && src[stop-1] == '\n' {
			stop--
		}
		bodyStart := lineEnd(src, stop)
		if !atxOpener.Match(src[start:lineEnd(src, start)]) {
			bodyStart = lineEnd(src, bodyStart) // setext underline
		}

		parts := make([]string, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			parts = append(parts, string(bytes.TrimSpace(seg.Value(src))))
		}

		headings = append(headings, heading{
			level:     h.Level,
			title:     strings.Join(parts, " "),
			start:     start,
			bodyStart: bodyStart,
		})
	}
	return headings
}

func countLevel(headings []heading, level int) int {
	n := 0
	for _, h := range headings {
		if h.level == level {
			n++
		}
	}
	return n
}

// lineStart returns the offset of the line containing pos.
func lineStart(src []byte, pos int) int {
	return bytes.LastIndexByte(src[:pos], '\n') + 1
}

// lineEnd returns the offset just past the newline ending the line at pos,
// or len(src) on the last line.
func lineEnd(src []byte, pos int) int {
	if pos >= len(src) {
		return len(src)
	}
	idx := bytes.IndexByte(src[pos:], '\n')
	if idx < 0 {
		return len(src)
	}
	return pos + idx + 1
}

// cleanBody drops leading blank and rule lines, trailing blank lines, and
// trailing rules that stand alone after a blank line (a rule directly under
// text is a setext underline and belongs to the content).
func cleanBody(body string) string {
	lines := strings.Split(body, "\n")

	for len(lines) > 0 && (isBlank(lines[0]) || ruleLine.MatchString(lines[0])) {
		lines = lines[1:]
	}
	for len(lines) > 0 {
		last := lines[len(lines)-1]
		switch {
		case isBlank(last):
		case ruleLine.MatchString(last) && (len(lines) == 1 || isBlank(lines[len(lines)-2])):
		default:
			return strings.TrimRight(strings.Join(lines, "\n"), " \t")
		}
		lines = lines[:len(lines)-1]
	}
	return ""
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
