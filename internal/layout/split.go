package layout

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// sentenceEnd matches a terminator followed by whitespace.
var sentenceEnd = regexp.MustCompile(`[.!?][ \t\n]`)

// Fragment is one slide produced by Split.
type Fragment struct {
	Title string
	Body  string
}

// Split distributes content over as many fragments as needed so that none
// overflows t. Fragments keep the original order and, joined, hold every
// non-whitespace character of content. Titles after the first carry a
// " (Part N)" suffix starting at 2.
//
// Strategies are tried in order (paragraph boundaries, bullet boundaries,
// raw length) and re-applied to every chunk that still overflows.
func Split(title, content string, t Thresholds) []Fragment {
	t = t.normalized()
	if !Measure(content).Exceeds(t) {
		return []Fragment{{Title: title, Body: content}}
	}

	bodies := splitBody(content, t)
	fragments := make([]Fragment, len(bodies))
	for i, body := range bodies {
		fragments[i] = Fragment{Title: partTitle(title, i), Body: body}
	}
	return fragments
}

func partTitle(title string, index int) string {
	if index == 0 {
		return title
	}
	return fmt.Sprintf("%s (Part %d)", title, index+1)
}

// splitBody returns the trimmed, non-blank chunks of content, or a single
// empty chunk when content is blank. Every chunk is strictly shorter than
// content, which bounds the recursion.
func splitBody(content string, t Thresholds) []string {
	if !Measure(content).Exceeds(t) {
		return []string{trimBlank(content)}
	}

	chunks := splitByParagraphs(content, t)
	if len(chunks) < 2 && countBullets(content) > t.MaxBullets {
		chunks = splitByBullets(content, t)
	}
	if len(chunks) < 2 {
		chunks = splitByLength(content, t)
	}
	if len(chunks) < 2 {
		// Nothing could make progress (e.g. a single bullet-free paragraph
		// that only overflows on whitespace). Keep it whole.
		return []string{trimBlank(content)}
	}

	var out []string
	for _, chunk := range chunks {
		chunk = trimBlank(chunk)
		if chunk == "" {
			continue
		}
		out = append(out, splitBody(chunk, t)...)
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

// splitByParagraphs packs consecutive paragraphs greedily. The buffer closes
// when adding the next paragraph would make it overflow.
func splitByParagraphs(content string, t Thresholds) []string {
	spans := paragraphSpans(content)
	if len(spans) < 2 {
		return nil
	}

	var chunks []string
	bufStart := spans[0].start
	for i := 1; i < len(spans); i++ {
		candidate := content[bufStart:spans[i].end]
		if Measure(candidate).Exceeds(t) {
			chunks = append(chunks, content[bufStart:spans[i-1].end])
			bufStart = spans[i].start
		}
	}
	return append(chunks, content[bufStart:spans[len(spans)-1].end])
}

// splitByBullets walks lines and starts a new chunk when the bullet count
// passes MaxBullets. Non-bullet lines stay with the bullets above them, and
// lines of fenced code are never bullets.
func splitByBullets(content string, t Thresholds) []string {
	var (
		chunks  []string
		buf     strings.Builder
		bullets int
		pos     int
	)
	code := findFences(content)
	for _, line := range strings.SplitAfter(content, "\n") {
		inCode := code.contains(pos)
		pos += len(line)
		if !inCode && isBulletLine(line) {
			bullets++
			if bullets > t.MaxBullets && buf.Len() > 0 {
				chunks = append(chunks, buf.String())
				buf.Reset()
				bullets = 1
			}
		}
		buf.WriteString(line)
	}
	if buf.Len() > 0 {
		chunks = append(chunks, buf.String())
	}
	return chunks
}

// splitByLength cuts runs longer than MaxChars at the last blank line inside
// the window, else after the last sentence terminator, else at MaxChars.
func splitByLength(content string, t Thresholds) []string {
	var chunks []string
	rest := content
	for utf8.RuneCountInString(rest) > t.MaxChars {
		cut, next := lengthCut(rest, t.MaxChars)
		chunks = append(chunks, rest[:cut])
		rest = rest[next:]
	}
	if strings.TrimSpace(rest) != "" {
		chunks = append(chunks, rest)
	}
	return chunks
}

// lengthCut returns the end of the chunk to emit and the offset where the
// remainder starts. Both are greater than zero. Blank lines and sentence ends
// inside fenced code are not cut points; a block longer than the window is
// still cut hard.
func lengthCut(s string, maxChars int) (cut, next int) {
	window := s[:runeOffset(s, maxChars)]
	code := findFences(s)

	breaks := paragraphBreak.FindAllStringIndex(window, -1)
	for i := len(breaks) - 1; i >= 0; i-- {
		if !code.contains(breaks[i][0]) && strings.TrimSpace(window[:breaks[i][0]]) != "" {
			return breaks[i][0], breaks[i][1]
		}
	}

	ends := sentenceEnd.FindAllStringIndex(window, -1)
	for i := len(ends) - 1; i >= 0; i-- {
		if at := ends[i][0] + 1; !code.contains(ends[i][0]) && strings.TrimSpace(window[:at]) != "" {
			return at, ends[i][1]
		}
	}

	return len(window), len(window)
}

// runeOffset returns the byte offset of the n-th rune in s, or len(s).
func runeOffset(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
