package pipeline

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	// ATX header with optional closing markers
	atxHeader = regexp.MustCompile(`^(#{1,6})[ \t]+(.+?)(?:[ \t]+#+)?[ \t]*$`)

	// Runs of characters that are not letters, digits or underscore
	nonWordRun = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

	// One blockquote marker and the space after it
	quoteMarker = regexp.MustCompile(`^[ \t]*&gt;[ ]?`)
)

// renderHeaders converts ATX and Setext headers. The id is derived from the
// header's visible text, so code tokens are revealed before slugging.
func renderHeaders(text string, v *Vault) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if m := atxHeader.FindStringSubmatch(line); m != nil {
			result = append(result, headerHTML(len(m[1]), m[2], v))
			continue
		}

		if i+1 < len(lines) && isSetextPair(line, lines[i+1]) {
			level := 2
			if strings.HasPrefix(lines[i+1], "=") {
				level = 1
			}
			result = append(result, headerHTML(level, strings.TrimSpace(line), v))
			i++
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

func headerHTML(level int, text string, v *Vault) string {
	return fmt.Sprintf("\n\n<h%d id=\"%s\">%s</h%d>\n\n", level, headerSlug(text, v), text, level)
}

// headerSlug lowercases the visible text and collapses every run of
// non-word characters into a single hyphen. Equal titles get equal slugs.
func headerSlug(text string, v *Vault) string {
	if v != nil {
		text = v.Reveal(text)
	}
	text = strings.ToLower(html.UnescapeString(text))
	return nonWordRun.ReplaceAllString(text, "-")
}

// renderRules converts lines of three or more -, = or * into rules.
// The = variant is the heavier one.
func renderRules(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !ruleLine.MatchString(line) {
			continue
		}
		if strings.Contains(line, "=") {
			lines[i] = `<hr class="thick elegant-hr">`
		} else {
			lines[i] = `<hr class="elegant-hr">`
		}
	}
	return strings.Join(lines, "\n")
}

// renderBlockquotes groups consecutive quoted lines into one blockquote.
// One marker is stripped per line; remaining markers produce nested quotes.
// Blank quoted lines are dropped so a quote never spans a paragraph break.
func renderBlockquotes(text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		if !quoteLine.MatchString(lines[i]) {
			result = append(result, lines[i])
			i++
			continue
		}

		var (
			inner  []string
			nested bool
		)
		for ; i < len(lines) && quoteLine.MatchString(lines[i]); i++ {
			stripped := quoteMarker.ReplaceAllString(lines[i], "")
			if isBlankLine(stripped) {
				continue
			}
			if quoteLine.MatchString(stripped) {
				nested = true
			}
			inner = append(inner, stripped)
		}

		content := strings.Join(inner, "\n")
		if nested {
			content = renderBlockquotes(content)
		}
		if content != "" {
			content += "\n"
		}
		result = append(result, "<blockquote class=\"elegant-quote\">\n"+content+"</blockquote>")
	}

	return strings.Join(result, "\n")
}
