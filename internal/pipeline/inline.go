package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// ![alt](url "title")
	imageRef = regexp.MustCompile(`!\[([^\]\n]*)\]\(([^\s")]+)(?:[ \t]+"([^"\n]*)")?\)`)

	// [text](url "title")
	linkRef = regexp.MustCompile(`\[([^\]\n]+)\]\(([^\s")]+)(?:[ \t]+"([^"\n]*)")?\)`)

	// Any tag produced by an earlier pass
	htmlTag = regexp.MustCompile(`<[^<>\n]*>`)

	// Masked tag token
	maskToken = regexp.MustCompile(`\x{E003}(\d+)\x{E004}`)
)

// emphasisRule is one emphasis rewrite. Rules that need a word boundary
// capture the surrounding characters and are applied until stable, because
// adjacent matches share a boundary character.
type emphasisRule struct {
	re       *regexp.Regexp
	repl     string
	boundary bool
}

// Order matters: longer markers must be consumed before shorter ones.
var emphasisRules = []emphasisRule{
	{re: regexp.MustCompile(`~~(.+?)~~`), repl: "<del>$1</del>"},
	{re: regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), repl: "<strong><em>$1</em></strong>"},
	{re: regexp.MustCompile(`(?m)(^|[^\p{L}\p{N}_])___(.+?)___($|[^\p{L}\p{N}_])`), repl: "$1<strong><em>$2</em></strong>$3", boundary: true},
	{re: regexp.MustCompile(`\*\*(.+?)\*\*`), repl: "<strong>$1</strong>"},
	{re: regexp.MustCompile(`(?m)(^|[^\p{L}\p{N}_])__(.+?)__($|[^\p{L}\p{N}_])`), repl: "$1<strong>$2</strong>$3", boundary: true},
	{re: regexp.MustCompile(`\*([^*\s][^*\n]*?)\*`), repl: "<em>$1</em>"},
	{re: regexp.MustCompile(`(?m)(^|[^\p{L}\p{N}_])_([^_\n]+?)_($|[^\p{L}\p{N}_])`), repl: "$1<em>$2</em>$3", boundary: true},
}

var attrEscaper = strings.NewReplacer(`"`, "&quot;")

// renderImages converts image references into captioned figures. The caption
// is the title when there is one, else the alt text.
func renderImages(text string) string {
	return imageRef.ReplaceAllStringFunc(text, func(match string) string {
		m := imageRef.FindStringSubmatch(match)
		alt, src, title := m[1], m[2], m[3]

		caption := alt
		titleAttr := ""
		if title != "" {
			caption = title
			titleAttr = ` title="` + attrEscaper.Replace(title) + `"`
		}

		return `<figure class="elegant-image"><img src="` + attrEscaper.Replace(src) +
			`" alt="` + attrEscaper.Replace(alt) + `"` + titleAttr +
			` loading="lazy"><figcaption>` + caption + `</figcaption></figure>`
	})
}

// renderLinks converts inline links. Links open in a new browsing context.
func renderLinks(text string) string {
	return linkRef.ReplaceAllStringFunc(text, func(match string) string {
		m := linkRef.FindStringSubmatch(match)
		label, href, title := m[1], m[2], m[3]

		titleAttr := ""
		if title != "" {
			titleAttr = ` title="` + attrEscaper.Replace(title) + `"`
		}

		return `<a href="` + attrEscaper.Replace(href) + `"` + titleAttr +
			` target="_blank" rel="noopener">` + label + `</a>`
	})
}

// renderEmphasis applies strikethrough, bold-italic, bold and italic in that
// order. Existing tags are masked first so attribute values such as
// target="_blank" or URLs with underscores are never rewritten.
func renderEmphasis(text string) string {
	var tags []string
	text = htmlTag.ReplaceAllStringFunc(text, func(tag string) string {
		tags = append(tags, tag)
		return maskOpen + strconv.Itoa(len(tags)-1) + maskClose
	})

	for _, rule := range emphasisRules {
		if !rule.boundary {
			text = rule.re.ReplaceAllString(text, rule.repl)
			continue
		}
		for {
			next := rule.re.ReplaceAllString(text, rule.repl)
			if next == text {
				break
			}
			text = next
		}
	}

	if len(tags) == 0 {
		return text
	}
	return maskToken.ReplaceAllStringFunc(text, func(token string) string {
		id, err := strconv.Atoi(maskToken.FindStringSubmatch(token)[1])
		if err != nil || id >= len(tags) {
			return token
		}
		return tags[id]
	})
}
